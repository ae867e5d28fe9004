package usecase

import (
	"context"
	"fmt"
	"strings"
)

// validateRoleFields checks title and description and returns the ordered
// list of violations; an empty list means valid. excludeID names the role
// being updated so the uniqueness check does not flag the record against
// itself (0 on create).
func validateRoleFields(ctx context.Context, roles RoleRepository, title, description string, excludeID int) ([]string, error) {
	var errs []string

	if strings.TrimSpace(title) == "" {
		errs = append(errs, "The title field is required.")
	} else if len(title) < 3 || len(title) > 255 {
		errs = append(errs, "The title must be between 3 and 255 characters long.")
	} else {
		existing, err := roles.FindByTitle(ctx, title)
		if err != nil {
			return nil, fmt.Errorf("failed to check title uniqueness: %w", err)
		}
		if existing != nil && int(existing.RoleID) != excludeID {
			errs = append(errs, "A role with this title already exists.")
		}
	}

	if strings.TrimSpace(description) == "" {
		errs = append(errs, "The description field is required.")
	} else if len(description) > 255 {
		errs = append(errs, "The description cannot exceed 255 characters.")
	}

	return errs, nil
}
