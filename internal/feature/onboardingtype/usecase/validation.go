package usecase

import (
	"context"
	"fmt"
	"strings"
)

// validateTypeFields checks name and description and returns the ordered
// list of violations. excludeID names the type being updated so uniqueness
// does not flag the record against itself (0 on create).
func validateTypeFields(ctx context.Context, types TypeRepository, name, description string, excludeID int) ([]string, error) {
	var errs []string

	if strings.TrimSpace(name) == "" {
		errs = append(errs, "The name field is required.")
	} else if len(name) < 3 || len(name) > 255 {
		errs = append(errs, "The name must be between 3 and 255 characters long.")
	} else {
		existing, err := types.FindByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to check name uniqueness: %w", err)
		}
		if existing != nil && int(existing.TypeID) != excludeID {
			errs = append(errs, "An onboarding type with this name already exists.")
		}
	}

	if strings.TrimSpace(description) == "" {
		errs = append(errs, "The description field is required.")
	} else if len(description) > 1000 {
		errs = append(errs, "The description cannot exceed 1000 characters.")
	}

	return errs, nil
}
