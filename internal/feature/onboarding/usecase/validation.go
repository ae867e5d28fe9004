package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// dateLayout is the wire format for onboarding dates.
const dateLayout = "2006-01-02"

// parseDate accepts a plain date or a full RFC 3339 timestamp.
func parseDate(raw string) (time.Time, bool) {
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// validateOnboardingFields checks every onboarding field and returns the
// ordered list of violations together with the parsed dates. excludeID names
// the process being updated so uniqueness does not flag the record against
// itself (0 on create).
func validateOnboardingFields(ctx context.Context, onboardings OnboardingRepository, types TypeFinder,
	name, rawStart, rawEnd string, typeID, excludeID int) ([]string, time.Time, time.Time, error) {

	var errs []string

	if strings.TrimSpace(name) == "" {
		errs = append(errs, "The onboarding name field is required.")
	} else if len(name) < 3 || len(name) > 255 {
		errs = append(errs, "The onboarding name must be between 3 and 255 characters long.")
	} else {
		existing, err := onboardings.FindByName(ctx, name)
		if err != nil {
			return nil, time.Time{}, time.Time{}, fmt.Errorf("failed to check name uniqueness: %w", err)
		}
		if existing != nil && int(existing.OnboardingID) != excludeID {
			errs = append(errs, "An onboarding process with this name already exists.")
		}
	}

	start, startOK := parseDate(rawStart)
	if !startOK {
		errs = append(errs, "Start date is invalid. Please provide a valid date.")
	}

	end, endOK := parseDate(rawEnd)
	if !endOK {
		errs = append(errs, "End date is invalid. Please provide a valid date.")
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, "The end date cannot be before the start date.")
	}

	if typeID <= 0 {
		errs = append(errs, "The onboarding type ID must be a positive integer.")
	} else {
		t, err := types.FindByID(ctx, typeID)
		if err != nil {
			return nil, time.Time{}, time.Time{}, fmt.Errorf("failed to check onboarding type existence: %w", err)
		}
		if t == nil {
			errs = append(errs, fmt.Sprintf("The onboarding type with ID %d does not exist.", typeID))
		}
	}

	return errs, start, end, nil
}
