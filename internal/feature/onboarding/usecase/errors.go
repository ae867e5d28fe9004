// Package usecase implements the business logic for the onboarding feature.
package usecase

import "errors"

var (
	// ErrOnboardingNotFound is returned when an onboarding process cannot be
	// found by ID.
	ErrOnboardingNotFound = errors.New("onboarding process not found")

	// ErrOnboardingHasAssignments is returned when deleting a process that
	// assignments still reference.
	ErrOnboardingHasAssignments = errors.New("onboarding process has associated employees and cannot be deleted")
)
