// Package usecase implements the business logic for the onboardingtype feature.
package usecase

import "errors"

var (
	// ErrTypeNotFound is returned when an onboarding type cannot be found by ID.
	ErrTypeNotFound = errors.New("onboarding type not found")

	// ErrTypeHasOnboardings is returned when deleting a type that onboarding
	// processes still reference.
	ErrTypeHasOnboardings = errors.New("onboarding type has associated onboardings and cannot be deleted")
)
