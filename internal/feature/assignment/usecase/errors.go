// Package usecase implements the business logic for the assignment feature:
// linking employees to onboarding processes and tracking completion.
package usecase

import "errors"

var (
	// ErrAssignmentNotFound is returned when no assignment exists for the
	// requested (onboardingId, employeeEmail) pair.
	ErrAssignmentNotFound = errors.New("assignment not found")

	// ErrEmployeeNotFound classifies an assignment attempt referencing an
	// unknown employee.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrOnboardingNotFound classifies an assignment attempt referencing an
	// unknown onboarding process.
	ErrOnboardingNotFound = errors.New("onboarding process not found")

	// ErrAlreadyAssigned is returned when the pair is already assigned,
	// whether detected by the pre-check or by the storage constraint.
	ErrAlreadyAssigned = errors.New("employee already assigned to this onboarding process")
)
