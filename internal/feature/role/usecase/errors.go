// Package usecase implements the business logic for the role feature.
package usecase

import "errors"

var (
	// ErrRoleNotFound is returned when a role cannot be found by ID.
	ErrRoleNotFound = errors.New("role not found")

	// ErrRoleHasEmployees is returned when deleting a role that employees
	// still reference.
	ErrRoleHasEmployees = errors.New("role has associated employees and cannot be deleted")
)
