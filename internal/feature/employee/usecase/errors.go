// Package usecase implements the business logic for the employee feature:
// registration, login, token refresh and employee management.
package usecase

import "errors"

var (
	// ErrEmployeeNotFound is returned when an employee cannot be found by email.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrInvalidCredentials is returned on login when the email is unknown or
	// the password does not match. The two cases are deliberately
	// indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccessDenied is returned on login when the employee's role does not
	// grant administrative access.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidRefreshToken is returned when a refresh token fails
	// verification for any reason.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)
