package usecase

import (
	"regexp"
	"strings"
	"time"
)

// dateLayout is the wire format for hire and termination dates.
const dateLayout = "2006-01-02"

var (
	emailRegex       = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^+&*(),.?":{}|<>]`)
)

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

// validatePassword checks the password policy: at least 8 characters, one
// uppercase letter and one special character. Every violated rule yields its
// own message.
func validatePassword(password string) []string {
	var errs []string
	if len(password) < 8 {
		errs = append(errs, "The password must be at least 8 characters long.")
	}
	if !uppercaseRegex.MatchString(password) {
		errs = append(errs, "The password must have at least one uppercase letter.")
	}
	if !specialCharRegex.MatchString(password) {
		errs = append(errs, "The password must have at least one special character.")
	}
	return errs
}

// validateRegister checks every field of a registration request.
func validateRegister(input RegisterInput) []string {
	var errs []string

	if input.EmployeeEmail == "" {
		errs = append(errs, "Employee email is required.")
	} else if !emailRegex.MatchString(input.EmployeeEmail) {
		errs = append(errs, "Must be a valid email for employeeEmail.")
	}

	if strings.TrimSpace(input.Name) == "" {
		errs = append(errs, "Name is required.")
	} else if len(input.Name) > 255 {
		errs = append(errs, "Name cannot exceed 255 characters.")
	}

	if input.Password == "" {
		errs = append(errs, "Password is required.")
	} else {
		errs = append(errs, validatePassword(input.Password)...)
	}

	var hire, termination time.Time
	var hireOK, terminationOK bool

	if input.HireDate == "" {
		errs = append(errs, "Hire date is required.")
	} else if hire, hireOK = parseDate(input.HireDate); !hireOK {
		errs = append(errs, "Invalid hire date format.")
	}

	if input.TerminationDate != "" {
		if termination, terminationOK = parseDate(input.TerminationDate); !terminationOK {
			errs = append(errs, "Invalid termination date format.")
		}
	}

	if hireOK && terminationOK && termination.Before(hire) {
		errs = append(errs, "Termination date cannot be before hire date.")
	}

	if input.RoleID <= 0 {
		errs = append(errs, "Role ID is required.")
	}

	return errs
}

// validateUpdate checks the supplied fields of a partial update. A supplied
// password must satisfy the same policy as on registration.
func validateUpdate(input UpdateInput) []string {
	var errs []string

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			errs = append(errs, "Name cannot be empty.")
		} else if len(*input.Name) > 255 {
			errs = append(errs, "Name cannot exceed 255 characters.")
		}
	}

	if input.Password != nil {
		errs = append(errs, validatePassword(*input.Password)...)
	}

	if input.HireDate != nil {
		if _, ok := parseDate(*input.HireDate); !ok {
			errs = append(errs, "Invalid hire date format.")
		}
	}

	if input.TerminationDate != nil && *input.TerminationDate != "" {
		if _, ok := parseDate(*input.TerminationDate); !ok {
			errs = append(errs, "Invalid termination date format.")
		}
	}

	if input.RoleID != nil && *input.RoleID <= 0 {
		errs = append(errs, "Role ID must be a positive integer.")
	}

	return errs
}

// validateLogin checks the login request fields.
func validateLogin(email, password string) []string {
	var errs []string

	if email == "" {
		errs = append(errs, "Employee email is required.")
	} else if !emailRegex.MatchString(email) {
		errs = append(errs, "Must be a valid email for employeeEmail.")
	}

	if password == "" {
		errs = append(errs, "Password is required.")
	}

	return errs
}
