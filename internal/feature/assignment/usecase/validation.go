package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// assignCheck carries the ordered violation messages of an assignment
// request together with the classification the transport layer needs to
// pick the right status.
type assignCheck struct {
	errs               []string
	employeeNotFound   bool
	onboardingNotFound bool
	alreadyAssigned    bool
}

// validateAssign checks an assignment request field by field and verifies
// both referenced entities exist. The duplicate-pair check runs last, and
// only when everything else passed.
func validateAssign(ctx context.Context, assignments AssignmentRepository, onboardings OnboardingFinder,
	employees EmployeeFinder, onboardingID int, employeeEmail string) (assignCheck, error) {

	var check assignCheck

	if onboardingID <= 0 {
		check.errs = append(check.errs, "Onboarding ID must be a positive integer.")
	} else {
		onboarding, err := onboardings.FindByID(ctx, onboardingID)
		if err != nil {
			return check, fmt.Errorf("failed to check onboarding existence: %w", err)
		}
		if onboarding == nil {
			check.errs = append(check.errs, fmt.Sprintf("Onboarding process with ID %d not found.", onboardingID))
			check.onboardingNotFound = true
		}
	}

	if strings.TrimSpace(employeeEmail) == "" {
		check.errs = append(check.errs, "Employee email is required.")
	} else if !emailRegex.MatchString(employeeEmail) {
		check.errs = append(check.errs, "Invalid employee email format.")
	} else {
		employee, err := employees.FindByEmail(ctx, strings.ToLower(employeeEmail))
		if err != nil {
			return check, fmt.Errorf("failed to check employee existence: %w", err)
		}
		if employee == nil {
			check.errs = append(check.errs, fmt.Sprintf("Employee with email %s not found.", employeeEmail))
			check.employeeNotFound = true
		}
	}

	// The duplicate rule is evaluated last and only when every prior check
	// passed, so its message never drowns out a more fundamental violation.
	if len(check.errs) == 0 {
		existing, err := assignments.FindByKey(ctx, onboardingID, strings.ToLower(employeeEmail))
		if err != nil {
			return check, fmt.Errorf("failed to check existing assignment: %w", err)
		}
		if existing != nil {
			check.errs = append(check.errs,
				fmt.Sprintf("Employee %s is already assigned to onboarding process ID %d.", employeeEmail, onboardingID))
			check.alreadyAssigned = true
		}
	}

	return check, nil
}

// validateDone checks the status-update payload: done is mandatory.
func validateDone(done *bool) []string {
	if done == nil {
		return []string{"The 'done' field is required."}
	}
	return nil
}
