package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/gorm"

	"onboarding_backend/internal/feature/assignment/domain/entity"
	employeeentity "onboarding_backend/internal/feature/employee/domain/entity"
	employeeusecase "onboarding_backend/internal/feature/employee/usecase"
	onboardingentity "onboarding_backend/internal/feature/onboarding/domain/entity"
	onboardingusecase "onboarding_backend/internal/feature/onboarding/usecase"
	"onboarding_backend/internal/platform/mailer"
	"onboarding_backend/internal/shared/apperr"
)

const dateLayout = "2006-01-02"

// notifyTimeout bounds the detached notification send so an unreachable SMTP
// server cannot pin goroutines forever.
const notifyTimeout = 30 * time.Second

// AssignmentRepository abstracts the persistence layer for the assignment
// join rows. Find methods return (nil, nil) when no row matches.
type AssignmentRepository interface {
	// Create inserts a new assignment. A duplicate composite key surfaces
	// as gorm.ErrDuplicatedKey.
	Create(ctx context.Context, a *entity.EmployeeOnboarding) error

	// Save updates an existing assignment by composite key.
	Save(ctx context.Context, a *entity.EmployeeOnboarding) error

	// FindByKey retrieves an assignment by composite key, or nil when absent.
	FindByKey(ctx context.Context, onboardingID int, employeeEmail string) (*entity.EmployeeOnboarding, error)

	// FindByKeyWithRelations retrieves an assignment with the onboarding
	// process (and its type) and the employee inlined.
	FindByKeyWithRelations(ctx context.Context, onboardingID int, employeeEmail string) (*entity.EmployeeOnboarding, error)

	// FindByEmployee retrieves every assignment of one employee with the
	// onboarding process and its type inlined.
	FindByEmployee(ctx context.Context, employeeEmail string) ([]entity.EmployeeOnboarding, error)

	// FindByOnboarding retrieves every assignment of one process with the
	// employee inlined.
	FindByOnboarding(ctx context.Context, onboardingID int) ([]entity.EmployeeOnboarding, error)

	// DeleteByKey removes an assignment by composite key.
	DeleteByKey(ctx context.Context, onboardingID int, employeeEmail string) error
}

// OnboardingFinder looks up onboarding processes for existence checks.
// Implemented by the onboarding feature's adapter.
type OnboardingFinder interface {
	FindByID(ctx context.Context, onboardingID int) (*onboardingentity.Onboarding, error)
}

// EmployeeFinder looks up employees for existence checks. Implemented by the
// employee feature's adapter.
type EmployeeFinder interface {
	FindByEmail(ctx context.Context, email string) (*employeeentity.Employee, error)
}

// AssignInput carries the caller-supplied fields for a new assignment.
// Done defaults to false when omitted.
type AssignInput struct {
	OnboardingID  int    `json:"onboardingId"`
	EmployeeEmail string `json:"employeeEmail"`
	Done          *bool  `json:"done"`
}

// AssignmentData is the caller-facing projection of an assignment. The
// related process and employee are inlined when they were loaded.
type AssignmentData struct {
	OnboardingID  int                               `json:"onboardingId"`
	EmployeeEmail string                            `json:"employeeEmail"`
	Done          bool                              `json:"done"`
	Onboarding    *onboardingusecase.OnboardingData `json:"onboarding,omitempty"`
	Employee      *employeeusecase.EmployeeData     `json:"employee,omitempty"`
}

// assignmentUsecase implements the assignment business logic.
type assignmentUsecase struct {
	assignments AssignmentRepository
	onboardings OnboardingFinder
	employees   EmployeeFinder
	mail        mailer.Mailer
}

// NewAssignmentUsecase creates a new instance of assignmentUsecase.
func NewAssignmentUsecase(assignments AssignmentRepository, onboardings OnboardingFinder,
	employees EmployeeFinder, mail mailer.Mailer) *assignmentUsecase {
	return &assignmentUsecase{assignments: assignments, onboardings: onboardings, employees: employees, mail: mail}
}

func mapAssignment(a *entity.EmployeeOnboarding) *AssignmentData {
	data := &AssignmentData{
		OnboardingID:  int(a.OnboardingID),
		EmployeeEmail: a.EmployeeEmail,
		Done:          a.Done,
	}
	if a.Onboarding.OnboardingID != 0 {
		data.Onboarding = onboardingusecase.MapOnboarding(&a.Onboarding)
	}
	if a.Employee.EmployeeEmail != "" {
		data.Employee = employeeusecase.MapEmployee(&a.Employee)
	}
	return data
}

// Assign validates and persists a new assignment, then notifies the employee
// by email in the background. The returned classification sentinel lets the
// transport layer distinguish missing references and duplicates from plain
// field violations.
func (u *assignmentUsecase) Assign(ctx context.Context, input AssignInput) (*AssignmentData, error) {
	check, err := validateAssign(ctx, u.assignments, u.onboardings, u.employees, input.OnboardingID, input.EmployeeEmail)
	if err != nil {
		slog.Error("assignment validation lookup failed", "error", err)
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}
	if len(check.errs) > 0 {
		switch {
		case check.alreadyAssigned:
			return nil, apperr.NewValidationAs(check.errs, ErrAlreadyAssigned)
		case check.onboardingNotFound && !check.employeeNotFound:
			return nil, apperr.NewValidationAs(check.errs, ErrOnboardingNotFound)
		case check.employeeNotFound && !check.onboardingNotFound:
			return nil, apperr.NewValidationAs(check.errs, ErrEmployeeNotFound)
		case check.employeeNotFound && check.onboardingNotFound:
			return nil, apperr.NewValidationAs(check.errs, ErrOnboardingNotFound)
		default:
			return nil, apperr.NewValidation(check.errs)
		}
	}

	email := strings.ToLower(input.EmployeeEmail)
	a := &entity.EmployeeOnboarding{
		OnboardingID:  uint(input.OnboardingID),
		EmployeeEmail: email,
	}
	if input.Done != nil {
		a.Done = *input.Done
	}
	if err := u.assignments.Create(ctx, a); err != nil {
		// Concurrent assigns can both pass the pre-check; the unique
		// constraint is the authority.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			msg := fmt.Sprintf("Employee %s is already assigned to onboarding process ID %d.", input.EmployeeEmail, input.OnboardingID)
			return nil, apperr.NewValidationAs([]string{msg}, ErrAlreadyAssigned)
		}
		slog.Error("failed to create assignment", "onboardingId", input.OnboardingID, "employeeEmail", email, "error", err)
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	full, err := u.assignments.FindByKeyWithRelations(ctx, input.OnboardingID, email)
	if err != nil || full == nil {
		slog.Error("failed to reload assignment", "onboardingId", input.OnboardingID, "employeeEmail", email, "error", err)
		return mapAssignment(a), nil
	}

	u.notifyAssigned(full)
	return mapAssignment(full), nil
}

// notifyAssigned sends the assignment email on a detached goroutine. The
// assignment is already committed; a failed send is logged and never
// surfaces to the caller.
func (u *assignmentUsecase) notifyAssigned(a *entity.EmployeeOnboarding) {
	email := mailer.BuildAssignmentEmail(a.EmployeeEmail, mailer.AssignmentEmailData{
		EmployeeName:    a.Employee.Name,
		OnboardingName:  a.Onboarding.Name,
		TypeName:        a.Onboarding.OnboardingType.Name,
		TypeDescription: a.Onboarding.OnboardingType.Description,
		StartDate:       a.Onboarding.StartDate.Format(dateLayout),
		EndDate:         a.Onboarding.EndDate.Format(dateLayout),
	})
	go func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("assignment notification panicked", "employeeEmail", email.To, "panic", r)
			}
		}()
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := u.mail.Send(ctx, email); err != nil {
			slog.Error("failed to send assignment notification", "employeeEmail", email.To, "error", err)
			return
		}
		slog.Info("assignment notification sent", "employeeEmail", email.To)
	}()
}

// Get returns a single assignment by composite key with its relations inlined.
func (u *assignmentUsecase) Get(ctx context.Context, onboardingID int, employeeEmail string) (*AssignmentData, error) {
	a, err := u.assignments.FindByKeyWithRelations(ctx, onboardingID, strings.ToLower(employeeEmail))
	if err != nil {
		slog.Error("failed to load assignment", "onboardingId", onboardingID, "employeeEmail", employeeEmail, "error", err)
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	if a == nil {
		return nil, ErrAssignmentNotFound
	}
	return mapAssignment(a), nil
}

// ListForEmployee returns every assignment of one employee with the
// onboarding process inlined. An unknown email yields an empty list, not
// an error.
func (u *assignmentUsecase) ListForEmployee(ctx context.Context, employeeEmail string) ([]AssignmentData, error) {
	email := strings.ToLower(employeeEmail)
	assignments, err := u.assignments.FindByEmployee(ctx, email)
	if err != nil {
		slog.Error("failed to list assignments for employee", "employeeEmail", email, "error", err)
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	out := make([]AssignmentData, 0, len(assignments))
	for i := range assignments {
		out = append(out, *mapAssignment(&assignments[i]))
	}
	return out, nil
}

// ListForOnboarding returns every assignment of one process with the
// employee inlined. An unknown process ID yields an empty list, not an
// error.
func (u *assignmentUsecase) ListForOnboarding(ctx context.Context, onboardingID int) ([]AssignmentData, error) {
	assignments, err := u.assignments.FindByOnboarding(ctx, onboardingID)
	if err != nil {
		slog.Error("failed to list assignments for onboarding", "onboardingId", onboardingID, "error", err)
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	out := make([]AssignmentData, 0, len(assignments))
	for i := range assignments {
		out = append(out, *mapAssignment(&assignments[i]))
	}
	return out, nil
}

// UpdateStatus sets the done flag of an existing assignment. Writing the
// current value again is a no-op that still succeeds.
func (u *assignmentUsecase) UpdateStatus(ctx context.Context, onboardingID int, employeeEmail string, done *bool) (*AssignmentData, error) {
	if errs := validateDone(done); len(errs) > 0 {
		return nil, apperr.NewValidation(errs)
	}

	email := strings.ToLower(employeeEmail)
	a, err := u.assignments.FindByKey(ctx, onboardingID, email)
	if err != nil {
		slog.Error("failed to load assignment", "onboardingId", onboardingID, "employeeEmail", email, "error", err)
		return nil, fmt.Errorf("failed to update assignment: %w", err)
	}
	if a == nil {
		return nil, ErrAssignmentNotFound
	}

	a.Done = *done
	if err := u.assignments.Save(ctx, a); err != nil {
		slog.Error("failed to update assignment", "onboardingId", onboardingID, "employeeEmail", email, "error", err)
		return nil, fmt.Errorf("failed to update assignment: %w", err)
	}

	full, err := u.assignments.FindByKeyWithRelations(ctx, onboardingID, email)
	if err != nil || full == nil {
		slog.Error("failed to reload assignment", "onboardingId", onboardingID, "employeeEmail", email, "error", err)
		return mapAssignment(a), nil
	}
	return mapAssignment(full), nil
}

// Unassign removes an assignment by composite key.
func (u *assignmentUsecase) Unassign(ctx context.Context, onboardingID int, employeeEmail string) error {
	email := strings.ToLower(employeeEmail)
	a, err := u.assignments.FindByKey(ctx, onboardingID, email)
	if err != nil {
		slog.Error("failed to load assignment", "onboardingId", onboardingID, "employeeEmail", email, "error", err)
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	if a == nil {
		return ErrAssignmentNotFound
	}

	if err := u.assignments.DeleteByKey(ctx, onboardingID, email); err != nil {
		slog.Error("failed to delete assignment", "onboardingId", onboardingID, "employeeEmail", email, "error", err)
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	return nil
}
