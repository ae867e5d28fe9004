package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"onboarding_backend/internal/feature/employee/domain/entity"
	roleentity "onboarding_backend/internal/feature/role/domain/entity"
	"onboarding_backend/internal/shared/apperr"
)

// adminRoleTitle gates login: only employees whose role carries this title
// (case-insensitive) may obtain tokens.
const adminRoleTitle = "admin"

// EmployeeRepository abstracts the persistence layer for employee entities.
// Find methods return (nil, nil) when no row matches; emails passed in are
// already lower-cased by the usecase.
type EmployeeRepository interface {
	// Create inserts a new employee. A duplicate primary key surfaces as
	// gorm.ErrDuplicatedKey.
	Create(ctx context.Context, e *entity.Employee) error

	// Save updates an existing employee by primary key.
	Save(ctx context.Context, e *entity.Employee) error

	// FindByEmail retrieves an employee by email, or nil when absent.
	FindByEmail(ctx context.Context, email string) (*entity.Employee, error)

	// FindByEmailWithRole retrieves an employee with the role inlined.
	FindByEmailWithRole(ctx context.Context, email string) (*entity.Employee, error)

	// FindAll retrieves every employee with roles inlined.
	FindAll(ctx context.Context) ([]entity.Employee, error)

	// Delete removes an employee by email and reports the affected rows.
	Delete(ctx context.Context, email string) (int64, error)
}

// RoleFinder looks up roles for existence checks and the login admin gate.
// Implemented by the role feature's adapter.
type RoleFinder interface {
	FindByID(ctx context.Context, roleID int) (*roleentity.Role, error)
}

// TokenGenerator defines the token operations this usecase needs.
// Implemented by the jwt platform package.
type TokenGenerator interface {
	GenerateAccessToken(employeeEmail string) (string, error)
	GenerateRefreshToken(employeeEmail string) (string, error)
	VerifyRefreshToken(token string) (string, error)
}

// RegisterInput carries the caller-supplied registration fields.
type RegisterInput struct {
	EmployeeEmail   string `json:"employeeEmail"`
	Name            string `json:"name"`
	Password        string `json:"password"`
	HireDate        string `json:"hireDate"`
	TerminationDate string `json:"terminationDate"`
	RoleID          int    `json:"roleId"`
}

// UpdateInput carries the optional fields for a partial update. Nil fields
// are left untouched.
type UpdateInput struct {
	Name            *string `json:"name"`
	Password        *string `json:"password"`
	HireDate        *string `json:"hireDate"`
	TerminationDate *string `json:"terminationDate"`
	RoleID          *int    `json:"roleId"`
}

// RegisterData is returned on successful registration. It carries only the
// email; the password digest never leaves the identity layer.
type RegisterData struct {
	EmployeeEmail string `json:"employeeEmail"`
}

// LoginData is returned on successful login.
type LoginData struct {
	AccessToken   string `json:"accessToken"`
	RefreshToken  string `json:"refreshToken"`
	Name          string `json:"name"`
	EmployeeEmail string `json:"employeeEmail"`
}

// RefreshData is returned on successful token refresh.
type RefreshData struct {
	AccessToken string `json:"accessToken"`
}

// EmployeeData is the caller-facing projection of an employee. It inlines
// the role title only, never the full role graph or the password digest.
type EmployeeData struct {
	EmployeeEmail   string `json:"employeeEmail"`
	Name            string `json:"name"`
	HireDate        string `json:"hireDate"`
	TerminationDate string `json:"terminationDate,omitempty"`
	RoleID          int    `json:"roleId"`
	RoleTitle       string `json:"roleTitle,omitempty"`
}

// employeeUsecase implements registration, authentication and employee
// management.
type employeeUsecase struct {
	employees EmployeeRepository
	roles     RoleFinder
	tokens    TokenGenerator
}

// NewEmployeeUsecase creates a new instance of employeeUsecase.
func NewEmployeeUsecase(employees EmployeeRepository, roles RoleFinder, tokens TokenGenerator) *employeeUsecase {
	return &employeeUsecase{employees: employees, roles: roles, tokens: tokens}
}

// MapEmployee projects an entity to its caller-facing shape. Exported
// because the assignment feature inlines the employee on its own responses.
func MapEmployee(e *entity.Employee) *EmployeeData {
	data := &EmployeeData{
		EmployeeEmail: e.EmployeeEmail,
		Name:          e.Name,
		HireDate:      e.HireDate.Format(dateLayout),
		RoleID:        int(e.RoleID),
		RoleTitle:     e.Role.Title,
	}
	if e.TerminationDate != nil {
		data.TerminationDate = e.TerminationDate.Format(dateLayout)
	}
	return data
}

// Register validates and persists a new employee with a hashed password.
// The email is lower-cased before the duplicate check and storage.
func (u *employeeUsecase) Register(ctx context.Context, input RegisterInput) (*RegisterData, error) {
	if errs := validateRegister(input); len(errs) > 0 {
		return nil, apperr.NewValidation(errs)
	}

	email := strings.ToLower(input.EmployeeEmail)

	existing, err := u.employees.FindByEmail(ctx, email)
	if err != nil {
		slog.Error("failed to check employee existence", "error", err)
		return nil, fmt.Errorf("failed to register employee: %w", err)
	}
	if existing != nil {
		return nil, apperr.NewValidation([]string{"Employee with this email already exists."})
	}

	role, err := u.roles.FindByID(ctx, input.RoleID)
	if err != nil {
		slog.Error("failed to check role existence", "roleId", input.RoleID, "error", err)
		return nil, fmt.Errorf("failed to register employee: %w", err)
	}
	if role == nil {
		return nil, apperr.NewValidation([]string{"Specified Role ID does not exist."})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	hire, _ := parseDate(input.HireDate)
	e := &entity.Employee{
		EmployeeEmail: email,
		Name:          input.Name,
		Password:      string(hashed),
		HireDate:      hire,
		RoleID:        uint(input.RoleID),
	}
	if input.TerminationDate != "" {
		termination, _ := parseDate(input.TerminationDate)
		e.TerminationDate = &termination
	}

	if err := u.employees.Create(ctx, e); err != nil {
		// The existence pre-check can race a concurrent registration; the
		// primary key constraint is the backstop.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.NewValidation([]string{"Employee with this email already exists."})
		}
		slog.Error("failed to register employee", "error", err)
		return nil, fmt.Errorf("failed to register employee: %w", err)
	}

	slog.Info("employee registered", "email", email)
	return &RegisterData{EmployeeEmail: e.EmployeeEmail}, nil
}

// Login authenticates an employee and, when the role grants administrative
// access, mints the access and refresh tokens. bcrypt comparison always runs
// so unknown emails take as long as wrong passwords.
func (u *employeeUsecase) Login(ctx context.Context, email, password string) (*LoginData, error) {
	if errs := validateLogin(email, password); len(errs) > 0 {
		return nil, apperr.NewValidation(errs)
	}

	lowered := strings.ToLower(email)
	e, err := u.employees.FindByEmail(ctx, lowered)
	if err != nil {
		slog.Error("failed to look up employee for login", "error", err)
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	// Dummy digest keeps the compare cost constant when the email is unknown.
	digest := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if e != nil {
		digest = e.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	if e == nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := u.roles.FindByID(ctx, int(e.RoleID))
	if err != nil {
		slog.Error("failed to resolve role for login", "email", lowered, "error", err)
		return nil, fmt.Errorf("failed to log in: %w", err)
	}
	if role == nil {
		slog.Error("employee role does not resolve", "email", lowered, "roleId", e.RoleID)
		return nil, apperr.NewValidationAs([]string{"User role not found. Access denied."}, ErrAccessDenied)
	}
	if !strings.EqualFold(role.Title, adminRoleTitle) {
		return nil, apperr.NewValidationAs([]string{"Access denied. Administrator privileges required."}, ErrAccessDenied)
	}

	accessToken, err := u.tokens.GenerateAccessToken(e.EmployeeEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := u.tokens.GenerateRefreshToken(e.EmployeeEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	slog.Info("employee login successful", "email", lowered)
	return &LoginData{
		AccessToken:   accessToken,
		RefreshToken:  refreshToken,
		Name:          e.Name,
		EmployeeEmail: e.EmployeeEmail,
	}, nil
}

// Refresh verifies a refresh token and mints a new access token for the same
// employee. Any verification failure yields the same generic error.
func (u *employeeUsecase) Refresh(ctx context.Context, refreshToken string) (*RefreshData, error) {
	email, err := u.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	accessToken, err := u.tokens.GenerateAccessToken(email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	return &RefreshData{AccessToken: accessToken}, nil
}

// List returns every employee with the role title inlined.
func (u *employeeUsecase) List(ctx context.Context) ([]EmployeeData, error) {
	employees, err := u.employees.FindAll(ctx)
	if err != nil {
		slog.Error("failed to list employees", "error", err)
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	out := make([]EmployeeData, 0, len(employees))
	for i := range employees {
		out = append(out, *MapEmployee(&employees[i]))
	}
	return out, nil
}

// GetByEmail returns a single employee by (case-normalized) email.
func (u *employeeUsecase) GetByEmail(ctx context.Context, email string) (*EmployeeData, error) {
	e, err := u.employees.FindByEmailWithRole(ctx, strings.ToLower(email))
	if err != nil {
		slog.Error("failed to load employee", "email", email, "error", err)
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	if e == nil {
		return nil, ErrEmployeeNotFound
	}
	return MapEmployee(e), nil
}

// Update applies the supplied fields to an existing employee. Unset fields
// are left untouched; a supplied password is re-validated and re-hashed.
func (u *employeeUsecase) Update(ctx context.Context, email string, input UpdateInput) (*EmployeeData, error) {
	if errs := validateUpdate(input); len(errs) > 0 {
		return nil, apperr.NewValidation(errs)
	}

	lowered := strings.ToLower(email)
	e, err := u.employees.FindByEmail(ctx, lowered)
	if err != nil {
		slog.Error("failed to load employee", "email", lowered, "error", err)
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	if e == nil {
		return nil, ErrEmployeeNotFound
	}

	if input.RoleID != nil {
		role, err := u.roles.FindByID(ctx, *input.RoleID)
		if err != nil {
			slog.Error("failed to check role existence", "roleId", *input.RoleID, "error", err)
			return nil, fmt.Errorf("failed to update employee: %w", err)
		}
		if role == nil {
			return nil, apperr.NewValidation([]string{"Specified Role ID does not exist."})
		}
		e.RoleID = uint(*input.RoleID)
	}

	if input.Name != nil {
		e.Name = *input.Name
	}
	if input.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		e.Password = string(hashed)
	}
	if input.HireDate != nil {
		hire, _ := parseDate(*input.HireDate)
		e.HireDate = hire
	}
	if input.TerminationDate != nil {
		if *input.TerminationDate == "" {
			e.TerminationDate = nil
		} else {
			termination, _ := parseDate(*input.TerminationDate)
			e.TerminationDate = &termination
		}
	}

	if e.TerminationDate != nil && e.TerminationDate.Before(e.HireDate) {
		return nil, apperr.NewValidation([]string{"Termination date cannot be before hire date."})
	}

	if err := u.employees.Save(ctx, e); err != nil {
		slog.Error("failed to update employee", "email", lowered, "error", err)
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	full, err := u.employees.FindByEmailWithRole(ctx, lowered)
	if err != nil || full == nil {
		slog.Error("failed to reload employee", "email", lowered, "error", err)
		return MapEmployee(e), nil
	}
	return MapEmployee(full), nil
}

// Delete removes an employee by email.
func (u *employeeUsecase) Delete(ctx context.Context, email string) error {
	affected, err := u.employees.Delete(ctx, strings.ToLower(email))
	if err != nil {
		slog.Error("failed to delete employee", "email", email, "error", err)
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if affected == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}
