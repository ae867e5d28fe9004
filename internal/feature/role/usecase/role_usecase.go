package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"onboarding_backend/internal/feature/role/domain/entity"
	"onboarding_backend/internal/shared/apperr"
)

// RoleRepository abstracts the persistence layer for role entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters). Find methods return (nil, nil) when no row
// matches; errors are reserved for storage failures.
type RoleRepository interface {
	// Save inserts or updates a role by primary key.
	Save(ctx context.Context, role *entity.Role) error

	// FindByID retrieves a role by ID, or nil when absent.
	FindByID(ctx context.Context, roleID int) (*entity.Role, error)

	// FindByTitle retrieves a role by exact title, or nil when absent.
	FindByTitle(ctx context.Context, title string) (*entity.Role, error)

	// FindAll retrieves every role.
	FindAll(ctx context.Context) ([]entity.Role, error)

	// Delete removes a role by ID.
	Delete(ctx context.Context, roleID int) error
}

// EmployeeCounter reports how many employees reference a role. Implemented
// by the employee feature's adapter; used for the dependent-delete guard.
type EmployeeCounter interface {
	CountByRoleID(ctx context.Context, roleID int) (int64, error)
}

// RoleInput carries the caller-supplied fields for create and update.
type RoleInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// RoleData is the caller-facing projection of a role.
type RoleData struct {
	RoleID      int    `json:"roleId"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// roleUsecase implements the role business logic.
type roleUsecase struct {
	roles     RoleRepository
	employees EmployeeCounter
}

// NewRoleUsecase creates a new instance of roleUsecase.
func NewRoleUsecase(roles RoleRepository, employees EmployeeCounter) *roleUsecase {
	return &roleUsecase{roles: roles, employees: employees}
}

func mapRole(role *entity.Role) *RoleData {
	return &RoleData{
		RoleID:      int(role.RoleID),
		Title:       role.Title,
		Description: role.Description,
	}
}

// Create validates and persists a new role.
func (u *roleUsecase) Create(ctx context.Context, input RoleInput) (*RoleData, error) {
	errs, err := validateRoleFields(ctx, u.roles, input.Title, input.Description, 0)
	if err != nil {
		slog.Error("role validation lookup failed", "error", err)
		return nil, fmt.Errorf("failed to create role: %w", err)
	}
	if len(errs) > 0 {
		return nil, apperr.NewValidation(errs)
	}

	role := &entity.Role{Title: input.Title, Description: input.Description}
	if err := u.roles.Save(ctx, role); err != nil {
		slog.Error("failed to create role", "error", err)
		return nil, fmt.Errorf("failed to create role: %w", err)
	}
	return mapRole(role), nil
}

// List returns every role.
func (u *roleUsecase) List(ctx context.Context) ([]RoleData, error) {
	roles, err := u.roles.FindAll(ctx)
	if err != nil {
		slog.Error("failed to list roles", "error", err)
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	out := make([]RoleData, 0, len(roles))
	for i := range roles {
		out = append(out, *mapRole(&roles[i]))
	}
	return out, nil
}

// Update validates and applies new field values to an existing role.
func (u *roleUsecase) Update(ctx context.Context, roleID int, input RoleInput) (*RoleData, error) {
	errs, err := validateRoleFields(ctx, u.roles, input.Title, input.Description, roleID)
	if err != nil {
		slog.Error("role validation lookup failed", "error", err)
		return nil, fmt.Errorf("failed to update role: %w", err)
	}
	if len(errs) > 0 {
		return nil, apperr.NewValidation(errs)
	}

	role, err := u.roles.FindByID(ctx, roleID)
	if err != nil {
		slog.Error("failed to load role", "roleId", roleID, "error", err)
		return nil, fmt.Errorf("failed to update role: %w", err)
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}

	role.Title = input.Title
	role.Description = input.Description
	if err := u.roles.Save(ctx, role); err != nil {
		slog.Error("failed to update role", "roleId", roleID, "error", err)
		return nil, fmt.Errorf("failed to update role: %w", err)
	}
	return mapRole(role), nil
}

// Delete removes a role, refusing while any employee still references it.
func (u *roleUsecase) Delete(ctx context.Context, roleID int) error {
	role, err := u.roles.FindByID(ctx, roleID)
	if err != nil {
		slog.Error("failed to load role", "roleId", roleID, "error", err)
		return fmt.Errorf("failed to delete role: %w", err)
	}
	if role == nil {
		return ErrRoleNotFound
	}

	count, err := u.employees.CountByRoleID(ctx, roleID)
	if err != nil {
		slog.Error("failed to count employees for role", "roleId", roleID, "error", err)
		return fmt.Errorf("failed to delete role: %w", err)
	}
	if count > 0 {
		return ErrRoleHasEmployees
	}

	if err := u.roles.Delete(ctx, roleID); err != nil {
		slog.Error("failed to delete role", "roleId", roleID, "error", err)
		return fmt.Errorf("failed to delete role: %w", err)
	}
	return nil
}
