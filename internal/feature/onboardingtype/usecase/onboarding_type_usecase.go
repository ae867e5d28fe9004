package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"onboarding_backend/internal/feature/onboardingtype/domain/entity"
	"onboarding_backend/internal/shared/apperr"
)

// TypeRepository abstracts the persistence layer for onboarding types.
// Find methods return (nil, nil) when no row matches.
type TypeRepository interface {
	Save(ctx context.Context, t *entity.OnboardingType) error
	FindByID(ctx context.Context, typeID int) (*entity.OnboardingType, error)
	FindByName(ctx context.Context, name string) (*entity.OnboardingType, error)
	FindAll(ctx context.Context) ([]entity.OnboardingType, error)
	Delete(ctx context.Context, typeID int) error
}

// OnboardingCounter reports how many onboarding processes reference a type.
// Implemented by the onboarding feature's adapter.
type OnboardingCounter interface {
	CountByTypeID(ctx context.Context, typeID int) (int64, error)
}

// TypeInput carries the caller-supplied fields for create and update.
type TypeInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TypeData is the caller-facing projection of an onboarding type.
type TypeData struct {
	TypeID      int    `json:"typeId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// typeUsecase implements the onboarding type business logic.
type typeUsecase struct {
	types       TypeRepository
	onboardings OnboardingCounter
}

// NewTypeUsecase creates a new instance of typeUsecase.
func NewTypeUsecase(types TypeRepository, onboardings OnboardingCounter) *typeUsecase {
	return &typeUsecase{types: types, onboardings: onboardings}
}

// MapType projects an entity to its caller-facing shape. Exported because
// the onboarding feature inlines the type on its own responses.
func MapType(t *entity.OnboardingType) *TypeData {
	return &TypeData{
		TypeID:      int(t.TypeID),
		Name:        t.Name,
		Description: t.Description,
	}
}

// Create validates and persists a new onboarding type.
func (u *typeUsecase) Create(ctx context.Context, input TypeInput) (*TypeData, error) {
	errs, err := validateTypeFields(ctx, u.types, input.Name, input.Description, 0)
	if err != nil {
		slog.Error("onboarding type validation lookup failed", "error", err)
		return nil, fmt.Errorf("failed to create onboarding type: %w", err)
	}
	if len(errs) > 0 {
		return nil, apperr.NewValidation(errs)
	}

	t := &entity.OnboardingType{Name: input.Name, Description: input.Description}
	if err := u.types.Save(ctx, t); err != nil {
		slog.Error("failed to create onboarding type", "error", err)
		return nil, fmt.Errorf("failed to create onboarding type: %w", err)
	}
	return MapType(t), nil
}

// List returns every onboarding type.
func (u *typeUsecase) List(ctx context.Context) ([]TypeData, error) {
	types, err := u.types.FindAll(ctx)
	if err != nil {
		slog.Error("failed to list onboarding types", "error", err)
		return nil, fmt.Errorf("failed to list onboarding types: %w", err)
	}
	out := make([]TypeData, 0, len(types))
	for i := range types {
		out = append(out, *MapType(&types[i]))
	}
	return out, nil
}

// Get returns a single onboarding type by ID.
func (u *typeUsecase) Get(ctx context.Context, typeID int) (*TypeData, error) {
	t, err := u.types.FindByID(ctx, typeID)
	if err != nil {
		slog.Error("failed to load onboarding type", "typeId", typeID, "error", err)
		return nil, fmt.Errorf("failed to get onboarding type: %w", err)
	}
	if t == nil {
		return nil, ErrTypeNotFound
	}
	return MapType(t), nil
}

// Update validates and applies new field values to an existing type.
func (u *typeUsecase) Update(ctx context.Context, typeID int, input TypeInput) (*TypeData, error) {
	errs, err := validateTypeFields(ctx, u.types, input.Name, input.Description, typeID)
	if err != nil {
		slog.Error("onboarding type validation lookup failed", "error", err)
		return nil, fmt.Errorf("failed to update onboarding type: %w", err)
	}
	if len(errs) > 0 {
		return nil, apperr.NewValidation(errs)
	}

	t, err := u.types.FindByID(ctx, typeID)
	if err != nil {
		slog.Error("failed to load onboarding type", "typeId", typeID, "error", err)
		return nil, fmt.Errorf("failed to update onboarding type: %w", err)
	}
	if t == nil {
		return nil, ErrTypeNotFound
	}

	t.Name = input.Name
	t.Description = input.Description
	if err := u.types.Save(ctx, t); err != nil {
		slog.Error("failed to update onboarding type", "typeId", typeID, "error", err)
		return nil, fmt.Errorf("failed to update onboarding type: %w", err)
	}
	return MapType(t), nil
}

// Delete removes an onboarding type, refusing while any onboarding process
// still references it.
func (u *typeUsecase) Delete(ctx context.Context, typeID int) error {
	t, err := u.types.FindByID(ctx, typeID)
	if err != nil {
		slog.Error("failed to load onboarding type", "typeId", typeID, "error", err)
		return fmt.Errorf("failed to delete onboarding type: %w", err)
	}
	if t == nil {
		return ErrTypeNotFound
	}

	count, err := u.onboardings.CountByTypeID(ctx, typeID)
	if err != nil {
		slog.Error("failed to count onboardings for type", "typeId", typeID, "error", err)
		return fmt.Errorf("failed to delete onboarding type: %w", err)
	}
	if count > 0 {
		return ErrTypeHasOnboardings
	}

	if err := u.types.Delete(ctx, typeID); err != nil {
		slog.Error("failed to delete onboarding type", "typeId", typeID, "error", err)
		return fmt.Errorf("failed to delete onboarding type: %w", err)
	}
	return nil
}
