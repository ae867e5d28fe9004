package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"onboarding_backend/internal/feature/onboarding/domain/entity"
	typeentity "onboarding_backend/internal/feature/onboardingtype/domain/entity"
	typeusecase "onboarding_backend/internal/feature/onboardingtype/usecase"
	"onboarding_backend/internal/shared/apperr"
)

// OnboardingRepository abstracts the persistence layer for onboarding
// processes. Find methods return (nil, nil) when no row matches.
type OnboardingRepository interface {
	Save(ctx context.Context, o *entity.Onboarding) error
	FindByID(ctx context.Context, onboardingID int) (*entity.Onboarding, error)
	FindByIDWithType(ctx context.Context, onboardingID int) (*entity.Onboarding, error)
	FindByName(ctx context.Context, name string) (*entity.Onboarding, error)
	FindAll(ctx context.Context) ([]entity.Onboarding, error)
	Delete(ctx context.Context, onboardingID int) error
}

// TypeFinder looks up onboarding types for existence checks. Implemented by
// the onboardingtype feature's adapter.
type TypeFinder interface {
	FindByID(ctx context.Context, typeID int) (*typeentity.OnboardingType, error)
}

// AssignmentCounter reports how many assignments reference a process.
// Implemented by the assignment feature's adapter.
type AssignmentCounter interface {
	CountByOnboardingID(ctx context.Context, onboardingID int) (int64, error)
}

// OnboardingInput carries the caller-supplied fields for create.
// Dates travel as strings so the validator can report unparseable values
// alongside the other violations.
type OnboardingInput struct {
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	TypeID    int    `json:"typeId"`
}

// OnboardingUpdateInput carries the optional fields for a partial update.
// Nil fields are left untouched.
type OnboardingUpdateInput struct {
	Name      *string `json:"name"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	TypeID    *int    `json:"typeId"`
}

// OnboardingData is the caller-facing projection of an onboarding process.
type OnboardingData struct {
	OnboardingID   int                   `json:"onboardingId"`
	Name           string                `json:"name"`
	StartDate      string                `json:"startDate"`
	EndDate        string                `json:"endDate"`
	TypeID         int                   `json:"typeId"`
	OnboardingType *typeusecase.TypeData `json:"onboardingType,omitempty"`
}

// onboardingUsecase implements the onboarding process business logic.
type onboardingUsecase struct {
	onboardings OnboardingRepository
	types       TypeFinder
	assignments AssignmentCounter
}

// NewOnboardingUsecase creates a new instance of onboardingUsecase.
func NewOnboardingUsecase(onboardings OnboardingRepository, types TypeFinder, assignments AssignmentCounter) *onboardingUsecase {
	return &onboardingUsecase{onboardings: onboardings, types: types, assignments: assignments}
}

// MapOnboarding projects an entity to its caller-facing shape. Exported
// because the assignment feature inlines the process on its own responses.
func MapOnboarding(o *entity.Onboarding) *OnboardingData {
	data := &OnboardingData{
		OnboardingID: int(o.OnboardingID),
		Name:         o.Name,
		StartDate:    o.StartDate.Format(dateLayout),
		EndDate:      o.EndDate.Format(dateLayout),
		TypeID:       int(o.TypeID),
	}
	if o.OnboardingType.TypeID != 0 {
		data.OnboardingType = typeusecase.MapType(&o.OnboardingType)
	}
	return data
}

// Create validates and persists a new onboarding process, returning it with
// the onboarding type inlined.
func (u *onboardingUsecase) Create(ctx context.Context, input OnboardingInput) (*OnboardingData, error) {
	errs, start, end, err := validateOnboardingFields(ctx, u.onboardings, u.types,
		input.Name, input.StartDate, input.EndDate, input.TypeID, 0)
	if err != nil {
		slog.Error("onboarding validation lookup failed", "error", err)
		return nil, fmt.Errorf("failed to create onboarding process: %w", err)
	}
	if len(errs) > 0 {
		return nil, apperr.NewValidation(errs)
	}

	// TODO: confirm with product whether the one-day forward shift on stored
	// dates is intentional; it looks like a timezone workaround the frontend
	// compensates for.
	o := &entity.Onboarding{
		Name:      input.Name,
		StartDate: start.AddDate(0, 0, 1),
		EndDate:   end.AddDate(0, 0, 1),
		TypeID:    uint(input.TypeID),
	}
	if err := u.onboardings.Save(ctx, o); err != nil {
		slog.Error("failed to create onboarding process", "error", err)
		return nil, fmt.Errorf("failed to create onboarding process: %w", err)
	}

	full, err := u.onboardings.FindByIDWithType(ctx, int(o.OnboardingID))
	if err != nil || full == nil {
		slog.Error("failed to reload onboarding process", "onboardingId", o.OnboardingID, "error", err)
		return MapOnboarding(o), nil
	}
	return MapOnboarding(full), nil
}

// List returns every onboarding process with its type inlined.
func (u *onboardingUsecase) List(ctx context.Context) ([]OnboardingData, error) {
	onboardings, err := u.onboardings.FindAll(ctx)
	if err != nil {
		slog.Error("failed to list onboarding processes", "error", err)
		return nil, fmt.Errorf("failed to list onboarding processes: %w", err)
	}
	out := make([]OnboardingData, 0, len(onboardings))
	for i := range onboardings {
		out = append(out, *MapOnboarding(&onboardings[i]))
	}
	return out, nil
}

// Get returns a single onboarding process by ID with its type inlined.
func (u *onboardingUsecase) Get(ctx context.Context, onboardingID int) (*OnboardingData, error) {
	o, err := u.onboardings.FindByIDWithType(ctx, onboardingID)
	if err != nil {
		slog.Error("failed to load onboarding process", "onboardingId", onboardingID, "error", err)
		return nil, fmt.Errorf("failed to get onboarding process: %w", err)
	}
	if o == nil {
		return nil, ErrOnboardingNotFound
	}
	return MapOnboarding(o), nil
}

// Update applies the supplied fields over the existing record, validates the
// merged result and persists it. Unset fields are left untouched.
func (u *onboardingUsecase) Update(ctx context.Context, onboardingID int, input OnboardingUpdateInput) (*OnboardingData, error) {
	existing, err := u.onboardings.FindByID(ctx, onboardingID)
	if err != nil {
		slog.Error("failed to load onboarding process", "onboardingId", onboardingID, "error", err)
		return nil, fmt.Errorf("failed to update onboarding process: %w", err)
	}
	if existing == nil {
		return nil, ErrOnboardingNotFound
	}

	name := existing.Name
	if input.Name != nil {
		name = *input.Name
	}
	rawStart := existing.StartDate.Format(dateLayout)
	if input.StartDate != nil {
		rawStart = *input.StartDate
	}
	rawEnd := existing.EndDate.Format(dateLayout)
	if input.EndDate != nil {
		rawEnd = *input.EndDate
	}
	typeID := int(existing.TypeID)
	if input.TypeID != nil {
		typeID = *input.TypeID
	}

	errs, start, end, err := validateOnboardingFields(ctx, u.onboardings, u.types,
		name, rawStart, rawEnd, typeID, onboardingID)
	if err != nil {
		slog.Error("onboarding validation lookup failed", "error", err)
		return nil, fmt.Errorf("failed to update onboarding process: %w", err)
	}
	if len(errs) > 0 {
		return nil, apperr.NewValidation(errs)
	}

	existing.Name = name
	existing.TypeID = uint(typeID)
	// Same one-day shift as on create; only caller-supplied dates move.
	if input.StartDate != nil {
		existing.StartDate = start.AddDate(0, 0, 1)
	}
	if input.EndDate != nil {
		existing.EndDate = end.AddDate(0, 0, 1)
	}

	if err := u.onboardings.Save(ctx, existing); err != nil {
		slog.Error("failed to update onboarding process", "onboardingId", onboardingID, "error", err)
		return nil, fmt.Errorf("failed to update onboarding process: %w", err)
	}

	full, err := u.onboardings.FindByIDWithType(ctx, onboardingID)
	if err != nil || full == nil {
		slog.Error("failed to reload onboarding process", "onboardingId", onboardingID, "error", err)
		return MapOnboarding(existing), nil
	}
	return MapOnboarding(full), nil
}

// Delete removes an onboarding process, refusing while any assignment still
// references it.
func (u *onboardingUsecase) Delete(ctx context.Context, onboardingID int) error {
	o, err := u.onboardings.FindByID(ctx, onboardingID)
	if err != nil {
		slog.Error("failed to load onboarding process", "onboardingId", onboardingID, "error", err)
		return fmt.Errorf("failed to delete onboarding process: %w", err)
	}
	if o == nil {
		return ErrOnboardingNotFound
	}

	count, err := u.assignments.CountByOnboardingID(ctx, onboardingID)
	if err != nil {
		slog.Error("failed to count assignments for onboarding", "onboardingId", onboardingID, "error", err)
		return fmt.Errorf("failed to delete onboarding process: %w", err)
	}
	if count > 0 {
		return ErrOnboardingHasAssignments
	}

	if err := u.onboardings.Delete(ctx, onboardingID); err != nil {
		slog.Error("failed to delete onboarding process", "onboardingId", onboardingID, "error", err)
		return fmt.Errorf("failed to delete onboarding process: %w", err)
	}
	return nil
}
