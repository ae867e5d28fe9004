// Package adapters provides the gorm repository implementation for the
// assignment feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"onboarding_backend/internal/feature/assignment/domain/entity"
	"onboarding_backend/internal/feature/assignment/usecase"
	onboardingusecase "onboarding_backend/internal/feature/onboarding/usecase"
)

// assignmentGorm is the gorm implementation of the AssignmentRepository
// interface. It also serves the onboarding feature's dependent-delete guard
// through CountByOnboardingID.
type assignmentGorm struct {
	db *gorm.DB
}

var (
	_ usecase.AssignmentRepository        = (*assignmentGorm)(nil)
	_ onboardingusecase.AssignmentCounter = (*assignmentGorm)(nil)
)

// NewAssignmentRepository creates an assignmentGorm backed by the given
// connection.
func NewAssignmentRepository(db *gorm.DB) *assignmentGorm {
	return &assignmentGorm{db: db}
}

func (r *assignmentGorm) Create(ctx context.Context, a *entity.EmployeeOnboarding) error {
	return r.db.WithContext(ctx).Omit("Onboarding", "Employee").Create(a).Error
}

func (r *assignmentGorm) Save(ctx context.Context, a *entity.EmployeeOnboarding) error {
	return r.db.WithContext(ctx).Omit("Onboarding", "Employee").Save(a).Error
}

func (r *assignmentGorm) FindByKey(ctx context.Context, onboardingID int, employeeEmail string) (*entity.EmployeeOnboarding, error) {
	var a entity.EmployeeOnboarding
	err := r.db.WithContext(ctx).
		Where("onboarding_id = ? AND employee_email = ?", onboardingID, employeeEmail).
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *assignmentGorm) FindByKeyWithRelations(ctx context.Context, onboardingID int, employeeEmail string) (*entity.EmployeeOnboarding, error) {
	var a entity.EmployeeOnboarding
	err := r.db.WithContext(ctx).
		Preload("Onboarding.OnboardingType").
		Preload("Onboarding").
		Preload("Employee").
		Where("onboarding_id = ? AND employee_email = ?", onboardingID, employeeEmail).
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *assignmentGorm) FindByEmployee(ctx context.Context, employeeEmail string) ([]entity.EmployeeOnboarding, error) {
	var assignments []entity.EmployeeOnboarding
	err := r.db.WithContext(ctx).
		Preload("Onboarding.OnboardingType").
		Preload("Onboarding").
		Where("employee_email = ?", employeeEmail).
		Order("onboarding_id").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *assignmentGorm) FindByOnboarding(ctx context.Context, onboardingID int) ([]entity.EmployeeOnboarding, error) {
	var assignments []entity.EmployeeOnboarding
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("onboarding_id = ?", onboardingID).
		Order("employee_email").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *assignmentGorm) DeleteByKey(ctx context.Context, onboardingID int, employeeEmail string) error {
	return r.db.WithContext(ctx).
		Where("onboarding_id = ? AND employee_email = ?", onboardingID, employeeEmail).
		Delete(&entity.EmployeeOnboarding{}).Error
}

// CountByOnboardingID reports how many assignments reference a process.
func (r *assignmentGorm) CountByOnboardingID(ctx context.Context, onboardingID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.EmployeeOnboarding{}).Where("onboarding_id = ?", onboardingID).Count(&count).Error
	return count, err
}
