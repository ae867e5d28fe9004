// Package adapters provides the gorm repository implementations for the
// onboarding feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"onboarding_backend/internal/feature/onboarding/domain/entity"
	"onboarding_backend/internal/feature/onboarding/usecase"
	typeusecase "onboarding_backend/internal/feature/onboardingtype/usecase"
)

// onboardingGorm is the gorm implementation of the OnboardingRepository
// interface. It also serves the onboardingtype feature's dependent-delete
// guard through CountByTypeID.
type onboardingGorm struct {
	db *gorm.DB
}

var (
	_ usecase.OnboardingRepository  = (*onboardingGorm)(nil)
	_ typeusecase.OnboardingCounter = (*onboardingGorm)(nil)
)

// NewOnboardingRepository creates an onboardingGorm backed by the given
// connection.
func NewOnboardingRepository(db *gorm.DB) *onboardingGorm {
	return &onboardingGorm{db: db}
}

func (r *onboardingGorm) Save(ctx context.Context, o *entity.Onboarding) error {
	return r.db.WithContext(ctx).Omit("OnboardingType").Save(o).Error
}

func (r *onboardingGorm) FindByID(ctx context.Context, onboardingID int) (*entity.Onboarding, error) {
	var o entity.Onboarding
	if err := r.db.WithContext(ctx).Where("onboarding_id = ?", onboardingID).First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *onboardingGorm) FindByIDWithType(ctx context.Context, onboardingID int) (*entity.Onboarding, error) {
	var o entity.Onboarding
	err := r.db.WithContext(ctx).
		Preload("OnboardingType").
		Where("onboarding_id = ?", onboardingID).
		First(&o).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *onboardingGorm) FindByName(ctx context.Context, name string) (*entity.Onboarding, error) {
	var o entity.Onboarding
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *onboardingGorm) FindAll(ctx context.Context) ([]entity.Onboarding, error) {
	var onboardings []entity.Onboarding
	err := r.db.WithContext(ctx).
		Preload("OnboardingType").
		Order("onboarding_id").
		Find(&onboardings).Error
	if err != nil {
		return nil, err
	}
	return onboardings, nil
}

func (r *onboardingGorm) Delete(ctx context.Context, onboardingID int) error {
	return r.db.WithContext(ctx).Where("onboarding_id = ?", onboardingID).Delete(&entity.Onboarding{}).Error
}

// CountByTypeID reports how many processes reference an onboarding type.
func (r *onboardingGorm) CountByTypeID(ctx context.Context, typeID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Onboarding{}).Where("type_id = ?", typeID).Count(&count).Error
	return count, err
}
