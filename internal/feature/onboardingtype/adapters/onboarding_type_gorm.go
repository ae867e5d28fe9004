// Package adapters provides the gorm repository implementations for the
// onboardingtype feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"onboarding_backend/internal/feature/onboardingtype/domain/entity"
	"onboarding_backend/internal/feature/onboardingtype/usecase"
)

// typeGorm is the gorm implementation of the TypeRepository interface.
type typeGorm struct {
	db *gorm.DB
}

var _ usecase.TypeRepository = (*typeGorm)(nil)

// NewTypeRepository creates a typeGorm backed by the given connection.
func NewTypeRepository(db *gorm.DB) *typeGorm {
	return &typeGorm{db: db}
}

func (r *typeGorm) Save(ctx context.Context, t *entity.OnboardingType) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *typeGorm) FindByID(ctx context.Context, typeID int) (*entity.OnboardingType, error) {
	var t entity.OnboardingType
	if err := r.db.WithContext(ctx).Where("type_id = ?", typeID).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *typeGorm) FindByName(ctx context.Context, name string) (*entity.OnboardingType, error) {
	var t entity.OnboardingType
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *typeGorm) FindAll(ctx context.Context) ([]entity.OnboardingType, error) {
	var types []entity.OnboardingType
	if err := r.db.WithContext(ctx).Order("type_id").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *typeGorm) Delete(ctx context.Context, typeID int) error {
	return r.db.WithContext(ctx).Where("type_id = ?", typeID).Delete(&entity.OnboardingType{}).Error
}
