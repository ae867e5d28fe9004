// Package adapters provides the gorm repository implementations for the
// role feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"onboarding_backend/internal/feature/role/domain/entity"
	"onboarding_backend/internal/feature/role/usecase"
)

// roleGorm is the gorm implementation of the RoleRepository interface.
type roleGorm struct {
	db *gorm.DB
}

// Compile-time check that roleGorm implements usecase.RoleRepository.
var _ usecase.RoleRepository = (*roleGorm)(nil)

// NewRoleRepository creates a roleGorm backed by the given connection.
func NewRoleRepository(db *gorm.DB) *roleGorm {
	return &roleGorm{db: db}
}

func (r *roleGorm) Save(ctx context.Context, role *entity.Role) error {
	return r.db.WithContext(ctx).Save(role).Error
}

func (r *roleGorm) FindByID(ctx context.Context, roleID int) (*entity.Role, error) {
	var role entity.Role
	if err := r.db.WithContext(ctx).Where("role_id = ?", roleID).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

func (r *roleGorm) FindByTitle(ctx context.Context, title string) (*entity.Role, error) {
	var role entity.Role
	if err := r.db.WithContext(ctx).Where("title = ?", title).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

func (r *roleGorm) FindAll(ctx context.Context) ([]entity.Role, error) {
	var roles []entity.Role
	if err := r.db.WithContext(ctx).Order("role_id").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *roleGorm) Delete(ctx context.Context, roleID int) error {
	return r.db.WithContext(ctx).Where("role_id = ?", roleID).Delete(&entity.Role{}).Error
}
