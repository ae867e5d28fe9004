// Package adapters provides the gorm repository implementations for the
// employee feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"onboarding_backend/internal/feature/employee/domain/entity"
	"onboarding_backend/internal/feature/employee/usecase"
	roleusecase "onboarding_backend/internal/feature/role/usecase"
)

// employeeGorm is the gorm implementation of the EmployeeRepository
// interface. It also serves the role feature's dependent-delete guard
// through CountByRoleID.
type employeeGorm struct {
	db *gorm.DB
}

var (
	_ usecase.EmployeeRepository  = (*employeeGorm)(nil)
	_ roleusecase.EmployeeCounter = (*employeeGorm)(nil)
)

// NewEmployeeRepository creates an employeeGorm backed by the given
// connection.
func NewEmployeeRepository(db *gorm.DB) *employeeGorm {
	return &employeeGorm{db: db}
}

func (r *employeeGorm) Create(ctx context.Context, e *entity.Employee) error {
	return r.db.WithContext(ctx).Omit("Role").Create(e).Error
}

func (r *employeeGorm) Save(ctx context.Context, e *entity.Employee) error {
	return r.db.WithContext(ctx).Omit("Role").Save(e).Error
}

func (r *employeeGorm) FindByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	var e entity.Employee
	if err := r.db.WithContext(ctx).Where("employee_email = ?", email).First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *employeeGorm) FindByEmailWithRole(ctx context.Context, email string) (*entity.Employee, error) {
	var e entity.Employee
	err := r.db.WithContext(ctx).
		Preload("Role").
		Where("employee_email = ?", email).
		First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *employeeGorm) FindAll(ctx context.Context) ([]entity.Employee, error) {
	var employees []entity.Employee
	err := r.db.WithContext(ctx).
		Preload("Role").
		Order("employee_email").
		Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *employeeGorm) Delete(ctx context.Context, email string) (int64, error) {
	res := r.db.WithContext(ctx).Where("employee_email = ?", email).Delete(&entity.Employee{})
	return res.RowsAffected, res.Error
}

// CountByRoleID reports how many employees reference a role.
func (r *employeeGorm) CountByRoleID(ctx context.Context, roleID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Employee{}).Where("role_id = ?", roleID).Count(&count).Error
	return count, err
}
