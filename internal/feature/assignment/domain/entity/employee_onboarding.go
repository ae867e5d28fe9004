// Package entity defines the domain entities for the assignment feature.
package entity

import (
	employeeentity "onboarding_backend/internal/feature/employee/domain/entity"
	onboardingentity "onboarding_backend/internal/feature/onboarding/domain/entity"
)

// EmployeeOnboarding links one employee to one onboarding process.
// Its identity is the (OnboardingID, EmployeeEmail) pair; the composite
// primary key is the storage-level backstop against duplicate assignments
// when the existence pre-check races.
type EmployeeOnboarding struct {
	// OnboardingID is the first half of the composite key.
	OnboardingID uint `gorm:"primaryKey;autoIncrement:false"`

	// EmployeeEmail is the second half of the composite key.
	EmployeeEmail string `gorm:"primaryKey;size:255"`

	// Done reports whether the employee has completed the process.
	Done bool `gorm:"not null;default:false"`

	// Onboarding is the referenced process, loaded on demand.
	Onboarding onboardingentity.Onboarding `gorm:"foreignKey:OnboardingID"`

	// Employee is the referenced employee, loaded on demand.
	Employee employeeentity.Employee `gorm:"foreignKey:EmployeeEmail;references:EmployeeEmail"`
}
