// Package entity defines the domain entities for the employee feature.
package entity

import (
	"time"

	roleentity "onboarding_backend/internal/feature/role/domain/entity"
)

// Employee represents a registered employee.
// The email address is the primary key; it is always stored lower-cased so
// that "Foo@Bar.com" and "foo@bar.com" name the same identity.
type Employee struct {
	// EmployeeEmail is the lower-cased email address identifying the employee.
	EmployeeEmail string `gorm:"primaryKey;size:255"`

	// Name is the employee's display name.
	Name string `gorm:"size:255;not null"`

	// Password is the bcrypt digest of the employee's password.
	// This must never leave the persistence and identity layers.
	Password string `gorm:"size:255;not null"`

	// HireDate is the date the employee was hired.
	HireDate time.Time `gorm:"type:date;not null"`

	// TerminationDate, if set, must not precede HireDate.
	TerminationDate *time.Time `gorm:"type:date"`

	// RoleID references the employee's single role.
	RoleID uint `gorm:"not null"`

	// Role is the referenced role, loaded on demand.
	Role roleentity.Role `gorm:"foreignKey:RoleID"`
}
