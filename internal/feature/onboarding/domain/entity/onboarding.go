// Package entity defines the domain entities for the onboarding feature.
package entity

import (
	"time"

	typeentity "onboarding_backend/internal/feature/onboardingtype/domain/entity"
)

// Onboarding is a time-boxed onboarding process (a cohort), e.g.
// "New Hire Q1". Its end date is never before its start date.
type Onboarding struct {
	// OnboardingID is the unique identifier for the process.
	OnboardingID uint `gorm:"primaryKey"`

	// Name is the unique process name, 3 to 255 characters.
	Name string `gorm:"uniqueIndex;size:255;not null"`

	// StartDate is the first day of the process.
	StartDate time.Time `gorm:"type:date;not null"`

	// EndDate is the last day of the process.
	EndDate time.Time `gorm:"type:date;not null"`

	// TypeID references the process's onboarding type.
	TypeID uint `gorm:"not null"`

	// OnboardingType is the referenced type, loaded on demand.
	OnboardingType typeentity.OnboardingType `gorm:"foreignKey:TypeID"`
}
