// Package entity defines the domain entities for the onboardingtype feature.
package entity

// OnboardingType is a reusable category describing what an onboarding
// process covers, e.g. "Engineering new hire".
type OnboardingType struct {
	// TypeID is the unique identifier for the type.
	TypeID uint `gorm:"primaryKey"`

	// Name is the unique type name, 3 to 255 characters.
	Name string `gorm:"uniqueIndex;size:255;not null"`

	// Description is a free-text description, up to 1000 characters.
	Description string `gorm:"size:1000;not null"`
}
