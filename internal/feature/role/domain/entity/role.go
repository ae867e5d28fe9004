// Package entity defines the domain entities for the role feature.
package entity

// Role represents a job role shared by many employees.
// Exactly one role is expected to carry the title "admin" (case-insensitive);
// it gates login to the administrative API.
type Role struct {
	// RoleID is the unique identifier for the role.
	RoleID uint `gorm:"primaryKey"`

	// Title is the unique role title, 3 to 255 characters.
	Title string `gorm:"uniqueIndex;size:255;not null"`

	// Description is a short free-text description, up to 255 characters.
	Description string `gorm:"size:255;not null"`
}
