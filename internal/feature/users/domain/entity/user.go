// Package entity defines the domain entities for the users feature.
package entity

import "time"

// User represents a registered person managed by the service.
// BirthDate carries a calendar date only; the zero time.Time stands for
// a missing birthdate and never passes age validation.
type User struct {
	// ID is the unique identifier for the user, assigned by storage on insert.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address.
	Email string `gorm:"size:255;not null"`

	// FirstName is the user's given name.
	FirstName string `gorm:"size:255;not null"`

	// LastName is the user's family name.
	LastName string `gorm:"size:255;not null"`

	// BirthDate is the user's date of birth (date component only).
	BirthDate time.Time `gorm:"type:date;not null"`

	// Address is the user's postal address. Optional.
	Address string `gorm:"size:255"`

	// PhoneNumber is the user's contact number. Optional.
	PhoneNumber string `gorm:"size:32"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
