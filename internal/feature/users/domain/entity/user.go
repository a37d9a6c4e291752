// Package entity defines the domain entities for the users feature.
package entity

import "time"

// User represents a stored account.
type User struct {
	// ID is assigned by the store on creation and never changes.
	ID int32 `gorm:"primaryKey"`

	// Name is the display name, 4-64 characters.
	Name string `gorm:"size:64;not null"`

	// Email is intended to be unique; uniqueness is not enforced at this layer.
	Email string `gorm:"size:255;not null"`

	// AvatarURL is optional.
	AvatarURL *string `gorm:"size:255"`

	// Password is stored as given.
	Password string `gorm:"size:64;not null"`

	// LastVisit is set by external means and drives the active-users listing.
	LastVisit time.Time `gorm:"index"`
}
