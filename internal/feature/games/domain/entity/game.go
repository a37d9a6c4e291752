// Package entity defines the domain entities for the games feature.
package entity

// Game represents a stored catalog entry. All fields are required.
type Game struct {
	// ID is assigned by the store on creation and never changes.
	ID int32 `gorm:"primaryKey"`

	Title       string  `gorm:"size:255;not null"`
	Description string  `gorm:"size:255;not null"`
	VoteAverage float64 `gorm:"not null"`
	Rating      int     `gorm:"not null"`
	PosterURL   string  `gorm:"size:255;not null"`
}
