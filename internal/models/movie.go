package models

import "gorm.io/gorm"

// Movie is a catalog entry users can comment on. Movies have no owner and
// no visibility tier, so every user may view and comment on them. Likes
// are recorded but movies carry no likes counter.
type Movie struct {
	gorm.Model
	Title         string `gorm:"size:255;not null"`
	Description   string
	ReleaseYear   int
	CommentsCount int64 `gorm:"not null;default:0"`
}
