package models

import "time"

// Like marks that a user liked a likeable entity (post, movie or comment).
// The (UserID, LikeableType, LikeableID) triple is unique.
type Like struct {
	ID           uint   `gorm:"primaryKey"`
	UserID       uint   `gorm:"not null;uniqueIndex:idx_user_likeable"`
	LikeableType string `gorm:"size:50;not null;uniqueIndex:idx_user_likeable"`
	LikeableID   uint   `gorm:"not null;uniqueIndex:idx_user_likeable"`
	CreatedAt    time.Time

	User User `gorm:"foreignKey:UserID"`
}
