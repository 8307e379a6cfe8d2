package models

import "time"

// Notification is an in-app notification row written by the notify store
// when a domain event targets a user whose preferences allow it.
type Notification struct {
	ID        uint   `gorm:"primaryKey"`
	EventID   string `gorm:"size:36;uniqueIndex"`
	UserID    uint   `gorm:"not null;index"`
	ActorID   uint   `gorm:"not null"`
	EventType string `gorm:"size:50;not null"`
	// Optional references to the content the event concerns.
	SubjectType string `gorm:"size:50"`
	SubjectID   uint
	CommentID   *uint
	Read        bool `gorm:"not null;default:false"`
	CreatedAt   time.Time

	User  User `gorm:"foreignKey:UserID"`
	Actor User `gorm:"foreignKey:ActorID"`
}
