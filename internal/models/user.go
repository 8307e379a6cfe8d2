package models

import "gorm.io/gorm"

// User represents a user in the system.
type User struct {
	gorm.Model
	Nickname     string `gorm:"size:255;unique;not null"`
	Email        string `gorm:"size:255;unique;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:50;not null;default:'user';index"`

	// Notification preferences, all on by default. The dispatcher
	// consults these before fanning out an event.
	NotifyPostCommented  bool `gorm:"not null;default:true"`
	NotifyCommentReplied bool `gorm:"not null;default:true"`
	NotifyFriendRequests bool `gorm:"not null;default:true"`
}
