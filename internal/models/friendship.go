package models

import "time"

// FriendshipStatus defines the state of a relationship between two users.
type FriendshipStatus string

const (
	// StatusPending means a friend request has been sent but not yet accepted.
	StatusPending FriendshipStatus = "pending"

	// StatusAccepted means the friend request was accepted, and the users are now friends.
	StatusAccepted FriendshipStatus = "accepted"
)

// Friendship represents the relationship between two users. A row is created
// pending by the sender and either accepted by the receiver or deleted
// (reject, cancel, unfriend). No other terminal states are persisted.
//
// At most one row may exist per unordered user pair; the database enforces
// this with a unique index over (min(sender,receiver), max(sender,receiver)),
// see database.Migrate.
type Friendship struct {
	ID         uint             `gorm:"primaryKey"`
	SenderID   uint             `gorm:"not null;index"`
	ReceiverID uint             `gorm:"not null;index"`
	Status     FriendshipStatus `gorm:"type:varchar(20);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Sender   User `gorm:"foreignKey:SenderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Receiver User `gorm:"foreignKey:ReceiverID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
