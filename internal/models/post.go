package models

import "gorm.io/gorm"

// Visibility is the declared access tier of a content entity.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityFriends Visibility = "friends"
	VisibilityPrivate Visibility = "private"
)

// Post is user-authored content with an owner, a visibility tier and a
// comments toggle. It carries denormalized counters maintained by the
// counter ledger.
type Post struct {
	gorm.Model
	OwnerID         uint       `gorm:"not null;index"`
	Title           string     `gorm:"size:255;not null"`
	Body            string     `gorm:"not null"`
	Visibility      Visibility `gorm:"type:varchar(20);not null;default:'public'"`
	CommentsEnabled bool       `gorm:"not null;default:true"`
	CommentsCount   int64      `gorm:"not null;default:0"`
	LikesCount      int64      `gorm:"not null;default:0"`

	Owner User `gorm:"foreignKey:OwnerID"`
}
