package models

import "gorm.io/gorm"

// Comment is attached to a commentable entity through a polymorphic
// (CommentableType, CommentableID) pair. A nil ParentID marks a top-level
// comment; replies reference their parent comment.
//
// A user may hold at most one top-level comment per commentable. The slot
// is closed by a partial unique index created in database.Migrate; the
// application check exists only to produce the friendlier error on the
// common path.
type Comment struct {
	gorm.Model
	CommentableType string `gorm:"size:50;not null;index:idx_commentable"`
	CommentableID   uint   `gorm:"not null;index:idx_commentable"`
	UserID          uint   `gorm:"not null;index"`
	ParentID        *uint  `gorm:"index"`
	Content         string `gorm:"not null"`
	LikesCount      int64  `gorm:"not null;default:0"`
	RepliesCount    int64  `gorm:"not null;default:0"`

	User    User      `gorm:"foreignKey:UserID"`
	Parent  *Comment  `gorm:"foreignKey:ParentID"`
	Replies []Comment `gorm:"foreignKey:ParentID"`
}
