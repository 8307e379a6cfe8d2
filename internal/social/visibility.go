package social

import (
	"circleup/backend/internal/models"

	"gorm.io/gorm"
)

// VisibilityGuard is the single authority deciding whether an actor may
// view or interact with a content entity. Decisions are derived fresh on
// every call; friendship state can change between requests, so nothing is
// cached past a single check.
type VisibilityGuard struct {
	db *gorm.DB
}

func NewVisibilityGuard(db *gorm.DB) *VisibilityGuard {
	return &VisibilityGuard{db: db}
}

// CanView reports whether the actor may view the referenced entity.
// Comments are viewed through the entity they are attached to, so callers
// pass the commentable's ref, not the comment's.
func (g *VisibilityGuard) CanView(actorID uint, ref ContentRef) error {
	d, info, err := Resolve(g.db, ref)
	if err != nil {
		return err
	}
	return g.check(g.db, actorID, d, info)
}

// CanComment reports whether the actor may create a comment on the
// referenced entity. A disabled comments toggle refuses creation before
// visibility is even considered.
func (g *VisibilityGuard) CanComment(actorID uint, ref ContentRef) error {
	d, info, err := Resolve(g.db, ref)
	if err != nil {
		return err
	}
	if !d.AcceptsComments {
		return notFound("commentable content")
	}
	if d.HasCommentsToggle && !info.CommentsEnabled {
		return ErrCommentsDisabled
	}
	return g.check(g.db, actorID, d, info)
}

// check evaluates the visibility rules in fixed order, short-circuiting on
// the first applicable one. Capability absence means the rule is skipped.
func (g *VisibilityGuard) check(tx *gorm.DB, actorID uint, d *Descriptor, info *ContentInfo) error {
	if !d.HasVisibility {
		return nil
	}
	switch info.Visibility {
	case models.VisibilityPublic:
		return nil
	case models.VisibilityPrivate:
		if !d.HasOwner {
			return nil
		}
		if actorID == info.OwnerID {
			return nil
		}
		return ErrForbidden
	case models.VisibilityFriends:
		if !d.HasOwner {
			return nil
		}
		if actorID == info.OwnerID {
			return nil
		}
		friends, err := g.areFriends(tx, actorID, info.OwnerID)
		if err != nil {
			return err
		}
		if friends {
			return nil
		}
		return ErrForbidden
	default:
		return nil
	}
}

func (g *VisibilityGuard) areFriends(tx *gorm.DB, a, b uint) (bool, error) {
	var count int64
	err := tx.Model(&models.Friendship{}).
		Where("status = ?", models.StatusAccepted).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a).
		Count(&count).Error
	if err != nil {
		return false, persistence(err)
	}
	return count > 0, nil
}
