package social

import (
	"errors"

	"circleup/backend/internal/models"

	"gorm.io/gorm"
)

// LikeService records likes on likeable content, one per (user, entity)
// pair, and keeps the likes counter in step through the ledger. Kinds
// without a likes counter still accept likes; the ledger update is simply
// a no-op for them.
type LikeService struct {
	db     *gorm.DB
	guard  *VisibilityGuard
	ledger CounterLedger
}

func NewLikeService(db *gorm.DB) *LikeService {
	return &LikeService{db: db, guard: NewVisibilityGuard(db)}
}

// Like records that the actor liked the referenced entity.
func (s *LikeService) Like(actorID uint, ref ContentRef) (*models.Like, error) {
	if err := s.authorize(actorID, ref); err != nil {
		return nil, err
	}

	like := models.Like{
		UserID:       actorID,
		LikeableType: string(ref.Kind),
		LikeableID:   ref.ID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.Like{}).
			Where("user_id = ? AND likeable_type = ? AND likeable_id = ?", actorID, ref.Kind, ref.ID).
			Count(&count).Error
		if err != nil {
			return persistence(err)
		}
		if count > 0 {
			return ErrAlreadyLiked
		}

		if err := tx.Create(&like).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyLiked
			}
			return persistence(err)
		}
		return s.ledger.Increment(tx, ref, CounterLikes)
	})
	if err != nil {
		return nil, err
	}
	return &like, nil
}

// Unlike removes the actor's like from the referenced entity.
func (s *LikeService) Unlike(actorID uint, ref ContentRef) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("user_id = ? AND likeable_type = ? AND likeable_id = ?", actorID, ref.Kind, ref.ID).
			Delete(&models.Like{})
		if result.Error != nil {
			return persistence(result.Error)
		}
		if result.RowsAffected == 0 {
			return notFound("like")
		}
		return s.ledger.Decrement(tx, ref, CounterLikes)
	})
}

// authorize checks that the entity exists, is likeable, and is visible to
// the actor. Likes on comments are gated by the comment's commentable.
func (s *LikeService) authorize(actorID uint, ref ContentRef) error {
	d, ok := Lookup(ref.Kind)
	if !ok || !d.Likeable {
		return notFound("likeable content")
	}

	if ref.Kind == KindComment {
		var comment models.Comment
		if err := s.db.Select("id", "commentable_type", "commentable_id").First(&comment, ref.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("comment")
			}
			return persistence(err)
		}
		return s.guard.CanView(actorID, commentableRef(&comment))
	}
	return s.guard.CanView(actorID, ref)
}
