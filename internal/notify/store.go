package notify

import (
	"circleup/backend/internal/models"
	"circleup/backend/internal/social"

	"gorm.io/gorm"
)

// Store is a gorm-backed notification sink. Dispatched events become
// in-app Notification rows the recipient can list and mark read; the
// event id is unique, so a redelivered event inserts nothing twice.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// IsEnabled reads the recipient's preference flag for the event type.
// Unknown users and unknown event types count as disabled.
func (s *Store) IsEnabled(userID uint, eventType social.EventType) bool {
	var user models.User
	if err := s.db.Select("id", "notify_post_commented", "notify_comment_replied", "notify_friend_requests").
		First(&user, userID).Error; err != nil {
		return false
	}

	switch eventType {
	case social.EventPostCommented:
		return user.NotifyPostCommented
	case social.EventCommentReplied:
		return user.NotifyCommentReplied
	case social.EventFriendRequest, social.EventFriendAccepted:
		return user.NotifyFriendRequests
	default:
		return false
	}
}

// Dispatch persists the event as a notification row.
func (s *Store) Dispatch(event social.Event) error {
	notification := models.Notification{
		EventID:     event.ID,
		UserID:      event.RecipientID,
		ActorID:     event.ActorID,
		EventType:   string(event.Type),
		SubjectType: string(event.Subject.Kind),
		SubjectID:   event.Subject.ID,
		CommentID:   event.CommentID,
	}
	return s.db.Create(&notification).Error
}

// ListForUser returns one page of a user's notifications, newest first.
func (s *Store) ListForUser(userID uint, page, limit int) ([]models.Notification, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := s.db.Model(&models.Notification{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notifications []models.Notification
	err := query.Preload("Actor").
		Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

// MarkRead marks one of the user's notifications as read.
func (s *Store) MarkRead(userID, id uint) error {
	result := s.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
