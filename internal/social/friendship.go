package social

import (
	"errors"

	"circleup/backend/internal/models"

	"gorm.io/gorm"
)

// FriendshipGraph is the state machine governing the friend-request
// lifecycle between two users.
//
// A row starts pending and either becomes accepted or is deleted; NONE
// (no row) is both the initial and the terminal state. Each transition is
// exclusively authorized to one role: the receiver accepts or rejects, the
// sender cancels, and either party removes an accepted friendship.
type FriendshipGraph struct {
	db   *gorm.DB
	sink NotificationSink
}

func NewFriendshipGraph(db *gorm.DB, sink NotificationSink) *FriendshipGraph {
	return &FriendshipGraph{db: db, sink: sink}
}

// SendRequest creates a pending friendship from sender to receiver.
// At most one row may exist per unordered pair in either direction; the
// existence check catches the common case and the pair unique index closes
// the race between two concurrent first requests.
func (g *FriendshipGraph) SendRequest(senderID, receiverID uint) (*models.Friendship, error) {
	if senderID == receiverID {
		return nil, ErrSelfFriendship
	}

	var receiver models.User
	if err := g.db.Select("id").First(&receiver, receiverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("user")
		}
		return nil, persistence(err)
	}

	friendship := models.Friendship{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     models.StatusPending,
	}

	err := g.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.Friendship{}).
			Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
				senderID, receiverID, receiverID, senderID).
			Count(&count).Error
		if err != nil {
			return persistence(err)
		}
		if count > 0 {
			return ErrDuplicateRelationship
		}

		if err := tx.Create(&friendship).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateRelationship
			}
			return persistence(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if g.sink != nil && g.sink.IsEnabled(receiverID, EventFriendRequest) {
		dispatchAll(g.sink, []Event{newEvent(EventFriendRequest, receiverID, senderID)})
	}
	return &friendship, nil
}

// Accept transitions a pending request to accepted. Only the receiver may
// accept.
func (g *FriendshipGraph) Accept(id, actorID uint) (*models.Friendship, error) {
	friendship, err := g.pending(id)
	if err != nil {
		return nil, err
	}
	if friendship.ReceiverID != actorID {
		return nil, ErrForbidden
	}

	if err := g.db.Model(friendship).Update("status", models.StatusAccepted).Error; err != nil {
		return nil, persistence(err)
	}

	if g.sink != nil && g.sink.IsEnabled(friendship.SenderID, EventFriendAccepted) {
		dispatchAll(g.sink, []Event{newEvent(EventFriendAccepted, friendship.SenderID, actorID)})
	}
	return friendship, nil
}

// Reject deletes a pending request. Only the receiver may reject.
func (g *FriendshipGraph) Reject(id, actorID uint) error {
	friendship, err := g.pending(id)
	if err != nil {
		return err
	}
	if friendship.ReceiverID != actorID {
		return ErrForbidden
	}
	return g.delete(friendship)
}

// Cancel deletes a pending request. Only the sender may cancel.
func (g *FriendshipGraph) Cancel(id, actorID uint) error {
	friendship, err := g.pending(id)
	if err != nil {
		return err
	}
	if friendship.SenderID != actorID {
		return ErrForbidden
	}
	return g.delete(friendship)
}

// Remove deletes an accepted friendship. Either party may remove.
func (g *FriendshipGraph) Remove(id, actorID uint) error {
	friendship, err := g.load(id)
	if err != nil {
		return err
	}
	if friendship.Status != models.StatusAccepted {
		return notFound("friendship")
	}
	if friendship.SenderID != actorID && friendship.ReceiverID != actorID {
		return ErrForbidden
	}
	return g.delete(friendship)
}

// Friends returns the users on the other end of every accepted friendship
// involving the given user, regardless of who sent the request.
func (g *FriendshipGraph) Friends(userID uint) ([]models.User, error) {
	var friendships []models.Friendship
	err := g.db.
		Where("status = ?", models.StatusAccepted).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Preload("Sender").Preload("Receiver").
		Find(&friendships).Error
	if err != nil {
		return nil, persistence(err)
	}

	friends := make([]models.User, 0, len(friendships))
	for _, f := range friendships {
		if f.SenderID == userID {
			friends = append(friends, f.Receiver)
		} else {
			friends = append(friends, f.Sender)
		}
	}
	return friends, nil
}

// SentRequests returns the user's outgoing pending requests.
func (g *FriendshipGraph) SentRequests(userID uint, page, limit int) ([]models.Friendship, int64, error) {
	return g.pendingRequests("sender_id", "Receiver", userID, page, limit)
}

// ReceivedRequests returns the user's incoming pending requests.
func (g *FriendshipGraph) ReceivedRequests(userID uint, page, limit int) ([]models.Friendship, int64, error) {
	return g.pendingRequests("receiver_id", "Sender", userID, page, limit)
}

// StatusBetween returns the friendship row between two users, if any,
// whichever direction it was sent in.
func (g *FriendshipGraph) StatusBetween(a, b uint) (*models.Friendship, error) {
	var friendship models.Friendship
	err := g.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a).
		First(&friendship).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, persistence(err)
	}
	return &friendship, nil
}

func (g *FriendshipGraph) pendingRequests(column, preload string, userID uint, page, limit int) ([]models.Friendship, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := g.db.Model(&models.Friendship{}).
		Where(column+" = ? AND status = ?", userID, models.StatusPending)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, persistence(err)
	}

	var requests []models.Friendship
	err := query.Preload(preload).
		Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&requests).Error
	if err != nil {
		return nil, 0, persistence(err)
	}
	return requests, total, nil
}

func (g *FriendshipGraph) load(id uint) (*models.Friendship, error) {
	var friendship models.Friendship
	if err := g.db.First(&friendship, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("friendship")
		}
		return nil, persistence(err)
	}
	return &friendship, nil
}

func (g *FriendshipGraph) pending(id uint) (*models.Friendship, error) {
	friendship, err := g.load(id)
	if err != nil {
		return nil, err
	}
	if friendship.Status != models.StatusPending {
		return nil, notFound("pending friend request")
	}
	return friendship, nil
}

func (g *FriendshipGraph) delete(friendship *models.Friendship) error {
	if err := g.db.Delete(friendship).Error; err != nil {
		return persistence(err)
	}
	return nil
}
