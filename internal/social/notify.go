package social

import (
	"log"

	"github.com/google/uuid"
)

// EventType names a domain event the dispatcher can fan out.
type EventType string

const (
	EventPostCommented  EventType = "post.commented"
	EventCommentReplied EventType = "comment.replied"
	EventFriendRequest  EventType = "friend.request"
	EventFriendAccepted EventType = "friend.accepted"
)

// Event is the payload contract handed to the notification sink. The ID is
// unique per emission so a sink that retries delivery can de-duplicate.
type Event struct {
	ID          string
	Type        EventType
	RecipientID uint
	ActorID     uint
	Subject     ContentRef // zero for friendship events
	CommentID   *uint
}

// NotificationSink is the delivery collaborator. The core decides when an
// event fires and who receives it; delivery mechanics live behind this
// interface.
type NotificationSink interface {
	// IsEnabled reports whether the user wants notifications of this type.
	IsEnabled(userID uint, eventType EventType) bool
	Dispatch(event Event) error
}

func newEvent(t EventType, recipientID, actorID uint) Event {
	return Event{ID: uuid.NewString(), Type: t, RecipientID: recipientID, ActorID: actorID}
}

// dispatchAll hands committed events to the sink. Events are only emitted
// after the enclosing transaction commits, so a rollback never produces a
// partial notification; a delivery failure is logged, not surfaced, since
// the domain mutation already stuck.
func dispatchAll(sink NotificationSink, events []Event) {
	if sink == nil {
		return
	}
	for _, e := range events {
		if err := sink.Dispatch(e); err != nil {
			log.Printf("notification dispatch failed for event %s (%s): %v", e.ID, e.Type, err)
		}
	}
}
