package notify

import (
	"fmt"
	"testing"

	"circleup/backend/internal/database"
	"circleup/backend/internal/models"
	"circleup/backend/internal/social"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, nickname string) models.User {
	t.Helper()

	user := models.User{
		Nickname:             nickname,
		Email:                nickname + "@example.com",
		PasswordHash:         "x",
		NotifyPostCommented:  true,
		NotifyCommentReplied: true,
		NotifyFriendRequests: true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func testEvent(eventType social.EventType, recipientID, actorID uint) social.Event {
	return social.Event{
		ID:          uuid.NewString(),
		Type:        eventType,
		RecipientID: recipientID,
		ActorID:     actorID,
		Subject:     social.ContentRef{Kind: social.KindPost, ID: 1},
	}
}

func TestIsEnabledFollowsPreferences(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "user")
	store := NewStore(db)

	assert.True(t, store.IsEnabled(user.ID, social.EventPostCommented))
	assert.True(t, store.IsEnabled(user.ID, social.EventCommentReplied))
	assert.True(t, store.IsEnabled(user.ID, social.EventFriendRequest))
	assert.True(t, store.IsEnabled(user.ID, social.EventFriendAccepted))

	require.NoError(t, db.Model(&user).Update("notify_post_commented", false).Error)
	assert.False(t, store.IsEnabled(user.ID, social.EventPostCommented))
	assert.True(t, store.IsEnabled(user.ID, social.EventCommentReplied))

	require.NoError(t, db.Model(&user).Update("notify_friend_requests", false).Error)
	assert.False(t, store.IsEnabled(user.ID, social.EventFriendRequest))
	assert.False(t, store.IsEnabled(user.ID, social.EventFriendAccepted))
}

func TestIsEnabledUnknownUserOrType(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "user")
	store := NewStore(db)

	assert.False(t, store.IsEnabled(9999, social.EventPostCommented))
	assert.False(t, store.IsEnabled(user.ID, social.EventType("something.else")))
}

func TestDispatchWritesRow(t *testing.T) {
	db := newTestDB(t)
	recipient := createUser(t, db, "recipient")
	actor := createUser(t, db, "actor")
	store := NewStore(db)

	commentID := uint(7)
	event := testEvent(social.EventPostCommented, recipient.ID, actor.ID)
	event.CommentID = &commentID
	require.NoError(t, store.Dispatch(event))

	var row models.Notification
	require.NoError(t, db.Where("event_id = ?", event.ID).First(&row).Error)
	assert.Equal(t, recipient.ID, row.UserID)
	assert.Equal(t, actor.ID, row.ActorID)
	assert.Equal(t, string(social.EventPostCommented), row.EventType)
	assert.Equal(t, string(social.KindPost), row.SubjectType)
	assert.EqualValues(t, 1, row.SubjectID)
	require.NotNil(t, row.CommentID)
	assert.Equal(t, commentID, *row.CommentID)
	assert.False(t, row.Read)
}

func TestDispatchDeduplicatesByEventID(t *testing.T) {
	db := newTestDB(t)
	recipient := createUser(t, db, "recipient")
	actor := createUser(t, db, "actor")
	store := NewStore(db)

	event := testEvent(social.EventFriendRequest, recipient.ID, actor.ID)
	require.NoError(t, store.Dispatch(event))
	assert.Error(t, store.Dispatch(event), "a redelivered event must not insert twice")

	var count int64
	require.NoError(t, db.Model(&models.Notification{}).Where("event_id = ?", event.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestListForUser(t *testing.T) {
	db := newTestDB(t)
	recipient := createUser(t, db, "recipient")
	actor := createUser(t, db, "actor")
	other := createUser(t, db, "other")
	store := NewStore(db)

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Dispatch(testEvent(social.EventPostCommented, recipient.ID, actor.ID)))
	}
	require.NoError(t, store.Dispatch(testEvent(social.EventPostCommented, other.ID, actor.ID)))

	notifications, total, err := store.ListForUser(recipient.ID, 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, notifications, 2)
	assert.Equal(t, "actor", notifications[0].Actor.Nickname)

	notifications, total, err = store.ListForUser(recipient.ID, 2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, notifications, 1)
}

func TestMarkRead(t *testing.T) {
	db := newTestDB(t)
	recipient := createUser(t, db, "recipient")
	actor := createUser(t, db, "actor")
	store := NewStore(db)

	event := testEvent(social.EventCommentReplied, recipient.ID, actor.ID)
	require.NoError(t, store.Dispatch(event))

	var row models.Notification
	require.NoError(t, db.Where("event_id = ?", event.ID).First(&row).Error)

	assert.ErrorIs(t, store.MarkRead(actor.ID, row.ID), gorm.ErrRecordNotFound,
		"users cannot touch other users' notifications")

	require.NoError(t, store.MarkRead(recipient.ID, row.ID))
	require.NoError(t, db.First(&row, row.ID).Error)
	assert.True(t, row.Read)
}
