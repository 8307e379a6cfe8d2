package social

import (
	"fmt"
	"testing"

	"circleup/backend/internal/database"
	"circleup/backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the full schema,
// including the unique indexes the core leans on.
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

func createPost(t *testing.T, db *gorm.DB, ownerID uint, visibility models.Visibility) models.Post {
	t.Helper()

	post := models.Post{
		OwnerID:         ownerID,
		Title:           "title",
		Body:            "body",
		Visibility:      visibility,
		CommentsEnabled: true,
	}
	require.NoError(t, db.Create(&post).Error)
	return post
}

func createMovie(t *testing.T, db *gorm.DB, title string) models.Movie {
	t.Helper()

	movie := models.Movie{Title: title}
	require.NoError(t, db.Create(&movie).Error)
	return movie
}

// makeFriends establishes an accepted friendship between two users.
func makeFriends(t *testing.T, db *gorm.DB, a, b uint) {
	t.Helper()

	graph := NewFriendshipGraph(db, nil)
	friendship, err := graph.SendRequest(a, b)
	require.NoError(t, err)
	_, err = graph.Accept(friendship.ID, b)
	require.NoError(t, err)
}

// mockSink records dispatched events and lets tests disable event types
// per user.
type mockSink struct {
	events   []Event
	disabled map[uint]map[EventType]bool
}

func newMockSink() *mockSink {
	return &mockSink{disabled: map[uint]map[EventType]bool{}}
}

func (m *mockSink) disable(userID uint, eventType EventType) {
	if m.disabled[userID] == nil {
		m.disabled[userID] = map[EventType]bool{}
	}
	m.disabled[userID][eventType] = true
}

func (m *mockSink) IsEnabled(userID uint, eventType EventType) bool {
	return !m.disabled[userID][eventType]
}

func (m *mockSink) Dispatch(event Event) error {
	m.events = append(m.events, event)
	return nil
}
