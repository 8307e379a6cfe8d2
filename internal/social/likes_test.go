package social

import (
	"testing"

	"circleup/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeAndUnlikePost(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner")
	fan := createUser(t, db, "fan")
	post := createPost(t, db, owner.ID, models.VisibilityPublic)
	likes := NewLikeService(db)

	ref := ContentRef{Kind: KindPost, ID: post.ID}
	like, err := likes.Like(fan.ID, ref)
	require.NoError(t, err)
	assert.Equal(t, fan.ID, like.UserID)

	var reloaded models.Post
	require.NoError(t, db.First(&reloaded, post.ID).Error)
	assert.EqualValues(t, 1, reloaded.LikesCount)

	require.NoError(t, likes.Unlike(fan.ID, ref))
	require.NoError(t, db.First(&reloaded, post.ID).Error)
	assert.EqualValues(t, 0, reloaded.LikesCount)
}

func TestLikeTwice(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner")
	fan := createUser(t, db, "fan")
	post := createPost(t, db, owner.ID, models.VisibilityPublic)
	likes := NewLikeService(db)

	ref := ContentRef{Kind: KindPost, ID: post.ID}
	_, err := likes.Like(fan.ID, ref)
	require.NoError(t, err)

	_, err = likes.Like(fan.ID, ref)
	assert.ErrorIs(t, err, ErrAlreadyLiked)

	var reloaded models.Post
	require.NoError(t, db.First(&reloaded, post.ID).Error)
	assert.EqualValues(t, 1, reloaded.LikesCount, "a rejected like never bumps the counter")
}

func TestUnlikeWithoutLike(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner")
	fan := createUser(t, db, "fan")
	post := createPost(t, db, owner.ID, models.VisibilityPublic)
	likes := NewLikeService(db)

	err := likes.Unlike(fan.ID, ContentRef{Kind: KindPost, ID: post.ID})
	assert.ErrorIs(t, err, ErrNotFound)

	var reloaded models.Post
	require.NoError(t, db.First(&reloaded, post.ID).Error)
	assert.EqualValues(t, 0, reloaded.LikesCount)
}

func TestLikePrivatePost(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner")
	stranger := createUser(t, db, "stranger")
	post := createPost(t, db, owner.ID, models.VisibilityPrivate)
	likes := NewLikeService(db)

	_, err := likes.Like(stranger.ID, ContentRef{Kind: KindPost, ID: post.ID})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = likes.Like(owner.ID, ContentRef{Kind: KindPost, ID: post.ID})
	assert.NoError(t, err)
}

func TestLikeComment(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner")
	author := createUser(t, db, "author")
	fan := createUser(t, db, "fan")
	post := createPost(t, db, owner.ID, models.VisibilityPublic)
	thread := NewCommentThread(db, nil, ThreadConfig{})
	likes := NewLikeService(db)

	comment, err := thread.Create(author.ID, ContentRef{Kind: KindPost, ID: post.ID}, "top", nil)
	require.NoError(t, err)

	ref := ContentRef{Kind: KindComment, ID: comment.ID}
	_, err = likes.Like(fan.ID, ref)
	require.NoError(t, err)

	var reloaded models.Comment
	require.NoError(t, db.First(&reloaded, comment.ID).Error)
	assert.EqualValues(t, 1, reloaded.LikesCount)

	require.NoError(t, likes.Unlike(fan.ID, ref))
	require.NoError(t, db.First(&reloaded, comment.ID).Error)
	assert.EqualValues(t, 0, reloaded.LikesCount)
}

func TestLikeCommentGatedByCommentable(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner")
	stranger := createUser(t, db, "stranger")
	post := createPost(t, db, owner.ID, models.VisibilityPrivate)
	thread := NewCommentThread(db, nil, ThreadConfig{})
	likes := NewLikeService(db)

	comment, err := thread.Create(owner.ID, ContentRef{Kind: KindPost, ID: post.ID}, "private note", nil)
	require.NoError(t, err)

	_, err = likes.Like(stranger.ID, ContentRef{Kind: KindComment, ID: comment.ID})
	assert.ErrorIs(t, err, ErrForbidden, "comment likes inherit the commentable's visibility")
}

func TestLikeMovie(t *testing.T) {
	db := newTestDB(t)
	fan := createUser(t, db, "fan")
	movie := createMovie(t, db, "movie")
	likes := NewLikeService(db)

	// Movies are likeable but declare no likes counter; the like row is
	// the only record.
	_, err := likes.Like(fan.ID, ContentRef{Kind: KindMovie, ID: movie.ID})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Like{}).
		Where("likeable_type = ? AND likeable_id = ?", KindMovie, movie.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestLikeUnknownKindOrMissingContent(t *testing.T) {
	db := newTestDB(t)
	fan := createUser(t, db, "fan")
	likes := NewLikeService(db)

	_, err := likes.Like(fan.ID, ContentRef{Kind: "widget", ID: 1})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = likes.Like(fan.ID, ContentRef{Kind: KindComment, ID: 404})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = likes.Like(fan.ID, ContentRef{Kind: KindPost, ID: 404})
	assert.ErrorIs(t, err, ErrNotFound)
}
