package social

import (
	"testing"

	"circleup/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commentsCount(t *testing.T, thread *CommentThread, post models.Post) int64 {
	t.Helper()
	var reloaded models.Post
	require.NoError(t, thread.db.First(&reloaded, post.ID).Error)
	return reloaded.CommentsCount
}

func TestCreateTopLevelComment(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner")
	commenter := createUser(t, db, "commenter")
	post := createPost(t, db, owner.ID, models.VisibilityPublic)
	thread := NewCommentThread(db, nil, ThreadConfig{})

	ref := ContentRef{Kind: KindPost, ID: post.ID}
	comment, err := thread.Create(commenter.ID, ref, "nice post", nil)
	require.NoError(t, err)
	assert.Nil(t, comment.ParentID)
	assert.EqualValues(t, 0, comment.LikesCount)

	assert.EqualValues(t, 1, commentsCount(t, thread, post))
}

func TestDuplicateTopLevelComment(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner")
	commenter := createUser(t, db, "commenter")
	other := createUser(t, db, "other")
	post := createPost(t, db, owner.ID, models.VisibilityPublic)
	thread := NewCommentThread(db, nil, ThreadConfig{})

	ref := ContentRef{Kind: KindPost, ID: post.ID}
	_, err := thread.Create(commenter.ID, ref, "first", nil)
	require.NoError(t, err)

	_, err = thread.Create(commenter.ID, ref, "second", nil)
	assert.ErrorIs(t, err, ErrDuplicateTopLevel)

	// A different user still gets their slot.
	_, err = thread.Create(other.ID, ref, "hello", nil)
	assert.NoError(t, err)

	// And the same user may comment on a different commentable.
	otherPost := createPost(t, db, owner.ID, models.VisibilityPublic)
	_, err = thread.Create(commenter.ID, ContentRef{Kind: KindPost, ID: otherPost.ID}, "again", nil)
	assert.NoError(t, err)
}

func TestSelfReplyForbidden(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner")
	author := createUser(t, db, "author")
	replier := createUser(t, db, "replier")
	post := createPost(t, db, owner.ID, models.VisibilityPublic)
	thread := NewCommentThread(db, nil, ThreadConfig{})

	ref := ContentRef{Kind: KindPost, ID: post.ID}
	parent, err := thread.Create(author.ID, ref, "top", nil)
	require.NoError(t, err)

	_, err = thread.Create(author.ID, ref, "me again", &parent.ID)
	assert.ErrorIs(t, err, ErrSelfReply)

	reply, err := thread.Create(replier.ID, ref, "reply", &parent.ID)
	require.NoError(t, err)
	assert.Equal(t, parent.ID, *reply.ParentID)

	var reloaded models.Comment
	require.NoError(t, db.First(&reloaded, parent.ID).Error)
	assert.EqualValues(t, 1, reloaded.RepliesCount)
}

func TestReplyParentMustMatchCommentable(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner")
	author := createUser(t, db, "author")
	replier := createUser(t, db, "replier")
	postA := createPost(t, db, owner.ID, models.VisibilityPublic)
	postB := createPost(t, db, owner.ID, models.VisibilityPublic)
	thread := NewCommentThread(db, nil, ThreadConfig{})

	parent, err := thread.Create(author.ID, ContentRef{Kind: KindPost, ID: postA.ID}, "top", nil)
	require.NoError(t, err)

	_, err = thread.Create(replier.ID, ContentRef{Kind: KindPost, ID: postB.ID}, "reply", &parent.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	missing := uint(4040)
	_, err = thread.Create(replier.ID, ContentRef{Kind: KindPost, ID: postA.ID}, "reply", &missing)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateOnPrivatePost(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner")
	stranger := createUser(t, db, "stranger")
	post := createPost(t, db, owner.ID, models.VisibilityPrivate)
	thread := NewCommentThread(db, nil, ThreadConfig{})

	ref := ContentRef{Kind: KindPost, ID: post.ID}
	_, err := thread.Create(stranger.ID, ref, "hi", nil)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.EqualValues(t, 0, commentsCount(t, thread, post))

	_, err = thread.Create(owner.ID, ref, "note to self", nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, commentsCount(t, thread, post))
}

func TestCreateWithCommentsDisabled(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner")
	post := createPost(t, db, owner.ID, models.VisibilityPublic)
	require.NoError(t, db.Model(&post).Update("comments_enabled", false).Error)
	thread := NewCommentThread(db, nil, ThreadConfig{})

	_, err := thread.Create(owner.ID, ContentRef{Kind: KindPost, ID: post.ID}, "hi", nil)
	assert.ErrorIs(t, err, ErrCommentsDisabled)
}

func TestCreateOnMovie(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "user")
	movie := createMovie(t, db, "movie")
	thread := NewCommentThread(db, nil, ThreadConfig{})

	_, err := thread.Create(user.ID, ContentRef{Kind: KindMovie, ID: movie.ID}, "great film", nil)
	require.NoError(t, err)

	var reloaded models.Movie
	require.NoError(t, db.First(&reloaded, movie.ID).Error)
	assert.EqualValues(t, 1, reloaded.CommentsCount)
}

func TestDeleteComment(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner")
	commenter := createUser(t, db, "commenter")
	post := createPost(t, db, owner.ID, models.VisibilityPublic)
	thread := NewCommentThread(db, nil, ThreadConfig{})

	ref := ContentRef{Kind: KindPost, ID: post.ID}
	comment, err := thread.Create(commenter.ID, ref, "hello", nil)
	require.NoError(t, err)
	require.EqualValues(t, 1, commentsCount(t, thread, post))

	assert.ErrorIs(t, thread.Delete(owner.ID, comment.ID), ErrForbidden, "only the author deletes")

	require.NoError(t, thread.Delete(commenter.ID, comment.ID))
	assert.EqualValues(t, 0, commentsCount(t, thread, post))

	// Deleting again is NotFound, never a second decrement.
	assert.ErrorIs(t, thread.Delete(commenter.ID, comment.ID), ErrNotFound)
	assert.EqualValues(t, 0, commentsCount(t, thread, post))

	// The freed slot can be taken again.
	_, err = thread.Create(commenter.ID, ref, "hello again", nil)
	assert.NoError(t, err)
}

func TestDeleteReplyAdjustsParentCounter(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner")
	author := createUser(t, db, "author")
	replier := createUser(t, db, "replier")
	post := createPost(t, db, owner.ID, models.VisibilityPublic)
	thread := NewCommentThread(db, nil, ThreadConfig{})

	ref := ContentRef{Kind: KindPost, ID: post.ID}
	parent, err := thread.Create(author.ID, ref, "top", nil)
	require.NoError(t, err)
	reply, err := thread.Create(replier.ID, ref, "reply", &parent.ID)
	require.NoError(t, err)

	require.NoError(t, thread.Delete(replier.ID, reply.ID))

	var reloaded models.Comment
	require.NoError(t, db.First(&reloaded, parent.ID).Error)
	assert.EqualValues(t, 0, reloaded.RepliesCount)
	assert.EqualValues(t, 1, commentsCount(t, thread, post))
}

func TestDeleteOrphansRepliesByDefault(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner")
	author := createUser(t, db, "author")
	replier := createUser(t, db, "replier")
	post := createPost(t, db, owner.ID, models.VisibilityPublic)
	thread := NewCommentThread(db, nil, ThreadConfig{})

	ref := ContentRef{Kind: KindPost, ID: post.ID}
	parent, err := thread.Create(author.ID, ref, "top", nil)
	require.NoError(t, err)
	reply, err := thread.Create(replier.ID, ref, "reply", &parent.ID)
	require.NoError(t, err)

	require.NoError(t, thread.Delete(author.ID, parent.ID))

	var orphan models.Comment
	require.NoError(t, db.First(&orphan, reply.ID).Error, "replies survive their parent")
	assert.Equal(t, parent.ID, *orphan.ParentID)
	assert.EqualValues(t, 1, commentsCount(t, thread, post))
}

func TestDeleteCascadesRepliesWhenConfigured(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner")
	author := createUser(t, db, "author")
	replier := createUser(t, db, "replier")
	post := createPost(t, db, owner.ID, models.VisibilityPublic)
	thread := NewCommentThread(db, nil, ThreadConfig{CascadeReplies: true})

	ref := ContentRef{Kind: KindPost, ID: post.ID}
	parent, err := thread.Create(author.ID, ref, "top", nil)
	require.NoError(t, err)
	reply, err := thread.Create(replier.ID, ref, "reply", &parent.ID)
	require.NoError(t, err)
	nested, err := thread.Create(author.ID, ref, "deeper", &reply.ID)
	require.NoError(t, err)

	require.NoError(t, thread.Delete(author.ID, parent.ID))

	for _, id := range []uint{parent.ID, reply.ID, nested.ID} {
		var gone models.Comment
		assert.Error(t, db.First(&gone, id).Error)
	}
	assert.EqualValues(t, 0, commentsCount(t, thread, post))
}

func TestMaxDepthEnforced(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner")
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	post := createPost(t, db, owner.ID, models.VisibilityPublic)
	thread := NewCommentThread(db, nil, ThreadConfig{MaxDepth: 2})

	ref := ContentRef{Kind: KindPost, ID: post.ID}
	top, err := thread.Create(alice.ID, ref, "depth 1", nil)
	require.NoError(t, err)
	reply, err := thread.Create(bob.ID, ref, "depth 2", &top.ID)
	require.NoError(t, err)

	_, err = thread.Create(alice.ID, ref, "depth 3", &reply.ID)
	assert.ErrorIs(t, err, ErrMaxCommentDepth)
}

func TestUpdateCommentAuthorOnly(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner")
	author := createUser(t, db, "author")
	post := createPost(t, db, owner.ID, models.VisibilityPublic)
	thread := NewCommentThread(db, nil, ThreadConfig{})

	comment, err := thread.Create(author.ID, ContentRef{Kind: KindPost, ID: post.ID}, "first draft", nil)
	require.NoError(t, err)

	_, err = thread.Update(owner.ID, comment.ID, "hijacked")
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := thread.Update(author.ID, comment.ID, "second draft")
	require.NoError(t, err)
	assert.Equal(t, "second draft", updated.Content)

	_, err = thread.Update(author.ID, 4040, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetCommentWithRepliesAndLikeState(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner")
	author := createUser(t, db, "author")
	replier := createUser(t, db, "replier")
	post := createPost(t, db, owner.ID, models.VisibilityPublic)
	thread := NewCommentThread(db, nil, ThreadConfig{})
	likes := NewLikeService(db)

	ref := ContentRef{Kind: KindPost, ID: post.ID}
	parent, err := thread.Create(author.ID, ref, "top", nil)
	require.NoError(t, err)
	reply, err := thread.Create(replier.ID, ref, "reply", &parent.ID)
	require.NoError(t, err)

	like, err := likes.Like(replier.ID, ContentRef{Kind: KindComment, ID: parent.ID})
	require.NoError(t, err)

	detail, err := thread.Get(replier.ID, parent.ID, 1, 10)
	require.NoError(t, err)
	assert.True(t, detail.Comment.Liked)
	require.NotNil(t, detail.Comment.LikeID)
	assert.Equal(t, like.ID, *detail.Comment.LikeID)
	assert.EqualValues(t, 1, detail.ReplyCount)
	require.Len(t, detail.Replies, 1)
	assert.Equal(t, reply.ID, detail.Replies[0].ID)
	assert.False(t, detail.Replies[0].Liked)

	// A different viewer sees their own like-state, not the replier's.
	detail, err = thread.Get(author.ID, parent.ID, 1, 10)
	require.NoError(t, err)
	assert.False(t, detail.Comment.Liked)
	assert.Nil(t, detail.Comment.LikeID)
}

func TestGetCommentGatedByCommentableVisibility(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner")
	stranger := createUser(t, db, "stranger")
	post := createPost(t, db, owner.ID, models.VisibilityPrivate)
	thread := NewCommentThread(db, nil, ThreadConfig{})

	comment, err := thread.Create(owner.ID, ContentRef{Kind: KindPost, ID: post.ID}, "private note", nil)
	require.NoError(t, err)

	_, err = thread.Get(stranger.ID, comment.ID, 1, 10)
	assert.ErrorIs(t, err, ErrForbidden)

	_, _, err = thread.ListReplies(stranger.ID, comment.ID, ListOptions{})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestListTopLevelFiltersAndSort(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner")
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")
	post := createPost(t, db, owner.ID, models.VisibilityPublic)
	thread := NewCommentThread(db, nil, ThreadConfig{})
	likes := NewLikeService(db)

	ref := ContentRef{Kind: KindPost, ID: post.ID}
	first, err := thread.Create(alice.ID, ref, "great writeup", nil)
	require.NoError(t, err)
	second, err := thread.Create(bob.ID, ref, "disagree entirely", nil)
	require.NoError(t, err)
	_, err = thread.Create(carol.ID, ref, "reply-ish", &first.ID)
	require.NoError(t, err)

	_, err = likes.Like(carol.ID, ContentRef{Kind: KindComment, ID: second.ID})
	require.NoError(t, err)

	// Only top-level comments are listed.
	items, total, err := thread.ListTopLevel(owner.ID, ref, ListOptions{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, items, 2)

	// Author filter.
	items, total, err = thread.ListTopLevel(owner.ID, ref, ListOptions{AuthorID: &alice.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, first.ID, items[0].ID)

	// Content substring filter.
	items, _, err = thread.ListTopLevel(owner.ID, ref, ListOptions{Contains: "disagree"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, second.ID, items[0].ID)

	// Likes range filter.
	one := int64(1)
	items, _, err = thread.ListTopLevel(owner.ID, ref, ListOptions{MinLikes: &one})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, second.ID, items[0].ID)

	// Sort by likes, descending.
	items, _, err = thread.ListTopLevel(owner.ID, ref, ListOptions{SortBy: "likes_count", Desc: true})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID)

	// Like-state is annotated per viewer.
	items, _, err = thread.ListTopLevel(carol.ID, ref, ListOptions{SortBy: "likes_count", Desc: true})
	require.NoError(t, err)
	assert.True(t, items[0].Liked)
}

func TestCommentNotifications(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner")
	commenter := createUser(t, db, "commenter")
	replier := createUser(t, db, "replier")
	post := createPost(t, db, owner.ID, models.VisibilityPublic)
	sink := newMockSink()
	thread := NewCommentThread(db, sink, ThreadConfig{})

	ref := ContentRef{Kind: KindPost, ID: post.ID}
	parent, err := thread.Create(commenter.ID, ref, "top", nil)
	require.NoError(t, err)
	require.Len(t, sink.events, 1)
	assert.Equal(t, EventPostCommented, sink.events[0].Type)
	assert.Equal(t, owner.ID, sink.events[0].RecipientID)
	assert.Equal(t, commenter.ID, sink.events[0].ActorID)
	assert.Equal(t, ref, sink.events[0].Subject)
	require.NotNil(t, sink.events[0].CommentID)
	assert.Equal(t, parent.ID, *sink.events[0].CommentID)

	_, err = thread.Create(replier.ID, ref, "reply", &parent.ID)
	require.NoError(t, err)
	require.Len(t, sink.events, 2)
	assert.Equal(t, EventCommentReplied, sink.events[1].Type)
	assert.Equal(t, commenter.ID, sink.events[1].RecipientID, "the parent author is notified, not the post owner")
}

func TestNoNotificationForOwnContent(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner")
	post := createPost(t, db, owner.ID, models.VisibilityPublic)
	sink := newMockSink()
	thread := NewCommentThread(db, sink, ThreadConfig{})

	_, err := thread.Create(owner.ID, ContentRef{Kind: KindPost, ID: post.ID}, "my own post", nil)
	require.NoError(t, err)
	assert.Empty(t, sink.events, "owners are not notified about their own comments")
}

func TestCommentNotificationsRespectPreferences(t *testing.T) {
	db := newTestDB(t)
	owner := createUser(t, db, "owner")
	commenter := createUser(t, db, "commenter")
	post := createPost(t, db, owner.ID, models.VisibilityPublic)
	sink := newMockSink()
	sink.disable(owner.ID, EventPostCommented)
	thread := NewCommentThread(db, sink, ThreadConfig{})

	_, err := thread.Create(commenter.ID, ContentRef{Kind: KindPost, ID: post.ID}, "top", nil)
	require.NoError(t, err)
	assert.Empty(t, sink.events)
}

func TestMovieCommentsProduceNoOwnerNotification(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "user")
	movie := createMovie(t, db, "movie")
	sink := newMockSink()
	thread := NewCommentThread(db, sink, ThreadConfig{})

	_, err := thread.Create(user.ID, ContentRef{Kind: KindMovie, ID: movie.ID}, "classic", nil)
	require.NoError(t, err)
	assert.Empty(t, sink.events, "ownerless kinds have nobody to notify")
}
