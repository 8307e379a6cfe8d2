package handler

import (
	"errors"
	"net/http"

	"circleup/backend/internal/notify"
	"circleup/backend/internal/social"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	friendGraph   *social.FriendshipGraph
	commentThread *social.CommentThread
	likeService   *social.LikeService
	guard         *social.VisibilityGuard
	notifications *notify.Store
)

// Setup wires the handler package to the database and the notification
// sink. Must be called before any route is served.
func Setup(db *gorm.DB, sink *notify.Store, threadCfg social.ThreadConfig) {
	friendGraph = social.NewFriendshipGraph(db, sink)
	commentThread = social.NewCommentThread(db, sink, threadCfg)
	likeService = social.NewLikeService(db)
	guard = social.NewVisibilityGuard(db)
	notifications = sink
}

// respondError translates a core error into an HTTP response. The status
// mapping is a boundary concern; the core only supplies stable kinds.
func respondError(c *gin.Context, err error) {
	var domainErr *social.Error
	if errors.As(err, &domainErr) {
		c.JSON(statusFor(domainErr.Kind), gin.H{"error": domainErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

func statusFor(kind social.ErrorKind) int {
	switch kind {
	case social.KindForbidden:
		return http.StatusForbidden
	case social.KindNotFound:
		return http.StatusNotFound
	case social.KindDuplicateRelationship, social.KindDuplicateTopLevel, social.KindAlreadyLiked:
		return http.StatusConflict
	case social.KindCommentsDisabled, social.KindSelfReply, social.KindSelfFriendship,
		social.KindMaxCommentDepthExceeded:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func actorID(c *gin.Context) uint {
	id, _ := c.Get("userID")
	return id.(uint)
}
