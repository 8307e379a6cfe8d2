package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"circleup/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NotificationResponse defines the structure for an in-app notification.
type NotificationResponse struct {
	ID          uint      `json:"id"`
	EventType   string    `json:"event_type"`
	ActorID     uint      `json:"actor_id"`
	ActorName   string    `json:"actor_name,omitempty"`
	SubjectType string    `json:"subject_type,omitempty"`
	SubjectID   uint      `json:"subject_id,omitempty"`
	CommentID   *uint     `json:"comment_id,omitempty"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"created_at"`
}

func newNotificationResponse(n models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          n.ID,
		EventType:   n.EventType,
		ActorID:     n.ActorID,
		ActorName:   n.Actor.Nickname,
		SubjectType: n.SubjectType,
		SubjectID:   n.SubjectID,
		CommentID:   n.CommentID,
		Read:        n.Read,
		CreatedAt:   n.CreatedAt,
	}
}

// GetNotifications godoc
// @Summary      List notifications
// @Description  Lists the caller's in-app notifications, newest first.
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Page number" default(1)
// @Param        limit query     int  false  "Items per page" default(20)
// @Success      200  {object}  PaginatedResponse[NotificationResponse]
// @Failure      401  {object}  ErrorResponse
// @Router       /users/me/notifications [get]
func GetNotifications(c *gin.Context) {
	page, limit := pageParams(c)

	items, total, err := notifications.ListForUser(actorID(c), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve notifications"})
		return
	}

	responses := make([]NotificationResponse, len(items))
	for i, item := range items {
		responses[i] = newNotificationResponse(item)
	}
	c.JSON(http.StatusOK, NewPaginatedResponse(responses, total, page, limit))
}

// MarkNotificationRead godoc
// @Summary      Mark notification read
// @Description  Marks one of the caller's notifications as read.
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Notification ID"
// @Success      200  {object}  map[string]string "{"message": "Notification marked read"}"
// @Failure      404  {object}  ErrorResponse
// @Router       /notifications/{id}/read [post]
func MarkNotificationRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID"})
		return
	}

	if err := notifications.MarkRead(actorID(c), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked read"})
}
