package handler

import (
	"net/http"
	"strconv"

	"circleup/backend/internal/social"

	"github.com/gin-gonic/gin"
)

// LikeResponse defines the structure for a created like.
type LikeResponse struct {
	ID           uint   `json:"id"`
	LikeableType string `json:"likeable_type"`
	LikeableID   uint   `json:"likeable_id"`
}

// LikeContent returns a handler recording the caller's like on the given
// content kind.
//
// LikeContent godoc
// @Summary      Like content
// @Description  Records the caller's like on a post, movie or comment.
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Content ID"
// @Success      201  {object}  LikeResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Already liked"
// @Router       /posts/{id}/like [post]
func LikeContent(kind social.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content ID"})
			return
		}

		like, err := likeService.Like(actorID(c), social.ContentRef{Kind: kind, ID: uint(id)})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, LikeResponse{
			ID:           like.ID,
			LikeableType: like.LikeableType,
			LikeableID:   like.LikeableID,
		})
	}
}

// UnlikeContent returns a handler removing the caller's like from the
// given content kind.
//
// UnlikeContent godoc
// @Summary      Unlike content
// @Description  Removes the caller's like from a post, movie or comment.
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Content ID"
// @Success      200  {object}  map[string]string "{"message": "Like removed"}"
// @Failure      404  {object}  ErrorResponse
// @Router       /posts/{id}/like [delete]
func UnlikeContent(kind social.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content ID"})
			return
		}

		if err := likeService.Unlike(actorID(c), social.ContentRef{Kind: kind, ID: uint(id)}); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Like removed"})
	}
}
