package handler

import (
	"errors"
	"net/http"
	"strconv"

	"circleup/backend/internal/database"
	"circleup/backend/internal/models"
	"circleup/backend/internal/social"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type PostInput struct {
	Title           string `json:"title" binding:"required"`
	Body            string `json:"body" binding:"required"`
	Visibility      string `json:"visibility" binding:"omitempty,oneof=public friends private"`
	CommentsEnabled *bool  `json:"comments_enabled"`
}

type PostResponse struct {
	ID              uint   `json:"id"`
	OwnerID         uint   `json:"owner_id"`
	Title           string `json:"title"`
	Body            string `json:"body"`
	Visibility      string `json:"visibility"`
	CommentsEnabled bool   `json:"comments_enabled"`
	CommentsCount   int64  `json:"comments_count"`
	LikesCount      int64  `json:"likes_count"`
	UserLiked       bool   `json:"user_liked"`
}

func newPostResponse(post models.Post, viewerID uint) PostResponse {
	var liked int64
	database.DB.Model(&models.Like{}).
		Where("user_id = ? AND likeable_type = ? AND likeable_id = ?", viewerID, social.KindPost, post.ID).
		Count(&liked)

	return PostResponse{
		ID:              post.ID,
		OwnerID:         post.OwnerID,
		Title:           post.Title,
		Body:            post.Body,
		Visibility:      string(post.Visibility),
		CommentsEnabled: post.CommentsEnabled,
		CommentsCount:   post.CommentsCount,
		LikesCount:      post.LikesCount,
		UserLiked:       liked > 0,
	}
}

// endregion

// CreatePost godoc
// @Summary      Create a post
// @Description  Creates a post owned by the caller.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body PostInput true "Post Info"
// @Success      201  {object}  PostResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /posts [post]
func CreatePost(c *gin.Context) {
	var input PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	visibility := models.VisibilityPublic
	if input.Visibility != "" {
		visibility = models.Visibility(input.Visibility)
	}
	commentsEnabled := true
	if input.CommentsEnabled != nil {
		commentsEnabled = *input.CommentsEnabled
	}

	post := models.Post{
		OwnerID:         actorID(c),
		Title:           input.Title,
		Body:            input.Body,
		Visibility:      visibility,
		CommentsEnabled: commentsEnabled,
	}
	if err := database.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, newPostResponse(post, actorID(c)))
}

// GetPostByID godoc
// @Summary      Get a post
// @Description  Retrieves a post if its visibility allows the caller to see it.
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Post ID"
// @Success      200  {object}  PostResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /posts/{id} [get]
func GetPostByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	if err := guard.CanView(actorID(c), social.ContentRef{Kind: social.KindPost, ID: uint(id)}); err != nil {
		respondError(c, err)
		return
	}

	var post models.Post
	if err := database.DB.First(&post, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	c.JSON(http.StatusOK, newPostResponse(post, actorID(c)))
}

// GetPosts godoc
// @Summary      List posts
// @Description  Lists posts visible to the caller, newest first.
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        owner query     int  false  "Filter by owner user ID"
// @Param        page  query     int  false  "Page number" default(1)
// @Param        limit query     int  false  "Items per page" default(20)
// @Success      200  {object}  PaginatedResponse[PostResponse]
// @Failure      401  {object}  ErrorResponse
// @Router       /posts [get]
func GetPosts(c *gin.Context) {
	viewerID := actorID(c)
	page, limit := pageParams(c)

	query := database.DB.Model(&models.Post{})
	if ownerParam := c.Query("owner"); ownerParam != "" {
		ownerID, err := strconv.ParseUint(ownerParam, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid owner ID"})
			return
		}
		query = query.Where("owner_id = ?", uint(ownerID))
	}

	var posts []models.Post
	if err := query.Order("created_at DESC").Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve posts"})
		return
	}

	// Visibility is evaluated per post against the viewer; pagination
	// applies to the visible set.
	visible := make([]PostResponse, 0, len(posts))
	for _, post := range posts {
		err := guard.CanView(viewerID, social.ContentRef{Kind: social.KindPost, ID: post.ID})
		if err != nil {
			if errors.Is(err, social.ErrForbidden) {
				continue
			}
			respondError(c, err)
			return
		}
		visible = append(visible, newPostResponse(post, viewerID))
	}

	total := int64(len(visible))
	start := (page - 1) * limit
	if start > len(visible) {
		start = len(visible)
	}
	end := start + limit
	if end > len(visible) {
		end = len(visible)
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(visible[start:end], total, page, limit))
}

// UpdatePost godoc
// @Summary      Update a post
// @Description  Updates a post's fields. Only the owner may update.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int       true  "Post ID"
// @Param        input body      PostInput true  "New Post Info"
// @Success      200   {object}  PostResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /posts/{id} [put]
func UpdatePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var post models.Post
	if err := database.DB.First(&post, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if post.OwnerID != actorID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the owner can update a post"})
		return
	}

	var input PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post.Title = input.Title
	post.Body = input.Body
	if input.Visibility != "" {
		post.Visibility = models.Visibility(input.Visibility)
	}
	if input.CommentsEnabled != nil {
		post.CommentsEnabled = *input.CommentsEnabled
	}

	if err := database.DB.Save(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}
	c.JSON(http.StatusOK, newPostResponse(post, actorID(c)))
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Deletes a post. Only the owner may delete.
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Post ID"
// @Success      200  {object}  map[string]string "{"message": "Post deleted"}"
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /posts/{id} [delete]
func DeletePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var post models.Post
	if err := database.DB.First(&post, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if post.OwnerID != actorID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the owner can delete a post"})
		return
	}

	if err := database.DB.Delete(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}
