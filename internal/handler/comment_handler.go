package handler

import (
	"net/http"
	"strconv"
	"time"

	"circleup/backend/internal/social"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type CommentInput struct {
	Content  string `json:"content" binding:"required,min=1,max=2000"`
	ParentID *uint  `json:"parent_id"`
}

type CommentUpdateInput struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

type CommentResponse struct {
	ID              uint      `json:"id"`
	CommentableType string    `json:"commentable_type"`
	CommentableID   uint      `json:"commentable_id"`
	UserID          uint      `json:"user_id"`
	ParentID        *uint     `json:"parent_id,omitempty"`
	Content         string    `json:"content"`
	LikesCount      int64     `json:"likes_count"`
	RepliesCount    int64     `json:"replies_count"`
	UserLiked       bool      `json:"user_liked"`
	LikeID          *uint     `json:"like_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type CommentDetailResponse struct {
	Comment    CommentResponse   `json:"comment"`
	Replies    []CommentResponse `json:"replies"`
	ReplyCount int64             `json:"reply_count"`
}

func newCommentResponse(item social.CommentItem) CommentResponse {
	return CommentResponse{
		ID:              item.ID,
		CommentableType: item.CommentableType,
		CommentableID:   item.CommentableID,
		UserID:          item.UserID,
		ParentID:        item.ParentID,
		Content:         item.Content,
		LikesCount:      item.LikesCount,
		RepliesCount:    item.RepliesCount,
		UserLiked:       item.Liked,
		LikeID:          item.LikeID,
		CreatedAt:       item.CreatedAt,
	}
}

// endregion

// CreateComment returns a handler creating a comment or reply on the
// given content kind.
//
// CreateComment godoc
// @Summary      Create a comment
// @Description  Creates a top-level comment or a reply on a commentable entity.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "Commentable ID"
// @Param        input body      CommentInput true  "Comment"
// @Success      201  {object}  CommentResponse
// @Failure      400  {object}  ErrorResponse "Comments disabled, self reply"
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Duplicate top-level comment"
// @Router       /posts/{id}/comments [post]
func CreateComment(kind social.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content ID"})
			return
		}

		var input CommentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ref := social.ContentRef{Kind: kind, ID: uint(id)}
		comment, err := commentThread.Create(actorID(c), ref, input.Content, input.ParentID)
		if err != nil {
			respondError(c, err)
			return
		}

		// A fresh comment has no likes yet.
		c.JSON(http.StatusCreated, newCommentResponse(social.CommentItem{Comment: *comment}))
	}
}

// ListComments returns a handler listing a commentable's top-level
// comments with filtering and sorting.
//
// ListComments godoc
// @Summary      List comments
// @Description  Lists the top-level comments of a commentable entity, filterable and sortable.
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      int     true   "Commentable ID"
// @Param        author    query     int     false  "Filter by author user ID"
// @Param        q         query     string  false  "Filter by content substring"
// @Param        since     query     string  false  "Created-at lower bound (RFC3339)"
// @Param        until     query     string  false  "Created-at upper bound (RFC3339)"
// @Param        min_likes query     int     false  "Minimum likes count"
// @Param        max_likes query     int     false  "Maximum likes count"
// @Param        sort      query     string  false  "Sort column (created_at, likes_count)"
// @Param        order     query     string  false  "Sort order (asc, desc)"
// @Param        page      query     int     false  "Page number" default(1)
// @Param        limit     query     int     false  "Items per page" default(20)
// @Success      200  {object}  PaginatedResponse[CommentResponse]
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /posts/{id}/comments [get]
func ListComments(kind social.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content ID"})
			return
		}

		opts, err := listOptions(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ref := social.ContentRef{Kind: kind, ID: uint(id)}
		items, total, err := commentThread.ListTopLevel(actorID(c), ref, opts)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, paginatedComments(items, total, opts))
	}
}

// GetComment godoc
// @Summary      Get a comment
// @Description  Retrieves a comment with one page of its direct replies and the caller's like-state.
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int  true   "Comment ID"
// @Param        page  query     int  false  "Replies page number" default(1)
// @Param        limit query     int  false  "Replies per page" default(20)
// @Success      200  {object}  CommentDetailResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /comments/{id} [get]
func GetComment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	page, limit := pageParams(c)
	detail, err := commentThread.Get(actorID(c), uint(id), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	replies := make([]CommentResponse, len(detail.Replies))
	for i, reply := range detail.Replies {
		replies[i] = newCommentResponse(reply)
	}
	c.JSON(http.StatusOK, CommentDetailResponse{
		Comment:    newCommentResponse(detail.Comment),
		Replies:    replies,
		ReplyCount: detail.ReplyCount,
	})
}

// ListCommentReplies godoc
// @Summary      List replies
// @Description  Lists a comment's direct replies, filterable and sortable like a comment listing.
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Parent comment ID"
// @Success      200  {object}  PaginatedResponse[CommentResponse]
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /comments/{id}/replies [get]
func ListCommentReplies(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	opts, err := listOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, total, err := commentThread.ListReplies(actorID(c), uint(id), opts)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, paginatedComments(items, total, opts))
}

// UpdateComment godoc
// @Summary      Update a comment
// @Description  Updates a comment's content. Only the author may update.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Comment ID"
// @Param        input body      CommentUpdateInput true  "New content"
// @Success      200   {object}  CommentResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /comments/{id} [put]
func UpdateComment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	var input CommentUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := commentThread.Update(actorID(c), uint(id), input.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCommentResponse(social.CommentItem{Comment: *comment}))
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  Deletes a comment and settles its counters. Only the author may delete.
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Comment ID"
// @Success      200  {object}  map[string]string "{"message": "Comment deleted"}"
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /comments/{id} [delete]
func DeleteComment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	if err := commentThread.Delete(actorID(c), uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}

// region --- Helpers ---

func listOptions(c *gin.Context) (social.ListOptions, error) {
	var opts social.ListOptions
	opts.Page, opts.Limit = pageParams(c)

	if author := c.Query("author"); author != "" {
		id, err := strconv.ParseUint(author, 10, 32)
		if err != nil {
			return opts, err
		}
		authorID := uint(id)
		opts.AuthorID = &authorID
	}
	opts.Contains = c.Query("q")

	if since := c.Query("since"); since != "" {
		t, err := time.Parse(time.RFC3339, since)
		if err != nil {
			return opts, err
		}
		opts.Since = &t
	}
	if until := c.Query("until"); until != "" {
		t, err := time.Parse(time.RFC3339, until)
		if err != nil {
			return opts, err
		}
		opts.Until = &t
	}

	if minLikes := c.Query("min_likes"); minLikes != "" {
		n, err := strconv.ParseInt(minLikes, 10, 64)
		if err != nil {
			return opts, err
		}
		opts.MinLikes = &n
	}
	if maxLikes := c.Query("max_likes"); maxLikes != "" {
		n, err := strconv.ParseInt(maxLikes, 10, 64)
		if err != nil {
			return opts, err
		}
		opts.MaxLikes = &n
	}

	opts.SortBy = c.DefaultQuery("sort", "created_at")
	opts.Desc = c.DefaultQuery("order", "asc") == "desc"
	return opts, nil
}

func paginatedComments(items []social.CommentItem, total int64, opts social.ListOptions) PaginatedResponse[CommentResponse] {
	responses := make([]CommentResponse, len(items))
	for i, item := range items {
		responses[i] = newCommentResponse(item)
	}
	return NewPaginatedResponse(responses, total, opts.Page, opts.Limit)
}

// endregion
