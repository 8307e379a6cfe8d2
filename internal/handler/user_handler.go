package handler

import (
	"net/http"
	"strconv"

	"circleup/backend/internal/database"
	"circleup/backend/internal/models"
	"circleup/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// region --- DTOs ---

// RegisterInput defines the structure for user registration.
type RegisterInput struct {
	Nickname string `json:"nickname" binding:"required" example:"testuser"`
	Email    string `json:"email" binding:"required,email" example:"test@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"password123"`
}

// LoginInput defines the structure for user login.
type LoginInput struct {
	Login    string `json:"login" binding:"required" example:"testuser"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// PublicUserResponse defines the structure for a user's public profile.
type PublicUserResponse struct {
	ID           uint                     `json:"id" example:"1"`
	Nickname     string                   `json:"nickname" example:"testuser"`
	FriendsCount int64                    `json:"friends_count"`
	Relation     *models.FriendshipStatus `json:"relation,omitempty"`
	RequestedBy  *uint                    `json:"requested_by,omitempty"`
}

// PrivateUserResponse defines the structure for the authenticated user's own profile.
type PrivateUserResponse struct {
	ID                   uint   `json:"id" example:"1"`
	Nickname             string `json:"nickname" example:"testuser"`
	Email                string `json:"email" example:"test@example.com"`
	FriendsCount         int64  `json:"friends_count"`
	NotifyPostCommented  bool   `json:"notify_post_commented"`
	NotifyCommentReplied bool   `json:"notify_comment_replied"`
	NotifyFriendRequests bool   `json:"notify_friend_requests"`
}

// NotificationPrefsInput defines the structure for updating notification preferences.
type NotificationPrefsInput struct {
	NotifyPostCommented  *bool `json:"notify_post_commented"`
	NotifyCommentReplied *bool `json:"notify_comment_replied"`
	NotifyFriendRequests *bool `json:"notify_friend_requests"`
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// endregion

// region --- Auth Handlers ---

// RegisterUser godoc
// @Summary      Register a new user
// @Description  Creates a new user and returns an authentication token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201  {object}  map[string]string "{"token": "..."}"
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/register [post]
func RegisterUser(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existingUser models.User
	if err := database.DB.Where("nickname = ? OR email = ?", input.Nickname, input.Email).First(&existingUser).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Nickname or email already exists"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Nickname:             input.Nickname,
		Email:                input.Email,
		PasswordHash:         string(hashedPassword),
		NotifyPostCommented:  true,
		NotifyCommentReplied: true,
		NotifyFriendRequests: true,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	token, err := jwt.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token})
}

// LoginUser godoc
// @Summary      Log in a user
// @Description  Authenticates a user with nickname/email and password, and returns a new token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  map[string]string "{"token": "..."}"
// @Failure      400  {object}  ErrorResponse "Invalid input"
// @Failure      401  {object}  ErrorResponse "Invalid credentials"
// @Failure      404  {object}  ErrorResponse "User not found"
// @Router       /auth/login [post]
func LoginUser(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.Where("nickname = ? OR email = ?", input.Login, input.Login).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := jwt.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// endregion

// region --- User Handlers ---

// GetUserByID godoc
// @Summary      Get user by ID
// @Description  Retrieves the public profile for a specific user, including the relationship to the viewer.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  PublicUserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [get]
func GetUserByID(c *gin.Context) {
	viewerID := actorID(c)
	targetUserID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if viewerID == uint(targetUserID) {
		GetMe(c)
		return
	}

	var targetUser models.User
	if err := database.DB.First(&targetUser, uint(targetUserID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	response, err := buildPublicUserResponse(targetUser, viewerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetMe godoc
// @Summary      Get current user's info
// @Description  Retrieves the private profile for the currently authenticated user.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  PrivateUserResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/me [get]
func GetMe(c *gin.Context) {
	viewerID := actorID(c)

	var user models.User
	if err := database.DB.First(&user, viewerID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var friendsCount int64
	database.DB.Model(&models.Friendship{}).
		Where("status = ?", models.StatusAccepted).
		Where("sender_id = ? OR receiver_id = ?", user.ID, user.ID).
		Count(&friendsCount)

	c.JSON(http.StatusOK, PrivateUserResponse{
		ID:                   user.ID,
		Nickname:             user.Nickname,
		Email:                user.Email,
		FriendsCount:         friendsCount,
		NotifyPostCommented:  user.NotifyPostCommented,
		NotifyCommentReplied: user.NotifyCommentReplied,
		NotifyFriendRequests: user.NotifyFriendRequests,
	})
}

// UpdateNotificationPrefs godoc
// @Summary      Update notification preferences
// @Description  Updates the authenticated user's notification preference flags.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body NotificationPrefsInput true "Preference flags"
// @Success      200  {object}  PrivateUserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /users/me/preferences [put]
func UpdateNotificationPrefs(c *gin.Context) {
	viewerID := actorID(c)

	var input NotificationPrefsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.NotifyPostCommented != nil {
		updates["notify_post_commented"] = *input.NotifyPostCommented
	}
	if input.NotifyCommentReplied != nil {
		updates["notify_comment_replied"] = *input.NotifyCommentReplied
	}
	if input.NotifyFriendRequests != nil {
		updates["notify_friend_requests"] = *input.NotifyFriendRequests
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&models.User{}).Where("id = ?", viewerID).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update preferences"})
			return
		}
	}

	GetMe(c)
}

// endregion

// region --- Helpers ---

func buildPublicUserResponse(targetUser models.User, viewerID uint) (PublicUserResponse, error) {
	var friendsCount int64
	database.DB.Model(&models.Friendship{}).
		Where("status = ?", models.StatusAccepted).
		Where("sender_id = ? OR receiver_id = ?", targetUser.ID, targetUser.ID).
		Count(&friendsCount)

	response := PublicUserResponse{
		ID:           targetUser.ID,
		Nickname:     targetUser.Nickname,
		FriendsCount: friendsCount,
	}

	friendship, err := friendGraph.StatusBetween(viewerID, targetUser.ID)
	if err != nil {
		return response, err
	}
	if friendship != nil {
		response.Relation = &friendship.Status
		if friendship.Status == models.StatusPending {
			sender := friendship.SenderID
			response.RequestedBy = &sender
		}
	}
	return response, nil
}

// endregion
