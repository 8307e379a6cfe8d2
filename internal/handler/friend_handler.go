package handler

import (
	"net/http"
	"strconv"

	"circleup/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// FriendRequestInput defines the structure for sending a friend request.
type FriendRequestInput struct {
	ReceiverID uint `json:"receiver_id" binding:"required"`
}

// FriendshipResponse defines the structure for a friendship resource.
type FriendshipResponse struct {
	ID         uint                    `json:"id"`
	SenderID   uint                    `json:"sender_id"`
	ReceiverID uint                    `json:"receiver_id"`
	Status     models.FriendshipStatus `json:"status"`
	Nickname   string                  `json:"nickname,omitempty"` // the other user, on request listings
}

func newFriendshipResponse(f models.Friendship, other *models.User) FriendshipResponse {
	response := FriendshipResponse{
		ID:         f.ID,
		SenderID:   f.SenderID,
		ReceiverID: f.ReceiverID,
		Status:     f.Status,
	}
	if other != nil {
		response.Nickname = other.Nickname
	}
	return response
}

// endregion

// SendFriendRequest godoc
// @Summary      Send friend request
// @Description  Creates a pending friendship between the caller and the receiver.
// @Tags         friends
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body FriendRequestInput true "Receiver"
// @Success      201  {object}  FriendshipResponse
// @Failure      400  {object}  ErrorResponse "Self request"
// @Failure      404  {object}  ErrorResponse "Receiver not found"
// @Failure      409  {object}  ErrorResponse "Relationship already exists"
// @Router       /friends/requests [post]
func SendFriendRequest(c *gin.Context) {
	var input FriendRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	friendship, err := friendGraph.SendRequest(actorID(c), input.ReceiverID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newFriendshipResponse(*friendship, nil))
}

// AcceptFriendRequest godoc
// @Summary      Accept friend request
// @Description  Accepts a pending friend request. Only the receiver may accept.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Friendship ID"
// @Success      200  {object}  FriendshipResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Pending request not found"
// @Router       /friends/requests/{id}/accept [post]
func AcceptFriendRequest(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid friendship ID"})
		return
	}

	friendship, err := friendGraph.Accept(uint(id), actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newFriendshipResponse(*friendship, nil))
}

// RejectFriendRequest godoc
// @Summary      Reject friend request
// @Description  Rejects a pending friend request, deleting it. Only the receiver may reject.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Friendship ID"
// @Success      200  {object}  map[string]string "{"message": "Request rejected"}"
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /friends/requests/{id}/reject [post]
func RejectFriendRequest(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid friendship ID"})
		return
	}

	if err := friendGraph.Reject(uint(id), actorID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request rejected"})
}

// CancelFriendRequest godoc
// @Summary      Cancel friend request
// @Description  Cancels a pending friend request, deleting it. Only the sender may cancel.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Friendship ID"
// @Success      200  {object}  map[string]string "{"message": "Request cancelled"}"
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /friends/requests/{id}/cancel [post]
func CancelFriendRequest(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid friendship ID"})
		return
	}

	if err := friendGraph.Cancel(uint(id), actorID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request cancelled"})
}

// RemoveFriend godoc
// @Summary      Remove friend
// @Description  Removes an accepted friendship. Either party may remove.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Friendship ID"
// @Success      200  {object}  map[string]string "{"message": "Friend removed"}"
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /friends/{id} [delete]
func RemoveFriend(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid friendship ID"})
		return
	}

	if err := friendGraph.Remove(uint(id), actorID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Friend removed"})
}

// GetFriends godoc
// @Summary      List friends
// @Description  Lists all users with an accepted friendship involving the caller.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   PublicUserResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /friends [get]
func GetFriends(c *gin.Context) {
	viewerID := actorID(c)

	friends, err := friendGraph.Friends(viewerID)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]PublicUserResponse, 0, len(friends))
	for _, friend := range friends {
		response, err := buildPublicUserResponse(friend, viewerID)
		if err != nil {
			respondError(c, err)
			return
		}
		responses = append(responses, response)
	}
	c.JSON(http.StatusOK, responses)
}

// GetSentRequests godoc
// @Summary      List sent friend requests
// @Description  Lists the caller's outgoing pending requests, paginated.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Page number" default(1)
// @Param        limit query     int  false  "Items per page" default(20)
// @Success      200  {object}  PaginatedResponse[FriendshipResponse]
// @Failure      401  {object}  ErrorResponse
// @Router       /friends/requests/sent [get]
func GetSentRequests(c *gin.Context) {
	listRequests(c, friendGraph.SentRequests, func(f models.Friendship) *models.User { return &f.Receiver })
}

// GetReceivedRequests godoc
// @Summary      List received friend requests
// @Description  Lists the caller's incoming pending requests, paginated.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Page number" default(1)
// @Param        limit query     int  false  "Items per page" default(20)
// @Success      200  {object}  PaginatedResponse[FriendshipResponse]
// @Failure      401  {object}  ErrorResponse
// @Router       /friends/requests/received [get]
func GetReceivedRequests(c *gin.Context) {
	listRequests(c, friendGraph.ReceivedRequests, func(f models.Friendship) *models.User { return &f.Sender })
}

func listRequests(c *gin.Context, fetch func(uint, int, int) ([]models.Friendship, int64, error), other func(models.Friendship) *models.User) {
	page, limit := pageParams(c)

	requests, total, err := fetch(actorID(c), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]FriendshipResponse, len(requests))
	for i, request := range requests {
		responses[i] = newFriendshipResponse(request, other(request))
	}
	c.JSON(http.StatusOK, NewPaginatedResponse(responses, total, page, limit))
}
