package handlers

import (
	"net/http"
	"strconv"

	"github.com/ideavault/backend/internal/models"
	"github.com/ideavault/backend/internal/repositories"
	"github.com/ideavault/backend/internal/target"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followRepository       repositories.FollowRepository
	userRepository         repositories.UserRepository
	notificationRepository repositories.NotificationRepository
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository, userRepo repositories.UserRepository, notifRepo repositories.NotificationRepository) *FollowHandler {
	return &FollowHandler{
		followRepository:       followRepo,
		userRepository:         userRepo,
		notificationRepository: notifRepo,
	}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:id/follow", h.FollowUser)
	g.PUT("/users/:id/follow", h.ToggleFollow)
	g.GET("/users/:id/followers", h.GetFollowers)
	g.GET("/users/:id/following", h.GetFollowing)
}

func (h *FollowHandler) targetUserID(c echo.Context) (uint, *echo.HTTPError) {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	if currentUserID == uint(targetID) {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Cannot follow yourself")
	}

	// The followed user must exist; the follow row cascades away with them.
	if _, err := h.userRepository.GetUserByID(uint(targetID)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return 0, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return uint(targetID), nil
}

// FollowUser creates a follow relationship (permissive create path)
func (h *FollowHandler) FollowUser(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	targetID, httpErr := h.targetUserID(c)
	if httpErr != nil {
		return httpErr
	}

	if _, err := h.followRepository.GetFollow(currentUserID, targetID); err == nil {
		return echo.NewHTTPError(http.StatusConflict, "Follow relationship already exists")
	}

	follow := &models.Follow{
		FollowingUserID: currentUserID,
		FollowedUserID:  targetID,
	}
	if err := h.followRepository.CreateFollow(follow); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.notifyFollowed(currentUserID, targetID)

	return c.JSON(http.StatusCreated, follow)
}

// ToggleFollow flips the follow state to the requested value, creating the
// row on first use. Repeated toggles mutate the same row.
func (h *FollowHandler) ToggleFollow(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	targetID, httpErr := h.targetUserID(c)
	if httpErr != nil {
		return httpErr
	}

	var req models.UpdateFollowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	follow, err := h.followRepository.Toggle(currentUserID, targetID, *req.IsFollowing)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if *req.IsFollowing {
		h.notifyFollowed(currentUserID, targetID)
	}

	return c.JSON(http.StatusOK, follow)
}

// notifyFollowed records a follow notification for the followed user.
// Best effort: a failed notification never fails the follow.
func (h *FollowHandler) notifyFollowed(followerID, followedID uint) {
	notif := &models.Notification{
		NotificatorID: followerID,
		RecipientID:   followedID,
		Type:          models.NotificationTypeFollow,
		ItemKind:      target.KindFollowedUser,
		ItemID:        strconv.FormatUint(uint64(followedID), 10),
	}
	_ = h.notificationRepository.CreateNotification(notif)
}

// GetFollowers lists the users following :id
func (h *FollowHandler) GetFollowers(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	users, err := h.followRepository.GetFollowers(uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, users)
}

// GetFollowing lists the users :id follows
func (h *FollowHandler) GetFollowing(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	users, err := h.followRepository.GetFollowing(uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, users)
}
