package handlers

import (
	"net/http"
	"strconv"

	"github.com/ideavault/backend/internal/extid"
	"github.com/ideavault/backend/internal/models"
	"github.com/ideavault/backend/internal/repositories"
	"github.com/ideavault/backend/internal/target"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// NotificationHandler handles notification-related HTTP requests.
// Notifications address their item by kind plus a bare internal id with no
// foreign key, so the item may be deleted out from under an unread
// notification and the reference left dangling.
type NotificationHandler struct {
	notificationRepository repositories.NotificationRepository
	userRepository         repositories.UserRepository
	codec                  extid.Codec
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notifRepo repositories.NotificationRepository, userRepo repositories.UserRepository, codec extid.Codec) *NotificationHandler {
	return &NotificationHandler{notificationRepository: notifRepo, userRepository: userRepo, codec: codec}
}

// RegisterNotificationRoutes registers notification-related routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.POST("/notifications", h.CreateNotification)
	g.GET("/notifications", h.GetNotifications)
	g.GET("/notifications/unread-count", h.GetUnreadCount)
	g.PUT("/notifications/:id/read", h.MarkAsRead)
	g.PUT("/notifications/read-all", h.MarkAllAsRead)
}

// NotificationResponse pairs a notification with a summary of the user who
// triggered it.
type NotificationResponse struct {
	models.Notification
	NotificatorName string `json:"notificator_name"`
}

// CreateNotification records a notification. The type and the item kind are
// validated independently; the item id is decoded once here and stored
// bare, with no existence check against the item.
func (h *NotificationHandler) CreateNotification(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateNotificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	notifType := models.NotificationType(req.NotificationType)
	if !notifType.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid notification type "+req.NotificationType)
	}

	itemKind := target.Kind(req.NotifiedItemType)
	if !target.NotificationItems.Contains(itemKind) {
		return echo.NewHTTPError(http.StatusBadRequest, "Notifications cannot reference "+req.NotifiedItemType)
	}

	encodedKind, itemID, err := h.codec.Decode(req.NotifiedItemID)
	if err != nil {
		return httpErrorForTarget(err)
	}
	if encodedKind != itemKind {
		return echo.NewHTTPError(http.StatusBadRequest, "Item id encodes "+string(encodedKind)+", want "+string(itemKind))
	}

	recipientKind, recipientRaw, err := h.codec.Decode(req.RecipientID)
	if err != nil {
		return httpErrorForTarget(err)
	}
	if recipientKind != target.KindFollowedUser {
		return echo.NewHTTPError(http.StatusBadRequest, "Recipient id must reference a user")
	}
	recipientID, err := strconv.ParseUint(recipientRaw, 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid recipient id")
	}

	// The recipient is a real FK, unlike the item.
	if _, err := h.userRepository.GetUserByID(uint(recipientID)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Recipient not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	notif := &models.Notification{
		NotificatorID: currentUserID,
		RecipientID:   uint(recipientID),
		Type:          notifType,
		ItemKind:      itemKind,
		ItemID:        itemID,
	}
	if err := h.notificationRepository.CreateNotification(notif); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, notif)
}

// GetNotifications lists the caller's notifications newest first, enriched
// with the notificator's username.
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	notifications, total, err := h.notificationRepository.GetByRecipientID(currentUserID, page, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	names := make(map[uint]string)
	responses := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		name, ok := names[n.NotificatorID]
		if !ok {
			if user, err := h.userRepository.GetUserByID(n.NotificatorID); err == nil {
				name = user.Username
			}
			names[n.NotificatorID] = name
		}
		responses = append(responses, NotificationResponse{Notification: n, NotificatorName: name})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"notifications": responses,
		"total":         total,
		"page":          page,
		"limit":         limit,
	})
}

// GetUnreadCount returns the caller's unread notification count
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	count, err := h.notificationRepository.GetUnreadCount(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"count": count})
}

// MarkAsRead marks one of the caller's notifications as checked
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid notification ID")
	}

	if err := h.notificationRepository.MarkAsChecked(uint(id), currentUserID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Notification not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// MarkAllAsRead marks all of the caller's notifications as checked
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	if err := h.notificationRepository.MarkAllAsChecked(currentUserID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
