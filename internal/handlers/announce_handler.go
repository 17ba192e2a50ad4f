package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ideavault/backend/internal/models"
	"github.com/ideavault/backend/internal/repositories"
	"github.com/ideavault/backend/internal/target"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// AnnounceHandler handles site-wide announcement HTTP requests. Creating
// and deleting announcements is staff only.
type AnnounceHandler struct {
	announceRepository     repositories.AnnounceRepository
	userRepository         repositories.UserRepository
	notificationRepository repositories.NotificationRepository
}

// NewAnnounceHandler creates a new AnnounceHandler
func NewAnnounceHandler(announceRepo repositories.AnnounceRepository, userRepo repositories.UserRepository, notifRepo repositories.NotificationRepository) *AnnounceHandler {
	return &AnnounceHandler{
		announceRepository:     announceRepo,
		userRepository:         userRepo,
		notificationRepository: notifRepo,
	}
}

// RegisterAnnounceRoutes registers announcement-related routes
func (h *AnnounceHandler) RegisterAnnounceRoutes(g *echo.Group) {
	g.POST("/announces", h.CreateAnnounce)
	g.GET("/announces", h.GetAnnounces)
	g.GET("/announces/:id", h.GetAnnounce)
	g.DELETE("/announces/:id", h.DeleteAnnounce)
}

// requireStaff loads the caller and checks the staff bit
func (h *AnnounceHandler) requireStaff(c echo.Context) (*models.User, *echo.HTTPError) {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	user, err := h.userRepository.GetUserByID(currentUserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "User not found")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !user.IsStaff {
		return nil, echo.NewHTTPError(http.StatusForbidden, "Staff only")
	}
	return user, nil
}

// CreateAnnounce publishes an announcement and fans a notification out to
// every active user. The notification references the announcement by its
// hex document id only.
func (h *AnnounceHandler) CreateAnnounce(c echo.Context) error {
	staff, httpErr := h.requireStaff(c)
	if httpErr != nil {
		return httpErr
	}

	var req models.CreateAnnounceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	announce := &models.Announce{
		Title:       req.Title,
		Content:     req.Content,
		IsImportant: req.IsImportant,
	}
	if err := h.announceRepository.CreateAnnounce(c.Request().Context(), announce); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Best effort fan-out; the announcement itself already succeeded.
	if users, err := h.userRepository.GetUsers(); err == nil {
		for _, user := range users {
			if user.ID == staff.ID {
				continue
			}
			_ = h.notificationRepository.CreateNotification(&models.Notification{
				NotificatorID: staff.ID,
				RecipientID:   user.ID,
				Type:          models.NotificationTypeAnnounce,
				ItemKind:      target.KindAnnounce,
				ItemID:        announce.ID.Hex(),
			})
		}
	}

	return c.JSON(http.StatusCreated, announce)
}

// GetAnnounces lists announcements newest first with skip/limit paging
func (h *AnnounceHandler) GetAnnounces(c echo.Context) error {
	skip, _ := strconv.ParseInt(c.QueryParam("skip"), 10, 64)
	if skip < 0 {
		skip = 0
	}
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	announces, err := h.announceRepository.GetAnnounces(c.Request().Context(), skip, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, announces)
}

// GetAnnounce retrieves one announcement by its hex id
func (h *AnnounceHandler) GetAnnounce(c echo.Context) error {
	announce, err := h.announceRepository.GetAnnounceByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrInvalidAnnounceID) {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid announcement ID")
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			return echo.NewHTTPError(http.StatusNotFound, "Announcement not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, announce)
}

// DeleteAnnounce removes an announcement. Notifications that referenced it
// keep their now-dangling item id.
func (h *AnnounceHandler) DeleteAnnounce(c echo.Context) error {
	if _, httpErr := h.requireStaff(c); httpErr != nil {
		return httpErr
	}

	if err := h.announceRepository.DeleteAnnounce(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, repositories.ErrInvalidAnnounceID) {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid announcement ID")
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			return echo.NewHTTPError(http.StatusNotFound, "Announcement not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
