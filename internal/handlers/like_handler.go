package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ideavault/backend/internal/extid"
	"github.com/ideavault/backend/internal/models"
	"github.com/ideavault/backend/internal/repositories"
	"github.com/ideavault/backend/internal/target"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// LikeHandler handles like-related HTTP requests. Likes are boolean-state
// rows: liking creates or re-activates the row, unliking deactivates it,
// nothing is ever deleted.
type LikeHandler struct {
	likeRepository         repositories.LikeRepository
	notificationRepository repositories.NotificationRepository
	resolver               *target.Resolver
	codec                  extid.Codec
	log                    *zap.Logger
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository, notifRepo repositories.NotificationRepository, resolver *target.Resolver, codec extid.Codec, log *zap.Logger) *LikeHandler {
	return &LikeHandler{
		likeRepository:         likeRepo,
		notificationRepository: notifRepo,
		resolver:               resolver,
		codec:                  codec,
		log:                    log,
	}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/likes", h.CreateLike)
	g.PUT("/likes", h.ToggleLike)
	g.GET("/likes/count", h.GetLikesCount)
	g.GET("/likes/mine", h.GetMyLikes)
}

// CreateLike likes a target. The target is resolved first, then the like
// state is set true by an atomic upsert, so re-liking is idempotent.
func (h *LikeHandler) CreateLike(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateLikeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ref, err := h.resolver.Resolve(c.Request().Context(), target.LikeTargets, target.Kind(req.LikeTargetType), req.Candidates())
	if err != nil {
		return httpErrorForTarget(err)
	}

	wasLiked := h.isActivelyLiked(currentUserID, ref)

	like, err := h.likeRepository.Toggle(currentUserID, ref, true)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if !wasLiked {
		h.notifyContentOwner(currentUserID, ref)
	}

	return c.JSON(http.StatusCreated, like)
}

// ToggleLike sets the like state on a target to the requested value,
// creating the row on first use.
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.UpdateLikeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ref, err := h.resolver.Resolve(c.Request().Context(), target.LikeTargets, target.Kind(req.LikeTargetType), req.Candidates())
	if err != nil {
		return httpErrorForTarget(err)
	}

	wasLiked := h.isActivelyLiked(currentUserID, ref)

	like, err := h.likeRepository.Toggle(currentUserID, ref, *req.IsLiked)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if *req.IsLiked && !wasLiked {
		h.notifyContentOwner(currentUserID, ref)
	}

	return c.JSON(http.StatusOK, like)
}

// isActivelyLiked reports whether the actor already has an active like on
// the target. Notifications fire only on activation, so re-liking an
// already liked target stays silent.
func (h *LikeHandler) isActivelyLiked(actorID uint, ref target.Ref) bool {
	prev, err := h.likeRepository.GetLike(actorID, ref)
	return err == nil && prev.IsLiked
}

// notifyContentOwner fans a like notification out to the liked content's
// owner. Self-likes notify nobody; a failed notification never fails the
// like.
func (h *LikeHandler) notifyContentOwner(likerID uint, ref target.Ref) {
	ownerID, ok := contentOwnerID(ref.Entity)
	if !ok || ownerID == likerID {
		return
	}

	notif := &models.Notification{
		NotificatorID: likerID,
		RecipientID:   ownerID,
		Type:          models.NotificationTypeLike,
		ItemKind:      ref.Kind,
		ItemID:        strconv.FormatUint(uint64(ref.ID), 10),
	}
	_ = h.notificationRepository.CreateNotification(notif)
}

// GetLikesCount returns the number of active likes on one target, addressed
// by its opaque external id via the ?target= query parameter.
func (h *LikeHandler) GetLikesCount(c echo.Context) error {
	external := c.QueryParam("target")
	if external == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Query parameter 'target' is required")
	}

	kind, raw, err := h.codec.Decode(external)
	if err != nil {
		return httpErrorForTarget(err)
	}
	if !target.LikeTargets.Contains(kind) {
		return echo.NewHTTPError(http.StatusBadRequest, "Likes cannot target "+string(kind))
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid target id")
	}

	count, err := h.likeRepository.GetLikesCountForTarget(target.Ref{Kind: kind, ID: uint(id)})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"count": count})
}

// GetMyLikes lists the caller's like rows, active and inactive. Rows whose
// stored reference no longer rehydrates are dropped from the response and
// logged.
func (h *LikeHandler) GetMyLikes(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	likes, err := h.likeRepository.GetLikesByUserID(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	out := make([]models.Like, 0, len(likes))
	for _, like := range likes {
		if _, _, err := like.Target(); err != nil {
			if errors.Is(err, target.ErrCorruptReference) {
				h.log.Error("like carries a corrupt target reference",
					zap.Uint("like_id", like.ID),
					zap.Error(err))
				continue
			}
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		out = append(out, like)
	}
	return c.JSON(http.StatusOK, out)
}
