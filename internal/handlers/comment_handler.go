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

// CommentHandler handles comment-related HTTP requests
type CommentHandler struct {
	commentRepository      repositories.CommentRepository
	threadRepository       repositories.ThreadRepository
	notificationRepository repositories.NotificationRepository
	store                  target.Getter
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, threadRepo repositories.ThreadRepository, notifRepo repositories.NotificationRepository, store target.Getter) *CommentHandler {
	return &CommentHandler{
		commentRepository:      commentRepo,
		threadRepository:       threadRepo,
		notificationRepository: notifRepo,
		store:                  store,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/threads/:id/comments", h.CreateComment)
	g.GET("/threads/:id/comments", h.GetThreadComments)
	g.PUT("/comments/:id", h.UpdateComment)
	g.DELETE("/comments/:id", h.DeleteComment)
}

// CreateComment posts a comment to a thread and notifies the owner of the
// content the thread hangs off.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	threadID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid thread ID")
	}

	thread, err := h.threadRepository.GetThreadByID(uint(threadID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Thread not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment := &models.Comment{
		CommentorID:    currentUserID,
		TargetThreadID: thread.ID,
		Content:        req.Content,
	}
	if err := h.commentRepository.CreateComment(comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.notifyThreadOwner(c, currentUserID, thread, comment)

	return c.JSON(http.StatusCreated, comment)
}

// notifyThreadOwner fans a comment notification out to the owner of the
// thread's target. Self-comments and broken lookups notify nobody; the
// comment itself already succeeded.
func (h *CommentHandler) notifyThreadOwner(c echo.Context, commentorID uint, thread *models.Thread, comment *models.Comment) {
	kind, targetID, err := thread.Target()
	if err != nil {
		return
	}
	entity, err := h.store.Get(c.Request().Context(), kind, targetID)
	if err != nil {
		return
	}
	ownerID, ok := contentOwnerID(entity)
	if !ok || ownerID == commentorID {
		return
	}

	notif := &models.Notification{
		NotificatorID: commentorID,
		RecipientID:   ownerID,
		Type:          models.NotificationTypeComment,
		ItemKind:      target.KindComment,
		ItemID:        strconv.FormatUint(uint64(comment.ID), 10),
	}
	_ = h.notificationRepository.CreateNotification(notif)
}

// GetThreadComments lists a thread's comments, oldest first
func (h *CommentHandler) GetThreadComments(c echo.Context) error {
	threadID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid thread ID")
	}

	if _, err := h.threadRepository.GetThreadByID(uint(threadID)); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Thread not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	comments, err := h.commentRepository.GetCommentsByThreadID(uint(threadID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, comments)
}

// UpdateComment edits a comment's content and marks it as modified. Only
// the commentor may edit.
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}

	comment, err := h.commentRepository.GetCommentByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if comment.CommentorID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "Only the commentor can update this comment")
	}

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment.Content = req.Content
	comment.IsModified = true
	if err := h.commentRepository.UpdateComment(comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, comment)
}

// DeleteComment deletes a comment. Only the commentor may delete.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}

	comment, err := h.commentRepository.GetCommentByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if comment.CommentorID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "Only the commentor can delete this comment")
	}

	if err := h.commentRepository.DeleteComment(uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
