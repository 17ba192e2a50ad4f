package handlers

import (
	"net/http"
	"strconv"

	"github.com/ideavault/backend/internal/models"
	"github.com/ideavault/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// MemoHandler handles memo-related HTTP requests
type MemoHandler struct {
	memoRepository repositories.MemoRepository
}

// NewMemoHandler creates a new MemoHandler
func NewMemoHandler(memoRepo repositories.MemoRepository) *MemoHandler {
	return &MemoHandler{memoRepository: memoRepo}
}

// RegisterMemoRoutes registers memo-related routes
func (h *MemoHandler) RegisterMemoRoutes(g *echo.Group) {
	g.POST("/memos", h.CreateMemo)
	g.GET("/memos/mine", h.GetMyMemos)
	g.GET("/memos/:id", h.GetMemo)
	g.PUT("/memos/:id", h.UpdateMemo)
	g.DELETE("/memos/:id", h.DeleteMemo)
}

// CreateMemo creates a new memo, unpublished by default
func (h *MemoHandler) CreateMemo(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateMemoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	memo := &models.Memo{CreatorID: currentUserID, Title: req.Title}
	if err := h.memoRepository.CreateMemo(memo); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, memo)
}

// GetMyMemos lists the authenticated user's memos
func (h *MemoHandler) GetMyMemos(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	memos, err := h.memoRepository.GetMemosByCreatorID(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, memos)
}

// GetMemo retrieves a single memo. Unpublished memos are visible only to
// their creator.
func (h *MemoHandler) GetMemo(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid memo ID")
	}

	memo, err := h.memoRepository.GetMemoByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Memo not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if !memo.IsPublished && memo.CreatorID != getUserIDFromContext(c) {
		return echo.NewHTTPError(http.StatusNotFound, "Memo not found")
	}

	return c.JSON(http.StatusOK, memo)
}

// UpdateMemo updates a memo. Only the creator may mutate it.
func (h *MemoHandler) UpdateMemo(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid memo ID")
	}

	memo, err := h.memoRepository.GetMemoByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Memo not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if memo.CreatorID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "Only the creator can update this memo")
	}

	var req models.UpdateMemoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if req.Title != "" {
		memo.Title = req.Title
	}
	if req.IsPublished != nil {
		memo.IsPublished = *req.IsPublished
	}

	if err := h.memoRepository.UpdateMemo(memo); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, memo)
}

// DeleteMemo deletes a memo. Only the creator may delete it.
func (h *MemoHandler) DeleteMemo(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid memo ID")
	}

	memo, err := h.memoRepository.GetMemoByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Memo not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if memo.CreatorID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "Only the creator can delete this memo")
	}

	if err := h.memoRepository.DeleteMemo(uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
