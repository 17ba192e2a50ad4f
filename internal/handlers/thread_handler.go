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
	"gorm.io/gorm"
)

// ThreadHandler handles comment-thread HTTP requests. A thread always hangs
// off exactly one idea or memo, addressed polymorphically.
type ThreadHandler struct {
	threadRepository repositories.ThreadRepository
	resolver         *target.Resolver
	codec            extid.Codec
	log              *zap.Logger
}

// NewThreadHandler creates a new ThreadHandler
func NewThreadHandler(threadRepo repositories.ThreadRepository, resolver *target.Resolver, codec extid.Codec, log *zap.Logger) *ThreadHandler {
	return &ThreadHandler{threadRepository: threadRepo, resolver: resolver, codec: codec, log: log}
}

// RegisterThreadRoutes registers thread-related routes
func (h *ThreadHandler) RegisterThreadRoutes(g *echo.Group) {
	g.POST("/threads", h.CreateThread)
	g.GET("/threads", h.GetThreadsForTarget)
	g.GET("/threads/:id", h.GetThread)
}

// CreateThread opens a thread on an idea or a memo. The target is resolved
// and validated before anything is written.
func (h *ThreadHandler) CreateThread(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateThreadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ref, err := h.resolver.Resolve(c.Request().Context(), target.ThreadTargets, target.Kind(req.ThreadTargetType), req.Candidates())
	if err != nil {
		return httpErrorForTarget(err)
	}

	thread := &models.Thread{}
	thread.SetTarget(ref)

	if err := h.threadRepository.CreateThread(thread); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, thread)
}

// GetThread retrieves a single thread, defensively checking that its stored
// reference is still well formed.
func (h *ThreadHandler) GetThread(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid thread ID")
	}

	thread, err := h.threadRepository.GetThreadByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Thread not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if _, _, err := thread.Target(); err != nil {
		if errors.Is(err, target.ErrCorruptReference) {
			h.log.Error("thread carries a corrupt target reference",
				zap.Uint("thread_id", thread.ID),
				zap.Error(err))
		}
		return httpErrorForTarget(err)
	}

	return c.JSON(http.StatusOK, thread)
}

// GetThreadsForTarget lists the threads attached to one target, addressed
// by its opaque external id via the ?target= query parameter.
func (h *ThreadHandler) GetThreadsForTarget(c echo.Context) error {
	external := c.QueryParam("target")
	if external == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Query parameter 'target' is required")
	}

	kind, raw, err := h.codec.Decode(external)
	if err != nil {
		return httpErrorForTarget(err)
	}
	if !target.ThreadTargets.Contains(kind) {
		return echo.NewHTTPError(http.StatusBadRequest, "Threads cannot target "+string(kind))
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid target id")
	}

	threads, err := h.threadRepository.GetThreadsForTarget(target.Ref{Kind: kind, ID: uint(id)})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, threads)
}
