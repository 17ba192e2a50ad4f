package handlers

import (
	"net/http"

	"github.com/ideavault/backend/internal/models"
	"github.com/ideavault/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// FeedHandler serves the home feed: published ideas from followed users
type FeedHandler struct {
	ideaRepository   repositories.IdeaRepository
	followRepository repositories.FollowRepository
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(ideaRepo repositories.IdeaRepository, followRepo repositories.FollowRepository) *FeedHandler {
	return &FeedHandler{ideaRepository: ideaRepo, followRepository: followRepo}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
}

// GetFeed lists published ideas from the users the caller follows, newest
// first. Unfollowed users drop out immediately because the following set is
// computed from the live is_following flags.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	followingIDs, err := h.followRepository.GetFollowingIDs(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if len(followingIDs) == 0 {
		return c.JSON(http.StatusOK, []models.Idea{})
	}

	ideas, err := h.ideaRepository.GetPublishedIdeasByCreatorIDs(followingIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, ideas)
}
