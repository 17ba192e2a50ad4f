package handlers

import (
	"net/http"
	"strconv"

	"github.com/ideavault/backend/internal/models"
	"github.com/ideavault/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// IdeaHandler handles idea-related HTTP requests
type IdeaHandler struct {
	ideaRepository  repositories.IdeaRepository
	topicRepository repositories.TopicRepository
}

// NewIdeaHandler creates a new IdeaHandler
func NewIdeaHandler(ideaRepo repositories.IdeaRepository, topicRepo repositories.TopicRepository) *IdeaHandler {
	return &IdeaHandler{ideaRepository: ideaRepo, topicRepository: topicRepo}
}

// RegisterIdeaRoutes registers idea-related routes
func (h *IdeaHandler) RegisterIdeaRoutes(g *echo.Group) {
	g.POST("/ideas", h.CreateIdea)
	g.GET("/ideas", h.GetIdeas)
	g.GET("/ideas/mine", h.GetMyIdeas)
	g.GET("/ideas/:id", h.GetIdea)
	g.PUT("/ideas/:id", h.UpdateIdea)
	g.DELETE("/ideas/:id", h.DeleteIdea)
}

// CreateIdea creates a new idea, unpublished by default
func (h *IdeaHandler) CreateIdea(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateIdeaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	topics, err := h.topicRepository.GetTopicsByIDs(req.TopicIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if len(topics) != len(req.TopicIDs) {
		return echo.NewHTTPError(http.StatusBadRequest, "One or more topics do not exist")
	}

	idea := &models.Idea{
		CreatorID: currentUserID,
		Title:     req.Title,
		Content:   req.Content,
		Topics:    topics,
	}
	if err := h.ideaRepository.CreateIdea(idea); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, idea)
}

// GetIdeas lists published ideas, optionally filtered by creator
func (h *IdeaHandler) GetIdeas(c echo.Context) error {
	filter := repositories.IdeaFilter{PublishedOnly: true}

	if creator := c.QueryParam("creator_id"); creator != "" {
		id, err := strconv.ParseUint(creator, 10, 32)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid creator_id")
		}
		creatorID := uint(id)
		filter.CreatorID = &creatorID
	}

	ideas, err := h.ideaRepository.GetIdeas(filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, ideas)
}

// GetMyIdeas lists the authenticated user's ideas, drafts included
func (h *IdeaHandler) GetMyIdeas(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	ideas, err := h.ideaRepository.GetIdeas(repositories.IdeaFilter{CreatorID: &currentUserID})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, ideas)
}

// GetIdea retrieves a single idea. Unpublished ideas are visible only to
// their creator.
func (h *IdeaHandler) GetIdea(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid idea ID")
	}

	idea, err := h.ideaRepository.GetIdeaByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Idea not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if !idea.IsPublished && idea.CreatorID != getUserIDFromContext(c) {
		return echo.NewHTTPError(http.StatusNotFound, "Idea not found")
	}

	return c.JSON(http.StatusOK, idea)
}

// UpdateIdea updates an idea. Only the creator may mutate it.
func (h *IdeaHandler) UpdateIdea(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid idea ID")
	}

	idea, err := h.ideaRepository.GetIdeaByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Idea not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if idea.CreatorID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "Only the creator can update this idea")
	}

	var req models.UpdateIdeaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if req.Title != "" {
		idea.Title = req.Title
	}
	if req.Content != "" {
		idea.Content = req.Content
	}
	if req.IsPublished != nil {
		idea.IsPublished = *req.IsPublished
	}

	if err := h.ideaRepository.UpdateIdea(idea); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if req.TopicIDs != nil {
		topics, err := h.topicRepository.GetTopicsByIDs(req.TopicIDs)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		if len(topics) != len(req.TopicIDs) {
			return echo.NewHTTPError(http.StatusBadRequest, "One or more topics do not exist")
		}
		if err := h.ideaRepository.ReplaceTopics(idea, topics); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, idea)
}

// DeleteIdea deletes an idea. Only the creator may delete it. Threads and
// likes on the idea cascade away with it.
func (h *IdeaHandler) DeleteIdea(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid idea ID")
	}

	idea, err := h.ideaRepository.GetIdeaByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Idea not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if idea.CreatorID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "Only the creator can delete this idea")
	}

	if err := h.ideaRepository.DeleteIdea(uint(id)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
