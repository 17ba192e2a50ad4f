package handlers

import (
	"net/http"

	"github.com/ideavault/backend/internal/models"
	"github.com/ideavault/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// TopicHandler handles topic-related HTTP requests
type TopicHandler struct {
	topicRepository repositories.TopicRepository
}

// NewTopicHandler creates a new TopicHandler
func NewTopicHandler(topicRepo repositories.TopicRepository) *TopicHandler {
	return &TopicHandler{topicRepository: topicRepo}
}

// RegisterTopicRoutes registers topic-related routes
func (h *TopicHandler) RegisterTopicRoutes(g *echo.Group) {
	g.POST("/topics", h.CreateTopic)
	g.GET("/topics", h.GetTopics)
}

// CreateTopic creates a new topic. Topic names are globally unique.
func (h *TopicHandler) CreateTopic(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateTopicRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	topic := &models.Topic{Name: req.Name}
	if err := h.topicRepository.CreateTopic(topic); err != nil {
		return echo.NewHTTPError(http.StatusConflict, "Topic already exists")
	}

	return c.JSON(http.StatusCreated, topic)
}

// GetTopics lists all topics
func (h *TopicHandler) GetTopics(c echo.Context) error {
	topics, err := h.topicRepository.GetTopics()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, topics)
}
