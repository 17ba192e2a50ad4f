package repositories

import (
	"github.com/ideavault/backend/internal/models"
	"gorm.io/gorm"
)

// IdeaFilter narrows idea listings.
type IdeaFilter struct {
	CreatorID     *uint
	PublishedOnly bool
}

// IdeaRepository defines the interface for idea data operations
type IdeaRepository interface {
	CreateIdea(idea *models.Idea) error
	GetIdeaByID(id uint) (*models.Idea, error)
	GetIdeas(filter IdeaFilter) ([]models.Idea, error)
	GetPublishedIdeasByCreatorIDs(creatorIDs []uint) ([]models.Idea, error)
	UpdateIdea(idea *models.Idea) error
	ReplaceTopics(idea *models.Idea, topics []models.Topic) error
	DeleteIdea(id uint) error
}

// PostgresIdeaRepository implements IdeaRepository for PostgreSQL
type PostgresIdeaRepository struct {
	db *gorm.DB
}

// NewPostgresIdeaRepository creates a new PostgresIdeaRepository
func NewPostgresIdeaRepository(db *gorm.DB) *PostgresIdeaRepository {
	return &PostgresIdeaRepository{db: db}
}

// CreateIdea creates a new idea (and its topic associations) in PostgreSQL
func (r *PostgresIdeaRepository) CreateIdea(idea *models.Idea) error {
	return r.db.Create(idea).Error
}

// GetIdeaByID retrieves an idea with its topics by ID from PostgreSQL
func (r *PostgresIdeaRepository) GetIdeaByID(id uint) (*models.Idea, error) {
	var idea models.Idea
	if err := r.db.Preload("Topics").First(&idea, id).Error; err != nil {
		return nil, err
	}
	return &idea, nil
}

// GetIdeas retrieves ideas matching the filter, newest first
func (r *PostgresIdeaRepository) GetIdeas(filter IdeaFilter) ([]models.Idea, error) {
	q := r.db.Preload("Topics").Order("created_at DESC")
	if filter.CreatorID != nil {
		q = q.Where("creator_id = ?", *filter.CreatorID)
	}
	if filter.PublishedOnly {
		q = q.Where("is_published = ?", true)
	}
	var ideas []models.Idea
	if err := q.Find(&ideas).Error; err != nil {
		return nil, err
	}
	return ideas, nil
}

// GetPublishedIdeasByCreatorIDs retrieves published ideas from the given
// creators, newest first (feed query)
func (r *PostgresIdeaRepository) GetPublishedIdeasByCreatorIDs(creatorIDs []uint) ([]models.Idea, error) {
	var ideas []models.Idea
	if len(creatorIDs) == 0 {
		return ideas, nil
	}
	err := r.db.Preload("Topics").
		Where("creator_id IN ? AND is_published = ?", creatorIDs, true).
		Order("created_at DESC").
		Find(&ideas).Error
	return ideas, err
}

// UpdateIdea updates an existing idea in PostgreSQL
func (r *PostgresIdeaRepository) UpdateIdea(idea *models.Idea) error {
	return r.db.Omit("Topics").Save(idea).Error
}

// ReplaceTopics replaces an idea's topic associations
func (r *PostgresIdeaRepository) ReplaceTopics(idea *models.Idea, topics []models.Topic) error {
	return r.db.Model(idea).Association("Topics").Replace(topics)
}

// DeleteIdea deletes an idea by ID from PostgreSQL
func (r *PostgresIdeaRepository) DeleteIdea(id uint) error {
	return r.db.Delete(&models.Idea{}, id).Error
}
