package repositories

import (
	"github.com/ideavault/backend/internal/models"
	"gorm.io/gorm"
)

// TopicRepository defines the interface for topic data operations
type TopicRepository interface {
	CreateTopic(topic *models.Topic) error
	GetTopics() ([]models.Topic, error)
	GetTopicsByIDs(ids []uint) ([]models.Topic, error)
}

// PostgresTopicRepository implements TopicRepository for PostgreSQL
type PostgresTopicRepository struct {
	db *gorm.DB
}

// NewPostgresTopicRepository creates a new PostgresTopicRepository
func NewPostgresTopicRepository(db *gorm.DB) *PostgresTopicRepository {
	return &PostgresTopicRepository{db: db}
}

// CreateTopic creates a new topic in PostgreSQL
func (r *PostgresTopicRepository) CreateTopic(topic *models.Topic) error {
	return r.db.Create(topic).Error
}

// GetTopics retrieves all topics from PostgreSQL
func (r *PostgresTopicRepository) GetTopics() ([]models.Topic, error) {
	var topics []models.Topic
	if err := r.db.Order("name").Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

// GetTopicsByIDs retrieves the topics matching the given ids
func (r *PostgresTopicRepository) GetTopicsByIDs(ids []uint) ([]models.Topic, error) {
	var topics []models.Topic
	if len(ids) == 0 {
		return topics, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}
