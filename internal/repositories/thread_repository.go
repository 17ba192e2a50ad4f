package repositories

import (
	"fmt"

	"github.com/ideavault/backend/internal/models"
	"github.com/ideavault/backend/internal/target"
	"gorm.io/gorm"
)

// ThreadRepository defines the interface for thread data operations
type ThreadRepository interface {
	CreateThread(thread *models.Thread) error
	GetThreadByID(id uint) (*models.Thread, error)
	GetThreadsForTarget(ref target.Ref) ([]models.Thread, error)
	DeleteThread(id uint) error
}

// PostgresThreadRepository implements ThreadRepository for PostgreSQL
type PostgresThreadRepository struct {
	db *gorm.DB
}

// NewPostgresThreadRepository creates a new PostgresThreadRepository
func NewPostgresThreadRepository(db *gorm.DB) *PostgresThreadRepository {
	return &PostgresThreadRepository{db: db}
}

// CreateThread creates a new thread in PostgreSQL. The thread must carry a
// target set from a resolved reference.
func (r *PostgresThreadRepository) CreateThread(thread *models.Thread) error {
	if _, _, err := thread.Target(); err != nil {
		return err
	}
	return r.db.Create(thread).Error
}

// GetThreadByID retrieves a thread by ID from PostgreSQL
func (r *PostgresThreadRepository) GetThreadByID(id uint) (*models.Thread, error) {
	var thread models.Thread
	if err := r.db.First(&thread, id).Error; err != nil {
		return nil, err
	}
	return &thread, nil
}

// GetThreadsForTarget retrieves the threads attached to a target
func (r *PostgresThreadRepository) GetThreadsForTarget(ref target.Ref) ([]models.Thread, error) {
	col, ok := models.ThreadSlotColumn(ref.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", target.ErrInvalidKind, ref.Kind)
	}
	var threads []models.Thread
	err := r.db.Where("target_kind = ? AND "+col+" = ?", ref.Kind, ref.ID).
		Order("created_at DESC").
		Find(&threads).Error
	return threads, err
}

// DeleteThread deletes a thread by ID from PostgreSQL
func (r *PostgresThreadRepository) DeleteThread(id uint) error {
	return r.db.Delete(&models.Thread{}, id).Error
}
