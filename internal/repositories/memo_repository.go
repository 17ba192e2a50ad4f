package repositories

import (
	"github.com/ideavault/backend/internal/models"
	"gorm.io/gorm"
)

// MemoRepository defines the interface for memo data operations
type MemoRepository interface {
	CreateMemo(memo *models.Memo) error
	GetMemoByID(id uint) (*models.Memo, error)
	GetMemosByCreatorID(creatorID uint) ([]models.Memo, error)
	UpdateMemo(memo *models.Memo) error
	DeleteMemo(id uint) error
}

// PostgresMemoRepository implements MemoRepository for PostgreSQL
type PostgresMemoRepository struct {
	db *gorm.DB
}

// NewPostgresMemoRepository creates a new PostgresMemoRepository
func NewPostgresMemoRepository(db *gorm.DB) *PostgresMemoRepository {
	return &PostgresMemoRepository{db: db}
}

// CreateMemo creates a new memo in PostgreSQL
func (r *PostgresMemoRepository) CreateMemo(memo *models.Memo) error {
	return r.db.Create(memo).Error
}

// GetMemoByID retrieves a memo by ID from PostgreSQL
func (r *PostgresMemoRepository) GetMemoByID(id uint) (*models.Memo, error) {
	var memo models.Memo
	if err := r.db.First(&memo, id).Error; err != nil {
		return nil, err
	}
	return &memo, nil
}

// GetMemosByCreatorID retrieves a user's memos, newest first
func (r *PostgresMemoRepository) GetMemosByCreatorID(creatorID uint) ([]models.Memo, error) {
	var memos []models.Memo
	if err := r.db.Where("creator_id = ?", creatorID).Order("created_at DESC").Find(&memos).Error; err != nil {
		return nil, err
	}
	return memos, nil
}

// UpdateMemo updates an existing memo in PostgreSQL
func (r *PostgresMemoRepository) UpdateMemo(memo *models.Memo) error {
	return r.db.Save(memo).Error
}

// DeleteMemo deletes a memo by ID from PostgreSQL
func (r *PostgresMemoRepository) DeleteMemo(id uint) error {
	return r.db.Delete(&models.Memo{}, id).Error
}
