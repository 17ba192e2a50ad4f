package repositories

import (
	"fmt"
	"time"

	"github.com/ideavault/backend/internal/models"
	"github.com/ideavault/backend/internal/target"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	Toggle(actorID uint, ref target.Ref, desired bool) (*models.Like, error)
	GetLike(actorID uint, ref target.Ref) (*models.Like, error)
	GetLikesCountForTarget(ref target.Ref) (int64, error)
	GetLikesByUserID(userID uint) ([]models.Like, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// Toggle sets the like state for (actor, target) as a single atomic upsert
// against the composite unique index, so concurrent toggles from the same
// actor can never produce duplicate rows. Rows are created on first toggle
// and flipped in place afterwards, never deleted.
func (r *PostgresLikeRepository) Toggle(actorID uint, ref target.Ref, desired bool) (*models.Like, error) {
	col, ok := models.LikeSlotColumn(ref.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", target.ErrInvalidKind, ref.Kind)
	}

	like := models.Like{LikedUserID: actorID, IsLiked: desired}
	like.SetTarget(ref)

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "liked_user_id"}, {Name: col}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"is_liked":   desired,
			"updated_at": time.Now(),
		}),
	}).Create(&like).Error
	if err != nil {
		return nil, err
	}

	// On the conflict path the insert id is not ours; re-read the row.
	return r.GetLike(actorID, ref)
}

// GetLike retrieves the like row for (actor, target)
func (r *PostgresLikeRepository) GetLike(actorID uint, ref target.Ref) (*models.Like, error) {
	col, ok := models.LikeSlotColumn(ref.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", target.ErrInvalidKind, ref.Kind)
	}
	var like models.Like
	if err := r.db.Where("liked_user_id = ? AND "+col+" = ?", actorID, ref.ID).First(&like).Error; err != nil {
		return nil, err
	}
	return &like, nil
}

// GetLikesCountForTarget counts the active likes on a target
func (r *PostgresLikeRepository) GetLikesCountForTarget(ref target.Ref) (int64, error) {
	col, ok := models.LikeSlotColumn(ref.Kind)
	if !ok {
		return 0, fmt.Errorf("%w: %q", target.ErrInvalidKind, ref.Kind)
	}
	var count int64
	err := r.db.Model(&models.Like{}).
		Where(col+" = ? AND is_liked = ?", ref.ID, true).
		Count(&count).Error
	return count, err
}

// GetLikesByUserID retrieves all like rows owned by a user
func (r *PostgresLikeRepository) GetLikesByUserID(userID uint) ([]models.Like, error) {
	var likes []models.Like
	if err := r.db.Where("liked_user_id = ?", userID).Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}
