package repositories

import (
	"time"

	"github.com/ideavault/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRepository defines the interface for follow data operations
type FollowRepository interface {
	CreateFollow(follow *models.Follow) error
	Toggle(followerID, followedID uint, desired bool) (*models.Follow, error)
	GetFollow(followerID, followedID uint) (*models.Follow, error)
	IsFollowing(followerID, followedID uint) (bool, error)
	GetFollowers(userID uint) ([]models.User, error)
	GetFollowing(userID uint) ([]models.User, error)
	GetFollowingIDs(userID uint) ([]uint, error)
}

// PostgresFollowRepository implements FollowRepository for PostgreSQL
type PostgresFollowRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

// CreateFollow is the permissive creation path: it inserts the row
// directly, defaulting the flag to true, and surfaces the unique-pair
// violation if the relationship already exists.
func (r *PostgresFollowRepository) CreateFollow(follow *models.Follow) error {
	follow.IsFollowing = true
	return r.db.Create(follow).Error
}

// Toggle sets the follow state for (follower, followed) as a single atomic
// upsert against the unique pair index. The row is created on first toggle
// and flipped in place afterwards, never deleted.
func (r *PostgresFollowRepository) Toggle(followerID, followedID uint, desired bool) (*models.Follow, error) {
	follow := models.Follow{
		FollowingUserID: followerID,
		FollowedUserID:  followedID,
		IsFollowing:     desired,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "following_user_id"}, {Name: "followed_user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"is_following": desired,
			"updated_at":   time.Now(),
		}),
	}).Create(&follow).Error
	if err != nil {
		return nil, err
	}
	return r.GetFollow(followerID, followedID)
}

// GetFollow retrieves the follow row for (follower, followed)
func (r *PostgresFollowRepository) GetFollow(followerID, followedID uint) (*models.Follow, error) {
	var follow models.Follow
	if err := r.db.Where("following_user_id = ? AND followed_user_id = ?", followerID, followedID).First(&follow).Error; err != nil {
		return nil, err
	}
	return &follow, nil
}

// IsFollowing reports whether follower currently follows followed
func (r *PostgresFollowRepository) IsFollowing(followerID, followedID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("following_user_id = ? AND followed_user_id = ? AND is_following = ?", followerID, followedID, true).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetFollowers retrieves the users actively following userID
func (r *PostgresFollowRepository) GetFollowers(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Table("follows").Select("following_user_id").Where("followed_user_id = ? AND is_following = ?", userID, true),
	).Find(&users).Error
	return users, err
}

// GetFollowing retrieves the users userID actively follows
func (r *PostgresFollowRepository) GetFollowing(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Table("follows").Select("followed_user_id").Where("following_user_id = ? AND is_following = ?", userID, true),
	).Find(&users).Error
	return users, err
}

// GetFollowingIDs retrieves the ids of the users userID actively follows
func (r *PostgresFollowRepository) GetFollowingIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Follow{}).
		Where("following_user_id = ? AND is_following = ?", userID, true).
		Pluck("followed_user_id", &ids).Error
	return ids, err
}
