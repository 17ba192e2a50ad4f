package models

import "time"

// Follow is a boolean-state relationship: re-following flips is_following
// on the existing (follower, followed) row instead of inserting a second
// one. The unique pair index backs the atomic upsert in the repository.
type Follow struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	FollowingUserID uint      `json:"following_user_id" gorm:"not null;index:idx_follow_pair,unique"` // who follows
	FollowingUser   *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	FollowedUserID  uint      `json:"followed_user_id" gorm:"not null;index:idx_follow_pair,unique;index"` // who is followed
	FollowedUser    *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	IsFollowing     bool      `json:"is_following" gorm:"default:false"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"-"`
}

// UpdateFollowRequest defines the request body for toggling a follow
type UpdateFollowRequest struct {
	IsFollowing *bool `json:"is_following" validate:"required"`
}
