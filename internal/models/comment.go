package models

import "time"

// Comment always belongs to exactly one thread (plain foreign key, no
// polymorphism here).
type Comment struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	CommentorID    uint      `json:"commentor_id" gorm:"index;not null"`
	Commentor      *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	TargetThreadID uint      `json:"target_thread_id" gorm:"index;not null"`
	TargetThread   *Thread   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Content        string    `json:"content" gorm:"size:1000;not null"`
	IsModified     bool      `json:"is_modified" gorm:"default:false"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"-"`
}

// CreateCommentRequest defines the request body for creating a comment
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}

// UpdateCommentRequest defines the request body for updating a comment
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}
