package models

import "time"

// Memo is a title-only jotting, the lightweight counterpart of an idea.
type Memo struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CreatorID   uint      `json:"creator_id" gorm:"index;not null"`
	Creator     *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Title       string    `json:"title" gorm:"size:50;not null"`
	IsPublished bool      `json:"is_published" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}

// CreateMemoRequest defines the request body for creating a memo
type CreateMemoRequest struct {
	Title string `json:"title" validate:"required,min=1,max=50"`
}

// UpdateMemoRequest defines the request body for updating a memo
type UpdateMemoRequest struct {
	Title       string `json:"title,omitempty" validate:"omitempty,min=1,max=50"`
	IsPublished *bool  `json:"is_published,omitempty"`
}
