package models

import "time"

// Idea is a fleshed-out post with a body and related topics.
type Idea struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CreatorID   uint      `json:"creator_id" gorm:"index;not null"`
	Creator     *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Topics      []Topic   `json:"topics" gorm:"many2many:idea_topics"`
	Title       string    `json:"title" gorm:"size:30;not null"`
	Content     string    `json:"content" gorm:"size:3000;not null"`
	IsPublished bool      `json:"is_published" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}

// CreateIdeaRequest defines the request body for creating an idea
type CreateIdeaRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=30"`
	Content  string `json:"content" validate:"required,min=1,max=3000"`
	TopicIDs []uint `json:"topic_ids,omitempty"`
}

// UpdateIdeaRequest defines the request body for updating an idea
type UpdateIdeaRequest struct {
	Title       string `json:"title,omitempty" validate:"omitempty,min=1,max=30"`
	Content     string `json:"content,omitempty" validate:"omitempty,min=1,max=3000"`
	TopicIDs    []uint `json:"topic_ids,omitempty"`
	IsPublished *bool  `json:"is_published,omitempty"`
}
