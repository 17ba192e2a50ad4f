package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Announce is a site-wide announcement stored in MongoDB. Announcements
// are broadcast documents: nothing holds a foreign key to them, they are
// only ever addressed id-only from notifications.
type Announce struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Content     string             `json:"content" bson:"content"`
	IsImportant bool               `json:"is_important" bson:"is_important"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
}

// CreateAnnounceRequest defines the request body for creating an
// announcement (staff only)
type CreateAnnounceRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=100"`
	Content     string `json:"content" validate:"required,min=1"`
	IsImportant bool   `json:"is_important"`
}
