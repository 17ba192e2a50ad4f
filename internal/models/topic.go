package models

// Topic categorizes ideas. Names are short and unique.
type Topic struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:10;uniqueIndex;not null"`
}

// CreateTopicRequest defines the request body for creating a topic
type CreateTopicRequest struct {
	Name string `json:"name" validate:"required,min=1,max=10"`
}
