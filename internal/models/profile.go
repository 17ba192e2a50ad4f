package models

import "time"

// Profile holds the public-facing details attached 1:1 to a user. It is
// created together with the user and only its owner may update it.
type Profile struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	UserID           uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	User             *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	ProfileName      string    `json:"profile_name" gorm:"size:20"`
	GoogleImageURL   string    `json:"google_image_url"` // default avatar from the Google account
	ProfileImageURL  string    `json:"profile_image_url"`
	SelfIntroduction string    `json:"self_introduction" gorm:"size:200"`
	GithubUsername   string    `json:"github_username" gorm:"size:30"`
	TwitterUsername  string    `json:"twitter_username" gorm:"size:30"`
	WebsiteURL       string    `json:"website_url"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"-"`
}

// UpdateProfileRequest defines the request body for updating a profile
type UpdateProfileRequest struct {
	ProfileName      string `json:"profile_name,omitempty" validate:"omitempty,min=1,max=20"`
	GoogleImageURL   string `json:"google_image_url,omitempty" validate:"omitempty,url"`
	ProfileImageURL  string `json:"profile_image_url,omitempty" validate:"omitempty,url"`
	SelfIntroduction string `json:"self_introduction,omitempty" validate:"omitempty,max=200"`
	GithubUsername   string `json:"github_username,omitempty" validate:"omitempty,max=30"`
	TwitterUsername  string `json:"twitter_username,omitempty" validate:"omitempty,max=30"`
	WebsiteURL       string `json:"website_url,omitempty" validate:"omitempty,url"`
}
