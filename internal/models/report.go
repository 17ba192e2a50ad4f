package models

import "time"

// Report is a user-submitted issue report, readable by staff.
type Report struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ReporterID uint      `json:"reporter_id" gorm:"index;not null"`
	Reporter   *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Title      string    `json:"title" gorm:"size:100;not null"`
	Content    string    `json:"content" gorm:"size:3000;not null"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateReportRequest defines the request body for submitting a report
type CreateReportRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=100"`
	Content string `json:"content" validate:"required,min=1,max=3000"`
}
