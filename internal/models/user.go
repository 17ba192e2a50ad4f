package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Username    string    `json:"username" gorm:"size:100;not null"`
	Email       string    `json:"email" gorm:"size:50;uniqueIndex;not null"` // Ensure email is unique across all users
	Password    string    `json:"-"`                                         // Hashed password for local auth, ignored for JSON serialization
	FirebaseUID string    `json:"-" gorm:"index"`                            // Link to Firebase User UID for Google sign-in
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	IsStaff     bool      `json:"is_staff" gorm:"default:false"`
	FirstName   string    `json:"first_name,omitempty" gorm:"size:50"`
	LastName    string    `json:"last_name,omitempty" gorm:"size:50"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}

// CreateUserRequest registers a user already authenticated with Firebase
type CreateUserRequest struct {
	Username    string `json:"username" validate:"required,min=1,max=100"`
	Email       string `json:"email" validate:"required,email"`
	FirebaseUID string `json:"firebase_uid" validate:"required"` // Firebase UID provided by the client after Firebase Auth
}

// CreateLocalUserRequest registers a user with email and password
type CreateLocalUserRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
