package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`           // Primary key
	Username     string    `json:"username" db:"username"`    // Unique lower-cased username
	PasswordHash string    `json:"-" db:"password_hash"`      // bcrypt hash, never serialized
	Nickname     string    `json:"nickname" db:"nickname"`    // Display name
	CreatedAt    time.Time `json:"createdAt" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"` // Last update timestamp
}

// UserResponse is the public view of a user.
// swagger:model UserResponse
type UserResponse struct {
	// User ID
	// example: 0b6d0d1c-8a3a-4f0e-9a37-6f4f0c1d2e3f
	ID uuid.UUID `json:"id"`

	// Username
	// example: john_doe
	Username string `json:"username"`

	// Nickname
	// example: John
	Nickname string `json:"nickname"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewUserResponse strips everything that must not leave the server.
func NewUserResponse(u *UserDB) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.UserID,
		Username:  u.Username,
		Nickname:  u.Nickname,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
