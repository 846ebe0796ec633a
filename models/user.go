package models

import "time"

// User represents a registered user of the platform.
// Password holds the bcrypt hash; it and the one-time verification token
// are never serialized in responses.
type User struct {
	ID                int       `json:"id" db:"id"`
	Email             string    `json:"email" db:"email"`
	Password          string    `json:"-" db:"password"`
	FullName          string    `json:"fullName" db:"full_name"`
	ClassLevel        string    `json:"classLevel,omitempty" db:"class_level"`
	School            string    `json:"school,omitempty" db:"school"`
	Location          string    `json:"location,omitempty" db:"location"`
	Category          string    `json:"category" db:"category"`
	IsAdmin           bool      `json:"isAdmin" db:"is_admin"`
	IsVerified        bool      `json:"isVerified" db:"is_verified"`
	VerificationToken string    `json:"-" db:"verification_token"`
	Points            int       `json:"points" db:"points"`
	Rank              string    `json:"rank" db:"rank"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time `json:"updatedAt" db:"updated_at"`
}

// RegisterRequest represents the POST /api/register body.
// AdminCode is compared against the configured secret at creation time;
// a match makes the new account an admin, anything else does not.
type RegisterRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"` // Plaintext; hashed before storage
	FullName   string `json:"fullName"`
	ClassLevel string `json:"classLevel"`
	School     string `json:"school"`
	Location   string `json:"location"`
	Category   string `json:"category"`
	AdminCode  string `json:"adminCode"`
}

// VerifyEmailRequest represents the POST /api/verify-email body
type VerifyEmailRequest struct {
	Token string `json:"token"`
}

// LoginRequest represents the POST /api/login body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserProfile is the reduced projection returned from /api/login
type UserProfile struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Category string `json:"category"`
	IsAdmin  bool   `json:"isAdmin"`
	Points   int    `json:"points"`
	Rank     string `json:"rank"`
}

// LoginResponse is the successful login payload: bearer token plus profile
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

// Profile builds the reduced projection for login responses
func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Category: u.Category,
		IsAdmin:  u.IsAdmin,
		Points:   u.Points,
		Rank:     u.Rank,
	}
}
