package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// --- JWT & Auth ---

type JwtClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// --- Core Models ---

// User represents an account on the platform (admin, operator, or viewer).
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Attraction represents a single tourist attraction managed by the platform.
type Attraction struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Category    string    `json:"category"`
	Location    *string   `json:"location,omitempty"`
	Price       float64   `json:"price"`
	Rating      float64   `json:"rating"`
	VisitCount  int       `json:"visit_count"`
	ImageURL    *string   `json:"image_url,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Visit represents a recorded visit to an attraction.
type Visit struct {
	ID             int64     `json:"id"`
	AttractionID   int64     `json:"attraction_id"`
	AttractionName string    `json:"attraction_name,omitempty"`
	UserID         *string   `json:"user_id,omitempty"`
	VisitDate      time.Time `json:"visit_date"`
	PartySize      int       `json:"party_size"`
	AmountPaid     float64   `json:"amount_paid"`
	Rating         *float64  `json:"rating,omitempty"`
}

// ChatMessage is a stored chat-history record. Writes are best effort;
// a failed insert never fails the chat response.
type ChatMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}
