package domain

import (
	"context"
	"time"
)

// Organizer represents an account that can publish events.
// swagger:model Organizer
type Organizer struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated organizer.
type TokenIssuer interface {
	Issue(organizerID, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated organizer ID.
type TokenVerifier interface {
	Verify(token string) (organizerID string, err error)
}

// OrganizerRepository defines the interface for organizer account storage.
// Create returns ErrDuplicateEmail when the email unique constraint is violated.
type OrganizerRepository interface {
	Create(ctx context.Context, organizer *Organizer) error
	GetByEmail(ctx context.Context, email string) (*Organizer, error)
	GetByID(ctx context.Context, id string) (*Organizer, error)
}

// AuthService defines organizer account signup, login, and profile lookup.
type AuthService interface {
	SignUp(ctx context.Context, email, password, name string) (*Organizer, error)
	Login(ctx context.Context, email, password string) (token string, err error)
	// Profile returns the account of an authenticated organizer.
	Profile(ctx context.Context, organizerID string) (*Organizer, error)
}
