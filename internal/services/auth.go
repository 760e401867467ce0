package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"eventboard/internal/domain"
)

const minPasswordLen = 8

var signupEmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type authService struct {
	organizerRepo domain.OrganizerRepository
	hasher        domain.PasswordHasher
	issuer        domain.TokenIssuer
	tokenExpiry   time.Duration
}

// NewAuthService creates an AuthService with the given repository, password
// hasher, and token issuer.
func NewAuthService(
	organizerRepo domain.OrganizerRepository,
	hasher domain.PasswordHasher,
	issuer domain.TokenIssuer,
	tokenExpiry time.Duration,
) domain.AuthService {
	return &authService{
		organizerRepo: organizerRepo,
		hasher:        hasher,
		issuer:        issuer,
		tokenExpiry:   tokenExpiry,
	}
}

func (s *authService) SignUp(ctx context.Context, email, password, name string) (*domain.Organizer, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !signupEmailPattern.MatchString(email) {
		return nil, domain.ErrInvalidEmail
	}
	if len(password) < minPasswordLen {
		return nil, domain.ErrWeakPassword
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(salt, password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	organizer := &domain.Organizer{
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
		Salt:         salt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.organizerRepo.Create(ctx, organizer); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create organizer: %w", err)
	}
	return organizer, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	organizer, err := s.organizerRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("get organizer by email: %w", err)
	}
	if err := s.hasher.Compare(organizer.PasswordHash, organizer.Salt, password); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	token, err := s.issuer.Issue(organizer.ID, organizer.Email, s.tokenExpiry)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

func (s *authService) Profile(ctx context.Context, organizerID string) (*domain.Organizer, error) {
	organizer, err := s.organizerRepo.GetByID(ctx, organizerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get organizer: %w", err)
	}
	return organizer, nil
}
