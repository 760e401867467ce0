package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"eventboard/internal/domain"
)

type organizerRepository struct {
	DB *sql.DB
}

func NewOrganizerRepository(db *sql.DB) domain.OrganizerRepository {
	return &organizerRepository{DB: db}
}

func (r *organizerRepository) Create(ctx context.Context, o *domain.Organizer) error {
	query := `
		INSERT INTO organizers (email, name, password_hash, salt, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, o.Email, o.Name, o.PasswordHash, o.Salt, o.CreatedAt, o.UpdatedAt).
		Scan(&o.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *organizerRepository) GetByEmail(ctx context.Context, email string) (*domain.Organizer, error) {
	query := `
		SELECT id, email, name, password_hash, salt, created_at, updated_at
		FROM organizers
		WHERE email = $1
	`
	o := &domain.Organizer{}
	err := r.DB.QueryRowContext(ctx, query, email).
		Scan(&o.ID, &o.Email, &o.Name, &o.PasswordHash, &o.Salt, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (r *organizerRepository) GetByID(ctx context.Context, id string) (*domain.Organizer, error) {
	query := `
		SELECT id, email, name, password_hash, salt, created_at, updated_at
		FROM organizers
		WHERE id = $1
	`
	o := &domain.Organizer{}
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&o.ID, &o.Email, &o.Name, &o.PasswordHash, &o.Salt, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return o, nil
}
