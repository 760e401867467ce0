package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"eventboard/internal/domain"
)

var eventColumnList = []string{
	"id", "title", "slug", "description", "overview", "venue", "location",
	"mode", "audience", "organizer", "image", "date", "time", "agenda",
	"tags", "owner_id", "created_at", "updated_at",
}

func sampleEvent() *domain.Event {
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Event{
		Title:       "My Dev Talk",
		Slug:        "my-dev-talk",
		Description: "desc",
		Overview:    "overview",
		Venue:       "Main Hall",
		Location:    "Wellington",
		Mode:        "in-person",
		Audience:    "developers",
		Organizer:   "Dev Community",
		Image:       "banner.png",
		Date:        "2025-01-31",
		Time:        "14:30",
		Agenda:      []string{"doors open", "talk"},
		Tags:        []string{"go", "community"},
		OwnerID:     "org-1",
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
}

func sampleEventRow() *sqlmock.Rows {
	e := sampleEvent()
	return sqlmock.NewRows(eventColumnList).AddRow(
		"ev-1", e.Title, e.Slug, e.Description, e.Overview, e.Venue,
		e.Location, e.Mode, e.Audience, e.Organizer, e.Image, e.Date, e.Time,
		`{"doors open",talk}`, `{go,community}`, e.OwnerID, e.CreatedAt, e.UpdatedAt,
	)
}

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		mock        func(mock sqlmock.Sqlmock, e *domain.Event)
		wantID      string
		wantErr     bool
		isDuplicate bool
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock, e *domain.Event) {
				mock.ExpectQuery(`INSERT INTO events`).
					WithArgs(
						e.Title, e.Slug, e.Description, e.Overview, e.Venue,
						e.Location, e.Mode, e.Audience, e.Organizer, e.Image,
						e.Date, e.Time, pq.Array(e.Agenda), pq.Array(e.Tags),
						e.OwnerID, e.CreatedAt, e.UpdatedAt,
					).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ev-1"))
			},
			wantID: "ev-1",
		},
		{
			name: "duplicate slug",
			mock: func(mock sqlmock.Sqlmock, e *domain.Event) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "events_slug_key"})
			},
			wantErr:     true,
			isDuplicate: true,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock, e *domain.Event) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			e := sampleEvent()
			tt.mock(mock, e)
			repo := NewEventRepository(db)
			err = repo.Create(ctx, e)
			if tt.wantErr {
				require.Error(t, err)
				if tt.isDuplicate {
					require.ErrorIs(t, err, domain.ErrDuplicateSlug)
				}
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, e.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetBySlug(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		slug    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			slug: "my-dev-talk",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, slug`).
					WithArgs("my-dev-talk").
					WillReturnRows(sampleEventRow())
			},
		},
		{
			name: "not found",
			slug: "missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, slug`).
					WithArgs("missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			got, err := repo.GetBySlug(ctx, tt.slug)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, got)
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, "ev-1", got.ID)
			require.Equal(t, "my-dev-talk", got.Slug)
			require.Equal(t, []string{"doors open", "talk"}, got.Agenda)
			require.Equal(t, []string{"go", "community"}, got.Tags)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_List(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM events`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT id, title, slug`).
		WithArgs(20, 0).
		WillReturnRows(sampleEventRow())

	repo := NewEventRepository(db)
	events, total, err := repo.List(ctx, domain.PaginationParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Len(t, events, 1)
	require.Equal(t, "ev-1", events[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Update(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		mock        func(mock sqlmock.Sqlmock)
		wantErr     error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE events`).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "duplicate slug",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE events`).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "events_slug_key"})
			},
			wantErr: domain.ErrDuplicateSlug,
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE events`).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			e := sampleEvent()
			e.ID = "ev-1"
			err = repo.Update(ctx, e)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         string
		mock       func(mock sqlmock.Sqlmock)
		wantErr    bool
		isNotFound bool
	}{
		{
			name: "success",
			id:   "ev-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
					WithArgs("ev-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found",
			id:   "ev-missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
					WithArgs("ev-missing").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr:    true,
			isNotFound: true,
		},
		{
			name: "db error",
			id:   "ev-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
					WithArgs("ev-1").
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			err = repo.Delete(ctx, tt.id)
			if tt.wantErr {
				require.Error(t, err)
				if tt.isNotFound {
					require.True(t, errors.Is(err, domain.ErrNotFound))
				}
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
