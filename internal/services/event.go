package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventboard/internal/domain"
	"eventboard/internal/normalize"
)

// NormalizeEvent validates a candidate event and returns a copy with its
// slug, date, and time rewritten to canonical form. It never mutates the
// argument; the write path persists the returned value. Checks run in order:
// required text fields, agenda and tags, slug regeneration (when regenSlug),
// date, time. Slug uniqueness is left to the repository.
func NormalizeEvent(e domain.Event, regenSlug bool) (domain.Event, error) {
	required := []struct {
		name  string
		value string
	}{
		{"title", e.Title},
		{"description", e.Description},
		{"overview", e.Overview},
		{"venue", e.Venue},
		{"location", e.Location},
		{"mode", e.Mode},
		{"audience", e.Audience},
		{"organizer", e.Organizer},
		{"image", e.Image},
		{"date", e.Date},
		{"time", e.Time},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return domain.Event{}, &domain.MissingFieldError{Field: f.name}
		}
	}
	if len(e.Agenda) == 0 {
		return domain.Event{}, &domain.MissingFieldError{Field: "agenda"}
	}
	if len(e.Tags) == 0 {
		return domain.Event{}, &domain.MissingFieldError{Field: "tags"}
	}

	if regenSlug {
		e.Slug = normalize.Slug(e.Title)
	}

	date, err := normalize.Date(e.Date)
	if err != nil {
		return domain.Event{}, err
	}
	e.Date = date

	clock, err := normalize.Time(e.Time)
	if err != nil {
		return domain.Event{}, err
	}
	e.Time = clock

	return e, nil
}

type eventService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

// NewEventService creates an EventService backed by the given repository.
func NewEventService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, ownerID string, input domain.EventInput) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if ownerID == "" {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	candidate := domain.Event{
		Title:       input.Title,
		Description: input.Description,
		Overview:    input.Overview,
		Venue:       input.Venue,
		Location:    input.Location,
		Mode:        input.Mode,
		Audience:    input.Audience,
		Organizer:   input.Organizer,
		Image:       input.Image,
		Date:        input.Date,
		Time:        input.Time,
		Agenda:      input.Agenda,
		Tags:        input.Tags,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	event, err := NormalizeEvent(candidate, true)
	if err != nil {
		return nil, err
	}
	if err := s.eventRepo.Create(ctx, &event); err != nil {
		if errors.Is(err, domain.ErrDuplicateSlug) {
			return nil, domain.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("create event: %w", err)
	}
	return &event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, eventID, ownerID string, input domain.EventInput) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	current, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if current.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}

	candidate := *current
	candidate.Title = input.Title
	candidate.Description = input.Description
	candidate.Overview = input.Overview
	candidate.Venue = input.Venue
	candidate.Location = input.Location
	candidate.Mode = input.Mode
	candidate.Audience = input.Audience
	candidate.Organizer = input.Organizer
	candidate.Image = input.Image
	candidate.Date = input.Date
	candidate.Time = input.Time
	candidate.Agenda = input.Agenda
	candidate.Tags = input.Tags
	candidate.UpdatedAt = time.Now()

	// The slug is regenerated only when the title changed in this write.
	event, err := NormalizeEvent(candidate, input.Title != current.Title)
	if err != nil {
		return nil, err
	}
	if err := s.eventRepo.Update(ctx, &event); err != nil {
		if errors.Is(err, domain.ErrDuplicateSlug) {
			return nil, domain.ErrDuplicateSlug
		}
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return &event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, eventID, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	if event.OwnerID != ownerID {
		return domain.ErrForbidden
	}
	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (s *eventService) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event by slug: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, total, err := s.eventRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, total, nil
}
