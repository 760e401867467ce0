package domain

import (
	"context"
	"time"
)

// Event represents a single publishable happening.
// Date and Time are stored in canonical textual form: Date as YYYY-MM-DD,
// Time as 24-hour HH:mm. Slug is derived from Title and unique across events.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Overview    string    `json:"overview"`
	Venue       string    `json:"venue"`
	Location    string    `json:"location"`
	Mode        string    `json:"mode"`
	Audience    string    `json:"audience"`
	Organizer   string    `json:"organizer"`
	Image       string    `json:"image"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Agenda      []string  `json:"agenda"`
	Tags        []string  `json:"tags"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventRepository defines the interface for event storage.
// Create returns ErrDuplicateSlug when the slug unique constraint is violated.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	List(ctx context.Context, params PaginationParams) ([]*Event, int, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
}

// EventInput carries the organizer-supplied attributes of an event for
// create and update operations.
type EventInput struct {
	Title       string
	Description string
	Overview    string
	Venue       string
	Location    string
	Mode        string
	Audience    string
	Organizer   string
	Image       string
	Date        string
	Time        string
	Agenda      []string
	Tags        []string
}

// EventService defines organizer and visitor facing event operations.
type EventService interface {
	CreateEvent(ctx context.Context, ownerID string, input EventInput) (*Event, error)
	UpdateEvent(ctx context.Context, eventID, ownerID string, input EventInput) (*Event, error)
	DeleteEvent(ctx context.Context, eventID, ownerID string) error
	GetEventBySlug(ctx context.Context, slug string) (*Event, error)
	ListEvents(ctx context.Context, params PaginationParams) ([]*Event, int, error)
}
