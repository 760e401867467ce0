package domain

import (
	"context"
	"time"
)

// Booking represents one visitor's reservation against an event. It holds a
// weak reference to the event by ID; the booking does not own the event.
// Code is the reference code included in the confirmation email.
// swagger:model Booking
type Booking struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingRepository defines storage operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	ListByEventID(ctx context.Context, eventID string) ([]*Booking, error)
}

// BookingService defines visitor booking creation and the organizer's view
// of bookings for an owned event.
type BookingService interface {
	// CreateBooking validates email syntax and that the referenced event
	// exists, then persists the booking and sends a confirmation email.
	CreateBooking(ctx context.Context, eventID, email string) (*Booking, error)
	// GetBooking looks up a booking by its ID, for visitors re-checking a
	// reservation after creation.
	GetBooking(ctx context.Context, bookingID string) (*Booking, error)
	ListEventBookings(ctx context.Context, eventID, ownerID string) ([]*Booking, error)
}
