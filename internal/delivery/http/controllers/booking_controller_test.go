package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/delivery/http/middleware"
	"eventboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingService implements domain.BookingService for handler tests.
type fakeBookingService struct {
	createErr     error
	createResult  *domain.Booking
	getErr        error
	getResult     *domain.Booking
	listErr       error
	listResult    []*domain.Booking
	lastEventID   string
	lastEmail     string
	lastBookingID string
	lastListOwner string
	lastListEvent string
}

func (f *fakeBookingService) CreateBooking(ctx context.Context, eventID, email string) (*domain.Booking, error) {
	f.lastEventID = eventID
	f.lastEmail = email
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createResult, nil
}

func (f *fakeBookingService) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	f.lastBookingID = bookingID
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getResult, nil
}

func (f *fakeBookingService) ListEventBookings(ctx context.Context, eventID, ownerID string) ([]*domain.Booking, error) {
	f.lastListEvent = eventID
	f.lastListOwner = ownerID
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

func TestBookingController_CreateBooking(t *testing.T) {
	created := &domain.Booking{
		ID:      "bk-1",
		EventID: "ev-1",
		Email:   "visitor@example.com",
		Code:    "ref-code",
	}

	tests := []struct {
		name           string
		eventID        string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:       "success",
			eventID:    "ev-1",
			body:       `{"email":"visitor@example.com"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:           "missing eventID",
			eventID:        "",
			body:           `{"email":"visitor@example.com"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "missing eventID",
		},
		{
			name:           "missing email",
			eventID:        "ev-1",
			body:           `{}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "email is required",
		},
		{
			name:           "invalid email",
			eventID:        "ev-1",
			body:           `{"email":"not-an-email"}`,
			fakeErr:        domain.ErrInvalidEmail,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "invalid email",
		},
		{
			name:           "event does not exist",
			eventID:        "ev-gone",
			body:           `{"email":"visitor@example.com"}`,
			fakeErr:        domain.ErrDanglingReference,
			wantStatus:     http.StatusNotFound,
			wantBodySubstr: "referenced event does not exist",
		},
		{
			name:           "service error",
			eventID:        "ev-1",
			body:           `{"email":"visitor@example.com"}`,
			fakeErr:        errors.New("db error"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeBookingService{createErr: tt.fakeErr, createResult: created}
			ctrl := NewBookingController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/events/"+tt.eventID+"/bookings", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.SetPathValue("eventID", tt.eventID)
			rr := httptest.NewRecorder()

			ctrl.CreateBooking(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error)
				dataBytes, err := json.Marshal(envelope.Data)
				require.NoError(t, err)
				var booking domain.Booking
				require.NoError(t, json.Unmarshal(dataBytes, &booking))
				assert.Equal(t, "bk-1", booking.ID)
				assert.Equal(t, "ref-code", booking.Code)
				assert.Equal(t, "ev-1", fake.lastEventID)
				assert.Equal(t, "visitor@example.com", fake.lastEmail)
			} else if tt.wantBodySubstr != "" {
				require.NotNil(t, envelope.Error)
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
			}
		})
	}
}

func TestBookingController_ListEventBookings(t *testing.T) {
	tests := []struct {
		name          string
		eventID       string
		noAuthContext bool
		fakeErr       error
		wantStatus    int
		wantCount     int
	}{
		{
			name:       "success",
			eventID:    "ev-1",
			wantStatus: http.StatusOK,
			wantCount:  2,
		},
		{
			name:          "no organizer in context",
			eventID:       "ev-1",
			noAuthContext: true,
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:       "not owner",
			eventID:    "ev-1",
			fakeErr:    domain.ErrForbidden,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "unknown event",
			eventID:    "ev-x",
			fakeErr:    domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeBookingService{
				listErr: tt.fakeErr,
				listResult: []*domain.Booking{
					{ID: "bk-1", EventID: "ev-1", Email: "a@example.com"},
					{ID: "bk-2", EventID: "ev-1", Email: "b@example.com"},
				},
			}
			ctrl := NewBookingController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "/organizer/events/"+tt.eventID+"/bookings", nil)
			req.SetPathValue("eventID", tt.eventID)
			if !tt.noAuthContext {
				req = req.WithContext(middleware.SetOrganizerID(req.Context(), "org-123"))
			}
			rr := httptest.NewRecorder()

			ctrl.ListEventBookings(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "ev-1", fake.lastListEvent)
				assert.Equal(t, "org-123", fake.lastListOwner)
				var envelope struct {
					Data  []*domain.Booking `json:"data"`
					Error *helpers.APIError `json:"error"`
				}
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				assert.Len(t, envelope.Data, tt.wantCount)
			}
		})
	}
}

func TestBookingController_GetBooking(t *testing.T) {
	tests := []struct {
		name       string
		bookingID  string
		fakeErr    error
		wantStatus int
	}{
		{name: "success", bookingID: "bk-1", wantStatus: http.StatusOK},
		{name: "missing bookingID", bookingID: "", wantStatus: http.StatusBadRequest},
		{name: "unknown booking", bookingID: "bk-missing", fakeErr: domain.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "service error", bookingID: "bk-1", fakeErr: errors.New("db error"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeBookingService{
				getErr:    tt.fakeErr,
				getResult: &domain.Booking{ID: "bk-1", EventID: "ev-1", Code: "ref-code"},
			}
			ctrl := NewBookingController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "/bookings/"+tt.bookingID, nil)
			req.SetPathValue("bookingID", tt.bookingID)
			rr := httptest.NewRecorder()

			ctrl.GetBooking(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "bk-1", fake.lastBookingID)
				var envelope helpers.APIResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				require.Nil(t, envelope.Error)
			}
		})
	}
}
