package controllers

import (
	"log/slog"
	"net/http"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/delivery/http/middleware"
	"eventboard/internal/domain"
)

// BookingRequest is the request body for POST /events/{eventID}/bookings.
type BookingRequest struct {
	Email string `json:"email"`
}

func (b BookingRequest) Validate() []string {
	var errs []string
	if b.Email == "" {
		errs = append(errs, "email is required")
	}
	return errs
}

// BookingSuccessResponse is the success response envelope for booking endpoints.
type BookingSuccessResponse struct {
	Data  *domain.Booking   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type BookingController struct {
	Logger  *slog.Logger
	Service domain.BookingService
}

func NewBookingController(logger *slog.Logger, svc domain.BookingService) *BookingController {
	return &BookingController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateBooking godoc
// @Summary Book a seat at an event
// @Description Register an attendee email against an event. The email is validated and normalized to lowercase; the booking references an existing event. No authentication required.
// @Tags bookings
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param booking body BookingRequest true "Attendee email"
// @Success 201 {object} controllers.BookingSuccessResponse "data contains the booking with its reference code"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (invalid email)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (event does not exist)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/bookings [post]
func (c *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req BookingRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	booking, err := c.Service.CreateBooking(r.Context(), eventID, req.Email)
	if err != nil {
		writeEventError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, booking)
}

// GetBooking godoc
// @Summary Look up a booking
// @Description Return a booking by its ID, so a visitor can re-check a reservation and its reference code.
// @Tags bookings
// @Produce json
// @Param bookingID path string true "Booking ID"
// @Success 200 {object} controllers.BookingSuccessResponse "data contains the booking"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /bookings/{bookingID} [get]
func (c *BookingController) GetBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := r.PathValue("bookingID")
	if bookingID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing bookingID")
		return
	}
	booking, err := c.Service.GetBooking(r.Context(), bookingID)
	if err != nil {
		writeEventError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, booking)
}

// ListEventBookings godoc
// @Summary List bookings for an owned event
// @Description Return all bookings registered against one of the authenticated organizer's events.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the bookings"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /organizer/events/{eventID}/bookings [get]
func (c *BookingController) ListEventBookings(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	organizerID, ok := middleware.OrganizerIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	bookings, err := c.Service.ListEventBookings(r.Context(), eventID, organizerID)
	if err != nil {
		writeEventError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, bookings)
}
