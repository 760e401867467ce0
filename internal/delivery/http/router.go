package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventboard/internal/delivery/http/controllers"
	"eventboard/internal/delivery/http/middleware"
	"eventboard/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Organizer routes require a bearer token; event browsing and booking
// creation are public.
func NewRouter(
	eventController *controllers.EventController,
	bookingController *controllers.BookingController,
	authController *controllers.AuthController,
	verifier domain.TokenVerifier,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier)

	// Auth
	mux.HandleFunc("POST /auth/signup", authController.SignUp)
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Public browsing and booking
	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("GET /events/{slug}", eventController.GetEventBySlug)
	mux.HandleFunc("POST /events/{eventID}/bookings", bookingController.CreateBooking)
	mux.HandleFunc("GET /bookings/{bookingID}", bookingController.GetBooking)

	// Organizer event management
	mux.HandleFunc("GET /organizer/me", auth(authController.Profile))
	mux.HandleFunc("POST /organizer/events", auth(eventController.CreateEvent))
	mux.HandleFunc("PUT /organizer/events/{eventID}", auth(eventController.UpdateEvent))
	mux.HandleFunc("DELETE /organizer/events/{eventID}", auth(eventController.DeleteEvent))
	mux.HandleFunc("GET /organizer/events/{eventID}/bookings", auth(bookingController.ListEventBookings))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
