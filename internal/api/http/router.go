package http

import (
	"github.com/gorilla/mux"

	"rentalhub-backend/internal/service"
)

// NewRouter wires the booking endpoints and shared middleware
func NewRouter(bookingSvc service.BookingService) *mux.Router {
	handler := NewBookingHandler(bookingSvc)

	router := mux.NewRouter()
	router.Use(RequestIDMiddleware, LoggingMiddleware)

	v1 := router.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/bookings", handler.HandleCreateBooking).Methods("POST")
	v1.HandleFunc("/bookings", handler.HandleListBookings).Methods("GET")
	v1.HandleFunc("/items/{slug}/availability", handler.HandleAvailability).Methods("GET")
	v1.HandleFunc("/items/{slug}/quote", handler.HandleQuote).Methods("GET")

	return router
}
