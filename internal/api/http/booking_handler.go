package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"rentalhub-backend/internal/domain"
	"rentalhub-backend/internal/logger"
	"rentalhub-backend/internal/service"
	"rentalhub-backend/internal/store"
)

// BookingHandler exposes the rental booking flow over HTTP
type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

// HandleCreateBooking handles POST /api/v1/bookings
func (h *BookingHandler) HandleCreateBooking(w http.ResponseWriter, r *http.Request) {
	var req service.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "InvalidBody", "request body must be valid JSON")
		return
	}

	booking, err := h.bookingSvc.CreateBooking(r.Context(), &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

// HandleListBookings handles GET /api/v1/bookings
func (h *BookingHandler) HandleListBookings(w http.ResponseWriter, r *http.Request) {
	query := &service.ListBookingsQuery{
		CustomerID: r.URL.Query().Get("customer_id"),
		Status:     domain.BookingStatus(r.URL.Query().Get("status")),
		Page:       intQueryParam(r, "page", 1),
		Limit:      intQueryParam(r, "limit", 0),
	}

	page, err := h.bookingSvc.ListBookings(r.Context(), query)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// HandleAvailability handles GET /api/v1/items/{slug}/availability
func (h *BookingHandler) HandleAvailability(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	result, err := h.bookingSvc.CheckAvailability(r.Context(), slug,
		r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// HandleQuote handles GET /api/v1/items/{slug}/quote
func (h *BookingHandler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	breakdown, err := h.bookingSvc.QuotePrice(r.Context(), slug,
		r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, breakdown)
}

func intQueryParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeError maps the booking error taxonomy onto response statuses. Client
// mistakes are 4xx; anything from the store comes back as a bad gateway.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingField):
		writeErrorResponse(w, http.StatusBadRequest, "MissingField", err.Error())
	case errors.Is(err, domain.ErrInvalidStartDate):
		writeErrorResponse(w, http.StatusBadRequest, "InvalidStartDate", err.Error())
	case errors.Is(err, domain.ErrInvalidDateRange):
		writeErrorResponse(w, http.StatusBadRequest, "InvalidDateRange", err.Error())
	case errors.Is(err, domain.ErrItemNotFound):
		writeErrorResponse(w, http.StatusNotFound, "ItemNotFound", err.Error())
	case errors.Is(err, domain.ErrItemUnavailable):
		writeErrorResponse(w, http.StatusConflict, "ItemUnavailable", err.Error())
	case errors.Is(err, domain.ErrDateConflict):
		writeErrorResponse(w, http.StatusConflict, "DateConflict", err.Error())
	default:
		var se *store.Error
		if errors.As(err, &se) {
			logger.ErrorContext(r.Context(), "Store request failed", "error", err)
			writeErrorResponse(w, http.StatusBadGateway, "StoreError", "the record store could not be reached")
			return
		}
		logger.ErrorContext(r.Context(), "Unexpected error", "error", err)
		writeErrorResponse(w, http.StatusBadGateway, "StoreError", "request could not be completed")
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, errorResponse{Error: kind, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}
