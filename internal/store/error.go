package store

import (
	"fmt"
	"net/http"
)

// Error is any failure reported by the record store. Status is the HTTP status
// of the response; Code carries the store's error code when it reports one
// (Postgres SQLSTATE or a PGRST code).
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("store: %s (status %d, code %s)", e.Message, e.Status, e.Code)
	}
	return fmt.Sprintf("store: %s (status %d)", e.Message, e.Status)
}

// NotFound reports whether the store found no matching row. The store answers
// a single-object fetch with no rows as 406/PGRST116.
func (e *Error) NotFound() bool {
	return e.Status == http.StatusNotFound || e.Code == "PGRST116"
}

// Conflict reports whether the store rejected a write for violating a unique
// or exclusion constraint. 23505 is unique_violation, 23P01 is
// exclusion_violation (the no-overlap constraint on bookings).
func (e *Error) Conflict() bool {
	return e.Status == http.StatusConflict || e.Code == "23505" || e.Code == "23P01"
}
