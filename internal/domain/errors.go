package domain

import "errors"

// Validation and lookup errors for the booking flow. Handlers classify with
// errors.Is, so wrapped detail (field names, conflicting numbers) stays visible
// without breaking the mapping to a response status.
var (
	ErrMissingField     = errors.New("missing required field")
	ErrInvalidStartDate = errors.New("start date must not be in the past")
	ErrInvalidDateRange = errors.New("end date must be after start date")
	ErrItemNotFound     = errors.New("rental item not found")
	ErrItemUnavailable  = errors.New("rental item is not available")
	ErrDateConflict     = errors.New("requested dates conflict with an existing booking")
)
