package utils

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnknownSelection    = errors.New("selection not in presented options")
	ErrSelectionNotAllowed = errors.New("selection not allowed in current phase")
	ErrItineraryNotReady   = errors.New("itinerary not finalized")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrSearchUnavailable   = errors.New("search provider unavailable")
	ErrPaymentProvider     = errors.New("payment provider error")
	ErrDatabaseError       = errors.New("database error")
)
