package errs

import "errors"

// Error taxonomy surfaced to callers of the booking core. Repository and
// provider failures are marked with one of these so handlers can map them
// to responses without leaking internals.
var (
	// Lookup errors
	ErrLandmarkNotFound = errors.New("landmark not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrSessionNotFound  = errors.New("checkout session not found")

	// Booking errors
	ErrInvalidStayRange = errors.New("invalid stay range")
	ErrUnavailable      = errors.New("dates not available")

	// Transition errors
	ErrForbidden         = errors.New("actor not permitted")
	ErrIllegalTransition = errors.New("transition guard failed")
	ErrAlreadyPaid       = errors.New("booking already paid")
	ErrPaymentRecorded   = errors.New("successful payment recorded")

	// Provider errors (transient, caller may retry)
	ErrPaymentProvider = errors.New("payment provider error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
