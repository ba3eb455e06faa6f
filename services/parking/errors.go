package parking

import "fmt"

// SpotUnavailableError signals a booking attempt on a spot that is taken or
// does not exist.
type SpotUnavailableError struct {
	SpotID string
}

func (e SpotUnavailableError) Error() string {
	return fmt.Sprintf("spot %s is not available", e.SpotID)
}

// BookingNotFoundError signals a finish/cancel referencing an unknown booking.
type BookingNotFoundError struct {
	BookingID string
}

func (e BookingNotFoundError) Error() string {
	return fmt.Sprintf("booking %s not found", e.BookingID)
}

// InvalidStateError signals an operation on a booking whose status does not
// permit it, e.g. finishing a booking that is no longer active.
type InvalidStateError struct {
	BookingID string
	Status    string
}

func (e InvalidStateError) Error() string {
	return fmt.Sprintf("booking %s is %s, not active", e.BookingID, e.Status)
}

// RepositoryError wraps a failure from the underlying store. Not locally
// recoverable; callers may retry idempotent reads only.
type RepositoryError struct {
	Op  string
	Err error
}

func (e RepositoryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e RepositoryError) Unwrap() error {
	return e.Err
}
