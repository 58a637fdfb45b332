package schedule

import "errors"

// Every store operation fails with exactly one of these sentinels, wrapped
// with context. Callers match with errors.Is. There are no transient
// failure modes: an error means the request was invalid for the current
// state and retrying without a change will fail the same way.
var (
	// ErrInvalidInput marks a malformed argument, such as an empty
	// destination name.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateDestination marks an attempt to add a destination whose
	// name is already taken.
	ErrDuplicateDestination = errors.New("duplicate destination")

	// ErrNotFound marks a reference to a destination or trip that does not
	// exist in the store.
	ErrNotFound = errors.New("not found")

	// ErrDestinationInUse marks an attempt to remove a destination that is
	// still referenced by at least one trip.
	ErrDestinationInUse = errors.New("destination in use")

	// ErrInvalidDateRange marks a trip whose start date falls after its end
	// date.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrScheduleConflict marks a trip whose inclusive date range overlaps
	// an existing trip while overlaps are disallowed.
	ErrScheduleConflict = errors.New("schedule conflict")
)
