package frontdesk

import "github.com/pkg/errors"

var (
	// ErrEmptyQueue is returned when dequeuing from a tier with no people
	// waiting. Callers are expected to check [TierQueues.IsEmpty] first.
	ErrEmptyQueue = errors.New("queue is empty")

	// ErrNotFound is returned when no waiting person matches an id in the tier
	// derived from the supplied age.
	ErrNotFound = errors.New("person not found")

	// ErrPositionOutOfRange is returned by [TierQueues.RemoveAt] for a position
	// outside 1..Len.
	ErrPositionOutOfRange = errors.New("position out of range")

	// ErrUnknownTier is returned for operations on a tier other than High, Mid
	// or Low.
	ErrUnknownTier = errors.New("unknown tier")

	// ErrInvalidPerson is returned when a person fails validation on admission.
	ErrInvalidPerson = errors.New("invalid person")

	// ErrStorageUnavailable is returned when the archive cannot be written. The
	// in-memory history is left intact so the save may be retried.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
