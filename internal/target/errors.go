package target

import "errors"

var (
	// ErrInvalidKind is returned when a kind is not a member of the
	// owning model's closed set.
	ErrInvalidKind = errors.New("target: invalid kind")

	// ErrMissingTarget is returned when no candidate identifier was
	// supplied for the declared kind.
	ErrMissingTarget = errors.New("target: no target supplied")

	// ErrAmbiguousTarget is returned when more than one candidate
	// identifier was supplied.
	ErrAmbiguousTarget = errors.New("target: more than one target supplied")

	// ErrTargetNotFound is returned when the referenced entity does not
	// exist in the store.
	ErrTargetNotFound = errors.New("target: target not found")

	// ErrCorruptReference is returned by Rehydrate when a persisted
	// record violates the one-populated-slot invariant. This can only
	// happen if a write path bypassed Resolve; treat it as a bug signal.
	ErrCorruptReference = errors.New("target: corrupt reference")
)
