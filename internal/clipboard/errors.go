package clipboard

import "errors"

// Domain-level share error sentinels.
var (
	// ErrEmptyShare is returned when a create request carries no items.
	ErrEmptyShare = errors.New("share has no items")

	// ErrPayloadTooLarge is returned when the summed item sizes exceed
	// the aggregate share ceiling.
	ErrPayloadTooLarge = errors.New("share payload exceeds the 4MB limit")

	// ErrItemTooLarge is returned when a single file item exceeds the
	// per-file ceiling.
	ErrItemTooLarge = errors.New("file exceeds the 2MB per-file limit")

	// ErrShareNotFound is returned when a code has never been issued,
	// has expired, or has been deleted. The three cases are deliberately
	// indistinguishable.
	ErrShareNotFound = errors.New("share not found or expired")
)
