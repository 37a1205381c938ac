package engine

import "errors"

var (
	// ErrSlotEmpty indicates a goto/delete target slot has no mark.
	ErrSlotEmpty = errors.New("slot is empty")

	// ErrFileMissing indicates a marked file no longer exists on disk.
	ErrFileMissing = errors.New("marked file no longer exists")

	// ErrNoMarks indicates navigation was attempted on an empty scope.
	ErrNoMarks = errors.New("no marks in this scope")

	// ErrInvalidSlot indicates a slot number outside the accepted range.
	ErrInvalidSlot = errors.New("invalid slot number")
)
