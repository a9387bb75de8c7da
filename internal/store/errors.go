package store

import "errors"

var (
	// ErrNotFound is returned by Load when no progress has been saved yet.
	ErrNotFound = errors.New("progress store not found")

	// ErrInvalidStore is returned by Load when the persisted document does
	// not describe a valid progress map.
	ErrInvalidStore = errors.New("invalid progress store")
)
