// Package uuidx generates the time-ordered ids used for listeners and
// processes.
package uuidx

import "github.com/google/uuid"

// New returns a version 7 UUID. Version 7 ids sort by creation time, so
// listener ids in logs read in registration order.
// It panics if the random source fails.
//
// Returns:
//   - uuid.UUID: a new version 7 UUID.
func New() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// NewString returns New in its canonical string form.
//
// Returns:
//   - string: a new version 7 UUID such as "0190a5f4-1c2d-7e3f-8a4b-5c6d7e8f9a0b".
func NewString() string {
	return New().String()
}
