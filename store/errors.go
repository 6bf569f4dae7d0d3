package store

import "errors"

// Store-level errors. Callers dispatch on these with errors.Is.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("store: record not found")
	// ErrDuplicateRoomNo indicates a room number collision with another room.
	ErrDuplicateRoomNo = errors.New("store: room number already exists")
	// ErrRoomNotEmpty indicates a delete attempt on a room that still has occupants.
	ErrRoomNotEmpty = errors.New("store: room has occupants")
	// ErrCapacityBelowOccupancy indicates an edit that would shrink a room below
	// its current occupant count.
	ErrCapacityBelowOccupancy = errors.New("store: capacity below current occupancy")
)
