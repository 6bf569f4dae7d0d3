package service

import "errors"

// Business-rule errors surfaced to the presentation layer. All of them are
// recoverable; a failed operation leaves both stores untouched.
var (
	ErrRoomFull        = errors.New("room is already full")
	ErrAlreadyAssigned = errors.New("student is already assigned to another room")
	ErrNotAssigned     = errors.New("student is not assigned to a room")
	ErrValidation      = errors.New("invalid input")
)
