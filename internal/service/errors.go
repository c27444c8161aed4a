package service

import "errors"

// Error kinds returned by the services. Anything else is an internal fault.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidTicket    = errors.New("ticket does not allow hotel booking")
	ErrRoomIsFull       = errors.New("room is full")
	ErrCannotListHotels = errors.New("ticket does not allow listing hotels")
	ErrUnauthorized     = errors.New("ticket does not belong to user")
	ErrBookingNotOwned  = errors.New("booking does not belong to user")
	ErrInvalidInput     = errors.New("invalid input")
)
