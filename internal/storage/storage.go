package storage

import "errors"

var (
	ErrArtistNotFound  = errors.New("artist not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrSlotTaken       = errors.New("slot is already taken")
	ErrUserExists      = errors.New("user with this email already exists")
	ErrUserNotFound    = errors.New("user not found")
)
