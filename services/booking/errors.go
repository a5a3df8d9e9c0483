package booking

import "errors"

// Typed errors handlers branch on when mapping to HTTP statuses.
var (
	ErrSessionNotFound = errors.New("booking session not found or expired")
	ErrSlotTaken       = errors.New("selected slot is no longer available")
	ErrSlotNotOffered  = errors.New("selected time is not an offered slot")
	ErrUnknownResource = errors.New("referenced resource does not exist")
)
