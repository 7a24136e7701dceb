package domain

// Business validation constants
const (
	MinPartySize   = 1
	MaxPartySize   = 100
	MaxNotesLength = 500
)
