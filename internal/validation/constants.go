package validation

const (
	// Top-up limits
	MinTopUpAmount = 0.01
	MaxTopUpAmount = 10000.00

	// Password requirements
	MinPasswordLength = 8
	MaxPasswordLength = 72

	// String lengths
	MaxNameLength        = 100
	MaxDescriptionLength = 500

	// Seat limits per car
	MinCarSeats = 1
	MaxCarSeats = 60
)
