package services

import "errors"

var (
	ErrNotVerified      = errors.New("phone number and aadhaar must be set before booking")
	ErrTrainNotFound    = errors.New("train not found")
	ErrCoachNotFound    = errors.New("coach not found")
	ErrCoachFull        = errors.New("no seats available in this coach")
	ErrTicketNotFound   = errors.New("ticket not found")
	ErrAlreadyCancelled = errors.New("ticket is already cancelled")
	ErrSecurityMismatch = errors.New("invalid security number")
	ErrBadCredentials   = errors.New("invalid email or password")

	// ErrInconsistent flags a ticket/train seat disagreement inside the
	// allocation loop. Sequential single-writer execution should never
	// produce it; treat any occurrence as a bug.
	ErrInconsistent = errors.New("ticket and coach seat state disagree")
)
