package domain

import "errors"

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrNoInsertedID        = errors.New("no reservation inserted in this session")
)

var (
	ErrInvalidPIN        = errors.New("invalid pin")
	ErrMachineLockFailed = errors.New("machine refused to lock")
)

var (
	ErrValidation = errors.New("validation error")
)
