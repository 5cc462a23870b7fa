package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUserNotFound = errors.New("user profile not found")
	ErrJobNotFound  = errors.New("job not found")
	ErrInternal     = errors.New("internal error")
)
