package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	ErrEmailNotRegistered = errors.New("email is not registered")
	ErrInvalidResetToken  = errors.New("invalid reset token")
)
