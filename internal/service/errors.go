package service

import "errors"

var (
	// ErrValidation wraps every rejected input
	ErrValidation = errors.New("validation failed")
	// ErrInvalidCredentials is returned for an unknown user or a wrong password
	ErrInvalidCredentials = errors.New("invalid username or password")
)
