package users

import "errors"

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("the email has already been taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordMismatch   = errors.New("the password confirmation does not match")
	ErrMissingFields      = errors.New("name, email and password are required")
	ErrUnauthorized       = errors.New("unauthenticated")
)
