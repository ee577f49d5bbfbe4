package session

import "errors"

var (
	ErrEmptyToken = errors.New("empty session token")
	ErrNoSession  = errors.New("no active session")
)
