package services

import "errors"

// ErrNotSignedIn is returned by operations that need a cached user.
var ErrNotSignedIn = errors.New("not signed in")
