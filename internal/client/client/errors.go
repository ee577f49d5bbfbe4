package client

import "errors"

var (
	ErrUnavailable    = errors.New("server unavailable")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrRemote         = errors.New("remote error")
	ErrInvalidRequest = errors.New("invalid request")
	ErrLocal          = errors.New("local state error")
)

// ErrorKind classifies a failed Result.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	// KindTransport: no response was received (DNS, connect, timeout, cancel).
	KindTransport
	// KindRemote: the API answered with a non-2xx status or an error flag.
	KindRemote
	// KindInvalidRequest: the request could not be built (empty path, bad body).
	KindInvalidRequest
	// KindLocal: the call succeeded but persisting its side effect failed.
	KindLocal
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindRemote:
		return "remote"
	case KindInvalidRequest:
		return "invalid_request"
	case KindLocal:
		return "local"
	default:
		return "none"
	}
}
