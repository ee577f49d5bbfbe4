package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Result is the uniform outcome of a network operation.
//
// Success implies Data is set and Error is empty. On failure Error is
// non-empty and Payload, when a response arrived, keeps the parsed body for
// diagnostics (e.g. validation details).
type Result[T any] struct {
	Success bool
	Data    T
	Message string
	Error   string
	Kind    ErrorKind
	// Status is the HTTP status, 0 when no response arrived.
	Status  int
	Payload *Payload
}

// Err converts a failed Result into an error matching the package
// sentinels; it returns nil on success.
func (r Result[T]) Err() error {
	if r.Success {
		return nil
	}
	switch {
	case r.Kind == KindTransport:
		return fmt.Errorf("%w: %s", ErrUnavailable, r.Error)
	case r.Kind == KindInvalidRequest:
		return fmt.Errorf("%w: %s", ErrInvalidRequest, r.Error)
	case r.Kind == KindLocal:
		return fmt.Errorf("%w: %s", ErrLocal, r.Error)
	case r.Status == http.StatusUnauthorized || r.Status == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, r.Error)
	default:
		return fmt.Errorf("%w: %s", ErrRemote, r.Error)
	}
}

// Fail copies the failure of r into a Result of another type.
func Fail[T, U any](r Result[U]) Result[T] {
	return Result[T]{
		Error:   r.Error,
		Kind:    r.Kind,
		Status:  r.Status,
		Payload: r.Payload,
		Message: r.Message,
	}
}

// Payload is a received response body.
type Payload struct {
	ContentType string
	Body        []byte
	// JSON reports that Body was declared and parsed as JSON.
	JSON bool
	// Envelope is set when Body is a JSON object.
	Envelope *Envelope
}

func (p *Payload) Text() string {
	if p == nil {
		return ""
	}
	return string(p.Body)
}

// Decode unmarshals the whole body into dst.
func (p *Payload) Decode(dst any) error {
	if p == nil || !p.JSON {
		return fmt.Errorf("%w: payload is not JSON", ErrRemote)
	}
	return json.Unmarshal(p.Body, dst)
}

// Envelope is the API's response wrapper:
//
//	{"error": false, "message": "...", "data": ..., "total": 12, "ad_spaces": {...}}
type Envelope struct {
	Error    json.RawMessage `json:"error"`
	Message  json.RawMessage `json:"message"`
	Data     json.RawMessage `json:"data"`
	Total    json.RawMessage `json:"total"`
	AdSpaces json.RawMessage `json:"ad_spaces"`
}

// Failed reports a truthy "error" field: true, a non-zero number, or a
// string that is neither blank nor a false/zero literal ("false", "0").
func (e *Envelope) Failed() bool {
	raw := bytes.TrimSpace(e.Error)
	if len(raw) == 0 {
		return false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch value := v.(type) {
	case bool:
		return value
	case string:
		return truthyString(value)
	case float64:
		return value != 0
	default:
		return false
	}
}

func truthyString(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f != 0
	}
	return true
}

func isFlagLiteral(s string) bool {
	s = strings.TrimSpace(s)
	if _, err := strconv.ParseBool(s); err == nil {
		return true
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// MessageText returns "message" when it is a string.
func (e *Envelope) MessageText() string {
	return rawString(e.Message)
}

// ErrorText returns "error" when it is a descriptive string. Flag literals
// such as "true" or "1" yield "".
func (e *Envelope) ErrorText() string {
	s := rawString(e.Error)
	if isFlagLiteral(s) {
		return ""
	}
	return s
}

// TotalCount returns "total" as an int; ok is false when absent or not numeric.
func (e *Envelope) TotalCount() (int, bool) {
	raw := bytes.Trim(bytes.TrimSpace(e.Total), `"`)
	if len(raw) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(string(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}

// HasData reports a present, non-null "data" field.
func (e *Envelope) HasData() bool {
	raw := bytes.TrimSpace(e.Data)
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}

func rawString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
