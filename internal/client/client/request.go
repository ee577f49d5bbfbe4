package client

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Request is an outbound call descriptor. It is built per call and discarded.
type Request struct {
	// Method defaults to GET.
	Method string
	// Path is either an absolute URL or relative to the executor base URL.
	Path  string
	Query *Query
	// Body, when non-nil, is sent as JSON.
	Body any
	// Headers override the default JSON headers. Authorization is always
	// derived from the session token and cannot be overridden here.
	Headers map[string]string
}

func Get(path string, q *Query) Request {
	return Request{Method: http.MethodGet, Path: path, Query: q}
}

func Post(path string, body any) Request {
	return Request{Method: http.MethodPost, Path: path, Body: body}
}

// Query is an insertion-ordered set of query parameters with unique keys.
// Values are stringified on Set. The zero value is not usable; use NewQuery.
type Query struct {
	keys   []string
	values map[string]string
}

func NewQuery() *Query {
	return &Query{values: make(map[string]string)}
}

// Set stores value under key. Setting an existing key replaces the value and
// keeps the key's original position.
func (q *Query) Set(key string, value any) *Query {
	if _, ok := q.values[key]; !ok {
		q.keys = append(q.keys, key)
	}
	q.values[key] = stringify(value)
	return q
}

// SetIf calls Set only when value is not empty after stringification.
func (q *Query) SetIf(key string, value any) *Query {
	if s := stringify(value); s != "" {
		q.Set(key, s)
	}
	return q
}

func (q *Query) Get(key string) (string, bool) {
	v, ok := q.values[key]
	return v, ok
}

func (q *Query) Del(key string) {
	if _, ok := q.values[key]; !ok {
		return
	}
	delete(q.values, key)
	for i, k := range q.keys {
		if k == key {
			q.keys = append(q.keys[:i], q.keys[i+1:]...)
			break
		}
	}
}

func (q *Query) Keys() []string {
	return append([]string(nil), q.keys...)
}

func (q *Query) Len() int { return len(q.keys) }

// Encode renders "k1=v1&k2=v2" in insertion order. Empty values are kept
// as "k=".
func (q *Query) Encode() string {
	if q == nil || len(q.keys) == 0 {
		return ""
	}
	var b strings.Builder
	for i, k := range q.keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(q.values[k]))
	}
	return b.String()
}

// stringify renders booleans the way the API expects flags: 1 or 0.
func stringify(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case bool:
		if value {
			return "1"
		}
		return "0"
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case fmt.Stringer:
		return value.String()
	default:
		return fmt.Sprint(value)
	}
}
