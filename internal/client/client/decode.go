package client

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DecodeData lifts a raw Result into Result[T] by unmarshalling the
// envelope's "data" field. A missing envelope or data field is a remote
// failure, since the call site expects a typed record.
func DecodeData[T any](r Result[*Payload]) Result[T] {
	if !r.Success {
		return Fail[T](r)
	}
	raw, err := envelopeData(r.Data)
	if err != nil {
		return decodeFailure[T](r, err)
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return decodeFailure[T](r, fmt.Errorf("decode data: %w", err))
	}
	return Result[T]{Success: true, Data: v, Message: r.Message, Status: r.Status, Payload: r.Payload}
}

// DecodeNestedData is DecodeData that prefers "data.data" when "data" is an
// object carrying its own "data" field. Some endpoints wrap records twice.
func DecodeNestedData[T any](r Result[*Payload]) Result[T] {
	if !r.Success {
		return Fail[T](r)
	}
	raw, err := envelopeData(r.Data)
	if err != nil {
		return decodeFailure[T](r, err)
	}
	if inner, ok := nestedData(raw); ok {
		raw = inner
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return decodeFailure[T](r, fmt.Errorf("decode data: %w", err))
	}
	return Result[T]{Success: true, Data: v, Message: r.Message, Status: r.Status, Payload: r.Payload}
}

// Discard keeps only the outcome of r, for endpoints whose payload is unused.
func Discard(r Result[*Payload]) Result[struct{}] {
	if !r.Success {
		return Fail[struct{}](r)
	}
	return Result[struct{}]{Success: true, Message: r.Message, Status: r.Status, Payload: r.Payload}
}

func envelopeData(p *Payload) (json.RawMessage, error) {
	if p == nil || p.Envelope == nil {
		return nil, fmt.Errorf("response is not a JSON envelope")
	}
	if !p.Envelope.HasData() {
		return nil, fmt.Errorf("response has no data")
	}
	return p.Envelope.Data, nil
}

func nestedData(raw json.RawMessage) (json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}
	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return nil, false
	}
	inner := bytes.TrimSpace(wrapper.Data)
	if len(inner) == 0 || bytes.Equal(inner, []byte("null")) {
		return nil, false
	}
	return inner, true
}

func decodeFailure[T any](r Result[*Payload], err error) Result[T] {
	return Result[T]{
		Error:   err.Error(),
		Kind:    KindRemote,
		Status:  r.Status,
		Message: r.Message,
		Payload: r.Payload,
	}
}
