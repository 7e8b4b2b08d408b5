// Package result defines the envelope every service operation returns.
//
// Wire shape: { "ok": bool, "message": string, "payload"?: T }
// The payload key is only emitted when the operation produced one, so a
// successful list with no matches still serializes as "payload": [].
package result

import (
	"encoding/json"
)

// Reason classifies a failed result so the transport can pick a status code.
// It is not part of the wire shape.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonInvalid
	ReasonNotFound
	ReasonConflict
	ReasonInternal
)

// Result is the uniform outcome of a service call
type Result[T any] struct {
	Payload    T
	Message    string
	OK         bool
	reason     Reason
	hasPayload bool
}

// Success wraps a payload in a successful result
func Success[T any](message string, payload T) Result[T] {
	return Result[T]{
		OK:         true,
		Message:    message,
		Payload:    payload,
		hasPayload: true,
	}
}

// Done is a successful result that carries no payload (used by deletes)
func Done[T any](message string) Result[T] {
	return Result[T]{OK: true, Message: message}
}

// Invalid rejects caller input before any storage access
func Invalid[T any](message string) Result[T] {
	return Result[T]{Message: message, reason: ReasonInvalid}
}

// NotFound reports a missing entity or reference
func NotFound[T any](message string) Result[T] {
	return Result[T]{Message: message, reason: ReasonNotFound}
}

// Conflict reports a uniqueness violation
func Conflict[T any](message string) Result[T] {
	return Result[T]{Message: message, reason: ReasonConflict}
}

// Internal reports a storage failure. The message must not leak store details.
func Internal[T any](message string) Result[T] {
	return Result[T]{Message: message, reason: ReasonInternal}
}

// HasPayload reports whether the payload is part of the result
func (r Result[T]) HasPayload() bool {
	return r.hasPayload
}

// Reason returns why the result failed, ReasonNone on success
func (r Result[T]) Reason() Reason {
	return r.reason
}

type envelope struct {
	Message string `json:"message"`
	OK      bool   `json:"ok"`
}

// MarshalJSON emits the payload key only when the result has one
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if !r.hasPayload {
		return json.Marshal(envelope{OK: r.OK, Message: r.Message})
	}

	return json.Marshal(struct {
		Payload T      `json:"payload"`
		Message string `json:"message"`
		OK      bool   `json:"ok"`
	}{
		Payload: r.Payload,
		Message: r.Message,
		OK:      r.OK,
	})
}

// UnmarshalJSON restores a result written by MarshalJSON.
// The failure reason is not carried on the wire and stays ReasonNone.
func (r *Result[T]) UnmarshalJSON(data []byte) error {
	var raw struct {
		Payload json.RawMessage `json:"payload"`
		Message string          `json:"message"`
		OK      bool            `json:"ok"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.OK = raw.OK
	r.Message = raw.Message
	r.hasPayload = len(raw.Payload) > 0
	if r.hasPayload {
		return json.Unmarshal(raw.Payload, &r.Payload)
	}
	return nil
}
