// Package lighthouse implements the client-side request/response and
// stream multiplexer on top of one full-duplex Lighthouse WebSocket
// connection.
package lighthouse

import (
	"errors"
	"fmt"
)

// ErrNoNextMessage is returned when the transport's receive side reports a
// clean end of stream (no more messages will ever arrive).
var ErrNoNextMessage = errors.New("lighthouse: no next message")

// ErrConnectionClosed is returned when the transport reports the
// connection was closed, and is surfaced to every caller with a pending
// request or open stream on that connection.
var ErrConnectionClosed = errors.New("lighthouse: connection closed")

// TransportError wraps a failure from the underlying transport (dial,
// send, or receive).
type TransportError struct{ Err error }

func (e *TransportError) Error() string { return fmt.Sprintf("lighthouse: transport: %v", e.Err) }
func (e *TransportError) Unwrap() error  { return e.Err }

// EncodeError wraps a failure encoding an outbound message.
type EncodeError struct{ Err error }

func (e *EncodeError) Error() string { return fmt.Sprintf("lighthouse: encode: %v", e.Err) }
func (e *EncodeError) Unwrap() error  { return e.Err }

// DecodeError wraps a failure decoding an inbound message envelope.
type DecodeError struct{ Err error }

func (e *DecodeError) Error() string { return fmt.Sprintf("lighthouse: decode: %v", e.Err) }
func (e *DecodeError) Unwrap() error  { return e.Err }

// ValueError wraps a failure reshaping an opaque payload into the caller's
// requested type.
type ValueError struct{ Err error }

func (e *ValueError) Error() string { return fmt.Sprintf("lighthouse: value: %v", e.Err) }
func (e *ValueError) Unwrap() error  { return e.Err }

// ServerError reports a non-2xx response from the server.
type ServerError struct {
	Code     int32
	Message  *string
	Warnings []string
}

func (e *ServerError) Error() string {
	if e.Message != nil {
		return fmt.Sprintf("lighthouse: server responded %d: %s", e.Code, *e.Message)
	}
	return fmt.Sprintf("lighthouse: server responded %d", e.Code)
}

// CustomError is an escape hatch for conditions that don't fit the other
// kinds (e.g. "no response for request id N").
type CustomError struct{ Message string }

func (e *CustomError) Error() string { return "lighthouse: " + e.Message }

// Custom builds a CustomError.
func Custom(format string, args ...interface{}) error {
	return &CustomError{Message: fmt.Sprintf(format, args...)}
}
