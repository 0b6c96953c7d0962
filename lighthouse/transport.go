package lighthouse

import "context"

// MessageKind distinguishes the kinds of frames a Transport may surface
// from Next.
type MessageKind int

const (
	MessageBinary MessageKind = iota
	MessagePing
	MessageClose
	MessageOther
)

// Message is a single inbound unit from the transport.
type Message struct {
	Kind MessageKind
	Data []byte
}

// Transport is the minimal full-duplex binary channel contract the
// multiplexer is built against. Implementations need not be WebSocket
// specific; wsTransport is the production adapter over gorilla/websocket.
type Transport interface {
	// SendBinary sends one binary message. Safe to call concurrently with
	// itself; Next is never called concurrently with another Next.
	SendBinary(ctx context.Context, data []byte) error

	// Next blocks for the next inbound unit. Returns ErrNoNextMessage on a
	// clean end of stream, ErrConnectionClosed if the peer closed the
	// connection, or a *TransportError for any other failure.
	Next(ctx context.Context) (Message, error)

	// Close closes the underlying connection.
	Close() error
}
