// Package protocol defines the Lighthouse wire schema: client/server message
// envelopes, verbs, payload types and the pixel frame codec.
package protocol

// DefaultURL is the Lighthouse WebSocket endpoint used when no override is
// configured.
const DefaultURL = "wss://lighthouse.uni-kiel.de/websocket"

// Frame grid dimensions.
const (
	Rows  = 14
	Cols  = 28
	Size  = Rows * Cols
	Bytes = Size * 3
)
