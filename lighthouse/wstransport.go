package lighthouse

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"
)

// wsTransport adapts a gorilla/websocket connection to the Transport
// contract. The write side is mutex-guarded since gorilla/websocket
// forbids concurrent writers; the read side has a single owner (the demux
// goroutine) and needs no locking.
type wsTransport struct {
	conn   *websocket.Conn
	wmu    sync.Mutex
	closed bool
}

// NewWebSocketTransport wraps an already-dialed gorilla/websocket
// connection.
func NewWebSocketTransport(conn *websocket.Conn) Transport {
	return &wsTransport{conn: conn}
}

func (t *wsTransport) SendBinary(ctx context.Context, data []byte) error {
	t.wmu.Lock()
	defer t.wmu.Unlock()
	if deadline, ok := ctx.Deadline(); ok {
		_ = t.conn.SetWriteDeadline(deadline)
	}
	if err := t.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
		return &TransportError{Err: err}
	}
	return nil
}

func (t *wsTransport) Next(ctx context.Context) (Message, error) {
	if deadline, ok := ctx.Deadline(); ok {
		_ = t.conn.SetReadDeadline(deadline)
	}
	kind, data, err := t.conn.ReadMessage()
	if err != nil {
		if websocket.IsCloseError(err,
			websocket.CloseNormalClosure, websocket.CloseGoingAway,
			websocket.CloseNoStatusReceived, websocket.CloseAbnormalClosure) {
			return Message{}, ErrConnectionClosed
		}
		return Message{}, &TransportError{Err: err}
	}
	switch kind {
	case websocket.BinaryMessage:
		return Message{Kind: MessageBinary, Data: data}, nil
	case websocket.PingMessage:
		return Message{Kind: MessagePing}, nil
	case websocket.CloseMessage:
		return Message{Kind: MessageClose}, nil
	default:
		return Message{Kind: MessageOther, Data: data}, nil
	}
}

func (t *wsTransport) Close() error {
	t.wmu.Lock()
	defer t.wmu.Unlock()
	if t.closed {
		return nil
	}
	t.closed = true
	_ = t.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return t.conn.Close()
}
