package lighthouse

import (
	"context"
	"runtime"
	"sync"

	"github.com/katzenpost/lighthouse-go/protocol"
)

// Stream is a lazily-pulled sequence of responses to a STREAM request.
// Go has no destructor equivalent to the Rust source's PinnedDrop guard,
// so cleanup (deregistering the slot and firing a fire-and-forget STOP)
// happens on an explicit Close call. A runtime.SetFinalizer is additionally
// registered as a safety net for callers that drop the last reference
// without calling Close, so the STOP still runs even if the stream was
// never polled to completion; Close remains the primary, deterministic
// mechanism and callers should still call it explicitly.
type Stream[R any] struct {
	client    *Client
	requestID int32
	path      []string
	ch        chan protocol.ServerMessage[protocol.Value]

	closeOnce sync.Once
}

func newStream[R any](c *Client, requestID int32, path []string, ch chan protocol.ServerMessage[protocol.Value]) *Stream[R] {
	s := &Stream[R]{client: c, requestID: requestID, path: path, ch: ch}
	runtime.SetFinalizer(s, func(s *Stream[R]) { s.cleanup() })
	return s
}

// Next blocks for the next response, or returns an error once the stream
// ends (ctx cancellation, or the connection closing).
func (s *Stream[R]) Next(ctx context.Context) (protocol.ServerMessage[R], error) {
	select {
	case <-ctx.Done():
		return protocol.ServerMessage[R]{}, ctx.Err()
	case msg, ok := <-s.ch:
		if !ok {
			return protocol.ServerMessage[R]{}, s.client.endCauseOrDefault()
		}
		return checkAndDecode[R](msg)
	}
}

// Close deregisters the stream's slot and fires a fire-and-forget STOP
// request. Idempotent; safe to call from any goroutine.
func (s *Stream[R]) Close() error {
	s.cleanup()
	return nil
}

func (s *Stream[R]) cleanup() {
	s.closeOnce.Do(func() {
		runtime.SetFinalizer(s, nil)
		s.client.slots.deregister(s.requestID)
		s.client.metrics.streamsOpen.Dec()
		reqID, path, client := s.requestID, s.path, s.client
		client.spawner(func() {
			if err := Stop(context.Background(), client, reqID, path); err != nil {
				client.log.Warningf("lighthouse: STOP request for request id %d failed: %v", reqID, err)
			}
		})
	})
}
