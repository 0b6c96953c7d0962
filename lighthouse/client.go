package lighthouse

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"github.com/katzenpost/lighthouse-go/protocol"
	logging "gopkg.in/op/go-logging.v1"
)

// Client is a connection to the Lighthouse server: the request coordinator
// of the package, built on top of one transport, one slot table and one
// background demux goroutine.
type Client struct {
	transport Transport
	slots     *slotTable
	auth      protocol.Authentication
	requestID int32
	log       *logging.Logger
	spawner   Spawner
	metrics   *metrics

	closeOnce sync.Once

	endMu    sync.Mutex
	endCause error
}

// Connect dials the Lighthouse WebSocket endpoint and starts the
// connection's single receive-loop goroutine.
func Connect(ctx context.Context, auth protocol.Authentication, opts ...Option) (*Client, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	url := cfg.url
	if url == "" {
		url = protocol.DefaultURL
	}

	dialCtx, cancel := context.WithTimeout(ctx, cfg.dialTimeout)
	defer cancel()
	conn, _, err := websocket.DefaultDialer.DialContext(dialCtx, url, nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	return newClient(NewWebSocketTransport(conn), auth, cfg), nil
}

// NewClient builds a Client over an already-established Transport, for
// tests and for callers that want to supply their own transport.
func NewClient(transport Transport, auth protocol.Authentication, opts ...Option) *Client {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newClient(transport, auth, cfg)
}

func newClient(transport Transport, auth protocol.Authentication, cfg config) *Client {
	c := &Client{
		transport: transport,
		slots:     newSlotTable(),
		auth:      auth,
		log:       cfg.log,
		spawner:   cfg.spawner,
		metrics:   newMetrics(),
	}
	d := newDemux(transport, c.slots, c.log, c.metrics)
	c.spawner(func() {
		d.run(context.Background())
		c.endMu.Lock()
		c.endCause = d.endCause
		c.endMu.Unlock()
	})
	return c
}

// Authentication returns the credentials this connection authenticates
// with.
func (c *Client) Authentication() protocol.Authentication {
	return c.auth
}

// Close closes the underlying transport. Idempotent. Pending requests and
// open streams observe ErrConnectionClosed or the demux's own end cause;
// this call does not wait for them to drain first.
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		err = c.transport.Close()
	})
	return err
}

func (c *Client) endCauseOrDefault() error {
	c.endMu.Lock()
	defer c.endMu.Unlock()
	if c.endCause != nil {
		return c.endCause
	}
	return ErrNoNextMessage
}

func (c *Client) nextRequestID() int32 {
	return atomic.AddInt32(&c.requestID, 1) - 1
}

// sendRequest registers a slot for a new request id, then sends the
// encoded request, in that order: the channel must be ready to receive
// before the request can possibly be answered.
func sendRequest[P any](ctx context.Context, c *Client, verb protocol.Verb, path []string, payload P) (int32, chan protocol.ServerMessage[protocol.Value], error) {
	reqID := c.nextRequestID()
	ch := c.slots.register(reqID)

	msg := protocol.ClientMessage[P]{
		RequestID:      reqID,
		Verb:           verb,
		Path:           path,
		Authentication: c.auth,
		Payload:        payload,
	}
	data, err := protocol.EncodeClientMessage(msg)
	if err != nil {
		c.slots.deregister(reqID)
		return 0, nil, &EncodeError{Err: err}
	}
	if err := c.transport.SendBinary(ctx, data); err != nil {
		c.slots.deregister(reqID)
		return 0, nil, err
	}
	c.metrics.bytesSent.Add(float64(len(data)))
	return reqID, ch, nil
}

func checkAndDecode[R any](msg protocol.ServerMessage[protocol.Value]) (protocol.ServerMessage[R], error) {
	if !msg.Success() {
		return protocol.ServerMessage[R]{}, &ServerError{Code: msg.ResponseNum, Message: msg.Response, Warnings: msg.Warnings}
	}
	payload, err := protocol.DecodePayload[R](msg.Payload)
	if err != nil {
		return protocol.ServerMessage[R]{}, &ValueError{Err: err}
	}
	return protocol.ServerMessage[R]{
		ResponseNum: msg.ResponseNum,
		RequestID:   msg.RequestID,
		Warnings:    msg.Warnings,
		Response:    msg.Response,
		Payload:     payload,
	}, nil
}

// Perform sends a one-shot (non-STREAM) request and waits for its single
// response.
func Perform[P any, R any](ctx context.Context, c *Client, verb protocol.Verb, path []string, payload P) (protocol.ServerMessage[R], error) {
	if verb == protocol.VerbStream {
		panic("lighthouse: Perform may only be used for one-off requests, use StreamRequest for streaming")
	}

	c.metrics.requestsInFlight.Inc()
	defer c.metrics.requestsInFlight.Dec()

	reqID, ch, err := sendRequest(ctx, c, verb, path, payload)
	if err != nil {
		return protocol.ServerMessage[R]{}, err
	}
	defer c.slots.deregister(reqID)

	select {
	case <-ctx.Done():
		return protocol.ServerMessage[R]{}, ctx.Err()
	case msg, ok := <-ch:
		if !ok {
			return protocol.ServerMessage[R]{}, c.endCauseOrDefault()
		}
		return checkAndDecode[R](msg)
	}
}

// StreamRequest sends a STREAM request and returns a lazily-pulled Stream
// of its responses.
func StreamRequest[P any, R any](ctx context.Context, c *Client, path []string, payload P) (*Stream[R], error) {
	reqID, ch, err := sendRequest(ctx, c, protocol.VerbStream, path, payload)
	if err != nil {
		return nil, err
	}
	c.metrics.streamsOpen.Inc()
	return newStream[R](c, reqID, path, ch), nil
}

// Stop sends a fire-and-forget STOP request for the stream identified by
// requestID/path. It does not wait for, nor deliver, any response.
func Stop(ctx context.Context, c *Client, requestID int32, path []string) error {
	msg := protocol.ClientMessage[struct{}]{
		RequestID:      requestID,
		Verb:           protocol.VerbStop,
		Path:           path,
		Authentication: c.auth,
		Payload:        struct{}{},
	}
	data, err := protocol.EncodeClientMessage(msg)
	if err != nil {
		return &EncodeError{Err: err}
	}
	if err := c.transport.SendBinary(ctx, data); err != nil {
		return err
	}
	c.metrics.bytesSent.Add(float64(len(data)))
	c.metrics.stopsSent.Inc()
	return nil
}
