package lighthouse

import (
	"context"
	"sync"

	"github.com/katzenpost/lighthouse-go/protocol"
)

// fakeTransport is an in-memory Transport double for exercising the
// multiplexer without a real network connection.
type fakeTransport struct {
	mu   sync.Mutex
	sent []wireEnvelope

	inbound   chan Message
	closeOnce sync.Once
	closed    chan struct{}
}

// wireEnvelope is the subset of ClientMessage fields tests need to inspect,
// decoded independent of the request's payload type.
type wireEnvelope struct {
	RequestID int32         `codec:"REID"`
	Verb      protocol.Verb `codec:"VERB"`
	Path      []string      `codec:"PATH"`
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		inbound: make(chan Message, 64),
		closed:  make(chan struct{}),
	}
}

func (f *fakeTransport) SendBinary(ctx context.Context, data []byte) error {
	var env wireEnvelope
	if err := protocol.Unmarshal(data, &env); err != nil {
		return err
	}
	f.mu.Lock()
	f.sent = append(f.sent, env)
	f.mu.Unlock()
	return nil
}

func (f *fakeTransport) Next(ctx context.Context) (Message, error) {
	select {
	case m := <-f.inbound:
		return m, nil
	case <-f.closed:
		return Message{}, ErrNoNextMessage
	}
}

func (f *fakeTransport) Close() error {
	f.closeOnce.Do(func() { close(f.closed) })
	return nil
}

func (f *fakeTransport) pushValue(v interface{}) {
	data, err := protocol.Marshal(v)
	if err != nil {
		panic(err)
	}
	f.inbound <- Message{Kind: MessageBinary, Data: data}
}

func (f *fakeTransport) sentEnvelopes() []wireEnvelope {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]wireEnvelope, len(f.sent))
	copy(out, f.sent)
	return out
}

func respond(reqID int32, responseNum int32, payload interface{}) protocol.ServerMessage[interface{}] {
	return protocol.ServerMessage[interface{}]{ResponseNum: responseNum, RequestID: &reqID, Payload: payload}
}
