package lighthouse

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/katzenpost/lighthouse-go/protocol"
	"github.com/katzenpost/lighthouse-go/protocol/input"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, *fakeTransport) {
	t.Helper()
	ft := newFakeTransport()
	c := NewClient(ft, protocol.NewAuthentication("alice", "secret"))
	t.Cleanup(func() { _ = c.Close() })
	return c, ft
}

func TestPerformDecodesSuccessResponse(t *testing.T) {
	c, ft := newTestClient(t)

	done := make(chan struct{})
	var result protocol.ServerMessage[string]
	var resultErr error
	go func() {
		result, resultErr = Perform[struct{}, string](context.Background(), c, protocol.VerbGet, []string{"foo"}, struct{}{})
		close(done)
	}()

	waitForSend(t, ft, 1)
	reqID := ft.sentEnvelopes()[0].RequestID
	ft.pushValue(respond(reqID, 200, "bar"))

	<-done
	require.NoError(t, resultErr)
	require.Equal(t, "bar", result.Payload)
}

func TestPerformStatusGateRunsBeforeDecode(t *testing.T) {
	c, ft := newTestClient(t)

	done := make(chan struct{})
	var resultErr error
	go func() {
		_, resultErr = Perform[struct{}, string](context.Background(), c, protocol.VerbGet, []string{"foo"}, struct{}{})
		close(done)
	}()

	waitForSend(t, ft, 1)
	reqID := ft.sentEnvelopes()[0].RequestID
	// Payload shape (a map) would fail to decode as a string; the status
	// gate must reject this as a ServerError before ever attempting that.
	ft.pushValue(respond(reqID, 404, map[string]interface{}{"oops": true}))

	<-done
	require.Error(t, resultErr)
	serverErr, ok := resultErr.(*ServerError)
	require.True(t, ok, "expected *ServerError, got %T: %v", resultErr, resultErr)
	require.Equal(t, int32(404), serverErr.Code)
}

func TestPerformMultiplexesInterleavedRequestIDs(t *testing.T) {
	c, ft := newTestClient(t)

	var wg sync.WaitGroup
	results := make([]string, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			msg, err := Perform[struct{}, string](context.Background(), c, protocol.VerbGet, []string{"foo"}, struct{}{})
			require.NoError(t, err)
			results[i] = msg.Payload
		}(i)
		// Wait for each send so envs[i] is goroutine i's request.
		waitForSend(t, ft, i+1)
	}

	waitForSend(t, ft, 2)
	envs := ft.sentEnvelopes()

	// Respond out of order: second request first.
	ft.pushValue(respond(envs[1].RequestID, 200, "second"))
	ft.pushValue(respond(envs[0].RequestID, 200, "first"))

	wg.Wait()
	require.Equal(t, "first", results[0])
	require.Equal(t, "second", results[1])
}

func TestRequestIDsAreMonotonic(t *testing.T) {
	c, ft := newTestClient(t)
	for i := 0; i < 3; i++ {
		go func() { Perform[struct{}, string](context.Background(), c, protocol.VerbGet, []string{"x"}, struct{}{}) }()
		// Successive calls: concurrent sends may reach the wire in any order.
		waitForSend(t, ft, i+1)
	}
	waitForSend(t, ft, 3)
	envs := ft.sentEnvelopes()
	require.Equal(t, int32(0), envs[0].RequestID)
	require.Equal(t, int32(1), envs[1].RequestID)
	require.Equal(t, int32(2), envs[2].RequestID)
}

func TestStreamCloseFiresStopWithSameRequestID(t *testing.T) {
	c, ft := newFakeClient(t)

	stream, err := StreamRequest[struct{}, string](context.Background(), c, []string{"events"}, struct{}{})
	require.NoError(t, err)

	waitForSend(t, ft, 1)
	streamReqID := ft.sentEnvelopes()[0].RequestID
	require.Equal(t, protocol.VerbStream, ft.sentEnvelopes()[0].Verb)

	require.NoError(t, stream.Close())
	waitForSend(t, ft, 2)

	stopEnv := ft.sentEnvelopes()[1]
	require.Equal(t, protocol.VerbStop, stopEnv.Verb)
	require.Equal(t, streamReqID, stopEnv.RequestID)
}

func TestStreamInputSkipsFirstMessage(t *testing.T) {
	c, ft := newFakeClient(t)

	done := make(chan struct{})
	var stream *Stream[input.InputEvent]
	var err error
	go func() {
		stream, err = StreamInput(context.Background(), c)
		close(done)
	}()

	waitForSend(t, ft, 1)
	reqID := ft.sentEnvelopes()[0].RequestID

	snapshot := input.InputEvent{Key: &input.KeyEvent{Source: input.SourceFromSlot(0), Code: "snapshot"}}
	live := input.InputEvent{Key: &input.KeyEvent{Source: input.SourceFromSlot(0), Code: "live"}}
	ft.pushValue(respond(reqID, 200, snapshot))
	ft.pushValue(respond(reqID, 200, live))

	<-done
	require.NoError(t, err)

	msg, err := stream.Next(context.Background())
	require.NoError(t, err)
	require.NotNil(t, msg.Payload.Key)
	require.Equal(t, "live", msg.Payload.Key.Code)
}

func TestGetLaserMetricsDecodesResponse(t *testing.T) {
	c, ft := newTestClient(t)

	done := make(chan struct{})
	var result protocol.ServerMessage[protocol.LaserMetrics]
	var resultErr error
	go func() {
		result, resultErr = GetLaserMetrics(context.Background(), c)
		close(done)
	}()

	waitForSend(t, ft, 1)
	env := ft.sentEnvelopes()[0]
	require.Equal(t, protocol.VerbGet, env.Verb)
	require.Equal(t, []string{"metrics", "laser"}, env.Path)

	metrics := protocol.LaserMetrics{
		Rooms: []protocol.RoomMetrics{
			{Room: "room-1", APIVersion: 2},
		},
	}
	ft.pushValue(respond(env.RequestID, 200, metrics))

	<-done
	require.NoError(t, resultErr)
	require.Equal(t, metrics, result.Payload)
}

func newFakeClient(t *testing.T) (*Client, *fakeTransport) {
	return newTestClient(t)
}

func waitForSend(t *testing.T, ft *fakeTransport, n int) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if len(ft.sentEnvelopes()) >= n {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for %d sent message(s)", n)
		case <-time.After(time.Millisecond):
		}
	}
}
