package lighthouse

import (
	"context"
	"errors"

	"github.com/katzenpost/lighthouse-go/protocol"
	logging "gopkg.in/op/go-logging.v1"
)

// demux is the single goroutine owning the transport's receive side and
// the slot table it routes into. Exactly one demux runs per connection,
// started by Connect and running until the transport reports the
// connection is done.
type demux struct {
	transport Transport
	slots     *slotTable
	log       *logging.Logger
	metrics   *metrics
	// endCause is recorded once the loop exits, and returned to any caller
	// that lands in a registered-but-never-delivered slot afterwards.
	endCause error
}

func newDemux(t Transport, slots *slotTable, log *logging.Logger, m *metrics) *demux {
	return &demux{transport: t, slots: slots, log: log, metrics: m}
}

// run reads until the transport ends, routing each decoded message by its
// REID. It never returns an error; end-of-loop causes are recorded on the
// demux and every open slot is closed so blocked receivers observe it.
func (d *demux) run(ctx context.Context) {
	for {
		msg, err := d.transport.Next(ctx)
		if err != nil {
			d.end(err)
			return
		}

		switch msg.Kind {
		case MessageBinary:
			d.route(msg.Data)
		case MessagePing:
			// ignored, matches the reference client's behavior
		case MessageClose:
			d.end(ErrConnectionClosed)
			return
		default:
			d.log.Warningf("lighthouse: got non-binary message, ignoring")
		}
	}
}

func (d *demux) route(data []byte) {
	d.metrics.bytesReceived.Add(float64(len(data)))

	sm, err := protocol.DecodeServerMessage(data)
	if err != nil {
		d.log.Warningf("lighthouse: bad message: %v", err)
		return
	}
	if sm.RequestID == nil {
		d.log.Warningf("lighthouse: got message without request id from server")
		return
	}
	if hadSlot := d.slots.deliver(*sm.RequestID, sm); !hadSlot {
		d.log.Debugf("lighthouse: buffered early message for request id %d", *sm.RequestID)
	}
}

func (d *demux) end(cause error) {
	if errors.Is(cause, ErrConnectionClosed) {
		d.log.Infof("lighthouse: connection closed")
	} else if errors.Is(cause, ErrNoNextMessage) {
		d.log.Infof("lighthouse: receive loop ended")
	} else {
		d.log.Errorf("lighthouse: receive loop ended: %v", cause)
	}
	d.endCause = cause
	d.slots.closeAll()
}
