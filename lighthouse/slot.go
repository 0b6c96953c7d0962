package lighthouse

import (
	"sync"

	"github.com/katzenpost/lighthouse-go/protocol"
)

// DefaultSlotCapacity bounds the channel installed for a registered slot,
// providing backpressure on the demux goroutine when a consumer falls
// behind.
const DefaultSlotCapacity = 4

// slot is the per-REID rendezvous point between the demux goroutine and a
// waiting perform()/stream() caller. Exactly one of earlyMessages (no
// consumer registered yet) or waitForMessages (a consumer is registered)
// is non-nil at any time.
type slot struct {
	earlyMessages   []protocol.ServerMessage[protocol.Value]
	waitForMessages chan protocol.ServerMessage[protocol.Value]
	// closed marks a slot whose consumer has gone away (guard fired, or
	// the one-shot call already completed); the demux must not attempt to
	// send to waitForMessages once this is set.
	closed bool
}

// slotTable is the REID -> slot map shared between the demux goroutine and
// every in-flight perform()/stream() call on a connection.
type slotTable struct {
	mu    sync.Mutex
	slots map[int32]*slot
}

func newSlotTable() *slotTable {
	return &slotTable{slots: make(map[int32]*slot)}
}

// register installs a waiting consumer for reqID, draining any early
// arrivals (in FIFO order) into the channel before returning it. Calling
// register twice for the same still-registered REID is a programming
// error, matching the Rust source's unreachable!()-style assumption that
// registration happens exactly once, before the request is sent.
func (t *slotTable) register(reqID int32) chan protocol.ServerMessage[protocol.Value] {
	t.mu.Lock()
	defer t.mu.Unlock()

	existing, ok := t.slots[reqID]
	if ok && existing.waitForMessages != nil {
		panic("lighthouse: slot already registered for request id")
	}

	capacity := DefaultSlotCapacity
	var early []protocol.ServerMessage[protocol.Value]
	if ok {
		early = existing.earlyMessages
		if len(early) > capacity {
			capacity = len(early)
		}
	}

	ch := make(chan protocol.ServerMessage[protocol.Value], capacity)
	for _, msg := range early {
		ch <- msg
	}

	t.slots[reqID] = &slot{waitForMessages: ch}
	return ch
}

// deliver routes an inbound message to its slot, buffering it if no
// consumer has registered yet and dropping it silently if the slot was
// closed by closeAll. Once deregister has removed a slot there is no record
// of reqID left, so a later message for it starts a new early buffer rather
// than reaching the old channel. Returns false if there was no record of
// reqID and an early buffer had to be created (useful only for logging).
//
// The table lock is held only long enough to read the slot's state; the
// (potentially blocking, backpressure-providing) channel send happens
// outside the critical section so one slow consumer can't stall every
// other in-flight request id on the connection.
func (t *slotTable) deliver(reqID int32, msg protocol.ServerMessage[protocol.Value]) (hadSlot bool) {
	t.mu.Lock()
	s, ok := t.slots[reqID]
	if !ok {
		t.slots[reqID] = &slot{earlyMessages: []protocol.ServerMessage[protocol.Value]{msg}}
		t.mu.Unlock()
		return false
	}
	if s.closed {
		t.mu.Unlock()
		return true
	}
	ch := s.waitForMessages
	if ch == nil {
		s.earlyMessages = append(s.earlyMessages, msg)
		t.mu.Unlock()
		return true
	}
	t.mu.Unlock()

	// s may be deregistered (and ch closed) while we block here; a closed
	// channel panics on send, so guard with a recover and treat it as a
	// dropped receiver, which is the same outcome deregister intended.
	func() {
		defer func() { recover() }()
		ch <- msg
	}()
	return true
}

// deregister removes reqID's slot entirely, closing its channel (if any)
// so any blocked receiver wakes with a closed-channel zero value.
func (t *slotTable) deregister(reqID int32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closeLocked(reqID)
	delete(t.slots, reqID)
}

// closeAll closes every live waitForMessages channel, used when the demux
// loop ends (ErrNoNextMessage/ErrConnectionClosed) to unblock every pending
// receiver with the sentinel cause already recorded by the caller.
func (t *slotTable) closeAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for reqID := range t.slots {
		t.closeLocked(reqID)
	}
}

func (t *slotTable) closeLocked(reqID int32) {
	s, ok := t.slots[reqID]
	if !ok || s.closed {
		return
	}
	s.closed = true
	if s.waitForMessages != nil {
		close(s.waitForMessages)
	}
}
