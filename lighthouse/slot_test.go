package lighthouse

import (
	"testing"

	"github.com/katzenpost/lighthouse-go/protocol"
	"github.com/stretchr/testify/require"
)

func respMsg(reid int32, n int) protocol.ServerMessage[protocol.Value] {
	rnum := int32(200)
	return protocol.ServerMessage[protocol.Value]{ResponseNum: rnum, RequestID: &reid, Payload: n}
}

func TestSlotTableDrainsEarlyMessagesFIFOBeforeInstallingWaiter(t *testing.T) {
	table := newSlotTable()

	table.deliver(1, respMsg(1, 0))
	table.deliver(1, respMsg(1, 1))
	table.deliver(1, respMsg(1, 2))

	ch := table.register(1)

	require.Equal(t, 0, (<-ch).Payload)
	require.Equal(t, 1, (<-ch).Payload)
	require.Equal(t, 2, (<-ch).Payload)
}

func TestSlotTableRegisterTwiceForLiveSlotPanics(t *testing.T) {
	table := newSlotTable()
	table.register(1)
	require.Panics(t, func() { table.register(1) })
}

func TestSlotTableDeliverAfterRegisterGoesStraightToChannel(t *testing.T) {
	table := newSlotTable()
	ch := table.register(1)
	table.deliver(1, respMsg(1, 42))
	require.Equal(t, 42, (<-ch).Payload)
}

func TestSlotTableCloseAllUnblocksWaiters(t *testing.T) {
	table := newSlotTable()
	ch := table.register(1)
	table.closeAll()
	_, ok := <-ch
	require.False(t, ok)
}

func TestSlotTableDeliverAfterDeregisterIsDropped(t *testing.T) {
	table := newSlotTable()
	ch := table.register(1)
	table.deregister(1)
	table.deliver(1, respMsg(1, 0))
	select {
	case _, ok := <-ch:
		require.False(t, ok, "channel should be closed, not carrying the dropped message")
	default:
		t.Fatal("channel should already be closed after deregister")
	}
}
