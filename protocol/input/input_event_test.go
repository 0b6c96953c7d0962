package input

import (
	"testing"

	"github.com/katzenpost/lighthouse-go/protocol"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, ev InputEvent) InputEvent {
	t.Helper()
	data, err := protocol.Marshal(ev)
	require.NoError(t, err)
	var got InputEvent
	require.NoError(t, protocol.Unmarshal(data, &got))
	return got
}

func TestKeyEventRoundTrip(t *testing.T) {
	ev := InputEvent{Key: &KeyEvent{
		Source: SourceFromSlot(0),
		Down:   true,
		Repeat: false,
		Code:   "ArrowUp",
	}}
	got := roundTrip(t, ev)
	require.NotNil(t, got.Key)
	require.Equal(t, int32(0), *got.Key.Source.Slot)
	require.True(t, got.Key.Down)
	require.Equal(t, "ArrowUp", got.Key.Code)
	require.Equal(t, KeyModifiers{}, got.Key.Modifiers)
}

func TestMouseEventRoundTrip(t *testing.T) {
	ev := InputEvent{Mouse: &MouseEvent{Source: SourceFromSlot(1), Button: MouseButtonLeft}}
	got := roundTrip(t, ev)
	require.NotNil(t, got.Mouse)
	require.Equal(t, int32(1), *got.Mouse.Source.Slot)
	require.Equal(t, MouseButtonLeft, got.Mouse.Button)
}

func TestGamepadButtonEventRoundTrip(t *testing.T) {
	ev := InputEvent{Gamepad: &GamepadEvent{
		Source: SourceFromSlot(1),
		Control: GamepadControlEvent{Button: &GamepadButtonEvent{Index: 42, Down: true, Value: 0.25}},
	}}
	got := roundTrip(t, ev)
	require.NotNil(t, got.Gamepad)
	require.NotNil(t, got.Gamepad.Control.Button)
	require.Equal(t, uint(42), got.Gamepad.Control.Button.Index)
	require.True(t, got.Gamepad.Control.Button.Down)
	require.InDelta(t, 0.25, got.Gamepad.Control.Button.Value, 1e-9)
}

func TestGamepadAxisEventRoundTrip(t *testing.T) {
	ev := InputEvent{Gamepad: &GamepadEvent{
		Source:  SourceFromSlot(1),
		Control: GamepadControlEvent{Axis: &GamepadAxisEvent{Index: 42, Value: 0.25}},
	}}
	got := roundTrip(t, ev)
	require.NotNil(t, got.Gamepad.Control.Axis)
	require.InDelta(t, 0.25, got.Gamepad.Control.Axis.Value, 1e-9)
}

func TestGamepadAxis2DEventRoundTrip(t *testing.T) {
	ev := InputEvent{Gamepad: &GamepadEvent{
		Source:  SourceFromSlot(1),
		Control: GamepadControlEvent{Axis2D: &GamepadAxis2DEvent{Index: 42, Value: Vec2{X: 0.2, Y: -0.2}}},
	}}
	got := roundTrip(t, ev)
	require.NotNil(t, got.Gamepad.Control.Axis2D)
	require.InDelta(t, 0.2, got.Gamepad.Control.Axis2D.Value.X, 1e-9)
	require.InDelta(t, -0.2, got.Gamepad.Control.Axis2D.Value.Y, 1e-9)
}

func TestGamepadAxis2DDirection(t *testing.T) {
	event := func(v Vec2) GamepadAxis2DEvent { return GamepadAxis2DEvent{Index: 0, Value: v} }

	dir, ok := event(Vec2{X: 0, Y: -1}).Direction()
	require.True(t, ok)
	require.Equal(t, DirectionUp, dir)

	dir, ok = event(Vec2{X: 0, Y: 1}).Direction()
	require.True(t, ok)
	require.Equal(t, DirectionDown, dir)

	dir, ok = event(Vec2{X: -1, Y: 0}).Direction()
	require.True(t, ok)
	require.Equal(t, DirectionLeft, dir)

	dir, ok = event(Vec2{X: 1, Y: 0}).Direction()
	require.True(t, ok)
	require.Equal(t, DirectionRight, dir)

	_, ok = event(Vec2{X: 0, Y: 0}).Direction()
	require.False(t, ok)

	_, ok = event(Vec2{X: -0.05, Y: 0.05}).Direction()
	require.False(t, ok, "within deadzone")
}
