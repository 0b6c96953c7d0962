package input

// Delta is a unit cardinal-direction step, used for D-pad presses.
type Delta struct {
	DRow, DCol int
}

var (
	DeltaUp    = Delta{DRow: -1, DCol: 0}
	DeltaDown  = Delta{DRow: 1, DCol: 0}
	DeltaLeft  = Delta{DRow: 0, DCol: -1}
	DeltaRight = Delta{DRow: 0, DCol: 1}
)

// GamepadButtonEvent is a digital or analog button event on a gamepad.
type GamepadButtonEvent struct {
	Index uint   `codec:"index"`
	Down  bool   `codec:"down"`
	Value float64 `codec:"value"`
}

// DPadDirection reports the D-pad direction this event represents, per the
// standard Web Gamepad API button indices (12-15).
func (e GamepadButtonEvent) DPadDirection() (Delta, bool) {
	switch e.Index {
	case 12:
		return DeltaUp, true
	case 13:
		return DeltaDown, true
	case 14:
		return DeltaLeft, true
	case 15:
		return DeltaRight, true
	default:
		return Delta{}, false
	}
}

// GamepadAxisEvent is a single analog axis event on a gamepad.
type GamepadAxisEvent struct {
	Index uint    `codec:"index"`
	Value float64 `codec:"value"`
}

// GamepadAxis2DEvent is a paired 2D analog axis event (e.g. a thumbstick).
type GamepadAxis2DEvent struct {
	Index uint `codec:"index"`
	Value Vec2 `codec:"value"`
}

// deadzoneRadius below which Direction reports no direction.
const deadzoneRadius = 0.1

// Direction reports the approximate cardinal direction of the stick,
// outside of a small deadzone. The y-axis is flipped per computer
// graphics conventions (screen-down is positive y).
func (e GamepadAxis2DEvent) Direction() (Direction, bool) {
	if e.Value.length() < deadzoneRadius {
		return 0, false
	}
	x, y := e.Value.X, e.Value.Y
	leftOrUp := x < -y
	rightOrUp := -x < -y
	switch {
	case leftOrUp && rightOrUp:
		return DirectionUp, true
	case leftOrUp && !rightOrUp:
		return DirectionLeft, true
	case !leftOrUp && rightOrUp:
		return DirectionRight, true
	default:
		return DirectionDown, true
	}
}

// GamepadControlEvent is the control-specific part of a GamepadEvent.
// Exactly one field is set. On the wire it is flattened into the same map
// as the enclosing GamepadEvent, tagged by "control".
type GamepadControlEvent struct {
	Button *GamepadButtonEvent
	Axis   *GamepadAxisEvent
	Axis2D *GamepadAxis2DEvent
}

// GamepadEvent is a gamepad/controller event.
type GamepadEvent struct {
	Source  EventSource          `codec:"source"`
	Control GamepadControlEvent
}
