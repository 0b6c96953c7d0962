package input

import (
	"fmt"

	"github.com/katzenpost/lighthouse-go/protocol"
	"github.com/ugorji/go/codec"
)

// InputEvent is the tag-discriminated union of all input events a client
// may stream. Exactly one field is set; the "type" wire tag selects it.
type InputEvent struct {
	Key         *KeyEvent
	Mouse       *MouseEvent
	Gamepad     *GamepadEvent
	Midi        *MidiEvent
	Motion      *MotionEvent
	Orientation *OrientationEvent
}

// CodecEncodeSelf implements codec.Selfer by flattening the active
// variant's fields alongside a "type" discriminator into a single map,
// matching serde's #[serde(tag = "type")] + #[serde(flatten)] wire shape.
func (ev InputEvent) CodecEncodeSelf(e *codec.Encoder) {
	m := map[string]interface{}{}
	switch {
	case ev.Key != nil:
		m["type"] = "key"
		m["source"] = ev.Key.Source
		m["down"] = ev.Key.Down
		m["repeat"] = ev.Key.Repeat
		m["code"] = ev.Key.Code
		m["modifiers"] = ev.Key.Modifiers
	case ev.Mouse != nil:
		m["type"] = "mouse"
		m["source"] = ev.Mouse.Source
		m["button"] = ev.Mouse.Button
	case ev.Gamepad != nil:
		m["type"] = "gamepad"
		m["source"] = ev.Gamepad.Source
		encodeGamepadControl(ev.Gamepad.Control, m)
	case ev.Midi != nil:
		m["type"] = "midi"
		m["source"] = ev.Midi.Source
		m["data"] = ev.Midi.Data
	case ev.Motion != nil:
		m["type"] = "motion"
		m["source"] = ev.Motion.Source
		m["acceleration"] = vec3ToRaw(ev.Motion.Acceleration)
		m["accelerationIncludingGravity"] = vec3ToRaw(ev.Motion.AccelerationIncludingGravity)
		m["rotationRate"] = rot3ToRaw(ev.Motion.RotationRate)
		m["interval"] = ev.Motion.Interval
	case ev.Orientation != nil:
		m["type"] = "orientation"
		m["source"] = ev.Orientation.Source
		m["absolute"] = ev.Orientation.Absolute
		m["alpha"] = ev.Orientation.Alpha
		m["beta"] = ev.Orientation.Beta
		m["gamma"] = ev.Orientation.Gamma
	default:
		panic("input event: no variant set")
	}
	e.MustEncode(m)
}

// CodecDecodeSelf implements codec.Selfer.
func (ev *InputEvent) CodecDecodeSelf(d *codec.Decoder) {
	var raw map[string]interface{}
	d.MustDecode(&raw)

	typ, _ := raw["type"].(string)
	source, err := sourceFromRaw(raw["source"])
	if err != nil {
		panic(fmt.Errorf("input event: %w", err))
	}

	switch typ {
	case "key":
		modifiers, err := protocol.DecodePayload[KeyModifiers](raw["modifiers"])
		if err != nil {
			panic(fmt.Errorf("input event: key modifiers: %w", err))
		}
		ev.Key = &KeyEvent{
			Source:    source,
			Down:      asBool(raw["down"]),
			Repeat:    asBool(raw["repeat"]),
			Code:      asString(raw["code"]),
			Modifiers: modifiers,
		}
	case "mouse":
		ev.Mouse = &MouseEvent{Source: source, Button: MouseButton(asString(raw["button"]))}
	case "gamepad":
		control := decodeGamepadControl(raw)
		ev.Gamepad = &GamepadEvent{Source: source, Control: control}
	case "midi":
		data, _ := raw["data"].([]byte)
		ev.Midi = &MidiEvent{Source: source, Data: data}
	case "motion":
		ev.Motion = &MotionEvent{
			Source:                       source,
			Acceleration:                 vec3FromRaw(raw["acceleration"]),
			AccelerationIncludingGravity: vec3FromRaw(raw["accelerationIncludingGravity"]),
			RotationRate:                 rot3FromRaw(raw["rotationRate"]),
			Interval:                     asFloat(raw["interval"]),
		}
	case "orientation":
		ev.Orientation = &OrientationEvent{
			Source:   source,
			Absolute: asBoolPtr(raw["absolute"]),
			Alpha:    asFloatPtr(raw["alpha"]),
			Beta:     asFloatPtr(raw["beta"]),
			Gamma:    asFloatPtr(raw["gamma"]),
		}
	default:
		panic(fmt.Errorf("input event: unknown type %q", typ))
	}
}

func sourceFromRaw(raw interface{}) (EventSource, error) {
	switch v := raw.(type) {
	case string:
		return SourceFromName(v), nil
	case []byte:
		return SourceFromName(string(v)), nil
	case int64:
		return SourceFromSlot(int32(v)), nil
	case uint64:
		return SourceFromSlot(int32(v)), nil
	default:
		return EventSource{}, fmt.Errorf("unexpected source type %T", raw)
	}
}

func encodeGamepadControl(c GamepadControlEvent, m map[string]interface{}) {
	switch {
	case c.Button != nil:
		m["control"] = "button"
		m["index"] = c.Button.Index
		m["down"] = c.Button.Down
		m["value"] = c.Button.Value
	case c.Axis != nil:
		m["control"] = "axis"
		m["index"] = c.Axis.Index
		m["value"] = c.Axis.Value
	case c.Axis2D != nil:
		m["control"] = "axis2d"
		m["index"] = c.Axis2D.Index
		m["value"] = map[string]interface{}{"x": c.Axis2D.Value.X, "y": c.Axis2D.Value.Y}
	default:
		panic("gamepad control event: no variant set")
	}
}

func decodeGamepadControl(raw map[string]interface{}) GamepadControlEvent {
	control, _ := raw["control"].(string)
	index := uint(asFloat(raw["index"]))
	switch control {
	case "button":
		return GamepadControlEvent{Button: &GamepadButtonEvent{
			Index: index,
			Down:  asBool(raw["down"]),
			Value: asFloat(raw["value"]),
		}}
	case "axis":
		return GamepadControlEvent{Axis: &GamepadAxisEvent{Index: index, Value: asFloat(raw["value"])}}
	case "axis2d":
		vm, _ := raw["value"].(map[string]interface{})
		return GamepadControlEvent{Axis2D: &GamepadAxis2DEvent{
			Index: index,
			Value: Vec2{X: asFloat(vm["x"]), Y: asFloat(vm["y"])},
		}}
	default:
		panic(fmt.Errorf("gamepad control event: unknown control %q", control))
	}
}

func vec3ToRaw(v *Vec3) interface{} {
	if v == nil {
		return nil
	}
	return map[string]interface{}{"x": v.X, "y": v.Y, "z": v.Z}
}

func vec3FromRaw(raw interface{}) *Vec3 {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil
	}
	return &Vec3{X: asFloatPtr(m["x"]), Y: asFloatPtr(m["y"]), Z: asFloatPtr(m["z"])}
}

func rot3ToRaw(r *Rot3) interface{} {
	if r == nil {
		return nil
	}
	return map[string]interface{}{"alpha": r.Alpha, "beta": r.Beta, "gamma": r.Gamma}
}

func rot3FromRaw(raw interface{}) *Rot3 {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil
	}
	return &Rot3{Alpha: asFloatPtr(m["alpha"]), Beta: asFloatPtr(m["beta"]), Gamma: asFloatPtr(m["gamma"])}
}

func asBool(raw interface{}) bool {
	b, _ := raw.(bool)
	return b
}

func asBoolPtr(raw interface{}) *bool {
	b, ok := raw.(bool)
	if !ok {
		return nil
	}
	return &b
}

func asString(raw interface{}) string {
	switch v := raw.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

func asFloat(raw interface{}) float64 {
	switch v := raw.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	default:
		return 0
	}
}

func asFloatPtr(raw interface{}) *float64 {
	if raw == nil {
		return nil
	}
	f := asFloat(raw)
	return &f
}
