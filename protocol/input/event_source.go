// Package input defines the modern, tag-discriminated InputEvent union
// (key/mouse/gamepad/midi/motion/orientation) and its component event
// shapes.
package input

import (
	"fmt"

	"github.com/ugorji/go/codec"
)

// EventSource identifies where an input event originated: either a
// symbolic string (e.g. a client-assigned name) or a numeric slot index.
// It is untagged on the wire; decoding tries string then integer.
type EventSource struct {
	Name *string
	Slot *int32
}

// SourceFromName wraps a string EventSource.
func SourceFromName(name string) EventSource { return EventSource{Name: &name} }

// SourceFromSlot wraps a numeric EventSource.
func SourceFromSlot(slot int32) EventSource { return EventSource{Slot: &slot} }

func (s EventSource) String() string {
	if s.Name != nil {
		return *s.Name
	}
	if s.Slot != nil {
		return fmt.Sprintf("%d", *s.Slot)
	}
	return ""
}

// CodecEncodeSelf implements codec.Selfer.
func (s EventSource) CodecEncodeSelf(e *codec.Encoder) {
	switch {
	case s.Name != nil:
		e.MustEncode(*s.Name)
	case s.Slot != nil:
		e.MustEncode(*s.Slot)
	default:
		panic("event source: neither name nor slot set")
	}
}

// CodecDecodeSelf implements codec.Selfer, preferring the string variant.
func (s *EventSource) CodecDecodeSelf(d *codec.Decoder) {
	var raw interface{}
	d.MustDecode(&raw)
	switch v := raw.(type) {
	case string:
		s.Name = &v
		s.Slot = nil
	case []byte:
		str := string(v)
		s.Name = &str
		s.Slot = nil
	case int64:
		slot := int32(v)
		s.Slot = &slot
		s.Name = nil
	case uint64:
		slot := int32(v)
		s.Slot = &slot
		s.Name = nil
	default:
		panic(fmt.Errorf("event source: unexpected wire type %T", raw))
	}
}
