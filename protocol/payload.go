package protocol

import (
	"fmt"
	"strings"

	"github.com/ugorji/go/codec"
)

// LegacyInputEvent is the numeric-keycode input event shape used by the
// original model endpoint, superseded by the tagged InputEvent union for
// new integrations but still accepted where Model is in play.
type LegacyInputEvent struct {
	Source int32  `codec:"src"`
	Key    *int32 `codec:"key"`
	Button *int32 `codec:"btn"`
	IsDown bool   `codec:"dwn"`
}

// Model is the untagged union accepted/emitted by the legacy model
// endpoint: either a full Frame (wire: binary blob) or a LegacyInputEvent
// (wire: a map). Exactly one of Frame/Legacy is set.
type Model struct {
	Frame  *Frame
	Legacy *LegacyInputEvent
}

// ModelFromFrame wraps a Frame as a Model.
func ModelFromFrame(f Frame) Model { return Model{Frame: &f} }

// ModelFromLegacyInputEvent wraps a LegacyInputEvent as a Model.
func ModelFromLegacyInputEvent(e LegacyInputEvent) Model { return Model{Legacy: &e} }

// CodecEncodeSelf implements codec.Selfer.
func (m Model) CodecEncodeSelf(e *codec.Encoder) {
	switch {
	case m.Frame != nil:
		m.Frame.CodecEncodeSelf(e)
	case m.Legacy != nil:
		e.MustEncode(*m.Legacy)
	default:
		panic("model: neither frame nor legacy input event set")
	}
}

// CodecDecodeSelf implements codec.Selfer. A binary blob decodes as a
// Frame; anything else is reshaped as a LegacyInputEvent, matching the
// attempt order documented for the Model union.
func (m *Model) CodecDecodeSelf(d *codec.Decoder) {
	var raw interface{}
	d.MustDecode(&raw)

	if blob, ok := raw.([]byte); ok {
		if len(blob) != Bytes {
			panic(fmt.Errorf("model: frame blob is %d bytes, want %d", len(blob), Bytes))
		}
		var f Frame
		for i := range f.Pixels {
			f.Pixels[i] = Color{R: blob[i*3], G: blob[i*3+1], B: blob[i*3+2]}
		}
		m.Frame = &f
		m.Legacy = nil
		return
	}

	legacy, err := DecodePayload[LegacyInputEvent](raw)
	if err != nil {
		panic(fmt.Errorf("model: not a frame and not a legacy input event: %w", err))
	}
	m.Legacy = &legacy
	m.Frame = nil
}

// DirectoryTree describes the children of a listed resource. A nil value
// means a leaf resource with no further children.
type DirectoryTree struct {
	Entries map[string]*DirectoryTree `codec:"-"`
}

// CodecEncodeSelf implements codec.Selfer since DirectoryTree itself is the
// map, not a struct wrapping one.
func (t DirectoryTree) CodecEncodeSelf(e *codec.Encoder) {
	e.MustEncode(t.Entries)
}

// CodecDecodeSelf implements codec.Selfer.
func (t *DirectoryTree) CodecDecodeSelf(d *codec.Decoder) {
	var entries map[string]*DirectoryTree
	d.MustDecode(&entries)
	t.Entries = entries
}

// String renders the tree depth-first, one entry per line, mirroring the
// original crate's Display impl.
func (t DirectoryTree) String() string {
	var b strings.Builder
	t.write(&b, "")
	return b.String()
}

func (t DirectoryTree) write(b *strings.Builder, prefix string) {
	for name, child := range t.Entries {
		fmt.Fprintf(b, "%s%s\n", prefix, name)
		if child != nil {
			child.write(b, prefix+"  ")
		}
	}
}

// LaserMetrics reports per-room controller/lamp metrics.
type LaserMetrics struct {
	Rooms []RoomMetrics `codec:"rooms"`
}

// RoomMetrics carries one room's reported metrics. ControllerMetrics and
// LampMetrics are left as opaque decoded values since their shape varies by
// controller/lamp implementation.
type RoomMetrics struct {
	Room              string                 `codec:"room"`
	APIVersion        int32                  `codec:"api_version"`
	ControllerMetrics map[string]interface{} `codec:"controllerMetrics"`
	LampMetrics       interface{}            `codec:"lampMetrics"`
}
