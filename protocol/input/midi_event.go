package input

// MidiEvent carries a raw MIDI message. The first byte is a status byte
// (high bit set); remaining bytes are data bytes (high bit clear). See
// https://www.w3.org/TR/webmidi/#terminology for the wire format.
type MidiEvent struct {
	Source EventSource `codec:"source"`
	Data   []byte      `codec:"data"`
}
