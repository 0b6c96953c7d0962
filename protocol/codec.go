package protocol

import (
	"fmt"
	"reflect"

	"github.com/ugorji/go/codec"
)

// handle is the single MessagePack codec configuration shared by encode and
// decode throughout the module. RawToString is false so that byte blobs
// (frame payloads, MIDI bytes) stay distinguishable from text on the wire.
var handle = &codec.MsgpackHandle{WriteExt: true}

func init() {
	handle.RawToString = false
	handle.MapType = reflect.TypeOf(map[string]interface{}(nil))
}

// Value is an opaque, already-decoded server payload. Its concrete shape is
// whatever the codec produced (map[string]interface{}, []interface{}, a
// scalar, or raw bytes) until reshaped by DecodePayload.
type Value interface{}

// EncodeClientMessage serializes a ClientMessage[P] to its wire bytes.
func EncodeClientMessage[P any](msg ClientMessage[P]) ([]byte, error) {
	var buf []byte
	enc := codec.NewEncoderBytes(&buf, handle)
	if err := enc.Encode(msg); err != nil {
		return nil, fmt.Errorf("encode client message: %w", err)
	}
	return buf, nil
}

// DecodeServerMessage deserializes wire bytes into a ServerMessage carrying
// an opaque Value payload, deferring typed decoding to DecodePayload.
func DecodeServerMessage(data []byte) (ServerMessage[Value], error) {
	var msg ServerMessage[Value]
	dec := codec.NewDecoderBytes(data, handle)
	if err := dec.Decode(&msg); err != nil {
		return ServerMessage[Value]{}, fmt.Errorf("decode server message: %w", err)
	}
	return msg, nil
}

// Marshal serializes any value (including a Selfer like Frame, Model or
// input.InputEvent) with the module's shared MessagePack handle.
func Marshal(v interface{}) ([]byte, error) {
	var buf []byte
	enc := codec.NewEncoderBytes(&buf, handle)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	return buf, nil
}

// Unmarshal deserializes bytes produced by Marshal into v.
func Unmarshal(data []byte, v interface{}) error {
	dec := codec.NewDecoderBytes(data, handle)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	return nil
}

// DecodePayload reshapes an opaque Value (as produced by DecodeServerMessage)
// into the caller's requested type R, by round-tripping it back through the
// same msgpack handle. This mirrors rmpv::ext::from_value in the original
// Rust client: decode once to a dynamic value, reshape on demand.
func DecodePayload[R any](v Value) (R, error) {
	var out R
	var buf []byte
	enc := codec.NewEncoderBytes(&buf, handle)
	if err := enc.Encode(v); err != nil {
		return out, fmt.Errorf("re-encode payload: %w", err)
	}
	dec := codec.NewDecoderBytes(buf, handle)
	if err := dec.Decode(&out); err != nil {
		return out, fmt.Errorf("decode payload: %w", err)
	}
	return out, nil
}
