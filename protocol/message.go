package protocol

// ClientMessage is the envelope for every outbound request.
type ClientMessage[P any] struct {
	RequestID      int32          `codec:"REID"`
	Verb           Verb           `codec:"VERB"`
	Path           []string       `codec:"PATH"`
	Meta           Meta           `codec:"META"`
	Authentication Authentication `codec:"AUTH"`
	Payload        P              `codec:"PAYL"`
}

// ServerMessage is the envelope for every inbound response or stream event.
// RequestID is nil for messages the server did not correlate to a request.
type ServerMessage[P any] struct {
	ResponseNum int32    `codec:"RNUM"`
	RequestID   *int32   `codec:"REID"`
	Warnings    []string `codec:"WARNINGS,omitempty"`
	Response    *string  `codec:"RESPONSE"`
	Payload     P        `codec:"PAYL"`
}

// Success reports whether ResponseNum falls in the HTTP-like 200-299 success
// range.
func (m ServerMessage[P]) Success() bool {
	return m.ResponseNum >= 200 && m.ResponseNum < 300
}
