package protocol

// Meta carries per-request hints. Nonrecursive is omitted from the wire
// entirely when unset, rather than serialized as an explicit null.
type Meta struct {
	Nonrecursive *bool `codec:"NONRECURSIVE,omitempty"`
}

// WithNonrecursive returns a Meta requesting a non-recursive operation.
func WithNonrecursive(nonrecursive bool) Meta {
	return Meta{Nonrecursive: &nonrecursive}
}
