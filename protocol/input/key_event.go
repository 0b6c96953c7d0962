package input

// KeyModifiers is the set of held modifier keys.
type KeyModifiers struct {
	Alt   bool `codec:"alt"`
	Ctrl  bool `codec:"ctrl"`
	Meta  bool `codec:"meta"`
	Shift bool `codec:"shift"`
}

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Source    EventSource  `codec:"source"`
	Down      bool         `codec:"down"`
	Repeat    bool         `codec:"repeat"`
	Code      string       `codec:"code"`
	Modifiers KeyModifiers `codec:"modifiers"`
}
