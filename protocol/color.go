package protocol

// Color is a single RGB pixel.
type Color struct {
	R uint8 `codec:"R"`
	G uint8 `codec:"G"`
	B uint8 `codec:"B"`
}

// Named colors, mirroring the constants the original protocol crate ships.
var (
	Black   = Color{0, 0, 0}
	White   = Color{255, 255, 255}
	Red     = Color{255, 0, 0}
	Green   = Color{0, 255, 0}
	Blue    = Color{0, 0, 255}
	Yellow  = Color{255, 255, 0}
	Cyan    = Color{0, 255, 255}
	Magenta = Color{255, 0, 255}
)
