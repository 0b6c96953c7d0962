package input

// Vec3 is an optional 3D vector, each component independently absent if
// the device doesn't report it.
type Vec3 struct {
	X, Y, Z *float64
}

// Rot3 is a set of three independently-optional rotation rates.
type Rot3 struct {
	Alpha, Beta, Gamma *float64
}

// MotionEvent is a device motion (accelerometer/gyroscope) event.
type MotionEvent struct {
	Source                        EventSource `codec:"source"`
	Acceleration                  *Vec3
	AccelerationIncludingGravity  *Vec3
	RotationRate                  *Rot3
	Interval                      float64 `codec:"interval"`
}

// OrientationEvent is a device orientation event.
type OrientationEvent struct {
	Source   EventSource `codec:"source"`
	Absolute *bool       `codec:"absolute"`
	Alpha    *float64    `codec:"alpha"`
	Beta     *float64    `codec:"beta"`
	Gamma    *float64    `codec:"gamma"`
}
