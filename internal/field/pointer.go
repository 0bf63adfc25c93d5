package field

// Pointer is the shared cursor/touch state read every frame.
type Pointer struct {
	X, Y     float64
	Touching bool
}

// Active reports whether the pointer may scatter particles. Devices without
// touch input always repel; touch devices only while a finger is down.
func (p Pointer) Active(touchCapable bool) bool {
	return p.Touching || !touchCapable
}
