// Package digital defines the digital output contract that application code
// and drivers are written against.
package digital

// OutputPin is a pin driven high or low. IsHigh and IsLow report the level
// the pin was last set to, not the level measured on the pad.
type OutputPin interface {
	IsHigh() bool
	IsLow() bool
	SetHigh()
	SetLow()
}

// ToggleableOutputPin is an OutputPin that can invert its own level.
type ToggleableOutputPin interface {
	OutputPin
	Toggle()
}

// Toggle inverts the level of p using only the OutputPin operations.
func Toggle(p OutputPin) {
	if p.IsHigh() {
		p.SetLow()
	} else {
		p.SetHigh()
	}
}

// Set drives p high if high is true and low otherwise.
func Set(p OutputPin, high bool) {
	if high {
		p.SetHigh()
	} else {
		p.SetLow()
	}
}
