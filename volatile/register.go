// Package volatile provides access to memory-mapped registers.
//
// When built for the MK20D7 (build tags nxp and mk20d7) every access goes
// through TinyGo's volatile load and store intrinsics. Everywhere else a
// register is ordinary memory accessed atomically, and a write hook can stand
// in for the side effects the hardware would have.
package volatile

// Register32 is a 32-bit memory-mapped register.
type Register32 struct {
	Reg uint32
}

// SetBits reads the register, sets the given bits and writes it back.
//
// This is a read-modify-write: it is not atomic with respect to other writers
// of the same register.
func (r *Register32) SetBits(value uint32) {
	r.Set(r.Get() | value)
}

// ClearBits reads the register, clears the given bits and writes it back.
//
// This is a read-modify-write: it is not atomic with respect to other writers
// of the same register.
func (r *Register32) ClearBits(value uint32) {
	r.Set(r.Get() &^ value)
}

// HasBits reports whether any of the given bits is set.
func (r *Register32) HasBits(value uint32) bool {
	return r.Get()&value != 0
}
