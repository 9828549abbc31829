//go:build nxp && mk20d7

package volatile

import rtvolatile "runtime/volatile"

// Get returns the value of the register.
//
//go:inline
func (r *Register32) Get() uint32 {
	return rtvolatile.LoadUint32(&r.Reg)
}

// Set writes value to the register.
//
//go:inline
func (r *Register32) Set(value uint32) {
	rtvolatile.StoreUint32(&r.Reg, value)
}
