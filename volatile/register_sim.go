//go:build !(nxp && mk20d7)

package volatile

import (
	"sync"
	"sync/atomic"
)

// WriteHook intercepts a store to a simulated register. It is called with the
// value being written and returns the value the register holds afterwards.
type WriteHook func(written uint32) uint32

// hooks maps *Register32 to WriteHook.
var hooks sync.Map

// OnWrite installs h for every later store to r, replacing an earlier hook.
// A nil h removes the hook. A hook keeps r and everything it refers to alive
// until it is removed. Only available off-target.
func OnWrite(r *Register32, h WriteHook) {
	if h == nil {
		hooks.Delete(r)
		return
	}
	hooks.Store(r, h)
}

// Get returns the value of the register.
func (r *Register32) Get() uint32 {
	return atomic.LoadUint32(&r.Reg)
}

// Set writes value to the register, passing it through the register's write
// hook if one is installed.
func (r *Register32) Set(value uint32) {
	if h, ok := hooks.Load(r); ok {
		value = h.(WriteHook)(value)
	}
	atomic.StoreUint32(&r.Reg, value)
}
