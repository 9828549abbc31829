//go:build !(nxp && mk20d7)

package mk20d7

import (
	"sync/atomic"

	"github.com/firelizzard18/kinetis-gpio/volatile"
)

// Simulate returns a fresh set of peripherals backed by ordinary memory. It
// is independent of Take and may be called any number of times.
//
// Writes to PSOR and PCOR behave as on hardware: they atomically set or clear
// the written bits of PDOR and read back as zero. Call Release when the
// peripherals are no longer needed.
func Simulate() Peripherals {
	p, _ := newPeripherals(blocks())
	return p
}

// Release removes the write hooks Simulate installed on the GPIO blocks of p.
// Afterwards PSOR and PCOR are plain memory.
func Release(p Peripherals) {
	for _, g := range [...]*GPIO_Type{p.PTA.regs, p.PTB.regs, p.PTC.regs, p.PTD.regs, p.PTE.regs} {
		if g == nil {
			continue
		}
		volatile.OnWrite(&g.PSOR, nil)
		volatile.OnWrite(&g.PCOR, nil)
	}
}

func blocks() (gpio [5]*GPIO_Type, port [5]*PORT_Type, sim *SIM_Type) {
	for i := range gpio {
		g := new(GPIO_Type)
		volatile.OnWrite(&g.PSOR, func(v uint32) uint32 {
			atomic.OrUint32(&g.PDOR.Reg, v)
			return 0
		})
		volatile.OnWrite(&g.PCOR, func(v uint32) uint32 {
			atomic.AndUint32(&g.PDOR.Reg, ^v)
			return 0
		})
		gpio[i] = g
		port[i] = new(PORT_Type)
	}
	sim = new(SIM_Type)
	return
}
