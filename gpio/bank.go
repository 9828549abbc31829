package gpio

import "github.com/firelizzard18/kinetis-gpio/device/mk20d7"

// Bank is the state shared by the handles split from one port.
type Bank struct {
	name    byte
	gpio    *mk20d7.GPIO_Type
	port    *mk20d7.PORT_Type
	claimed uint32
	gen     [32]uint32
}

// Enable consumes the raw register handles of port T, sets the port's clock
// gate bit and returns the bank its pins are claimed from. It panics with
// mk20d7.ErrClaimed if either handle was consumed before, in which case
// neither handle is consumed and the clock gate is left untouched.
func Enable[T mk20d7.Port](gp mk20d7.GPIO[T], pc mk20d7.PORT[T], sim *mk20d7.SIM_Type) *Bank {
	var tag T
	b := &Bank{name: tag.Name()}
	b.gpio, b.port = mk20d7.ClaimPort(gp, pc)
	sim.SCGC5.SetBits(tag.ClockGate())
	return b
}

// Claim returns the Inactive handle of pin P. Each pin can be claimed once
// per bank.
func Claim[P PinID](b *Bank) Inactive[P] {
	var id P
	if id.Port() != b.name {
		panic(ErrWrongPort)
	}
	i := id.Index()
	if i >= 32 {
		panic(ErrNoSuchPin)
	}
	if b.claimed&(1<<i) != 0 {
		panic(ErrPinClaimed)
	}
	b.claimed |= 1 << i
	return Inactive[P]{pin[P]{bank: b, gen: b.gen[i]}}
}
