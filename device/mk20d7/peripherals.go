package mk20d7

import (
	"errors"
	"sync/atomic"
)

// ErrClaimed is the panic value of a second Claim on the same raw handle.
var ErrClaimed = errors.New("mk20d7: peripheral already claimed")

// GPIO is the raw, single-use handle to the GPIO block of port T.
type GPIO[T Port] struct {
	regs  *GPIO_Type
	taken *uint32
}

// Registers returns the register block without consuming the handle.
func (g GPIO[T]) Registers() *GPIO_Type {
	return g.regs
}

// Claim consumes the handle and returns its register block. Every copy of a
// handle shares one claim, so only the first Claim succeeds; later ones panic
// with ErrClaimed.
func (g GPIO[T]) Claim() *GPIO_Type {
	claim(g.taken)
	return g.regs
}

// PORT is the raw, single-use handle to the PORT block of port T.
type PORT[T Port] struct {
	regs  *PORT_Type
	taken *uint32
}

// Registers returns the register block without consuming the handle.
func (p PORT[T]) Registers() *PORT_Type {
	return p.regs
}

// Claim consumes the handle and returns its register block. See GPIO.Claim.
func (p PORT[T]) Claim() *PORT_Type {
	claim(p.taken)
	return p.regs
}

// ClaimPort consumes the GPIO and PORT handles of port T together. If either
// one was claimed before, ClaimPort panics with ErrClaimed and leaves both
// handles as they were.
func ClaimPort[T Port](g GPIO[T], p PORT[T]) (*GPIO_Type, *PORT_Type) {
	claim(g.taken)
	if p.taken == nil || !atomic.CompareAndSwapUint32(p.taken, 0, 1) {
		atomic.StoreUint32(g.taken, 0)
		panic(ErrClaimed)
	}
	return g.regs, p.regs
}

type (
	PTA = GPIO[PortA]
	PTB = GPIO[PortB]
	PTC = GPIO[PortC]
	PTD = GPIO[PortD]
	PTE = GPIO[PortE]

	PORTA = PORT[PortA]
	PORTB = PORT[PortB]
	PORTC = PORT[PortC]
	PORTD = PORT[PortD]
	PORTE = PORT[PortE]
)

// Peripherals holds the raw handles of every block this package describes.
type Peripherals struct {
	PTA PTA
	PTB PTB
	PTC PTC
	PTD PTD
	PTE PTE

	PORTA PORTA
	PORTB PORTB
	PORTC PORTC
	PORTD PORTD
	PORTE PORTE

	// SIM is shared: splitting a port only sets that port's SCGC5 bit.
	SIM *SIM_Type
}

var taken uint32

// Take returns the device peripherals on its first call. Every later call
// returns false.
func Take() (Peripherals, bool) {
	if !atomic.CompareAndSwapUint32(&taken, 0, 1) {
		return Peripherals{}, false
	}
	return newPeripherals(blocks())
}

func newPeripherals(gpio [5]*GPIO_Type, port [5]*PORT_Type, sim *SIM_Type) (Peripherals, bool) {
	claims := new([10]uint32)
	return Peripherals{
		PTA: PTA{gpio[0], &claims[0]},
		PTB: PTB{gpio[1], &claims[1]},
		PTC: PTC{gpio[2], &claims[2]},
		PTD: PTD{gpio[3], &claims[3]},
		PTE: PTE{gpio[4], &claims[4]},

		PORTA: PORTA{port[0], &claims[5]},
		PORTB: PORTB{port[1], &claims[6]},
		PORTC: PORTC{port[2], &claims[7]},
		PORTD: PORTD{port[3], &claims[8]},
		PORTE: PORTE{port[4], &claims[9]},

		SIM: sim,
	}, true
}

func claim(flag *uint32) {
	if flag == nil || !atomic.CompareAndSwapUint32(flag, 0, 1) {
		panic(ErrClaimed)
	}
}
