// Package mk20d7 describes the MK20D7 registers needed to drive pins as
// digital outputs: the PORT pin control blocks, the GPIO data blocks and the
// SIM clock gate. Names follow the K20 Sub-Family Reference Manual
// (K20P64M72SF1RM).
package mk20d7

import "github.com/firelizzard18/kinetis-gpio/volatile"

// Peripheral base addresses.
const (
	SIM_BASE   = 0x40047000
	PORTA_BASE = 0x40049000
	PORTB_BASE = 0x4004A000
	PORTC_BASE = 0x4004B000
	PORTD_BASE = 0x4004C000
	PORTE_BASE = 0x4004D000
	PTA_BASE   = 0x400FF000
	PTB_BASE   = 0x400FF040
	PTC_BASE   = 0x400FF080
	PTD_BASE   = 0x400FF0C0
	PTE_BASE   = 0x400FF100
)

// GPIO_Type is the register layout of a PTx block. Every register is shared
// by the 32 pins of the port.
type GPIO_Type struct {
	PDOR volatile.Register32 // 0x00 Port Data Output
	PSOR volatile.Register32 // 0x04 Port Set Output, write-only
	PCOR volatile.Register32 // 0x08 Port Clear Output, write-only
	_    [2]uint32           // 0x0C PTOR, 0x10 PDIR
	PDDR volatile.Register32 // 0x14 Port Data Direction
}

// PORT_Type is the register layout of a PORTx block, up to the pin control
// registers. PCR[n] belongs to pin n alone.
type PORT_Type struct {
	PCR [32]volatile.Register32
}

// SIM_Type is the register layout of the System Integration Module, up to
// SCGC5.
type SIM_Type struct {
	_     [0x1038 / 4]uint32
	SCGC5 volatile.Register32 // 0x1038 System Clock Gating Control 5
}

// Pin Control Register fields.
const (
	PORT_PCR_PS  = 0x1 << 0 // pull select
	PORT_PCR_PE  = 0x1 << 1 // pull enable
	PORT_PCR_SRE = 0x1 << 2 // slew rate enable
	PORT_PCR_PFE = 0x1 << 4 // passive filter enable
	PORT_PCR_ODE = 0x1 << 5 // open drain enable
	PORT_PCR_DSE = 0x1 << 6 // drive strength enable

	PORT_PCR_MUX_Pos = 8
	PORT_PCR_MUX_Msk = 0x7 << PORT_PCR_MUX_Pos

	PORT_PCR_MUX_DISABLED = 0x0 << PORT_PCR_MUX_Pos
	PORT_PCR_MUX_GPIO     = 0x1 << PORT_PCR_MUX_Pos
)

// SCGC5 clock gate bits of the PORT modules.
const (
	SIM_SCGC5_PORTA = 0x1 << 9
	SIM_SCGC5_PORTB = 0x1 << 10
	SIM_SCGC5_PORTC = 0x1 << 11
	SIM_SCGC5_PORTD = 0x1 << 12
	SIM_SCGC5_PORTE = 0x1 << 13
)

// Port is implemented by the port tag types. A tag carries no data; it only
// ties a GPIO handle and a PORT handle to the same lettered port.
type Port interface {
	// Name returns the port letter.
	Name() byte
	// ClockGate returns the port's SCGC5 bit.
	ClockGate() uint32
}

type (
	PortA struct{}
	PortB struct{}
	PortC struct{}
	PortD struct{}
	PortE struct{}
)

func (PortA) Name() byte { return 'A' }
func (PortB) Name() byte { return 'B' }
func (PortC) Name() byte { return 'C' }
func (PortD) Name() byte { return 'D' }
func (PortE) Name() byte { return 'E' }

func (PortA) ClockGate() uint32 { return SIM_SCGC5_PORTA }
func (PortB) ClockGate() uint32 { return SIM_SCGC5_PORTB }
func (PortC) ClockGate() uint32 { return SIM_SCGC5_PORTC }
func (PortD) ClockGate() uint32 { return SIM_SCGC5_PORTD }
func (PortE) ClockGate() uint32 { return SIM_SCGC5_PORTE }
