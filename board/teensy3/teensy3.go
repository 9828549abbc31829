// Package teensy3 maps the Teensy 3.1 and 3.2 header onto MK20D7 pin
// handles, named after the Arduino digital pin numbers printed on the board.
package teensy3

import (
	"github.com/firelizzard18/kinetis-gpio/device/mk20d7"
	"github.com/firelizzard18/kinetis-gpio/gpio"
	"github.com/firelizzard18/kinetis-gpio/gpio/gpioa"
	"github.com/firelizzard18/kinetis-gpio/gpio/gpiob"
	"github.com/firelizzard18/kinetis-gpio/gpio/gpioc"
	"github.com/firelizzard18/kinetis-gpio/gpio/gpiod"
	"github.com/firelizzard18/kinetis-gpio/gpio/gpioe"
)

// Pins holds one handle per digital pin of the header.
type Pins struct {
	D00 gpio.Inactive[gpiob.PB16]
	D01 gpio.Inactive[gpiob.PB17]
	D02 gpio.Inactive[gpiod.PD0]
	D03 gpio.Inactive[gpioa.PA12]
	D04 gpio.Inactive[gpioa.PA13]
	D05 gpio.Inactive[gpiod.PD7]
	D06 gpio.Inactive[gpiod.PD4]
	D07 gpio.Inactive[gpiod.PD2]
	D08 gpio.Inactive[gpiod.PD3]
	D09 gpio.Inactive[gpioc.PC3]
	D10 gpio.Inactive[gpioc.PC4]
	D11 gpio.Inactive[gpioc.PC6]
	D12 gpio.Inactive[gpioc.PC7]
	// D13 drives the on-board LED.
	D13 gpio.Inactive[gpioc.PC5]
	D14 gpio.Inactive[gpiod.PD1]
	D15 gpio.Inactive[gpioc.PC0]
	D16 gpio.Inactive[gpiob.PB0]
	D17 gpio.Inactive[gpiob.PB1]
	D18 gpio.Inactive[gpiob.PB3]
	D19 gpio.Inactive[gpiob.PB2]
	D20 gpio.Inactive[gpiod.PD5]
	D21 gpio.Inactive[gpiod.PD6]
	D22 gpio.Inactive[gpioc.PC1]
	D23 gpio.Inactive[gpioc.PC2]
	D24 gpio.Inactive[gpioa.PA5]
	D25 gpio.Inactive[gpiob.PB19]
	D26 gpio.Inactive[gpioe.PE1]
	D27 gpio.Inactive[gpioc.PC9]
	D28 gpio.Inactive[gpioc.PC8]
	D29 gpio.Inactive[gpioc.PC10]
	D30 gpio.Inactive[gpioc.PC11]
	D31 gpio.Inactive[gpioe.PE0]
	D32 gpio.Inactive[gpiob.PB18]
	D33 gpio.Inactive[gpioa.PA4]
}

// Split splits every port of p and routes the header pins into Pins. The
// JTAG/SWD pins (PA0-PA3) and the crystal pins (PA18, PA19) are not on the
// header; they stay claimed and out of reach.
func Split(p mk20d7.Peripherals) Pins {
	a := gpioa.Split(p.PTA, p.PORTA, p.SIM)
	b := gpiob.Split(p.PTB, p.PORTB, p.SIM)
	c := gpioc.Split(p.PTC, p.PORTC, p.SIM)
	d := gpiod.Split(p.PTD, p.PORTD, p.SIM)
	e := gpioe.Split(p.PTE, p.PORTE, p.SIM)

	return Pins{
		D00: b.PB16,
		D01: b.PB17,
		D02: d.PD0,
		D03: a.PA12,
		D04: a.PA13,
		D05: d.PD7,
		D06: d.PD4,
		D07: d.PD2,
		D08: d.PD3,
		D09: c.PC3,
		D10: c.PC4,
		D11: c.PC6,
		D12: c.PC7,
		D13: c.PC5,
		D14: d.PD1,
		D15: c.PC0,
		D16: b.PB0,
		D17: b.PB1,
		D18: b.PB3,
		D19: b.PB2,
		D20: d.PD5,
		D21: d.PD6,
		D22: c.PC1,
		D23: c.PC2,
		D24: a.PA5,
		D25: b.PB19,
		D26: e.PE1,
		D27: c.PC9,
		D28: c.PC8,
		D29: c.PC10,
		D30: c.PC11,
		D31: e.PE0,
		D32: b.PB18,
		D33: a.PA4,
	}
}
