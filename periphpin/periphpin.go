// Package periphpin exposes output pin handles as periph.io gpio.PinOut, so
// drivers written against periph can drive MK20D7 pins.
package periphpin

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"

	"github.com/firelizzard18/kinetis-gpio/digital"
)

// ErrPWM is returned by PWM; the GPIO block has no PWM.
var ErrPWM = errors.New("periphpin: PWM is not supported")

// Pin adapts a digital.OutputPin to gpio.PinOut.
type Pin struct {
	name   string
	number int
	out    digital.OutputPin
}

var _ gpio.PinOut = &Pin{}

// New wraps out. name and number identify the pin to periph, for example
// "PC5" and 13 for the Teensy LED.
func New(name string, number int, out digital.OutputPin) *Pin {
	return &Pin{name: name, number: number, out: out}
}

// Name returns the pin name given to New.
func (p *Pin) Name() string {
	return p.name
}

// Number returns the pin number given to New.
func (p *Pin) Number() int {
	return p.number
}

// String returns the name followed by the number, as in "PC5(13)".
func (p *Pin) String() string {
	return fmt.Sprintf("%s(%d)", p.name, p.number)
}

// Function returns "Out/High" or "Out/Low".
func (p *Pin) Function() string {
	if p.out.IsHigh() {
		return "Out/High"
	}
	return "Out/Low"
}

// Halt is a no-op: the pin keeps its level.
func (p *Pin) Halt() error {
	return nil
}

// Out drives the pin to level l. It never fails.
func (p *Pin) Out(l gpio.Level) error {
	digital.Set(p.out, bool(l))
	return nil
}

// PWM always returns ErrPWM.
func (p *Pin) PWM(duty gpio.Duty, f physic.Frequency) error {
	return ErrPWM
}
