package gpio

import (
	"strconv"

	"github.com/firelizzard18/kinetis-gpio/digital"
)

// pin is embedded in every handle type. Its exported methods are the
// transitions, which are available in every mode.
type pin[P PinID] struct {
	bank *Bank
	gen  uint32
}

// Port returns the letter of the pin's port.
func (p pin[P]) Port() byte {
	var id P
	return id.Port()
}

// Index returns the pin's bit index within its port.
func (p pin[P]) Index() uint8 {
	var id P
	return id.Index()
}

// String returns the pin's name, such as "PC5".
func (p pin[P]) String() string {
	return "P" + string(p.Port()) + strconv.Itoa(int(p.Index()))
}

func (p pin[P]) mask() uint32 {
	return 1 << p.Index()
}

// live returns the pin's bank, or panics if p is no longer the current
// handle of its pin.
func (p pin[P]) live() *Bank {
	if p.bank == nil || p.bank.gen[p.Index()] != p.gen {
		panic(ErrMoved)
	}
	return p.bank
}

// reconfigure writes the pin control register, then the pin's bit of the
// shared direction register, and retires p.
func (p pin[P]) reconfigure(pcr uint32, output bool) pin[P] {
	b := p.live()
	i := p.Index()
	b.port.PCR[i].Set(pcr)
	if output {
		b.gpio.PDDR.SetBits(p.mask())
	} else {
		b.gpio.PDDR.ClearBits(p.mask())
	}
	b.gen[i]++
	return pin[P]{bank: b, gen: b.gen[i]}
}

// IntoPushPullOutput configures the pin as a push-pull output with high drive
// strength and slow slew rate.
func (p pin[P]) IntoPushPullOutput() Output[P, PushPull] {
	return Output[P, PushPull]{p.reconfigure(pcrPushPull, true)}
}

// IntoOpenDrainOutput configures the pin as an open-drain output with high
// drive strength and slow slew rate.
func (p pin[P]) IntoOpenDrainOutput() Output[P, OpenDrain] {
	return Output[P, OpenDrain]{p.reconfigure(pcrOpenDrain, true)}
}

// IntoFloatingInput configures the pin as a GPIO input without pull resistor.
func (p pin[P]) IntoFloatingInput() Input[P, Floating] {
	return Input[P, Floating]{p.reconfigure(pcrFloating, false)}
}

// IntoInactive disables the pin's GPIO function and makes it an input again.
func (p pin[P]) IntoInactive() Inactive[P] {
	return Inactive[P]{p.reconfigure(pcrInactive, false)}
}

// Inactive is a pin with its function disabled. Split hands out every pin in
// this state.
type Inactive[P PinID] struct {
	pin[P]
}

// Input is a pin configured as a GPIO input in mode M.
type Input[P PinID, M InputMode] struct {
	pin[P]
}

// Output is a pin configured as a GPIO output in mode M.
type Output[P PinID, M OutputMode] struct {
	pin[P]
}

// IsHigh reports whether the pin's output latch is high.
func (p Output[P, M]) IsHigh() bool {
	return p.live().gpio.PDOR.HasBits(p.mask())
}

// IsLow reports whether the pin's output latch is low.
func (p Output[P, M]) IsLow() bool {
	return !p.IsHigh()
}

// SetHigh drives the pin high. An open-drain pin is released instead.
func (p Output[P, M]) SetHigh() {
	p.live().gpio.PSOR.Set(p.mask())
}

// SetLow drives the pin low.
func (p Output[P, M]) SetLow() {
	p.live().gpio.PCOR.Set(p.mask())
}

// Toggle inverts the pin's output level.
func (p Output[P, M]) Toggle() {
	digital.Toggle(p)
}

// Set drives the pin high if high is true and low otherwise.
func (p Output[P, M]) Set(high bool) {
	digital.Set(p, high)
}
