// Package gpio gives each MK20D7 pin a uniquely owned handle whose type
// records how the pin is configured.
//
// A port is split once (see the generated packages gpioa through gpioe) into
// one Inactive handle per bonded pin. Transition methods consume a handle and
// return a handle of the new type, programming the hardware on the way:
//
//	led := parts.PC5.IntoPushPullOutput()
//	led.SetHigh()
//
// Only Output handles have SetHigh, SetLow, IsHigh and IsLow, so driving a
// pin that is not configured as an output does not compile.
//
// Go cannot move a value, so a handle that has been transitioned still exists
// as a variable. Each handle carries an ownership generation and panics with
// ErrMoved when it is used after a transition.
//
// Transitions update the port's shared data direction register with a
// read-modify-write. Two different pins of the same port must not be
// transitioned concurrently; nothing in this package serializes them.
// SetHigh and SetLow use the write-only set and clear registers and are safe
// to call on sibling pins at the same time.
//
// Discarding a handle leaves the pin configured as it was. IntoInactive
// returns a pin to its reset function.
package gpio

import (
	"errors"

	"github.com/firelizzard18/kinetis-gpio/device/mk20d7"
)

//go:generate go run ../cmd/gpiogen -table ports.yaml -output .

var (
	// ErrMoved is the panic value of any use of a handle after a transition
	// has consumed it.
	ErrMoved = errors.New("gpio: pin handle used after it was moved")

	// ErrPinClaimed is the panic value of a second Claim of the same pin.
	ErrPinClaimed = errors.New("gpio: pin already claimed")

	// ErrWrongPort is the panic value of a Claim with a pin of another port.
	ErrWrongPort = errors.New("gpio: pin belongs to another port")

	// ErrNoSuchPin is the panic value of a Claim with an index above 31.
	ErrNoSuchPin = errors.New("gpio: pin index out of range")
)

// PinID names one physical pin at the type level. The generated port
// packages declare one PinID type per bonded pin.
type PinID interface {
	Port() byte
	Index() uint8
}

// Floating is the input mode with the pull resistor disabled.
type Floating struct{}

// PushPull is the output mode that drives the pin both high and low.
type PushPull struct{}

// OpenDrain is the output mode that only drives the pin low.
type OpenDrain struct{}

// InputMode is the set of input mode tags.
type InputMode interface {
	Floating
}

// OutputMode is the set of output mode tags.
type OutputMode interface {
	PushPull | OpenDrain
}

// Pin control register values written by the transitions. The register is
// private to its pin, so it is written whole.
const (
	pcrInactive  = mk20d7.PORT_PCR_MUX_DISABLED
	pcrFloating  = mk20d7.PORT_PCR_MUX_GPIO
	pcrPushPull  = mk20d7.PORT_PCR_MUX_GPIO | mk20d7.PORT_PCR_DSE | mk20d7.PORT_PCR_SRE
	pcrOpenDrain = pcrPushPull | mk20d7.PORT_PCR_ODE
)
