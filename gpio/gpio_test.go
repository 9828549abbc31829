//go:build !(nxp && mk20d7)

package gpio_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firelizzard18/kinetis-gpio/device/mk20d7"
	"github.com/firelizzard18/kinetis-gpio/digital"
	"github.com/firelizzard18/kinetis-gpio/gpio"
	"github.com/firelizzard18/kinetis-gpio/gpio/gpioa"
	"github.com/firelizzard18/kinetis-gpio/gpio/gpiob"
	"github.com/firelizzard18/kinetis-gpio/gpio/gpioc"
	"github.com/firelizzard18/kinetis-gpio/gpio/gpiod"
	"github.com/firelizzard18/kinetis-gpio/gpio/gpioe"
	"github.com/firelizzard18/kinetis-gpio/volatile"
)

var (
	_ digital.ToggleableOutputPin = gpio.Output[gpiob.PB0, gpio.PushPull]{}
	_ digital.ToggleableOutputPin = gpio.Output[gpiob.PB0, gpio.OpenDrain]{}
)

// simulate returns simulated peripherals that are released when t ends.
func simulate(t *testing.T) mk20d7.Peripherals {
	t.Helper()
	p := mk20d7.Simulate()
	t.Cleanup(func() { mk20d7.Release(p) })
	return p
}

type pinInfo interface {
	Port() byte
	Index() uint8
}

// partsIndices returns the bit index of every handle in a Parts struct and
// checks that every handle is Inactive.
func partsIndices(t *testing.T, parts any, port byte) []int {
	t.Helper()
	v := reflect.ValueOf(parts)
	var indices []int
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		assert.True(t, strings.HasPrefix(f.Type().Name(), "Inactive["), "%s is %s", v.Type().Field(i).Name, f.Type().Name())
		info := f.Interface().(pinInfo)
		assert.Equal(t, port, info.Port())
		assert.Equal(t, v.Type().Field(i).Name, f.Interface().(interface{ String() string }).String())
		indices = append(indices, int(info.Index()))
	}
	return indices
}

func TestSplitYieldsBondedPins(t *testing.T) {
	p := simulate(t)

	tests := []struct {
		port  byte
		parts any
		want  []int
	}{
		{'A', gpioa.Split(p.PTA, p.PORTA, p.SIM), []int{0, 1, 2, 3, 4, 5, 12, 13, 18, 19}},
		{'B', gpiob.Split(p.PTB, p.PORTB, p.SIM), []int{0, 1, 2, 3, 16, 17, 18, 19}},
		{'C', gpioc.Split(p.PTC, p.PORTC, p.SIM), []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
		{'D', gpiod.Split(p.PTD, p.PORTD, p.SIM), []int{0, 1, 2, 3, 4, 5, 6, 7}},
		{'E', gpioe.Split(p.PTE, p.PORTE, p.SIM), []int{0, 1}},
	}
	for _, tt := range tests {
		t.Run(string(tt.port), func(t *testing.T) {
			assert.Equal(t, tt.want, partsIndices(t, tt.parts, tt.port))
		})
	}

	gates := uint32(mk20d7.SIM_SCGC5_PORTA | mk20d7.SIM_SCGC5_PORTB | mk20d7.SIM_SCGC5_PORTC |
		mk20d7.SIM_SCGC5_PORTD | mk20d7.SIM_SCGC5_PORTE)
	assert.Equal(t, gates, p.SIM.SCGC5.Get())
}

func TestSplitEnablesClockOnce(t *testing.T) {
	p := simulate(t)
	p.SIM.SCGC5.Set(1 << 5) // TSI gate, owned by someone else

	writes := 0
	volatile.OnWrite(&p.SIM.SCGC5, func(v uint32) uint32 {
		writes++
		return v
	})
	t.Cleanup(func() { volatile.OnWrite(&p.SIM.SCGC5, nil) })

	gpiob.Split(p.PTB, p.PORTB, p.SIM)
	assert.Equal(t, 1, writes)
	assert.Equal(t, uint32(1<<5|mk20d7.SIM_SCGC5_PORTB), p.SIM.SCGC5.Get())

	require.PanicsWithValue(t, mk20d7.ErrClaimed, func() {
		gpiob.Split(p.PTB, p.PORTB, p.SIM)
	})
	assert.Equal(t, 1, writes, "a rejected split does not touch the clock gate")
}

func TestPushPullScenario(t *testing.T) {
	p := simulate(t)
	regs := p.PTB.Registers()
	parts := gpiob.Split(p.PTB, p.PORTB, p.SIM)

	pin := parts.PB0.IntoPushPullOutput()
	assert.True(t, regs.PDDR.HasBits(1<<0))

	pin.SetHigh()
	assert.True(t, pin.IsHigh())
	assert.False(t, pin.IsLow())

	pin.SetLow()
	assert.True(t, pin.IsLow())
	assert.False(t, pin.IsHigh())
}

func TestTransitionWritesControlThenDirection(t *testing.T) {
	p := simulate(t)
	pcr := &p.PORTC.Registers().PCR[5]
	pddr := &p.PTC.Registers().PDDR
	parts := gpioc.Split(p.PTC, p.PORTC, p.SIM)

	var order []string
	volatile.OnWrite(pcr, func(v uint32) uint32 { order = append(order, "PCR"); return v })
	volatile.OnWrite(pddr, func(v uint32) uint32 { order = append(order, "PDDR"); return v })
	t.Cleanup(func() {
		volatile.OnWrite(pcr, nil)
		volatile.OnWrite(pddr, nil)
	})

	parts.PC5.IntoPushPullOutput()
	assert.Equal(t, []string{"PCR", "PDDR"}, order)
}

func TestTransitionControlRegister(t *testing.T) {
	p := simulate(t)
	port := p.PORTD.Registers()
	parts := gpiod.Split(p.PTD, p.PORTD, p.SIM)

	// Stale bits from a previous owner are overwritten.
	port.PCR[3].Set(mk20d7.PORT_PCR_PE | mk20d7.PORT_PCR_PS | 3<<mk20d7.PORT_PCR_MUX_Pos)
	port.PCR[4].Set(0xDEAD)

	out := parts.PD3.IntoPushPullOutput()
	assert.Equal(t, uint32(mk20d7.PORT_PCR_MUX_GPIO|mk20d7.PORT_PCR_DSE|mk20d7.PORT_PCR_SRE), port.PCR[3].Get())

	od := out.IntoOpenDrainOutput()
	assert.Equal(t, uint32(mk20d7.PORT_PCR_MUX_GPIO|mk20d7.PORT_PCR_DSE|mk20d7.PORT_PCR_SRE|mk20d7.PORT_PCR_ODE), port.PCR[3].Get())

	in := od.IntoFloatingInput()
	assert.Equal(t, uint32(mk20d7.PORT_PCR_MUX_GPIO), port.PCR[3].Get())
	assert.False(t, port.PCR[3].HasBits(mk20d7.PORT_PCR_PE), "floating input has no pull")

	in.IntoInactive()
	assert.Equal(t, uint32(mk20d7.PORT_PCR_MUX_DISABLED), port.PCR[3].Get())

	assert.Equal(t, uint32(0xDEAD), port.PCR[4].Get(), "sibling control register untouched")
}

func TestTransitionPreservesSiblingDirection(t *testing.T) {
	p := simulate(t)
	regs := p.PTC.Registers()
	parts := gpioc.Split(p.PTC, p.PORTC, p.SIM)

	const siblings = 0xA5A5_0A0A &^ (1 << 5)
	regs.PDDR.Set(siblings)

	out := parts.PC5.IntoPushPullOutput()
	assert.Equal(t, uint32(siblings|1<<5), regs.PDDR.Get())

	in := out.IntoFloatingInput()
	assert.Equal(t, uint32(siblings), regs.PDDR.Get())

	od := in.IntoOpenDrainOutput()
	assert.Equal(t, uint32(siblings|1<<5), regs.PDDR.Get())

	od.IntoInactive()
	assert.Equal(t, uint32(siblings), regs.PDDR.Get())
}

func TestCapabilityOnlyOnOutputs(t *testing.T) {
	capability := []string{"IsHigh", "IsLow", "SetHigh", "SetLow", "Toggle"}
	transitions := []string{"IntoPushPullOutput", "IntoOpenDrainOutput", "IntoFloatingInput", "IntoInactive"}

	tests := []struct {
		name   string
		typ    reflect.Type
		output bool
	}{
		{"inactive", reflect.TypeFor[gpio.Inactive[gpioa.PA5]](), false},
		{"floating input", reflect.TypeFor[gpio.Input[gpioa.PA5, gpio.Floating]](), false},
		{"push-pull output", reflect.TypeFor[gpio.Output[gpioa.PA5, gpio.PushPull]](), true},
		{"open-drain output", reflect.TypeFor[gpio.Output[gpioa.PA5, gpio.OpenDrain]](), true},
	}
	outputPin := reflect.TypeFor[digital.OutputPin]()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, m := range capability {
				_, ok := tt.typ.MethodByName(m)
				assert.Equal(t, tt.output, ok, m)
			}
			for _, m := range transitions {
				_, ok := tt.typ.MethodByName(m)
				assert.True(t, ok, m)
			}
			assert.Equal(t, tt.output, tt.typ.Implements(outputPin))
		})
	}
}

func TestEachPinHasItsOwnType(t *testing.T) {
	a0 := reflect.TypeFor[gpio.Output[gpioa.PA0, gpio.PushPull]]()
	a1 := reflect.TypeFor[gpio.Output[gpioa.PA1, gpio.PushPull]]()
	b0 := reflect.TypeFor[gpio.Output[gpiob.PB0, gpio.PushPull]]()
	assert.NotEqual(t, a0, a1)
	assert.NotEqual(t, a0, b0, "same index on another port")
}
