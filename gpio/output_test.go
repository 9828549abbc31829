//go:build !(nxp && mk20d7)

package gpio_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firelizzard18/kinetis-gpio/device/mk20d7"
	"github.com/firelizzard18/kinetis-gpio/digital"
	"github.com/firelizzard18/kinetis-gpio/gpio/gpioc"
	"github.com/firelizzard18/kinetis-gpio/gpio/gpiod"
)

// checkLevel asserts the complement property and the expected level.
func checkLevel(t *testing.T, p digital.OutputPin, high bool, step int) {
	t.Helper()
	require.NotEqual(t, p.IsHigh(), p.IsLow(), "step %d", step)
	require.Equal(t, high, p.IsHigh(), "step %d", step)
}

func TestOutputSequences(t *testing.T) {
	p := simulate(t)
	regs := p.PTD.Registers()
	parts := gpiod.Split(p.PTD, p.PORTD, p.SIM)

	pins := map[string]digital.OutputPin{
		"push-pull":  parts.PD6.IntoPushPullOutput(),
		"open-drain": parts.PD7.IntoOpenDrainOutput(),
	}
	masks := map[string]uint32{"push-pull": 1 << 6, "open-drain": 1 << 7}

	rng := rand.New(rand.NewSource(7))
	for name, pin := range pins {
		t.Run(name, func(t *testing.T) {
			checkLevel(t, pin, false, 0)
			for step := 1; step <= 200; step++ {
				high := rng.Intn(2) == 1
				if high {
					pin.SetHigh()
				} else {
					pin.SetLow()
				}
				checkLevel(t, pin, high, step)
				require.Equal(t, high, regs.PDOR.HasBits(masks[name]), "step %d", step)
			}
		})
	}
}

func TestToggleAndSet(t *testing.T) {
	p := simulate(t)
	parts := gpioc.Split(p.PTC, p.PORTC, p.SIM)

	led := parts.PC5.IntoPushPullOutput()
	led.Toggle()
	assert.True(t, led.IsHigh())
	led.Toggle()
	assert.True(t, led.IsLow())

	led.Set(true)
	assert.True(t, led.IsHigh())
	led.Set(false)
	assert.True(t, led.IsLow())
}

func TestSetClearUseDedicatedRegisters(t *testing.T) {
	p := simulate(t)
	regs := p.PTC.Registers()
	parts := gpioc.Split(p.PTC, p.PORTC, p.SIM)

	regs.PDOR.Set(1<<0 | 1<<11)
	out := parts.PC3.IntoPushPullOutput()

	out.SetHigh()
	assert.Equal(t, uint32(1<<0|1<<3|1<<11), regs.PDOR.Get())
	out.SetLow()
	assert.Equal(t, uint32(1<<0|1<<11), regs.PDOR.Get())
	assert.Zero(t, regs.PSOR.Get())
	assert.Zero(t, regs.PCOR.Get())
}

func TestSiblingSetClearConcurrently(t *testing.T) {
	for round := range 200 {
		p := simulate(t)
		regs := p.PTC.Registers()
		parts := gpioc.Split(p.PTC, p.PORTC, p.SIM)
		pins := []digital.OutputPin{
			parts.PC0.IntoPushPullOutput(),
			parts.PC1.IntoOpenDrainOutput(),
		}

		var wg sync.WaitGroup
		for _, pin := range pins {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 50 {
					pin.SetLow()
					pin.SetHigh()
				}
			}()
		}
		wg.Wait()
		require.Equal(t, uint32(1<<0|1<<1), regs.PDOR.Get(), "round %d", round)
	}
}
