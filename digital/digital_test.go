package digital

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakePin struct {
	level  bool
	writes int
}

func (p *fakePin) IsHigh() bool { return p.level }
func (p *fakePin) IsLow() bool  { return !p.level }
func (p *fakePin) SetHigh()     { p.level = true; p.writes++ }
func (p *fakePin) SetLow()      { p.level = false; p.writes++ }

func TestToggle(t *testing.T) {
	p := &fakePin{}

	Toggle(p)
	assert.True(t, p.IsHigh())
	Toggle(p)
	assert.True(t, p.IsLow())
	assert.Equal(t, 2, p.writes)
}

func TestSet(t *testing.T) {
	p := &fakePin{}

	Set(p, true)
	assert.True(t, p.IsHigh())
	Set(p, false)
	assert.True(t, p.IsLow())
}
