package main

import (
	"fmt"
	"go/token"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Pin modes accepted in the table.
const (
	ModeInactive        = "inactive"
	ModeFloatingInput   = "floating-input"
	ModePushPullOutput  = "push-pull-output"
	ModeOpenDrainOutput = "open-drain-output"
)

// Table is the pin table loaded from YAML.
type Table struct {
	Module string    `yaml:"module"` // import path of the module the packages live in
	Device string    `yaml:"device"` // register package under <module>/device/
	Ports  []PortDef `yaml:"ports"`
}

// PortDef describes one port and its bonded pins.
type PortDef struct {
	Name    string   `yaml:"name"`    // port letter
	Package string   `yaml:"package"` // generated package name
	Pins    []PinDef `yaml:"pins"`
}

// PinDef describes one bonded pin.
type PinDef struct {
	Name  string `yaml:"name"`
	Index int    `yaml:"index"`
	Mode  string `yaml:"mode"` // defaults to inactive
	Note  string `yaml:"note"` // pad functions, informational
}

// LoadTable reads and validates the table at path.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseTable(data)
}

// ParseTable decodes and validates a table.
func ParseTable(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks the table and fills in defaults. Pins are sorted by index.
func (t *Table) Validate() error {
	if t.Module == "" {
		return fmt.Errorf("module is required")
	}
	if t.Device == "" || !token.IsIdentifier(t.Device) {
		return fmt.Errorf("device %q is not a package name", t.Device)
	}
	if len(t.Ports) == 0 {
		return fmt.Errorf("no ports")
	}

	names := make(map[string]bool)
	packages := make(map[string]bool)
	for i := range t.Ports {
		p := &t.Ports[i]
		if len(p.Name) != 1 || p.Name[0] < 'A' || p.Name[0] > 'Z' {
			return fmt.Errorf("port %q: name must be one upper-case letter", p.Name)
		}
		if names[p.Name] {
			return fmt.Errorf("port %s: duplicate port", p.Name)
		}
		names[p.Name] = true

		if !token.IsIdentifier(p.Package) {
			return fmt.Errorf("port %s: package %q is not a package name", p.Name, p.Package)
		}
		if packages[p.Package] {
			return fmt.Errorf("port %s: package %s used twice", p.Name, p.Package)
		}
		packages[p.Package] = true

		if err := p.validatePins(); err != nil {
			return err
		}
	}
	return nil
}

func (p *PortDef) validatePins() error {
	if len(p.Pins) == 0 {
		return fmt.Errorf("port %s: no pins", p.Name)
	}

	names := make(map[string]bool)
	var indices uint32
	for i := range p.Pins {
		pin := &p.Pins[i]
		if !token.IsExported(pin.Name) || !token.IsIdentifier(pin.Name) {
			return fmt.Errorf("port %s: pin name %q is not an exported identifier", p.Name, pin.Name)
		}
		if pin.Name == "Parts" || pin.Name == "Split" {
			return fmt.Errorf("port %s: pin name %s is reserved", p.Name, pin.Name)
		}
		if names[pin.Name] {
			return fmt.Errorf("port %s: duplicate pin %s", p.Name, pin.Name)
		}
		names[pin.Name] = true

		if pin.Index < 0 || pin.Index > 31 {
			return fmt.Errorf("port %s: pin %s: index %d out of range 0-31", p.Name, pin.Name, pin.Index)
		}
		if indices&(1<<pin.Index) != 0 {
			return fmt.Errorf("port %s: pin %s: index %d already used", p.Name, pin.Name, pin.Index)
		}
		indices |= 1 << pin.Index

		switch pin.Mode {
		case "":
			pin.Mode = ModeInactive
		case ModeInactive, ModeFloatingInput, ModePushPullOutput, ModeOpenDrainOutput:
		default:
			return fmt.Errorf("port %s: pin %s: unknown mode %q", p.Name, pin.Name, pin.Mode)
		}
	}

	sort.Slice(p.Pins, func(i, j int) bool { return p.Pins[i].Index < p.Pins[j].Index })
	return nil
}
