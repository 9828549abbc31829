package main

import (
	"fmt"
	"strings"
	"text/template"
)

var funcMap = template.FuncMap{
	"handleType": handleType,
	"transition": transition,
	"upper":      strings.ToUpper,
}

var portTemplate = template.Must(template.New("port").Funcs(funcMap).Parse(portTmpl))

const portTmpl = `// Code generated by gpiogen. DO NOT EDIT.

// Package {{.Port.Package}} splits port {{.Port.Name}} of the {{upper .Device}} into per-pin handles.
package {{.Port.Package}}

import (
	"{{.Module}}/device/{{.Device}}"
	"{{.Module}}/gpio"
)
{{range .Port.Pins}}
// {{.Name}} identifies pin {{.Index}} of port {{$.Port.Name}}.{{if .Note}} Pad functions: {{.Note}}.{{end}}
type {{.Name}} struct{}

func ({{.Name}}) Port() byte { return '{{$.Port.Name}}' }

func ({{.Name}}) Index() uint8 { return {{.Index}} }
{{end}}
// Parts holds one handle per bonded pin of port {{.Port.Name}}.
type Parts struct {
{{- range .Port.Pins}}
	{{.Name}} {{handleType .}}
{{- end}}
}

// Split consumes the raw port {{.Port.Name}} register handles, enables the
// port's clock gate and returns its pins.
func Split(gp {{.Device}}.PT{{.Port.Name}}, pc {{.Device}}.PORT{{.Port.Name}}, sim *{{.Device}}.SIM_Type) Parts {
	bank := gpio.Enable(gp, pc, sim)
	return Parts{
{{- range .Port.Pins}}
		{{.Name}}: gpio.Claim[{{.Name}}](bank){{transition .}},
{{- end}}
	}
}
`

type portData struct {
	Module string
	Device string
	Port   PortDef
}

// GeneratePort renders the package for port p of table t.
func GeneratePort(t *Table, p PortDef) (string, error) {
	var b strings.Builder
	data := portData{Module: t.Module, Device: t.Device, Port: p}
	if err := portTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("template: %w", err)
	}
	return b.String(), nil
}

// handleType returns the type of the Parts field of pin p.
func handleType(p PinDef) string {
	switch p.Mode {
	case ModeFloatingInput:
		return "gpio.Input[" + p.Name + ", gpio.Floating]"
	case ModePushPullOutput:
		return "gpio.Output[" + p.Name + ", gpio.PushPull]"
	case ModeOpenDrainOutput:
		return "gpio.Output[" + p.Name + ", gpio.OpenDrain]"
	default:
		return "gpio.Inactive[" + p.Name + "]"
	}
}

// transition returns the call that takes a freshly claimed pin p to its
// initial mode.
func transition(p PinDef) string {
	switch p.Mode {
	case ModeFloatingInput:
		return ".IntoFloatingInput()"
	case ModePushPullOutput:
		return ".IntoPushPullOutput()"
	case ModeOpenDrainOutput:
		return ".IntoOpenDrainOutput()"
	default:
		return ""
	}
}
