// Package catalog provides preset satellite component templates and the
// configuration layer that lets a mission file override them.
package catalog

import (
	"fmt"
	"sort"

	"github.com/nardreamers/Satellite-Design-Tool/pkg/design"
)

// Preset is a named component template. Instantiating a preset mints a
// fresh component identity, so the same preset can appear in a batch
// more than once.
type Preset struct {
	Name  string
	Shape design.ShapeData
	Mass  float64 // kg
	Power float64 // W
	Cost  float64 // k$
}

// presets holds the built-in component library. Masses and envelopes are
// representative smallsat hardware; override them via the config file.
var presets = map[string]Preset{
	"battery": {
		Name:  "battery",
		Shape: design.CylinderData{Height: 0.203, Radius: 0.0885},
		Mass:  8.5,
		Power: 0,
		Cost:  50,
	},
	"reaction-wheel": {
		Name:  "reaction-wheel",
		Shape: design.CylinderData{Height: 0.075, Radius: 0.0865},
		Mass:  2.6,
		Power: 10,
		Cost:  115,
	},
	"star-tracker": {
		Name:  "star-tracker",
		Shape: design.RectangleData{Height: 0.147, Width: 0.1, Length: 0.1},
		Mass:  1.5,
		Power: 8,
		Cost:  300,
	},
	"magnetometer": {
		Name:  "magnetometer",
		Shape: design.RectangleData{Height: 0.04, Width: 0.04, Length: 0.08},
		Mass:  0.2,
		Power: 1,
		Cost:  30,
	},
	"propellant-tank": {
		Name:  "propellant-tank",
		Shape: design.SphereData{Radius: 0.17},
		Mass:  12.0,
		Power: 0,
		Cost:  200,
	},
	"thruster": {
		Name:  "thruster",
		Shape: design.ConeData{Height: 0.12, BaseRadius: 0.06, TopRadius: 0.02},
		Mass:  0.9,
		Power: 18,
		Cost:  90,
	},
	"avionics-box": {
		Name:  "avionics-box",
		Shape: design.RectangleData{Height: 0.1, Width: 0.23, Length: 0.3},
		Mass:  5.2,
		Power: 35,
		Cost:  250,
	},
	"transceiver": {
		Name:  "transceiver",
		Shape: design.RectangleData{Height: 0.05, Width: 0.15, Length: 0.2},
		Mass:  1.8,
		Power: 22,
		Cost:  140,
	},
}

// Names returns the preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the preset for a name, with any configured overrides
// applied.
func Lookup(name string) (Preset, bool) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, false
	}
	return applyOverrides(p), true
}

// Instantiate builds a component from a preset, minting a fresh ID.
func Instantiate(name string) (design.Component, error) {
	p, ok := Lookup(name)
	if !ok {
		return design.Component{}, fmt.Errorf("unknown catalog preset %q", name)
	}
	return design.Component{
		ID:    design.NewComponentID(),
		Name:  p.Name,
		Shape: p.Shape,
		Mass:  p.Mass,
		Power: p.Power,
		Cost:  p.Cost,
	}, nil
}

// Batch instantiates a list of presets in order. Repeated names produce
// distinct components.
func Batch(names ...string) ([]design.Component, error) {
	comps := make([]design.Component, 0, len(names))
	for _, name := range names {
		c, err := Instantiate(name)
		if err != nil {
			return nil, err
		}
		comps = append(comps, c)
	}
	return comps, nil
}
