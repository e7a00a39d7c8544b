// Package sdt ties the mission engine, the panel layout pipeline, and the
// geometry kernel together behind a single entry point: evaluate a mission
// script, place its components panel by panel, and tessellate the result.
package sdt

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/nardreamers/Satellite-Design-Tool/pkg/design"
	"github.com/nardreamers/Satellite-Design-Tool/pkg/engine"
	"github.com/nardreamers/Satellite-Design-Tool/pkg/kernel"
	"github.com/nardreamers/Satellite-Design-Tool/pkg/kernel/sdfx"
	"github.com/nardreamers/Satellite-Design-Tool/pkg/layout"
	"github.com/nardreamers/Satellite-Design-Tool/pkg/packing"
	"github.com/nardreamers/Satellite-Design-Tool/pkg/packing/shelf"
	"github.com/nardreamers/Satellite-Design-Tool/pkg/tessellate"
)

// Tool is the top-level façade. It owns a mission engine, a placement
// pipeline, and a geometry kernel for meshing.
type Tool struct {
	engine *engine.Engine
	kernel kernel.Kernel
	placer *layout.Placer
	mesh   bool
	log    zerolog.Logger
}

// Option configures a Tool.
type Option func(*cfg)

type cfg struct {
	oracle    packing.Oracle
	kernel    kernel.Kernel
	tolerance float64
	mesh      bool
	log       zerolog.Logger
}

// WithOracle swaps the default shelf packer for another packing oracle.
func WithOracle(o packing.Oracle) Option {
	return func(c *cfg) { c.oracle = o }
}

// WithKernel swaps the default sdfx kernel for another geometry backend.
func WithKernel(k kernel.Kernel) Option {
	return func(c *cfg) { c.kernel = k }
}

// WithTolerance overrides the packing clearance.
func WithTolerance(t float64) Option {
	return func(c *cfg) { c.tolerance = t }
}

// WithoutMeshes disables tessellation; layouts carry placements only.
func WithoutMeshes() Option {
	return func(c *cfg) { c.mesh = false }
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *cfg) { c.log = l }
}

// New creates a Tool with the default shelf oracle and sdfx kernel.
func New(opts ...Option) *Tool {
	c := cfg{
		oracle:    shelf.New(),
		kernel:    sdfx.New(),
		tolerance: layout.DefaultTolerance,
		mesh:      true,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return &Tool{
		engine: engine.NewEngine(),
		kernel: c.kernel,
		placer: layout.NewPlacer(c.oracle, layout.WithTolerance(c.tolerance), layout.WithLogger(c.log)),
		mesh:   c.mesh,
		log:    c.log,
	}
}

// PanelLayout is the placement outcome for one panel.
type PanelLayout struct {
	Panel design.PanelSurface
	// Components carries the fitted components, with placements stamped.
	Components []design.Component
	// Expansion reports how much extra panel extent would improve yield.
	Expansion design.ExpansionNeed
	// Meshes holds one triangle mesh per fitted component, unless
	// tessellation is disabled.
	Meshes []*kernel.Mesh
}

// Result is the full outcome of evaluating and laying out a mission.
type Result struct {
	Layouts []PanelLayout
	// Unplaced holds components no panel could accommodate.
	Unplaced []design.Component
	// Errors holds non-fatal script errors; when non-empty the other
	// fields are zero.
	Errors []engine.EvalError
}

// Evaluate runs a mission script end to end: evaluate the source into
// components and panels, fill the panels in declaration order (components
// that do not fit on one panel are offered to the next), and tessellate
// the fitted components. Fatal failures (timeout, panic, pipeline errors)
// are returned as an error; script mistakes land in Result.Errors.
func (t *Tool) Evaluate(source string) (*Result, error) {
	mission, evalErrs, err := t.engine.Evaluate(source)
	if err != nil {
		return nil, fmt.Errorf("evaluate mission: %w", err)
	}
	if len(evalErrs) > 0 {
		return &Result{Errors: evalErrs}, nil
	}
	return t.Layout(mission)
}

// Layout places a mission's components onto its panels.
func (t *Tool) Layout(mission *engine.Mission) (*Result, error) {
	result := &Result{}
	remaining := mission.Components

	for _, panel := range mission.Panels {
		if len(remaining) == 0 {
			break
		}
		res, err := t.placer.Place(panel, remaining)
		if err != nil {
			return nil, fmt.Errorf("panel %q: %w", panel.Name, err)
		}

		pl := PanelLayout{Panel: panel, Expansion: res.Expansion}
		var leftover []design.Component
		for _, c := range res.Components {
			if c.Placed() {
				pl.Components = append(pl.Components, c)
			} else {
				leftover = append(leftover, c)
			}
		}
		remaining = leftover

		if t.mesh && len(pl.Components) > 0 {
			meshes, err := tessellate.Tessellate(pl.Components, t.kernel)
			if err != nil {
				return nil, fmt.Errorf("panel %q: %w", panel.Name, err)
			}
			pl.Meshes = meshes
		}

		t.log.Info().
			Str("panel", panel.Name).
			Int("placed", len(pl.Components)).
			Int("leftover", len(leftover)).
			Msg("panel laid out")

		result.Layouts = append(result.Layouts, pl)
	}

	result.Unplaced = remaining
	return result, nil
}
