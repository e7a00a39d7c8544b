// Package layout places 3D components onto flat mounting panels of
// arbitrary orientation by adapting them to a plane-agnostic bin-packing
// oracle: shapes are projected to bounding rectangles, the panel's extents
// are normalized to the oracle's fixed-plane convention, and the returned
// placements are reflected, rotated, and translated back into the
// satellite body frame.
package layout

import (
	"fmt"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/nardreamers/Satellite-Design-Tool/pkg/design"
	"github.com/nardreamers/Satellite-Design-Tool/pkg/packing"
)

// DefaultTolerance is the clearance kept between mounted items and panel
// edges, in meters.
const DefaultTolerance = 0.002

// Placer runs the full placement pipeline against one panel.
type Placer struct {
	oracle    packing.Oracle
	tolerance float64
	log       zerolog.Logger
}

// Option configures a Placer.
type Option func(*Placer)

// WithTolerance overrides the packing clearance.
func WithTolerance(t float64) Option {
	return func(p *Placer) { p.tolerance = t }
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Placer) { p.log = l }
}

// NewPlacer creates a Placer around a packing oracle.
func NewPlacer(oracle packing.Oracle, opts ...Option) *Placer {
	p := &Placer{
		oracle:    oracle,
		tolerance: DefaultTolerance,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Result is the outcome of placing one component batch on one panel.
type Result struct {
	// Components is a new batch, index-aligned with the input. Fitted
	// components carry a Placement; unfit ones are unchanged.
	Components []design.Component
	// Rotation maps oracle-local axes to satellite body axes for this panel.
	Rotation *mat.Dense
	// Expansion reports how much extra panel extent would improve yield.
	Expansion design.ExpansionNeed
	// FitCount is the number of components the oracle placed.
	FitCount int
}

// Place runs the five-stage pipeline: normalize the panel, project the
// shapes, invoke the oracle, reproject the placements into the body frame,
// and rebuild per-shape geometry. The input batch is never mutated.
func (p *Placer) Place(panel design.PanelSurface, components []design.Component) (Result, error) {
	if err := checkUniqueIDs(components); err != nil {
		return Result{}, err
	}

	ext, err := NormalizePanel(panel)
	if err != nil {
		return Result{}, fmt.Errorf("panel %q: %w", panel.Name, err)
	}
	rects, err := ProjectToRectangles(components)
	if err != nil {
		return Result{}, err
	}

	p.log.Debug().
		Str("panel", panel.Name).
		Str("plane", panel.Plane.String()).
		Str("normal", panel.Normal.String()).
		Int("components", len(rects)).
		Msg("packing panel")

	res, err := CallOracle(p.oracle, rects, ext, p.tolerance)
	if err != nil {
		return Result{}, err
	}

	rp := Reproject(res, panel, ext)
	out, err := RebuildShapes(components, res, rp)
	if err != nil {
		return Result{}, err
	}

	fit := 0
	for _, pl := range res.Placements {
		if pl.Fit {
			fit++
		}
	}
	p.log.Debug().
		Str("panel", panel.Name).
		Int("fit", fit).
		Int("total", len(res.Placements)).
		Msg("panel packed")

	return Result{
		Components: out,
		Rotation:   rp.Rotation,
		Expansion:  rp.Expansion,
		FitCount:   fit,
	}, nil
}

// checkUniqueIDs guards the keyed pipeline against silent misalignment:
// every component must carry a distinct non-empty identifier.
func checkUniqueIDs(components []design.Component) error {
	seen := make(map[design.ComponentID]string, len(components))
	for _, c := range components {
		if c.ID == "" {
			return fmt.Errorf("component %q has no ID", c.Name)
		}
		if prev, dup := seen[c.ID]; dup {
			return fmt.Errorf("components %q and %q share ID %s", prev, c.Name, c.ID)
		}
		seen[c.ID] = c.Name
	}
	return nil
}
