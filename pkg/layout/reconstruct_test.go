package layout

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/nardreamers/Satellite-Design-Tool/pkg/design"
	"github.com/nardreamers/Satellite-Design-Tool/pkg/frame"
	"github.com/nardreamers/Satellite-Design-Tool/pkg/packing"
)

// identityReprojection places every given ID at the origin with no rotation.
func identityReprojection(ids ...design.ComponentID) Reprojection {
	cgs := make(map[design.ComponentID]r3.Vec, len(ids))
	for _, id := range ids {
		cgs[id] = r3.Vec{}
	}
	return Reprojection{Rotation: frame.Identity(), CGs: cgs}
}

func TestRectangleVertexRoundTrip(t *testing.T) {
	comp := design.Component{
		ID:    design.NewComponentID(),
		Name:  "box",
		Shape: design.RectangleData{Height: 2, Width: 3, Length: 4},
		Mass:  1,
	}
	rects, err := ProjectToRectangles([]design.Component{comp})
	if err != nil {
		t.Fatalf("ProjectToRectangles failed: %v", err)
	}
	res := packing.Result{Placements: []packing.Placement{{
		ID:     comp.ID,
		Height: rects[0].Height,
		Width:  rects[0].Width,
		Length: rects[0].Length,
		Fit:    true,
	}}}

	out, err := RebuildShapes([]design.Component{comp}, res, identityReprojection(comp.ID))
	if err != nil {
		t.Fatalf("RebuildShapes failed: %v", err)
	}
	p := out[0].Placement
	if p == nil {
		t.Fatal("expected placement")
	}
	if len(p.Vertices) != 8 {
		t.Fatalf("expected 8 vertices, got %d", len(p.Vertices))
	}

	// Local axes: x <- l, y <- w, z <- h. Corners in the documented order.
	want := []r3.Vec{
		{X: -2, Y: -1.5, Z: -1}, {X: 2, Y: -1.5, Z: -1},
		{X: 2, Y: 1.5, Z: -1}, {X: -2, Y: 1.5, Z: -1},
		{X: -2, Y: -1.5, Z: 1}, {X: 2, Y: -1.5, Z: 1},
		{X: 2, Y: 1.5, Z: 1}, {X: -2, Y: 1.5, Z: 1},
	}
	for i, v := range p.Vertices {
		if !vecApprox(v, want[i]) {
			t.Errorf("vertex %d: got %v, want %v", i, v, want[i])
		}
	}
	if got, want := p.Dimensions, []float64{2, 3, 4}; !reflect.DeepEqual(got, want) {
		t.Errorf("dimensions: got %v, want %v", got, want)
	}
}

func TestRectangleVerticesRotatedAndTranslated(t *testing.T) {
	comp := design.Component{
		ID:    design.NewComponentID(),
		Shape: design.RectangleData{Height: 2, Width: 2, Length: 2},
		Mass:  1,
	}
	cg := r3.Vec{X: 10, Y: 20, Z: 30}
	rot := frame.FromNormal(design.FacePosY, 0) // quarter-turn about Z
	rp := Reprojection{Rotation: rot, CGs: map[design.ComponentID]r3.Vec{comp.ID: cg}}
	res := packing.Result{Placements: []packing.Placement{{
		ID: comp.ID, Height: 2, Width: 2, Length: 2, Fit: true,
	}}}

	out, err := RebuildShapes([]design.Component{comp}, res, rp)
	if err != nil {
		t.Fatalf("RebuildShapes failed: %v", err)
	}
	for i, v := range out[0].Placement.Vertices {
		// A unit-corner cube rotates onto itself; every corner must sit
		// exactly 1 away from the CG along each axis.
		d := r3.Sub(v, cg)
		if math.Abs(math.Abs(d.X)-1) > tolerance ||
			math.Abs(math.Abs(d.Y)-1) > tolerance ||
			math.Abs(math.Abs(d.Z)-1) > tolerance {
			t.Errorf("vertex %d not a unit corner about cg: %v", i, d)
		}
	}
}

func TestSphereRadiusExact(t *testing.T) {
	comp := design.Component{
		ID:    design.NewComponentID(),
		Shape: design.SphereData{Radius: 0.37},
		Mass:  1,
	}
	rects, err := ProjectToRectangles([]design.Component{comp})
	if err != nil {
		t.Fatalf("ProjectToRectangles failed: %v", err)
	}
	res := packing.Result{Placements: []packing.Placement{{
		ID:     comp.ID,
		Height: rects[0].Height,
		Width:  rects[0].Width,
		Length: rects[0].Length,
		Fit:    true,
	}}}

	out, err := RebuildShapes([]design.Component{comp}, res, identityReprojection(comp.ID))
	if err != nil {
		t.Fatalf("RebuildShapes failed: %v", err)
	}
	p := out[0].Placement
	if len(p.Dimensions) != 1 || p.Dimensions[0] != 0.37 {
		t.Errorf("radius must survive the round trip exactly: got %v", p.Dimensions)
	}
	if p.Vertices != nil {
		t.Error("sphere must not get a vertex list")
	}
}

func TestConeAndCylinderDimensions(t *testing.T) {
	cone := design.Component{
		ID:    design.NewComponentID(),
		Shape: design.ConeData{Height: 0.3, BaseRadius: 0.1, TopRadius: 0.25},
		Mass:  1,
	}
	cyl := design.Component{
		ID:    design.NewComponentID(),
		Shape: design.CylinderData{Height: 0.4, Radius: 0.15},
		Mass:  1,
	}
	comps := []design.Component{cone, cyl}
	rects, err := ProjectToRectangles(comps)
	if err != nil {
		t.Fatalf("ProjectToRectangles failed: %v", err)
	}
	res := packing.Result{Placements: []packing.Placement{
		{ID: cone.ID, Height: rects[0].Height, Width: rects[0].Width, Length: rects[0].Length, Fit: true},
		{ID: cyl.ID, Height: rects[1].Height, Width: rects[1].Width, Length: rects[1].Length, Fit: true},
	}}

	out, err := RebuildShapes(comps, res, identityReprojection(cone.ID, cyl.ID))
	if err != nil {
		t.Fatalf("RebuildShapes failed: %v", err)
	}
	if got, want := out[0].Placement.Dimensions, []float64{0.3, 0.5, 0.5}; !reflect.DeepEqual(got, want) {
		t.Errorf("cone dimensions: got %v, want %v", got, want)
	}
	if got, want := out[1].Placement.Dimensions, []float64{0.4, 0.15}; !reflect.DeepEqual(got, want) {
		t.Errorf("cylinder dimensions: got %v, want %v", got, want)
	}
	for i, c := range out {
		if c.Placement.Vertices != nil {
			t.Errorf("component %d: only rectangles get vertices", i)
		}
	}
}

func TestFitMaskGating(t *testing.T) {
	comps := []design.Component{
		{ID: design.NewComponentID(), Name: "a", Shape: design.SphereData{Radius: 0.1}, Mass: 1},
		{ID: design.NewComponentID(), Name: "b", Shape: design.SphereData{Radius: 0.2}, Mass: 2},
		{ID: design.NewComponentID(), Name: "c", Shape: design.SphereData{Radius: 0.3}, Mass: 3},
	}
	res := packing.Result{Placements: []packing.Placement{
		{ID: comps[0].ID, Height: 0.2, Width: 0.2, Length: 0.2, Fit: true},
		{ID: comps[1].ID, Fit: false},
		{ID: comps[2].ID, Height: 0.6, Width: 0.6, Length: 0.6, Fit: true},
	}}

	out, err := RebuildShapes(comps, res, identityReprojection(comps[0].ID, comps[2].ID))
	if err != nil {
		t.Fatalf("RebuildShapes failed: %v", err)
	}
	if out[0].Placement == nil || out[2].Placement == nil {
		t.Error("fitted components must be placed")
	}
	if !reflect.DeepEqual(out[1], comps[1]) {
		t.Errorf("unfit component must be unchanged: got %+v, want %+v", out[1], comps[1])
	}
	// The input batch itself must stay untouched.
	for i, c := range comps {
		if c.Placement != nil {
			t.Errorf("input component %d was mutated", i)
		}
	}
}

func TestReconstructUnsupportedShape(t *testing.T) {
	comp := design.Component{ID: design.NewComponentID(), Name: "mystery", Shape: nil, Mass: 1}
	res := packing.Result{Placements: []packing.Placement{{ID: comp.ID, Fit: true}}}

	_, err := RebuildShapes([]design.Component{comp}, res, identityReprojection(comp.ID))
	if err == nil {
		t.Fatal("expected error for nil shape")
	}
	var unsupported design.UnsupportedShapeError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedShapeError, got %v", err)
	}
}
