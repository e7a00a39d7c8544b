package layout

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/nardreamers/Satellite-Design-Tool/pkg/design"
	"github.com/nardreamers/Satellite-Design-Tool/pkg/frame"
	"github.com/nardreamers/Satellite-Design-Tool/pkg/packing"
)

// boxVertexSigns enumerates the eight box corners in a fixed order:
// the -z face counterclockwise, then the +z face counterclockwise.
var boxVertexSigns = [8][3]float64{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

// RebuildShapes stamps the pose and rebuilds shape-specific geometry for
// every fitted component, returning a new batch. The input batch is never
// mutated, and unfit components come back unchanged with their placement
// fields unset.
func RebuildShapes(components []design.Component, res packing.Result, rp Reprojection) ([]design.Component, error) {
	fitted := make(map[design.ComponentID]packing.Placement, len(res.Placements))
	for _, pl := range res.Placements {
		if pl.Fit {
			fitted[pl.ID] = pl
		}
	}

	out := make([]design.Component, len(components))
	copy(out, components)
	for i := range out {
		pl, ok := fitted[out[i].ID]
		if !ok {
			continue
		}
		cg, ok := rp.CGs[out[i].ID]
		if !ok {
			continue
		}
		placement, err := rebuildShape(out[i], pl, cg, rp.Rotation)
		if err != nil {
			return nil, fmt.Errorf("component %q: %w", out[i].Name, err)
		}
		out[i].Placement = placement
	}
	return out, nil
}

// rebuildShape produces the final body-frame placement for one component.
// The dispatch must stay consistent with projectShape: both reject the
// same shape kinds.
func rebuildShape(c design.Component, pl packing.Placement, cg r3.Vec, rot *mat.Dense) (*design.Placement, error) {
	p := &design.Placement{CenterOfGravity: cg, Rotation: rot}
	switch s := c.Shape.(type) {
	case design.RectangleData:
		// The packer may have reoriented the footprint; use its dims.
		p.Dimensions = []float64{pl.Height, pl.Width, pl.Length}
		p.Vertices = boxVertices(pl.Height, pl.Width, pl.Length, rot, cg)
	case design.SphereData:
		// The bounding cube collapses back to a diameter.
		p.Dimensions = []float64{pl.Height / 2}
	case design.ConeData:
		d := 2 * math.Max(s.BaseRadius, s.TopRadius)
		p.Dimensions = []float64{s.Height, d, d}
	case design.CylinderData:
		p.Dimensions = []float64{s.Height, s.Radius}
	default:
		return nil, design.UnsupportedShapeError{Kind: shapeKind(c.Shape)}
	}
	return p, nil
}

// boxVertices computes the eight corners of an (h, w, l) box in
// component-local axes (x <- l, y <- w, z <- h) centered at the origin,
// rotates them into the body frame, and translates them to the CG.
func boxVertices(h, w, l float64, rot *mat.Dense, cg r3.Vec) []r3.Vec {
	verts := make([]r3.Vec, 0, 8)
	for _, s := range boxVertexSigns {
		local := r3.Vec{X: s[0] * l / 2, Y: s[1] * w / 2, Z: s[2] * h / 2}
		verts = append(verts, r3.Add(frame.MulVec(rot, local), cg))
	}
	return verts
}
