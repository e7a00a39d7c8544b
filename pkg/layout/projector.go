package layout

import (
	"fmt"
	"math"

	"github.com/nardreamers/Satellite-Design-Tool/pkg/design"
	"github.com/nardreamers/Satellite-Design-Tool/pkg/packing"
)

// ProjectToRectangles converts a component batch into the oriented
// bounding rectangles the packing oracle understands, one per component,
// index-aligned and carrying the component IDs. The bounding rectangle
// fully contains the shape with its long axis laid in the packing plane.
func ProjectToRectangles(components []design.Component) ([]packing.Rectangle, error) {
	rects := make([]packing.Rectangle, 0, len(components))
	for _, c := range components {
		r, err := projectShape(c)
		if err != nil {
			return nil, fmt.Errorf("component %q: %w", c.Name, err)
		}
		rects = append(rects, r)
	}
	return rects, nil
}

// projectShape produces (h, w, l, mass) for a single component.
func projectShape(c design.Component) (packing.Rectangle, error) {
	r := packing.Rectangle{ID: c.ID, Mass: c.Mass}
	switch s := c.Shape.(type) {
	case design.RectangleData:
		r.Height, r.Width, r.Length = s.Height, s.Width, s.Length
	case design.SphereData:
		d := 2 * s.Radius
		r.Height, r.Width, r.Length = d, d, d
	case design.ConeData:
		// Worst-case bounding square across the larger base.
		d := 2 * math.Max(s.BaseRadius, s.TopRadius)
		r.Height, r.Width, r.Length = s.Height, d, d
	case design.CylinderData:
		d := 2 * s.Radius
		r.Height, r.Width, r.Length = s.Height, d, d
	default:
		return packing.Rectangle{}, design.UnsupportedShapeError{Kind: shapeKind(c.Shape)}
	}
	return r, nil
}

// shapeKind extracts the kind for error reporting, tolerating a nil shape.
func shapeKind(s design.ShapeData) design.ShapeKind {
	if s == nil {
		return design.ShapeKind(-1)
	}
	return s.Kind()
}
