// Package packing defines the abstract bin-packing oracle interface.
// Implementations (shelf) place axis-aligned rectangles on one fixed
// reference plane behind this interface; the layout pipeline adapts
// arbitrary panel orientations to it and never depends on a concrete
// packer.
//
// The oracle-local frame is fixed: the packing plane is spanned by the
// width (y) and height (z) axes, and the length axis (x) runs along the
// panel's outward normal. Rectangle dims map to local axes as x <- l,
// y <- w, z <- h, so each item presents an h x w footprint to the plane
// and protrudes l along the normal.
package packing

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/nardreamers/Satellite-Design-Tool/pkg/design"
)

// Rectangle is one item to pack: the oriented bounding rectangle of a
// component, carrying the component's stable identifier.
type Rectangle struct {
	ID     design.ComponentID
	Height float64 // h, in-plane footprint extent along the height axis
	Width  float64 // w, in-plane footprint extent along the width axis
	Length float64 // l, protrusion along the panel normal
	Mass   float64
}

// Request is one oracle invocation. Width and Length are absolute extents;
// Height keeps its sign, distinguishing the stacking axis from the other
// two (a negative height grows the layout toward negative coordinates).
type Request struct {
	Rectangles []Rectangle
	Tolerance  float64 // minimum clearance between items and panel edges
	Width      float64
	Length     float64
	Height     float64
}

// Placement is the oracle's answer for one rectangle. The slice returned
// in Result is index-aligned with Request.Rectangles and carries the same
// IDs. An unfit item has Fit == false and a zero CenterOfGravity.
type Placement struct {
	ID              design.ComponentID
	CenterOfGravity r3.Vec // oracle-local, origin at the panel corner
	Height          float64
	Width           float64 // dims may differ from the request if reoriented
	Length          float64
	Fit             bool
}

// Result is the full oracle output for one request.
type Result struct {
	Placements []Placement
	// Expand is the 4-element expansion-need vector. Element 0 is
	// reserved; elements 1-3 carry the extra (height, width, length)
	// extent that would let more items fit, in the oracle's canonical
	// ordering. The layout reprojector remaps it per build plane.
	Expand [4]float64
}

// Oracle is the packing black box. Pack is total: it always returns a
// result, possibly one where nothing fits. A no-fit item is an expected
// outcome, not an error.
type Oracle interface {
	Pack(req Request) (Result, error)
}
