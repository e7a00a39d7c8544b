// Package design defines the core data structures for satellite panel
// layout: component shapes, mounting panels, signed axis intervals, and
// the placement records filled in by the layout pipeline.
package design

import (
	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// ComponentID is a stable identifier for a component. Pipeline stages key
// their intermediate records on it rather than on slice position.
type ComponentID string

// NewComponentID mints a fresh random component identifier.
func NewComponentID() ComponentID {
	return ComponentID(uuid.NewString())
}

// ---------------------------------------------------------------------------
// Shapes
// ---------------------------------------------------------------------------

// ShapeKind distinguishes between component shapes.
type ShapeKind int

const (
	ShapeRectangle ShapeKind = iota // rectangular prism
	ShapeSphere
	ShapeCone
	ShapeCylinder
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeRectangle:
		return "rectangle"
	case ShapeSphere:
		return "sphere"
	case ShapeCone:
		return "cone"
	case ShapeCylinder:
		return "cylinder"
	default:
		return "unknown"
	}
}

// ShapeData is the interface for kind-specific shape payloads.
// The marker method restricts implementations to this package, keeping
// the shape set closed: adding a kind forces updates in every exhaustive
// switch over ShapeData.
type ShapeData interface {
	Kind() ShapeKind
	shapeData()
}

// RectangleData describes a rectangular prism by its full extents in
// meters, ordered (height, width, length) in the component frame.
type RectangleData struct {
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
}

func (RectangleData) Kind() ShapeKind { return ShapeRectangle }
func (RectangleData) shapeData()      {}

// SphereData describes a sphere by its radius in meters.
type SphereData struct {
	Radius float64 `json:"radius"`
}

func (SphereData) Kind() ShapeKind { return ShapeSphere }
func (SphereData) shapeData()      {}

// ConeData describes a (possibly truncated) cone by its axial height and
// the radii of its two circular faces.
type ConeData struct {
	Height     float64 `json:"height"`
	BaseRadius float64 `json:"base_radius"`
	TopRadius  float64 `json:"top_radius"`
}

func (ConeData) Kind() ShapeKind { return ShapeCone }
func (ConeData) shapeData()      {}

// CylinderData describes a cylinder by its axial height and radius.
type CylinderData struct {
	Height float64 `json:"height"`
	Radius float64 `json:"radius"`
}

func (CylinderData) Kind() ShapeKind { return ShapeCylinder }
func (CylinderData) shapeData()      {}

// ---------------------------------------------------------------------------
// Components
// ---------------------------------------------------------------------------

// Component is a physical item to be placed on a mounting panel.
// Mass is in kg; Power and Cost are advisory catalog metadata and are
// never touched by the layout pipeline.
type Component struct {
	ID    ComponentID `json:"id"`
	Name  string      `json:"name"`
	Shape ShapeData   `json:"shape"`
	Mass  float64     `json:"mass"`
	Power float64     `json:"power,omitempty"`
	Cost  float64     `json:"cost,omitempty"`

	// Placement is nil until the pipeline has placed the component.
	Placement *Placement `json:"placement,omitempty"`
}

// Placed reports whether the component has been placed on a panel.
func (c Component) Placed() bool { return c.Placement != nil }

// Placement holds the satellite-body-frame pose of a placed component.
// CenterOfGravity and Rotation are always set together; Vertices is set
// iff the shape is a rectangular prism.
type Placement struct {
	CenterOfGravity r3.Vec
	// Rotation maps component-local axes to satellite body axes.
	Rotation *mat.Dense
	// Vertices are the eight box corners in body frame (rectangles only).
	Vertices []r3.Vec
	// Dimensions are the final shape dimensions after placement:
	// rectangle (h, w, l) as possibly reoriented by the packer,
	// sphere (radius), cone (h, w, l bounding), cylinder (height, radius).
	Dimensions []float64
}

// ExpansionNeed describes how much additional panel extent along each
// body-frame-labeled axis would improve packing yield.
type ExpansionNeed struct {
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
}
