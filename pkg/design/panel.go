package design

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// ---------------------------------------------------------------------------
// Intervals
// ---------------------------------------------------------------------------

// Interval is a signed [start, end] extent along one body axis. A
// descending interval (end < start) encodes direction: the panel grows
// toward negative coordinates along that axis.
type Interval [2]float64

// Span returns the signed extent end - start.
func (iv Interval) Span() float64 { return iv[1] - iv[0] }

// Width returns the absolute extent |end - start|.
func (iv Interval) Width() float64 {
	s := iv.Span()
	if s < 0 {
		return -s
	}
	return s
}

// Neg returns the interval with both endpoints negated.
func (iv Interval) Neg() Interval { return Interval{-iv[0], -iv[1]} }

// Descending reports whether the interval runs toward its larger-magnitude
// endpoint first: |end| >= |start| and end < start. The frame reprojector
// conditions its axis reflections on this.
func (iv Interval) Descending() bool {
	abs0, abs1 := iv[0], iv[1]
	if abs0 < 0 {
		abs0 = -abs0
	}
	if abs1 < 0 {
		abs1 = -abs1
	}
	return abs1 >= abs0 && iv[1] < iv[0]
}

// Degenerate reports whether the interval has zero extent.
func (iv Interval) Degenerate() bool { return iv[0] == iv[1] }

// ---------------------------------------------------------------------------
// Panels
// ---------------------------------------------------------------------------

// BuildPlane is the coordinate plane a panel occupies in the satellite
// body frame.
type BuildPlane int

const (
	PlaneXY BuildPlane = iota
	PlaneXZ
	PlaneYZ
)

func (p BuildPlane) String() string {
	switch p {
	case PlaneXY:
		return "XY"
	case PlaneXZ:
		return "XZ"
	case PlaneYZ:
		return "YZ"
	default:
		return "unknown"
	}
}

// ParseBuildPlane converts a plane label ("XY", "XZ", "YZ") to a BuildPlane.
func ParseBuildPlane(s string) (BuildPlane, error) {
	switch s {
	case "XY", "xy":
		return PlaneXY, nil
	case "XZ", "xz":
		return PlaneXZ, nil
	case "YZ", "yz":
		return PlaneYZ, nil
	default:
		return 0, fmt.Errorf("unknown build plane %q", s)
	}
}

// Face is a signed body axis: the direction a panel's outward normal
// points along.
type Face int

const (
	FacePosX Face = iota
	FaceNegX
	FacePosY
	FaceNegY
	FacePosZ
	FaceNegZ
)

func (f Face) String() string {
	switch f {
	case FacePosX:
		return "+X"
	case FaceNegX:
		return "-X"
	case FacePosY:
		return "+Y"
	case FaceNegY:
		return "-Y"
	case FacePosZ:
		return "+Z"
	case FaceNegZ:
		return "-Z"
	default:
		return "unknown"
	}
}

// Axis returns the body axis index the face lies on: 0 for X, 1 for Y,
// 2 for Z.
func (f Face) Axis() int {
	switch f {
	case FacePosX, FaceNegX:
		return 0
	case FacePosY, FaceNegY:
		return 1
	default:
		return 2
	}
}

// Sign returns +1 or -1 depending on which way the face points along
// its axis.
func (f Face) Sign() float64 {
	switch f {
	case FaceNegX, FaceNegY, FaceNegZ:
		return -1
	default:
		return 1
	}
}

// ParseFace converts a face label ("+X", "-Z", ...) to a Face.
func ParseFace(s string) (Face, error) {
	switch s {
	case "+X", "X", "x", "+x":
		return FacePosX, nil
	case "-X", "-x":
		return FaceNegX, nil
	case "+Y", "Y", "y", "+y":
		return FacePosY, nil
	case "-Y", "-y":
		return FaceNegY, nil
	case "+Z", "Z", "z", "+z":
		return FacePosZ, nil
	case "-Z", "-z":
		return FaceNegZ, nil
	default:
		return 0, fmt.Errorf("unknown normal face %q", s)
	}
}

// PanelSurface is a flat mounting target in the satellite body frame.
// The available intervals bound the placeable space along each body axis;
// each may be descending, encoding direction.
type PanelSurface struct {
	Name       string     `json:"name,omitempty"`
	Plane      BuildPlane `json:"plane"`
	Normal     Face       `json:"normal"`
	AvailableX Interval   `json:"available_x"`
	AvailableY Interval   `json:"available_y"`
	AvailableZ Interval   `json:"available_z"`
}

// Origin returns the panel's origin corner in body frame: the start of
// each available interval.
func (p PanelSurface) Origin() r3.Vec {
	return r3.Vec{X: p.AvailableX[0], Y: p.AvailableY[0], Z: p.AvailableZ[0]}
}

// PanelExtents is the canonical (width, height, length) interval triple
// the packing oracle understands. Width and height span the packing plane;
// length runs along the panel's outward normal.
type PanelExtents struct {
	Width  Interval
	Height Interval
	Length Interval
}
