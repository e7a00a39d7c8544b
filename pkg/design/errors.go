package design

import "fmt"

// UnsupportedShapeError reports a shape kind the layout pipeline does not
// recognize. It is returned by both the projector and the reconstructor
// so the two stages stay consistent about the supported shape set.
type UnsupportedShapeError struct {
	Kind ShapeKind
}

func (e UnsupportedShapeError) Error() string {
	return fmt.Sprintf("unsupported shape kind %q", e.Kind)
}

// DegenerateIntervalError reports a panel interval with zero extent on an
// axis the packer needs. Degenerate panels are surfaced rather than being
// silently treated as fit-everything or fit-nothing.
type DegenerateIntervalError struct {
	Axis     string
	Interval Interval
}

func (e DegenerateIntervalError) Error() string {
	return fmt.Sprintf("degenerate %s interval [%g, %g]: zero extent", e.Axis, e.Interval[0], e.Interval[1])
}
