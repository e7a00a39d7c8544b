// Package kernel defines the abstract geometry kernel interface.
// Implementations (sdfx) provide solid primitives and rigid transforms
// behind this interface, so the tessellation layer can render placed
// components without depending on a concrete CAD backend.
package kernel

import "gonum.org/v1/gonum/mat"

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface. Primitives are
// centered at the origin with their axis of symmetry along Z.
type Kernel interface {
	// Primitives
	Box(x, y, z float64) Solid
	Sphere(radius float64) Solid
	Cone(height, baseRadius, topRadius float64) Solid
	Cylinder(height, radius float64) Solid

	// Rigid transforms
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, m *mat.Dense) Solid // 3x3 rotation, local to body axes

	// Mesh output
	ToMesh(s Solid) (*Mesh, error)
}
