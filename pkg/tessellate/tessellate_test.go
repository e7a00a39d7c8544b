package tessellate

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/nardreamers/Satellite-Design-Tool/pkg/design"
	"github.com/nardreamers/Satellite-Design-Tool/pkg/frame"
	"github.com/nardreamers/Satellite-Design-Tool/pkg/kernel"
)

// stubSolid is an inert kernel.Solid for call-recording tests.
type stubSolid struct {
	min, max [3]float64
}

func (s stubSolid) BoundingBox() (min, max [3]float64) { return s.min, s.max }

// stubKernel records the primitive and transform calls made against it.
type stubKernel struct {
	boxes, spheres, cones, cylinders int
	rotations                        int
	translations                     [][3]float64
}

var _ kernel.Kernel = (*stubKernel)(nil)

func (k *stubKernel) Box(x, y, z float64) kernel.Solid {
	k.boxes++
	return stubSolid{max: [3]float64{x, y, z}}
}
func (k *stubKernel) Sphere(radius float64) kernel.Solid {
	k.spheres++
	return stubSolid{}
}
func (k *stubKernel) Cone(height, baseRadius, topRadius float64) kernel.Solid {
	k.cones++
	return stubSolid{}
}
func (k *stubKernel) Cylinder(height, radius float64) kernel.Solid {
	k.cylinders++
	return stubSolid{}
}
func (k *stubKernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	k.translations = append(k.translations, [3]float64{x, y, z})
	return s
}
func (k *stubKernel) Rotate(s kernel.Solid, m *mat.Dense) kernel.Solid {
	k.rotations++
	return s
}
func (k *stubKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	return &kernel.Mesh{
		Vertices: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Normals:  []float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
		Indices:  []uint32{0, 1, 2},
	}, nil
}

func placed(name string, shape design.ShapeData, cg r3.Vec) design.Component {
	return design.Component{
		ID:    design.NewComponentID(),
		Name:  name,
		Shape: shape,
		Mass:  1,
		Placement: &design.Placement{
			CenterOfGravity: cg,
			Rotation:        frame.Identity(),
		},
	}
}

func TestTessellateSkipsUnplaced(t *testing.T) {
	k := &stubKernel{}
	comps := []design.Component{
		placed("tank", design.SphereData{Radius: 0.1}, r3.Vec{X: 1}),
		{ID: design.NewComponentID(), Name: "loose", Shape: design.SphereData{Radius: 0.2}, Mass: 1},
	}
	meshes, err := Tessellate(comps, k)
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if len(meshes) != 1 {
		t.Fatalf("expected 1 mesh, got %d", len(meshes))
	}
	if meshes[0].Name != "tank" {
		t.Errorf("mesh name: got %q, want %q", meshes[0].Name, "tank")
	}
}

func TestTessellateAllShapes(t *testing.T) {
	k := &stubKernel{}
	comps := []design.Component{
		placed("box", design.RectangleData{Height: 0.1, Width: 0.2, Length: 0.3}, r3.Vec{X: 1}),
		placed("ball", design.SphereData{Radius: 0.1}, r3.Vec{Y: 1}),
		placed("nozzle", design.ConeData{Height: 0.3, BaseRadius: 0.1, TopRadius: 0.02}, r3.Vec{Z: 1}),
		placed("tank", design.CylinderData{Height: 0.4, Radius: 0.1}, r3.Vec{X: 2}),
	}
	meshes, err := Tessellate(comps, k)
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if len(meshes) != 4 {
		t.Fatalf("expected 4 meshes, got %d", len(meshes))
	}
	if k.boxes != 1 || k.spheres != 1 || k.cones != 1 || k.cylinders != 1 {
		t.Errorf("primitive calls: boxes %d spheres %d cones %d cylinders %d",
			k.boxes, k.spheres, k.cones, k.cylinders)
	}
	if k.rotations != 4 {
		t.Errorf("expected 4 rotations, got %d", k.rotations)
	}
	if len(k.translations) != 4 {
		t.Errorf("expected 4 translations, got %d", len(k.translations))
	}
}

func TestTessellatePrefersFinalDimensions(t *testing.T) {
	k := &stubKernel{}
	comp := placed("box", design.RectangleData{Height: 1, Width: 2, Length: 3}, r3.Vec{X: 1})
	comp.Placement.Dimensions = []float64{2, 1, 3} // reoriented by the packer
	if _, err := Tessellate([]design.Component{comp}, k); err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if k.boxes != 1 {
		t.Fatalf("expected 1 box, got %d", k.boxes)
	}
}

func TestTessellateUnsupportedShape(t *testing.T) {
	k := &stubKernel{}
	comp := placed("mystery", nil, r3.Vec{})
	_, err := Tessellate([]design.Component{comp}, k)
	if err == nil {
		t.Fatal("expected error for nil shape")
	}
	var unsupported design.UnsupportedShapeError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedShapeError, got %v", err)
	}
}

func TestPanelMesh(t *testing.T) {
	k := &stubKernel{}
	panel := design.PanelSurface{
		Name:       "deck",
		Plane:      design.PlaneXZ,
		Normal:     design.FacePosY,
		AvailableX: design.Interval{0, 1},
		AvailableY: design.Interval{0, 0.5},
		AvailableZ: design.Interval{-1, 1},
	}
	mesh, err := PanelMesh(panel, 0.02, k)
	if err != nil {
		t.Fatalf("PanelMesh failed: %v", err)
	}
	if mesh.Name != "deck" {
		t.Errorf("mesh name: got %q, want %q", mesh.Name, "deck")
	}
	if len(k.translations) != 1 {
		t.Fatalf("expected 1 translation, got %d", len(k.translations))
	}
	// Slab center: interval midpoints, except half a thickness behind
	// the mounting surface along the normal.
	got := k.translations[0]
	want := [3]float64{0.5, -0.01, 0}
	for i := 0; i < 3; i++ {
		if got[i] != want[i] {
			t.Errorf("translation axis %d: got %g, want %g", i, got[i], want[i])
		}
	}

	if _, err := PanelMesh(panel, 0, k); err == nil {
		t.Error("expected error for non-positive thickness")
	}
}
