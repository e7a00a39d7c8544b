// Package tessellate converts placed components and their mounting
// panels into triangle meshes using a geometry kernel. One mesh is
// produced per placed component; the tessellator never mutates the batch.
package tessellate

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/nardreamers/Satellite-Design-Tool/pkg/design"
	"github.com/nardreamers/Satellite-Design-Tool/pkg/kernel"
)

// Tessellate produces one mesh per placed component. Components without
// a placement are skipped: they have no pose to render.
func Tessellate(components []design.Component, k kernel.Kernel) ([]*kernel.Mesh, error) {
	var meshes []*kernel.Mesh
	for _, c := range components {
		if !c.Placed() {
			continue
		}
		mesh, err := tessellateComponent(c, k)
		if err != nil {
			return nil, fmt.Errorf("tessellate: %w", err)
		}
		meshes = append(meshes, mesh)
	}
	return meshes, nil
}

// tessellateComponent builds the solid in component-local axes, rotates
// it into the body frame, and translates it to the center of gravity.
func tessellateComponent(c design.Component, k kernel.Kernel) (*kernel.Mesh, error) {
	solid, err := componentSolid(c, k)
	if err != nil {
		return nil, err
	}

	p := c.Placement
	solid = k.Rotate(solid, p.Rotation)
	if cg := p.CenterOfGravity; cg != (r3.Vec{}) {
		solid = k.Translate(solid, cg.X, cg.Y, cg.Z)
	}

	mesh, err := k.ToMesh(solid)
	if err != nil {
		return nil, fmt.Errorf("ToMesh failed for %q: %w", c.Name, err)
	}
	if c.Name != "" {
		mesh.Name = c.Name
	} else {
		mesh.Name = string(c.ID)
	}
	return mesh, nil
}

// componentSolid creates the component's shape in its local axes: boxes
// span (l, w, h) on (x, y, z), axisymmetric shapes stand along z.
func componentSolid(c design.Component, k kernel.Kernel) (kernel.Solid, error) {
	switch s := c.Shape.(type) {
	case design.RectangleData:
		// The packer may have reoriented the box; prefer the final dims.
		h, w, l := s.Height, s.Width, s.Length
		if d := c.Placement.Dimensions; len(d) == 3 {
			h, w, l = d[0], d[1], d[2]
		}
		return k.Box(l, w, h), nil
	case design.SphereData:
		return k.Sphere(s.Radius), nil
	case design.ConeData:
		return k.Cone(s.Height, s.BaseRadius, s.TopRadius), nil
	case design.CylinderData:
		return k.Cylinder(s.Height, s.Radius), nil
	default:
		kind := design.ShapeKind(-1)
		if c.Shape != nil {
			kind = c.Shape.Kind()
		}
		return nil, design.UnsupportedShapeError{Kind: kind}
	}
}

// PanelMesh builds a thin slab sitting just behind the panel's mounting
// surface, spanning its available extents.
func PanelMesh(panel design.PanelSurface, thickness float64, k kernel.Kernel) (*kernel.Mesh, error) {
	if thickness <= 0 {
		return nil, fmt.Errorf("panel thickness must be positive, got %g", thickness)
	}

	intervals := [3]design.Interval{panel.AvailableX, panel.AvailableY, panel.AvailableZ}
	var ext, mid [3]float64
	for i, iv := range intervals {
		ext[i] = iv.Width()
		mid[i] = (iv[0] + iv[1]) / 2
	}
	axis := panel.Normal.Axis()
	ext[axis] = thickness
	mid[axis] = intervals[axis][0] - panel.Normal.Sign()*thickness/2

	solid := k.Translate(k.Box(ext[0], ext[1], ext[2]), mid[0], mid[1], mid[2])
	mesh, err := k.ToMesh(solid)
	if err != nil {
		return nil, fmt.Errorf("ToMesh failed for panel %q: %w", panel.Name, err)
	}
	if panel.Name != "" {
		mesh.Name = panel.Name
	} else {
		mesh.Name = "panel"
	}
	return mesh, nil
}
