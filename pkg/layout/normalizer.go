package layout

import (
	"fmt"

	"github.com/nardreamers/Satellite-Design-Tool/pkg/design"
)

// NormalizePanel maps a panel surface to the oracle's canonical
// (width, height, length) interval triple. The oracle always operates as
// if the panel lay in the YZ plane with its normal along +X; this
// relabeling (plus one reflection for XZ panels facing +Y) preserves a
// consistent right-handed sense after the eventual rotation back.
//
//	plane  normal  width        height      length
//	XZ     +Y      -availableX  availableZ  availableY
//	XZ     other   availableX   availableZ  availableY
//	YZ     any     availableY   availableZ  availableX
//	XY     any     availableX   availableY  availableZ
func NormalizePanel(p design.PanelSurface) (design.PanelExtents, error) {
	var ext design.PanelExtents
	switch p.Plane {
	case design.PlaneXZ:
		ext = design.PanelExtents{
			Width:  p.AvailableX,
			Height: p.AvailableZ,
			Length: p.AvailableY,
		}
		if p.Normal == design.FacePosY {
			ext.Width = p.AvailableX.Neg()
		}
	case design.PlaneYZ:
		ext = design.PanelExtents{
			Width:  p.AvailableY,
			Height: p.AvailableZ,
			Length: p.AvailableX,
		}
	case design.PlaneXY:
		ext = design.PanelExtents{
			Width:  p.AvailableX,
			Height: p.AvailableY,
			Length: p.AvailableZ,
		}
	default:
		return design.PanelExtents{}, fmt.Errorf("unknown build plane %v", p.Plane)
	}

	for _, axis := range []struct {
		name string
		iv   design.Interval
	}{
		{"width", ext.Width},
		{"height", ext.Height},
		{"length", ext.Length},
	} {
		if axis.iv.Degenerate() {
			return design.PanelExtents{}, design.DegenerateIntervalError{Axis: axis.name, Interval: axis.iv}
		}
	}
	return ext, nil
}
