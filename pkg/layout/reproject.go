package layout

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/nardreamers/Satellite-Design-Tool/pkg/design"
	"github.com/nardreamers/Satellite-Design-Tool/pkg/frame"
	"github.com/nardreamers/Satellite-Design-Tool/pkg/packing"
)

// Reprojection is the body-frame view of an oracle result: the rotation
// from oracle-local to body axes, the corrected center of gravity for
// every fitted component keyed by its ID, and the expansion need remapped
// into body-frame semantics.
type Reprojection struct {
	Rotation  *mat.Dense
	CGs       map[design.ComponentID]r3.Vec
	Expansion design.ExpansionNeed
}

// Reproject carries oracle-local placements into the satellite body frame:
// per-axis reflections conditioned on interval direction, then the
// rotation derived from the panel normal, then a translation by the
// panel's origin corner. Only fitted placements get a CG entry.
func Reproject(res packing.Result, panel design.PanelSurface, ext design.PanelExtents) Reprojection {
	rot := frame.FromNormal(panel.Normal, 0)

	// Each reflection rule is conditioned on its own canonical interval
	// running descending toward the larger-magnitude end.
	reflectWidth := ext.Width.Descending() && panel.Normal != design.FacePosZ
	// The height rule is structured like the other two but performs no
	// reflection. That asymmetry is inherited from the original design
	// and deliberately left alone.
	_ = ext.Height.Descending()
	reflectLength := ext.Length.Descending() &&
		(panel.Normal == design.FacePosY || panel.Normal == design.FaceNegX)

	origin := panel.Origin()
	cgs := make(map[design.ComponentID]r3.Vec, len(res.Placements))
	for _, pl := range res.Placements {
		if !pl.Fit {
			continue
		}
		cg := pl.CenterOfGravity
		if reflectWidth {
			cg.Y = -cg.Y
		}
		if reflectLength {
			cg.X = -cg.X
		}
		cgs[pl.ID] = r3.Add(frame.MulVec(rot, cg), origin)
	}

	return Reprojection{
		Rotation:  rot,
		CGs:       cgs,
		Expansion: remapExpansion(res.Expand, panel),
	}
}

// remapExpansion reshuffles the oracle's canonical expansion elements into
// body-frame (height, width, length) order for the panel's build plane,
// then offsets the height element by the panel's height origin. Element 0
// of the oracle vector is reserved and never consulted.
func remapExpansion(e [4]float64, panel design.PanelSurface) design.ExpansionNeed {
	var n design.ExpansionNeed
	switch panel.Plane {
	case design.PlaneXY:
		n = design.ExpansionNeed{Height: e[3], Width: e[2], Length: e[1]}
	case design.PlaneXZ:
		n = design.ExpansionNeed{Height: e[1], Width: e[3], Length: e[2]}
	case design.PlaneYZ:
		n = design.ExpansionNeed{Height: e[1], Width: e[2], Length: e[3]}
	default:
		return design.ExpansionNeed{}
	}
	n.Height += panel.AvailableZ[0]
	return n
}
