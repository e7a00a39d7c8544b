// Package shelf implements the packing.Oracle interface with a
// first-fit-decreasing shelf packer: items are sorted by footprint area
// and placed left-to-right on shelves stacked along the height axis.
package shelf

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/nardreamers/Satellite-Design-Tool/pkg/packing"
)

// Compile-time interface check.
var _ packing.Oracle = (*Packer)(nil)

// Packer is a shelf-based rectangle packer.
type Packer struct {
	allowRotate bool
}

// New returns a Packer with in-plane rotation enabled.
func New() *Packer {
	return &Packer{allowRotate: true}
}

// AllowRotate controls whether the packer may swap an item's in-plane
// footprint (h <-> w) for a tighter fit.
func (p *Packer) AllowRotate(enabled bool) { p.allowRotate = enabled }

// row is one shelf: a horizontal band of the packing plane. y is the
// cursor where the next item's left edge goes.
type row struct {
	z      float64
	height float64
	y      float64
}

// Pack places the requested rectangles on the packing plane. It never
// fails: items that cannot be placed come back with Fit == false, and
// the expansion vector reports how much extra extent would have helped.
func (p *Packer) Pack(req packing.Request) (packing.Result, error) {
	res := packing.Result{Placements: make([]packing.Placement, len(req.Rectangles))}

	width := req.Width
	height := req.Height
	sign := 1.0
	if height < 0 {
		sign = -1
		height = -height
	}
	depth := req.Length
	tol := req.Tolerance
	if tol < 0 {
		tol = 0
	}

	// Largest footprint first; ties keep request order.
	order := make([]int, len(req.Rectangles))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ra := req.Rectangles[order[a]]
		rb := req.Rectangles[order[b]]
		return ra.Height*ra.Width > rb.Height*rb.Width
	})

	var rows []*row
	top := tol // next free z for a new shelf
	var needHeight, needWidth, needLength float64

	for _, idx := range order {
		it := req.Rectangles[idx]
		pl := packing.Placement{ID: it.ID, Height: it.Height, Width: it.Width, Length: it.Length}
		res.Placements[idx] = pl

		if it.Height <= 0 || it.Width <= 0 {
			continue // degenerate item never fits
		}
		if it.Length > depth {
			if n := it.Length - depth; n > needLength {
				needLength = n
			}
			continue
		}

		orients := [][2]float64{{it.Height, it.Width}}
		if p.allowRotate && it.Height != it.Width {
			orients = append(orients, [2]float64{it.Width, it.Height})
		}

		placed := false
		for _, o := range orients {
			h, w := o[0], o[1]

			// Try existing shelves first.
			for _, r := range rows {
				if h <= r.height && r.y+w+tol <= width {
					res.Placements[idx] = placement(it, r.y, r.z, h, w, sign)
					r.y += w + tol
					placed = true
					break
				}
			}
			if placed {
				break
			}

			// Open a new shelf.
			if top+h+tol <= height && tol+w+tol <= width {
				r := &row{z: top, height: h, y: tol}
				res.Placements[idx] = placement(it, r.y, r.z, h, w, sign)
				r.y += w + tol
				rows = append(rows, r)
				top += h + tol
				placed = true
				break
			}
		}

		if !placed {
			if n := it.Width + 2*tol - width; n > needWidth {
				needWidth = n
			}
			if n := top + it.Height + tol - height; n > needHeight {
				needHeight = n
			}
		}
	}

	res.Expand = [4]float64{0, needHeight, needWidth, needLength}
	return res, nil
}

// placement builds the oracle-local answer for one placed item. The item
// sits flush on the panel, so its CG is half its length out along the
// normal; a negative request height mirrors the stacking axis.
func placement(it packing.Rectangle, y, z, h, w, sign float64) packing.Placement {
	return packing.Placement{
		ID:     it.ID,
		Height: h,
		Width:  w,
		Length: it.Length,
		Fit:    true,
		CenterOfGravity: r3.Vec{
			X: it.Length / 2,
			Y: y + w/2,
			Z: sign * (z + h/2),
		},
	}
}
