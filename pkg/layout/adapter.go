package layout

import (
	"fmt"

	"github.com/nardreamers/Satellite-Design-Tool/pkg/design"
	"github.com/nardreamers/Satellite-Design-Tool/pkg/packing"
)

// CallOracle invokes the packing oracle with the canonical extents. Width
// and length are passed as absolute spans; the height span keeps its sign,
// which is how the oracle distinguishes the stacking axis from the other
// two. The oracle is treated as total: no retries happen here, and a
// result where nothing fits is a valid answer.
func CallOracle(o packing.Oracle, rects []packing.Rectangle, ext design.PanelExtents, tolerance float64) (packing.Result, error) {
	req := packing.Request{
		Rectangles: rects,
		Tolerance:  tolerance,
		Width:      ext.Width.Width(),
		Length:     ext.Length.Width(),
		Height:     ext.Height.Span(),
	}
	res, err := o.Pack(req)
	if err != nil {
		return packing.Result{}, fmt.Errorf("packing oracle: %w", err)
	}
	if len(res.Placements) != len(rects) {
		return packing.Result{}, fmt.Errorf("packing oracle returned %d placements for %d rectangles", len(res.Placements), len(rects))
	}
	return res, nil
}
