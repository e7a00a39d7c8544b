package layout_test

import (
	"errors"
	"testing"

	"github.com/nardreamers/Satellite-Design-Tool/pkg/design"
	"github.com/nardreamers/Satellite-Design-Tool/pkg/layout"
	"github.com/nardreamers/Satellite-Design-Tool/pkg/packing/shelf"
)

func testPanel() design.PanelSurface {
	return design.PanelSurface{
		Name:       "bay-1",
		Plane:      design.PlaneYZ,
		Normal:     design.FacePosX,
		AvailableX: design.Interval{0, 0.5},
		AvailableY: design.Interval{0, 1},
		AvailableZ: design.Interval{0, 2},
	}
}

func TestPlaceEndToEnd(t *testing.T) {
	comps := []design.Component{
		{ID: design.NewComponentID(), Name: "avionics", Shape: design.RectangleData{Height: 0.3, Width: 0.4, Length: 0.2}, Mass: 4},
		{ID: design.NewComponentID(), Name: "tank", Shape: design.SphereData{Radius: 0.1}, Mass: 12},
		{ID: design.NewComponentID(), Name: "oversized", Shape: design.RectangleData{Height: 5, Width: 5, Length: 0.1}, Mass: 100},
	}

	placer := layout.NewPlacer(shelf.New(), layout.WithTolerance(0.01))
	res, err := placer.Place(testPanel(), comps)
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}

	if res.FitCount != 2 {
		t.Fatalf("expected 2 fitted components, got %d", res.FitCount)
	}
	if len(res.Components) != len(comps) {
		t.Fatalf("batch size changed: got %d, want %d", len(res.Components), len(comps))
	}

	// Index correspondence: same index, same physical item.
	for i := range comps {
		if res.Components[i].ID != comps[i].ID {
			t.Errorf("index %d: ID changed from %s to %s", i, comps[i].ID, res.Components[i].ID)
		}
		if res.Components[i].Name != comps[i].Name {
			t.Errorf("index %d: name changed from %q to %q", i, comps[i].Name, res.Components[i].Name)
		}
	}

	if res.Components[0].Placement == nil || res.Components[1].Placement == nil {
		t.Fatal("fitted components must carry placements")
	}
	if res.Components[2].Placement != nil {
		t.Error("oversized component must come back unplaced")
	}

	// Placed CGs must land inside the panel's available space.
	for _, c := range res.Components[:2] {
		cg := c.Placement.CenterOfGravity
		if cg.X < 0 || cg.X > 0.5 || cg.Y < 0 || cg.Y > 1 || cg.Z < 0 || cg.Z > 2 {
			t.Errorf("component %q placed outside panel: %v", c.Name, cg)
		}
		if c.Placement.Rotation == nil {
			t.Errorf("component %q missing rotation", c.Name)
		}
	}

	// The oversized footprint should have produced an expansion request.
	if res.Expansion.Width <= 0 && res.Expansion.Height <= 0 {
		t.Errorf("expected expansion need, got %+v", res.Expansion)
	}

	// Input batch stays pristine.
	for i, c := range comps {
		if c.Placement != nil {
			t.Errorf("input component %d was mutated", i)
		}
	}
}

func TestPlaceRejectsDuplicateIDs(t *testing.T) {
	id := design.NewComponentID()
	comps := []design.Component{
		{ID: id, Name: "a", Shape: design.SphereData{Radius: 0.1}, Mass: 1},
		{ID: id, Name: "b", Shape: design.SphereData{Radius: 0.1}, Mass: 1},
	}
	placer := layout.NewPlacer(shelf.New())
	if _, err := placer.Place(testPanel(), comps); err == nil {
		t.Fatal("expected error for duplicate component IDs")
	}
}

func TestPlaceRejectsMissingID(t *testing.T) {
	comps := []design.Component{
		{Name: "anonymous", Shape: design.SphereData{Radius: 0.1}, Mass: 1},
	}
	placer := layout.NewPlacer(shelf.New())
	if _, err := placer.Place(testPanel(), comps); err == nil {
		t.Fatal("expected error for missing component ID")
	}
}

func TestPlaceSurfacesDegeneratePanel(t *testing.T) {
	panel := testPanel()
	panel.AvailableZ = design.Interval{1, 1}
	placer := layout.NewPlacer(shelf.New())
	_, err := placer.Place(panel, []design.Component{
		{ID: design.NewComponentID(), Name: "a", Shape: design.SphereData{Radius: 0.1}, Mass: 1},
	})
	if err == nil {
		t.Fatal("expected error for degenerate panel")
	}
	var degenerate design.DegenerateIntervalError
	if !errors.As(err, &degenerate) {
		t.Fatalf("expected DegenerateIntervalError, got %v", err)
	}
}

func TestPlaceEmptyBatch(t *testing.T) {
	placer := layout.NewPlacer(shelf.New())
	res, err := placer.Place(testPanel(), nil)
	if err != nil {
		t.Fatalf("Place failed on empty batch: %v", err)
	}
	if res.FitCount != 0 || len(res.Components) != 0 {
		t.Errorf("empty batch must stay empty: %+v", res)
	}
}
