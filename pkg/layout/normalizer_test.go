package layout

import (
	"errors"
	"testing"

	"github.com/nardreamers/Satellite-Design-Tool/pkg/design"
)

func TestNormalizePanelTable(t *testing.T) {
	availX := design.Interval{0.1, 0.5}
	availY := design.Interval{-0.2, 0.3}
	availZ := design.Interval{0, 2}

	tests := []struct {
		name                  string
		plane                 design.BuildPlane
		normal                design.Face
		width, height, length design.Interval
	}{
		{"XZ facing +Y negates width", design.PlaneXZ, design.FacePosY, design.Interval{-0.1, -0.5}, availZ, availY},
		{"XZ facing -Y keeps width", design.PlaneXZ, design.FaceNegY, availX, availZ, availY},
		{"YZ relabels", design.PlaneYZ, design.FacePosX, availY, availZ, availX},
		{"XY relabels", design.PlaneXY, design.FacePosZ, availX, availY, availZ},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			panel := design.PanelSurface{
				Plane:      tt.plane,
				Normal:     tt.normal,
				AvailableX: availX,
				AvailableY: availY,
				AvailableZ: availZ,
			}
			ext, err := NormalizePanel(panel)
			if err != nil {
				t.Fatalf("NormalizePanel failed: %v", err)
			}
			if ext.Width != tt.width {
				t.Errorf("width: got %v, want %v", ext.Width, tt.width)
			}
			if ext.Height != tt.height {
				t.Errorf("height: got %v, want %v", ext.Height, tt.height)
			}
			if ext.Length != tt.length {
				t.Errorf("length: got %v, want %v", ext.Length, tt.length)
			}
		})
	}
}

func TestNormalizePanelDegenerate(t *testing.T) {
	panel := design.PanelSurface{
		Plane:      design.PlaneYZ,
		Normal:     design.FacePosX,
		AvailableX: design.Interval{0, 0.5},
		AvailableY: design.Interval{0, 1},
		AvailableZ: design.Interval{1.2, 1.2}, // zero height extent
	}
	_, err := NormalizePanel(panel)
	if err == nil {
		t.Fatal("expected error for degenerate interval")
	}
	var degenerate design.DegenerateIntervalError
	if !errors.As(err, &degenerate) {
		t.Fatalf("expected DegenerateIntervalError, got %v", err)
	}
	if degenerate.Axis != "height" {
		t.Errorf("axis: got %q, want %q", degenerate.Axis, "height")
	}
}
