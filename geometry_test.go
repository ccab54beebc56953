package overlay

import "testing"

// TestAbsolutePositionCorners tests that zero offsets land exactly on each
// container corner.
func TestAbsolutePositionCorners(t *testing.T) {
	const W, H = 800, 600
	const w, h = 100, 50

	tests := []struct {
		anchor Anchor
		wantX  int
		wantY  int
	}{
		{AnchorTopLeft, 0, 0},
		{AnchorTopRight, W - w, 0},
		{AnchorBottomLeft, 0, H - h},
		{AnchorBottomRight, W - w, H - h},
	}

	for _, tt := range tests {
		g := Geometry{Width: w, Height: h, Anchor: tt.anchor}
		x, y := g.AbsolutePosition(W, H)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("%v: AbsolutePosition = (%d, %d), want (%d, %d)",
				tt.anchor, x, y, tt.wantX, tt.wantY)
		}
	}
}

// TestAbsolutePositionBottomRight tests the documented placement scenario.
func TestAbsolutePositionBottomRight(t *testing.T) {
	g := Geometry{Width: 100, Height: 50, OffsetX: 10, OffsetY: 10, Anchor: AnchorBottomRight}

	cx, cy := g.ClampedOffsets(800, 600)
	if cx != 10 || cy != 10 {
		t.Errorf("ClampedOffsets = (%d, %d), want (10, 10)", cx, cy)
	}

	x, y := g.AbsolutePosition(800, 600)
	if x != 690 || y != 540 {
		t.Errorf("AbsolutePosition = (%d, %d), want (690, 540)", x, y)
	}
}

// TestClampedOffsetsNegative tests that negative offsets clamp to 0.
func TestClampedOffsetsNegative(t *testing.T) {
	g := Geometry{Width: 100, Height: 50, OffsetX: -30, OffsetY: -1, Anchor: AnchorTopLeft}
	x, y := g.ClampedOffsets(800, 600)
	if x != 0 || y != 0 {
		t.Errorf("ClampedOffsets = (%d, %d), want (0, 0)", x, y)
	}
}

// TestClampedOffsetsOversized tests the container-smaller-than-rect case:
// offsets collapse to 0 and the rectangle is allowed to overflow.
func TestClampedOffsetsOversized(t *testing.T) {
	g := Geometry{Width: 100, Height: 50, OffsetX: 10, OffsetY: 10, Anchor: AnchorTopLeft}

	x, y := g.AbsolutePosition(50, 50)
	if x != 0 || y != 0 {
		t.Errorf("AbsolutePosition = (%d, %d), want (0, 0)", x, y)
	}
	if g.FitsWithin(50, 50) {
		t.Error("FitsWithin(50, 50) = true, want false")
	}
	if !g.FitsWithin(100, 50) {
		t.Error("FitsWithin(100, 50) = false, want true")
	}
}

// TestClampedOffsetsIdempotent tests that reapplying the clamp to an
// already-clamped offset yields the same offset.
func TestClampedOffsetsIdempotent(t *testing.T) {
	for _, off := range []int{-50, 0, 10, 700, 10000} {
		g := Geometry{Width: 100, Height: 50, OffsetX: off, OffsetY: off, Anchor: AnchorTopLeft}
		x1, y1 := g.ClampedOffsets(800, 600)

		g.OffsetX, g.OffsetY = x1, y1
		x2, y2 := g.ClampedOffsets(800, 600)
		if x1 != x2 || y1 != y2 {
			t.Errorf("offset %d: clamp not idempotent: (%d, %d) then (%d, %d)",
				off, x1, y1, x2, y2)
		}
	}
}

// TestAbsolutePositionStaysInside tests that for containers at least as
// large as the rectangle, every anchor and offset keeps the rectangle
// inside the container.
func TestAbsolutePositionStaysInside(t *testing.T) {
	anchors := []Anchor{AnchorTopLeft, AnchorTopRight, AnchorBottomLeft, AnchorBottomRight}
	containers := [][2]int{{100, 50}, {101, 51}, {640, 480}, {1920, 1080}}
	offsets := []int{-100, -1, 0, 1, 25, 400, 5000}

	for _, c := range containers {
		for _, anchor := range anchors {
			for _, ox := range offsets {
				for _, oy := range offsets {
					g := Geometry{Width: 100, Height: 50, OffsetX: ox, OffsetY: oy, Anchor: anchor}
					x, y := g.AbsolutePosition(c[0], c[1])
					if x < 0 || x > c[0]-100 || y < 0 || y > c[1]-50 {
						t.Fatalf("%v offset (%d, %d) container %v: position (%d, %d) outside container",
							anchor, ox, oy, c, x, y)
					}
				}
			}
		}
	}
}

// TestAnchorString tests anchor names.
func TestAnchorString(t *testing.T) {
	tests := []struct {
		anchor Anchor
		want   string
	}{
		{AnchorTopLeft, "top-left"},
		{AnchorTopRight, "top-right"},
		{AnchorBottomLeft, "bottom-left"},
		{AnchorBottomRight, "bottom-right"},
		{Anchor(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.anchor.String(); got != tt.want {
			t.Errorf("Anchor(%d).String() = %q, want %q", tt.anchor, got, tt.want)
		}
	}
}
