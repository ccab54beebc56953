package overlay

// Anchor selects which corner of the container an overlay's offsets are
// measured from.
type Anchor uint8

const (
	// AnchorTopLeft measures offsets from the container's top-left corner.
	AnchorTopLeft Anchor = iota

	// AnchorTopRight measures offsets from the container's top-right corner.
	AnchorTopRight

	// AnchorBottomLeft measures offsets from the container's bottom-left corner.
	AnchorBottomLeft

	// AnchorBottomRight measures offsets from the container's bottom-right corner.
	AnchorBottomRight
)

// String returns the anchor name.
func (a Anchor) String() string {
	switch a {
	case AnchorTopLeft:
		return "top-left"
	case AnchorTopRight:
		return "top-right"
	case AnchorBottomLeft:
		return "bottom-left"
	case AnchorBottomRight:
		return "bottom-right"
	default:
		return "unknown"
	}
}

// Geometry describes an overlay rectangle's requested placement: its size
// in pixels and its offset from the anchored corner of the container.
//
// Geometry is a plain value; all methods are pure and take the live
// container size as input, so a stale container size can never be baked in.
type Geometry struct {
	// Width and Height are the rectangle size in pixels.
	Width  int
	Height int

	// OffsetX and OffsetY are measured from the anchored corner toward
	// the container's interior. Negative offsets are clamped to 0.
	OffsetX int
	OffsetY int

	// Anchor is the container corner the offsets are relative to.
	Anchor Anchor
}

// ClampedOffsets returns the requested offsets clamped so the rectangle's
// far edges cannot exceed the container when the rectangle fits.
//
// If the rectangle is larger than the container on an axis, the maximum
// offset collapses to 0 on that axis and the rectangle overflows. Overflow
// is a valid degraded state, not an error.
func (g Geometry) ClampedOffsets(containerW, containerH int) (x, y int) {
	maxX := max(0, containerW-g.Width)
	maxY := max(0, containerH-g.Height)

	x = min(max(g.OffsetX, 0), maxX)
	y = min(max(g.OffsetY, 0), maxY)
	return x, y
}

// AbsolutePosition returns the rectangle's top-left corner in container
// coordinates after clamping, under the geometry's anchor.
func (g Geometry) AbsolutePosition(containerW, containerH int) (x, y int) {
	cx, cy := g.ClampedOffsets(containerW, containerH)

	x = cx
	y = cy
	switch g.Anchor {
	case AnchorTopRight:
		x = containerW - g.Width - cx
	case AnchorBottomLeft:
		y = containerH - g.Height - cy
	case AnchorBottomRight:
		x = containerW - g.Width - cx
		y = containerH - g.Height - cy
	case AnchorTopLeft:
		// Offsets already measure from the top-left.
	}
	return x, y
}

// FitsWithin reports whether the rectangle fits entirely inside a container
// of the given size. Pure query; no clamping is applied.
func (g Geometry) FitsWithin(containerW, containerH int) bool {
	return g.Width <= containerW && g.Height <= containerH
}
