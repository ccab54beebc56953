package overlay

import (
	"image"
	"strconv"
	"sync/atomic"

	"github.com/gogpu/overlay/host"
)

// Drawable is the instrument widget the overlay renders each frame.
//
// The manager calls Resize with the panel's current texture dimensions
// before every Paint, so pixel (0,0) of the drawable maps to pixel (0,0)
// of the texture with no scaling. Paint must complete all drawing
// synchronously before returning; the pixel lock is released right after.
type Drawable interface {
	// Resize adjusts the drawable to the given pixel dimensions.
	Resize(width, height int)

	// Paint draws the drawable into img. The image is pre-cleared to
	// fully transparent.
	Paint(img *image.RGBA)
}

// panelCount generates process-wide unique panel names so multiple
// concurrently-displayed overlays never collide in the scene's resource
// registries.
var panelCount atomic.Int64

// Manager orchestrates one overlay panel inside a live viewport: it
// attaches the panel to a scene, places it under a corner anchor, and
// drives the per-frame render cycle.
//
// A Manager begins detached. Until Attach has produced both a panel and a
// viewport reference, SetGeometry is a no-op; until it has produced a
// panel, SetVisible and Render are no-ops. All operations are meant to run
// on the host's rendering goroutine.
type Manager struct {
	panel    *Panel
	viewport host.Viewport
	opts     managerOptions
}

// NewManager creates a detached Manager.
func NewManager(opts ...Option) *Manager {
	o := defaultManagerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Manager{opts: o}
}

// Attach connects the manager to a scene and viewport. Idempotent: the
// panel is created at most once per manager, and an already-recorded
// viewport reference is kept when a re-attachment offers none.
func (m *Manager) Attach(ctx host.Context) {
	if ctx == nil {
		return
	}
	if m.panel == nil {
		name := m.opts.namePrefix + strconv.FormatInt(panelCount.Add(1)-1, 10)
		m.panel = NewPanel(ctx.Scene(), name, m.opts.format)
	}
	if m.viewport == nil {
		if vp := ctx.Viewport(); vp != nil {
			m.viewport = vp
		}
	}
}

// SetGeometry places the overlay: width x height pixels, offset from the
// given anchor corner, clamped against the viewport's live size. The
// panel's texture is resized to match and its scene element moved to the
// computed absolute position. No-op unless attached to both a panel and a
// viewport.
func (m *Manager) SetGeometry(width, height, offsetX, offsetY int, anchor Anchor) {
	if m.panel == nil || m.viewport == nil {
		return
	}

	// The viewport size is re-read on every call rather than cached, so a
	// window resize between frames is picked up with no change
	// notification.
	vw, vh := m.viewport.Size()
	geom := Geometry{
		Width:   width,
		Height:  height,
		OffsetX: offsetX,
		OffsetY: offsetY,
		Anchor:  anchor,
	}
	x, y := geom.AbsolutePosition(vw, vh)

	if !geom.FitsWithin(vw, vh) {
		Logger().Debug("overlay larger than viewport",
			"width", width, "height", height, "viewportW", vw, "viewportH", vh)
	}

	m.panel.UpdateTextureSize(width, height)
	m.panel.SetDimensions(width, height)
	m.panel.SetPosition(x, y)
}

// SetVisible shows or hides the overlay. No-op without a panel.
func (m *Manager) SetVisible(visible bool) {
	if m.panel == nil {
		return
	}
	if visible {
		m.panel.Show()
	} else {
		m.panel.Hide()
	}
}

// Visible reports whether the overlay is currently shown.
func (m *Manager) Visible() bool {
	return m.panel != nil && m.panel.Visible()
}

// Render draws one frame of d into the overlay's texture.
//
// The frame is dropped silently when there is no panel, the texture has a
// zero dimension, or the pixel lock cannot be acquired. The texture size
// and element dimensions are re-asserted against the current texture in
// case an external resize happened; the overlay's on-screen size itself
// only changes through SetGeometry.
func (m *Manager) Render(d Drawable) {
	if m.panel == nil {
		return
	}
	width := m.panel.TextureWidth()
	height := m.panel.TextureHeight()
	if width == 0 || height == 0 {
		return
	}

	m.panel.UpdateTextureSize(width, height)
	m.panel.SetDimensions(width, height)

	// The drawable must agree on dimensions before painting so its
	// coordinate space maps 1:1 onto the texture.
	d.Resize(width, height)

	buffer := m.panel.PixelBuffer()
	defer buffer.Release()
	if !buffer.Valid() {
		Logger().Debug("overlay frame dropped: pixel buffer unavailable")
		return
	}

	img := buffer.Image(width, height)
	if img == nil {
		return
	}
	d.Paint(img)
}

// Close releases the panel and its scene resources. The manager can no
// longer be used afterwards. Safe to call when never attached.
func (m *Manager) Close() {
	if m.panel != nil {
		m.panel.Close()
		m.panel = nil
	}
	m.viewport = nil
}
