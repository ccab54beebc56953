package overlay

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/overlay/host"
)

// fakeDrawable fills the surface with a solid color and records calls.
type fakeDrawable struct {
	fill    color.RGBA
	width   int
	height  int
	resizes int
	paints  int
}

func (d *fakeDrawable) Resize(width, height int) {
	d.width = width
	d.height = height
	d.resizes++
}

func (d *fakeDrawable) Paint(img *image.RGBA) {
	d.paints++
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
			img.SetRGBA(x, y, d.fill)
		}
	}
}

func attachedManager(t *testing.T, scene host.Scene, w, h int, opts ...Option) *Manager {
	t.Helper()
	m := NewManager(opts...)
	m.Attach(host.NewContext(scene, &host.FixedViewport{W: w, H: h}))
	return m
}

// TestManagerDetachedNoOps tests that an unattached manager ignores every
// operation.
func TestManagerDetachedNoOps(t *testing.T) {
	m := NewManager()
	d := &fakeDrawable{}

	m.SetGeometry(100, 50, 0, 0, AnchorTopLeft)
	m.SetVisible(true)
	m.Render(d)
	m.Close()

	if d.resizes != 0 || d.paints != 0 {
		t.Errorf("drawable touched by detached manager: resizes=%d paints=%d", d.resizes, d.paints)
	}
	if m.Visible() {
		t.Error("Visible() = true for detached manager")
	}
}

// TestManagerAttachIdempotent tests that re-attachment creates no second
// panel and keeps an existing viewport reference.
func TestManagerAttachIdempotent(t *testing.T) {
	scene := newCountingScene()
	vp := &host.FixedViewport{W: 800, H: 600}

	m := NewManager()
	m.Attach(host.NewContext(scene, vp))
	m.Attach(host.NewContext(scene, vp))
	defer m.Close()

	if scene.elementCreates != 1 {
		t.Errorf("element creations = %d, want 1", scene.elementCreates)
	}

	// Re-attachment with no viewport must not null the prior reference.
	m.Attach(host.NewContext(scene, nil))
	m.SetGeometry(100, 50, 10, 10, AnchorTopLeft)
	if got := scene.TextureCount(); got != 1 {
		t.Errorf("textures after SetGeometry = %d, want 1", got)
	}
}

// TestManagerUniqueNames tests that two managers on one scene never
// collide in the resource registry.
func TestManagerUniqueNames(t *testing.T) {
	scene := newCountingScene()

	m1 := attachedManager(t, scene, 800, 600)
	defer m1.Close()
	m2 := attachedManager(t, scene, 800, 600)
	defer m2.Close()

	m1.SetGeometry(64, 64, 0, 0, AnchorTopLeft)
	m2.SetGeometry(64, 64, 0, 0, AnchorTopRight)

	if got := scene.TextureCount(); got != 2 {
		t.Errorf("textures = %d, want 2 (name collision?)", got)
	}
}

// TestManagerRenderPlacement tests the full path: geometry placement,
// render, and compositing at the clamped absolute position.
func TestManagerRenderPlacement(t *testing.T) {
	scene := newCountingScene()
	m := attachedManager(t, scene, 800, 600)
	defer m.Close()

	m.SetGeometry(100, 50, 10, 10, AnchorBottomRight)
	m.SetVisible(true)

	red := color.RGBA{R: 255, A: 255}
	d := &fakeDrawable{fill: red}
	m.Render(d)

	if d.width != 100 || d.height != 50 {
		t.Errorf("drawable resized to %dx%d, want 100x50", d.width, d.height)
	}
	if d.paints != 1 {
		t.Fatalf("paints = %d, want 1", d.paints)
	}

	frame := image.NewRGBA(image.Rect(0, 0, 800, 600))
	scene.Composite(frame)

	// Overlay occupies [690,790)x[540,590).
	if got := frame.RGBAAt(690, 540); got != red {
		t.Errorf("pixel inside overlay = %v, want %v", got, red)
	}
	if got := frame.RGBAAt(789, 589); got != red {
		t.Errorf("pixel at overlay far corner = %v, want %v", got, red)
	}
	if got := frame.RGBAAt(689, 540); got == red {
		t.Error("pixel left of overlay is overlay-colored")
	}
}

// TestManagerRenderWithoutTexture tests that render before any geometry is
// a dropped frame, not a paint into nothing.
func TestManagerRenderWithoutTexture(t *testing.T) {
	scene := newCountingScene()
	m := attachedManager(t, scene, 800, 600)
	defer m.Close()

	d := &fakeDrawable{}
	m.Render(d)

	if d.resizes != 0 || d.paints != 0 {
		t.Errorf("drawable touched with no texture: resizes=%d paints=%d", d.resizes, d.paints)
	}
}

// TestManagerHiddenStillRenders tests that visibility only gates scene
// compositing, not texture updates.
func TestManagerHiddenStillRenders(t *testing.T) {
	scene := newCountingScene()
	m := attachedManager(t, scene, 800, 600)
	defer m.Close()

	m.SetGeometry(32, 32, 0, 0, AnchorTopLeft)
	m.SetVisible(false)

	d := &fakeDrawable{fill: color.RGBA{G: 255, A: 255}}
	m.Render(d)
	if d.paints != 1 {
		t.Errorf("paints = %d, want 1", d.paints)
	}

	frame := image.NewRGBA(image.Rect(0, 0, 800, 600))
	scene.Composite(frame)
	if got := frame.RGBAAt(0, 0); got.G == 255 {
		t.Error("hidden overlay composited into frame")
	}
}

// TestManagerVisibleToggle tests SetVisible delegation.
func TestManagerVisibleToggle(t *testing.T) {
	scene := newCountingScene()
	m := attachedManager(t, scene, 800, 600)
	defer m.Close()

	m.SetVisible(true)
	if !m.Visible() {
		t.Error("Visible() = false after SetVisible(true)")
	}
	m.SetVisible(false)
	if m.Visible() {
		t.Error("Visible() = true after SetVisible(false)")
	}
}

// TestManagerViewportResize tests that geometry follows the live viewport
// size rather than a cached one.
func TestManagerViewportResize(t *testing.T) {
	scene := newCountingScene()
	vp := &host.FixedViewport{W: 800, H: 600}
	m := NewManager()
	m.Attach(host.NewContext(scene, vp))
	defer m.Close()
	m.SetVisible(true)

	red := color.RGBA{R: 255, A: 255}
	d := &fakeDrawable{fill: red}

	m.SetGeometry(100, 50, 0, 0, AnchorBottomRight)
	m.Render(d)

	// Shrink the window; the next placement call must pick it up.
	vp.W, vp.H = 400, 300
	m.SetGeometry(100, 50, 0, 0, AnchorBottomRight)
	m.Render(d)

	frame := image.NewRGBA(image.Rect(0, 0, 800, 600))
	scene.Composite(frame)
	if got := frame.RGBAAt(300, 250); got != red {
		t.Errorf("pixel at new position = %v, want %v", got, red)
	}
	if got := frame.RGBAAt(700, 550); got == red {
		t.Error("overlay still at stale position after viewport resize")
	}
}

// TestManagerClose tests resource release and post-Close behavior.
func TestManagerClose(t *testing.T) {
	scene := newCountingScene()
	m := attachedManager(t, scene, 800, 600)
	m.SetGeometry(32, 32, 0, 0, AnchorTopLeft)

	m.Close()
	if got := scene.TextureCount(); got != 0 {
		t.Errorf("textures after Close = %d, want 0", got)
	}

	d := &fakeDrawable{}
	m.Render(d) // no-op, no panic
	if d.paints != 0 {
		t.Errorf("paints after Close = %d, want 0", d.paints)
	}
	m.Close() // idempotent
}
