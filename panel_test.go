package overlay

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/overlay/host"
)

// countingScene wraps a SoftwareScene and counts resource creations.
type countingScene struct {
	*host.SoftwareScene
	elementCreates  int
	materialCreates int
	textureCreates  int
}

func newCountingScene() *countingScene {
	return &countingScene{SoftwareScene: host.NewSoftwareScene()}
}

func (s *countingScene) CreateElement(name string) (host.Element, error) {
	s.elementCreates++
	return s.SoftwareScene.CreateElement(name)
}

func (s *countingScene) CreateMaterial(name string) (host.Material, error) {
	s.materialCreates++
	return s.SoftwareScene.CreateMaterial(name)
}

func (s *countingScene) CreateTexture(name string, width, height int, format gputypes.TextureFormat) (host.Texture, error) {
	s.textureCreates++
	return s.SoftwareScene.CreateTexture(name, width, height, format)
}

// TestNewPanelNullObject tests that a panel without a scene host degrades
// to safe no-ops.
func TestNewPanelNullObject(t *testing.T) {
	p := NewPanel(nil, "TestHUD", host.DefaultFormat)

	p.UpdateTextureSize(64, 64)
	p.SetPosition(10, 10)
	p.SetDimensions(64, 64)
	p.Show()

	if p.Visible() {
		t.Error("Visible() = true for null-object panel, want false")
	}
	if p.TextureWidth() != 0 || p.TextureHeight() != 0 {
		t.Errorf("texture size = %dx%d, want 0x0", p.TextureWidth(), p.TextureHeight())
	}

	buf := p.PixelBuffer()
	defer buf.Release()
	if buf.Valid() {
		t.Error("PixelBuffer().Valid() = true for null-object panel, want false")
	}

	p.Close()
	p.Close()
}

// TestUpdateTextureSizeOnce tests that identical dimensions create the
// underlying texture exactly once.
func TestUpdateTextureSizeOnce(t *testing.T) {
	scene := newCountingScene()
	p := NewPanel(scene, "TestHUD", host.DefaultFormat)
	defer p.Close()

	p.UpdateTextureSize(64, 32)
	p.UpdateTextureSize(64, 32)
	p.UpdateTextureSize(64, 32)

	if scene.textureCreates != 1 {
		t.Errorf("texture creations = %d, want 1", scene.textureCreates)
	}
	if p.TextureWidth() != 64 || p.TextureHeight() != 32 {
		t.Errorf("texture size = %dx%d, want 64x32", p.TextureWidth(), p.TextureHeight())
	}
}

// TestUpdateTextureSizeResize tests that a resize removes the old texture
// before creating the new one, so the scene never holds two.
func TestUpdateTextureSizeResize(t *testing.T) {
	scene := newCountingScene()
	p := NewPanel(scene, "TestHUD", host.DefaultFormat)
	defer p.Close()

	p.UpdateTextureSize(64, 64)
	p.UpdateTextureSize(128, 128)

	if scene.textureCreates != 2 {
		t.Errorf("texture creations = %d, want 2", scene.textureCreates)
	}
	if scene.TextureCount() != 1 {
		t.Errorf("textures registered = %d, want 1", scene.TextureCount())
	}
	if p.TextureWidth() != 128 || p.TextureHeight() != 128 {
		t.Errorf("texture size = %dx%d, want 128x128", p.TextureWidth(), p.TextureHeight())
	}
}

// TestUpdateTextureSizeZeroFloored tests that zero dimensions are coerced
// to the 1x1 minimum rather than rejected.
func TestUpdateTextureSizeZeroFloored(t *testing.T) {
	scene := newCountingScene()
	p := NewPanel(scene, "TestHUD", host.DefaultFormat)
	defer p.Close()

	p.UpdateTextureSize(0, 0)
	if p.TextureWidth() != 1 || p.TextureHeight() != 1 {
		t.Errorf("texture size = %dx%d, want 1x1", p.TextureWidth(), p.TextureHeight())
	}

	// Coerced dimensions are the allocation's real dimensions: asking for
	// 1x1 afterwards is a no-op, not a recreation.
	p.UpdateTextureSize(1, 1)
	if scene.textureCreates != 1 {
		t.Errorf("texture creations = %d, want 1", scene.textureCreates)
	}
}

// TestPanelPixelBufferExclusive tests that a second buffer over a locked
// texture is invalid instead of double-locking.
func TestPanelPixelBufferExclusive(t *testing.T) {
	scene := newCountingScene()
	p := NewPanel(scene, "TestHUD", host.DefaultFormat)
	defer p.Close()
	p.UpdateTextureSize(8, 8)

	first := p.PixelBuffer()
	defer first.Release()
	if !first.Valid() {
		t.Fatal("first PixelBuffer invalid")
	}

	second := p.PixelBuffer()
	defer second.Release()
	if second.Valid() {
		t.Error("second PixelBuffer valid while first lock outstanding")
	}

	first.Release()
	third := p.PixelBuffer()
	defer third.Release()
	if !third.Valid() {
		t.Error("PixelBuffer invalid after previous lock released")
	}
}

// TestPanelVisibility tests show/hide toggling.
func TestPanelVisibility(t *testing.T) {
	scene := newCountingScene()
	p := NewPanel(scene, "TestHUD", host.DefaultFormat)
	defer p.Close()

	if p.Visible() {
		t.Error("panel visible at construction, want hidden")
	}
	p.Show()
	if !p.Visible() {
		t.Error("Visible() = false after Show")
	}
	p.Hide()
	if p.Visible() {
		t.Error("Visible() = true after Hide")
	}
}

// TestPanelClose tests that Close releases element, material, and texture,
// and is idempotent.
func TestPanelClose(t *testing.T) {
	scene := newCountingScene()
	p := NewPanel(scene, "TestHUD", host.DefaultFormat)
	p.UpdateTextureSize(32, 32)

	p.Close()
	if scene.TextureCount() != 0 {
		t.Errorf("textures registered after Close = %d, want 0", scene.TextureCount())
	}

	p.Close() // idempotent
	p.Show()  // no-op after Close
	if p.Visible() {
		t.Error("Visible() = true after Close")
	}
}
