package overlay

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/overlay/host"
)

// Panel owns one (texture, material, scene element) triple identified by a
// name, and keeps the three mutually consistent.
//
// When the hosting scene is unavailable, or element/material creation
// fails, the Panel degrades to a null object: every operation is a safe
// no-op and Visible always reports false. Callers never need a failure
// branch for this path; the overlay simply does not appear.
type Panel struct {
	name     string
	scene    host.Scene
	element  host.Element
	material host.Material
	texture  host.Texture
	format   gputypes.TextureFormat
}

// NewPanel creates the panel's scene element and transparent-blend
// material inside scene. The texture is allocated lazily by
// UpdateTextureSize. A nil scene yields a null-object panel.
func NewPanel(scene host.Scene, name string, format gputypes.TextureFormat) *Panel {
	p := &Panel{name: name, format: format}
	if scene == nil {
		Logger().Warn("scene host not available for overlay panel", "panel", name)
		return p
	}

	element, err := scene.CreateElement(name + "Panel")
	if err != nil {
		Logger().Warn("overlay element creation failed", "panel", name, "err", err)
		return p
	}
	material, err := scene.CreateMaterial(name + "Material")
	if err != nil {
		Logger().Warn("overlay material creation failed", "panel", name, "err", err)
		scene.DestroyElement(name + "Panel")
		return p
	}

	element.SetMaterial(material)
	element.Hide()

	p.scene = scene
	p.element = element
	p.material = material
	return p
}

// UpdateTextureSize (re)allocates the panel's texture to width x height.
//
// Unchanged dimensions are a no-op: calling this twice with the same size
// performs the underlying texture creation exactly once. On a real resize
// the old texture is removed from the scene registry and the material's
// texture unit detached before the new texture is created, so the registry
// never sees two textures under the panel's name and the material never
// holds a dangling binding. Zero dimensions are floored to 1, not rejected.
func (p *Panel) UpdateTextureSize(width, height int) {
	if p.element == nil {
		return
	}

	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	if p.texture != nil && p.texture.Width() == width && p.texture.Height() == height {
		return
	}

	textureName := p.name + "Texture"
	if p.texture != nil {
		p.scene.RemoveTexture(p.texture.Name())
		p.material.ClearBindings()
		p.texture = nil
	}

	texture, err := p.scene.CreateTexture(textureName, width, height, p.format)
	if err != nil {
		Logger().Warn("overlay texture creation failed",
			"panel", p.name, "width", width, "height", height, "err", err)
		return
	}

	p.material.BindTexture(texture)
	p.material.SetAlphaBlend(true)
	p.texture = texture
}

// SetPosition moves the panel's scene element. Safe before any texture
// exists.
func (p *Panel) SetPosition(left, top int) {
	if p.element != nil {
		p.element.SetPosition(left, top)
	}
}

// SetDimensions sets the scene element's on-screen size. Safe before any
// texture exists.
func (p *Panel) SetDimensions(width, height int) {
	if p.element != nil {
		p.element.SetDimensions(width, height)
	}
}

// PixelBuffer locks the panel's texture for CPU writes and returns the
// scoped buffer. If no texture exists yet the buffer is empty
// (Valid() == false), which callers treat as a dropped frame.
func (p *Panel) PixelBuffer() *ScopedPixelBuffer {
	return newScopedPixelBuffer(p.texture)
}

// TextureWidth returns the current texture width, or 0 before allocation.
func (p *Panel) TextureWidth() int {
	if p.texture == nil {
		return 0
	}
	return p.texture.Width()
}

// TextureHeight returns the current texture height, or 0 before allocation.
func (p *Panel) TextureHeight() int {
	if p.texture == nil {
		return 0
	}
	return p.texture.Height()
}

// Show makes the panel visible.
func (p *Panel) Show() {
	if p.element != nil {
		p.element.Show()
	}
}

// Hide makes the panel invisible.
func (p *Panel) Hide() {
	if p.element != nil {
		p.element.Hide()
	}
}

// Visible reports whether the panel is shown. A null-object panel always
// reports false.
func (p *Panel) Visible() bool {
	return p.element != nil && p.element.Visible()
}

// Close releases the element, material, and texture, in an order safe for
// the scene's resource registries: the element goes first so nothing in
// the scene references the material, then the material so nothing binds
// the texture, then the texture itself. Any of the three may already be
// absent. Close is idempotent.
func (p *Panel) Close() {
	if p.scene == nil {
		return
	}
	if p.element != nil {
		p.scene.DestroyElement(p.name + "Panel")
		p.element = nil
	}
	if p.material != nil {
		p.scene.DestroyMaterial(p.name + "Material")
		p.material = nil
	}
	if p.texture != nil {
		p.scene.RemoveTexture(p.texture.Name())
		p.texture = nil
	}
	p.scene = nil
}
