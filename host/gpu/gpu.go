// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpu provides a GPU-backed scene for the overlay host registry.
//
// Import this package to register the "gpu" backend and pass a
// gpucontext.DeviceProvider in host.Options:
//
//	import _ "github.com/gogpu/overlay/host/gpu"
//
//	scene, err := host.NewScene(host.Options{Provider: app.GPUContextProvider()})
//
// Overlay textures keep a CPU staging buffer: the overlay core draws into
// the staging memory under a pixel lock, and the staged pixels are uploaded
// to a real GPU texture the next time the scene is composited with Draw.
// Without a provider the backend reports unavailable at creation time and
// scene selection falls back to the software backend.
package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/overlay"
	"github.com/gogpu/overlay/host"
)

// Errors returned by the GPU scene.
var (
	// ErrNilProvider is returned when the backend factory is given no
	// gpucontext.DeviceProvider.
	ErrNilProvider = errors.New("overlay/gpu: nil DeviceProvider")

	// ErrNoTextureCreator is returned by Draw when the draw context cannot
	// create textures.
	ErrNoTextureCreator = errors.New("overlay/gpu: draw context has no texture creator")
)

// textureDestroyer is the interface for destroying textures.
// This matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// TextureDrawer is the subset of gpucontext.TextureDrawer the scene needs:
// texture creation and positioned drawing. Pass the draw context from the
// host's draw callback (e.g. gogpu's dc.AsTextureDrawer()).
type TextureDrawer interface {
	// TextureCreator returns the context's texture factory, or nil.
	TextureCreator() gpucontext.TextureCreator

	// DrawTexture draws a GPU texture at the given screen position.
	DrawTexture(tex any, x, y float32) error
}

// Scene is a host.Scene whose textures are uploaded to the GPU and
// composited through a gpucontext.TextureDrawer.
//
// Scene is NOT safe for concurrent use; drive it from the rendering
// goroutine like every other host.Scene.
type Scene struct {
	provider gpucontext.DeviceProvider

	elements  map[string]*element
	materials map[string]*material
	textures  map[string]*texture
	order     []string // element names in creation order (z-order, back to front)
	retired   []any    // GPU textures awaiting deferred destruction
	closed    bool
}

// NewScene creates a GPU scene over the given provider.
func NewScene(provider gpucontext.DeviceProvider) (*Scene, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	return &Scene{
		provider:  provider,
		elements:  make(map[string]*element),
		materials: make(map[string]*material),
		textures:  make(map[string]*texture),
	}, nil
}

// CreateElement creates a hidden element at (0,0) with zero dimensions.
func (s *Scene) CreateElement(name string) (host.Element, error) {
	if s.closed {
		return nil, host.ErrSceneClosed
	}
	e := &element{}
	s.elements[name] = e
	s.order = append(s.order, name)
	return e, nil
}

// DestroyElement removes an element. Unknown names are ignored.
func (s *Scene) DestroyElement(name string) {
	if _, ok := s.elements[name]; !ok {
		return
	}
	delete(s.elements, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// CreateMaterial creates a material with an empty texture unit.
func (s *Scene) CreateMaterial(name string) (host.Material, error) {
	if s.closed {
		return nil, host.ErrSceneClosed
	}
	m := &material{}
	s.materials[name] = m
	return m, nil
}

// DestroyMaterial removes a material. Unknown names are ignored.
func (s *Scene) DestroyMaterial(name string) {
	delete(s.materials, name)
}

// CreateTexture allocates a named texture with CPU staging memory. The GPU
// copy is created lazily on the first Draw after the staging memory is
// written.
func (s *Scene) CreateTexture(name string, width, height int, format gputypes.TextureFormat) (host.Texture, error) {
	if s.closed {
		return nil, host.ErrSceneClosed
	}
	if _, ok := s.textures[name]; ok {
		return nil, fmt.Errorf("%w: %s", host.ErrTextureExists, name)
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	t := &texture{
		name:   name,
		width:  width,
		height: height,
		format: format,
		pix:    make([]byte, width*height*4),
		dirty:  true, // first Draw creates the GPU texture
	}
	s.textures[name] = t
	return t, nil
}

// RemoveTexture drops a texture from the registry. The GPU copy is not
// destroyed immediately: it may still be referenced by in-flight command
// buffers, so destruction is deferred to the next Draw, after the upload
// path has waited for the GPU.
func (s *Scene) RemoveTexture(name string) {
	t, ok := s.textures[name]
	if !ok {
		return
	}
	if t.gpuTexture != nil {
		s.retired = append(s.retired, t.gpuTexture)
		t.gpuTexture = nil
	}
	delete(s.textures, name)
}

// Close releases all resources, destroying any remaining GPU textures.
// Idempotent.
func (s *Scene) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	for _, t := range s.textures {
		if d, ok := t.gpuTexture.(textureDestroyer); ok {
			d.Destroy()
		}
	}
	for _, old := range s.retired {
		if d, ok := old.(textureDestroyer); ok {
			d.Destroy()
		}
	}
	s.elements = nil
	s.materials = nil
	s.textures = nil
	s.retired = nil
	s.order = nil
	return nil
}

// Provider returns the DeviceProvider the scene was created with.
func (s *Scene) Provider() gpucontext.DeviceProvider {
	return s.provider
}

// Draw uploads dirty textures and composites every visible element into
// the draw context, back to front. Call once per frame from the host's
// draw callback:
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    scene.Draw(dc.AsTextureDrawer())
//	})
func (s *Scene) Draw(dc TextureDrawer) error {
	if s.closed {
		return host.ErrSceneClosed
	}

	// Upload staged pixels first. NewTextureFromRGBA waits for the GPU
	// internally, so retired textures are safe to destroy afterwards.
	for _, t := range s.textures {
		if err := t.upload(dc); err != nil {
			return err
		}
	}
	for _, old := range s.retired {
		if d, ok := old.(textureDestroyer); ok {
			d.Destroy()
		}
	}
	s.retired = nil

	for _, name := range s.order {
		e := s.elements[name]
		if e == nil || !e.visible || e.material == nil || e.material.texture == nil {
			continue
		}
		gpuTex := e.material.texture.gpuTexture
		if gpuTex == nil {
			continue
		}
		if err := dc.DrawTexture(gpuTex, float32(e.left), float32(e.top)); err != nil {
			return fmt.Errorf("overlay/gpu: DrawTexture failed: %w", err)
		}
	}
	return nil
}

type element struct {
	left, top     int
	width, height int
	visible       bool
	material      *material
}

func (e *element) SetPosition(left, top int) {
	e.left = left
	e.top = top
}

func (e *element) SetDimensions(width, height int) {
	e.width = width
	e.height = height
}

func (e *element) SetMaterial(m host.Material) {
	gm, _ := m.(*material)
	e.material = gm
}

func (e *element) Show()         { e.visible = true }
func (e *element) Hide()         { e.visible = false }
func (e *element) Visible() bool { return e.visible }

type material struct {
	texture    *texture
	alphaBlend bool
}

func (m *material) BindTexture(t host.Texture) {
	gt, _ := t.(*texture)
	m.texture = gt
}

func (m *material) ClearBindings() {
	m.texture = nil
}

func (m *material) SetAlphaBlend(enabled bool) {
	m.alphaBlend = enabled
}

type texture struct {
	name          string
	width, height int
	format        gputypes.TextureFormat
	pix           []byte
	locked        bool
	dirty         bool
	gpuTexture    any // lazily created (*gogpu.Texture)
}

func (t *texture) Name() string                   { return t.name }
func (t *texture) Width() int                     { return t.width }
func (t *texture) Height() int                    { return t.height }
func (t *texture) Format() gputypes.TextureFormat { return t.format }

// Lock hands out the staging memory for CPU writes.
func (t *texture) Lock() (host.PixelLock, error) {
	if t.locked {
		return nil, fmt.Errorf("%w: %s", host.ErrTextureLocked, t.name)
	}
	t.locked = true
	return &stagingLock{tex: t}, nil
}

// upload pushes staged pixels to the GPU texture, creating it on first use.
func (t *texture) upload(dc TextureDrawer) error {
	if !t.dirty {
		return nil
	}
	if t.gpuTexture == nil {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrNoTextureCreator
		}
		gpuTex, err := creator.NewTextureFromRGBA(t.width, t.height, t.pix)
		if err != nil {
			return fmt.Errorf("overlay/gpu: NewTextureFromRGBA failed: %w", err)
		}
		// Staging pixels are premultiplied alpha, the image.RGBA convention
		// the drawables paint in.
		if pt, ok := gpuTex.(interface{ SetPremultiplied(bool) }); ok {
			pt.SetPremultiplied(true)
		}
		t.gpuTexture = gpuTex
	} else if updater, ok := t.gpuTexture.(gpucontext.TextureUpdater); ok {
		if err := updater.UpdateData(t.pix); err != nil {
			return fmt.Errorf("overlay/gpu: texture update failed: %w", err)
		}
	}
	t.dirty = false
	return nil
}

// stagingLock is a pixel lock over a texture's CPU staging memory.
// Unlock marks the texture dirty for upload on the next Draw.
type stagingLock struct {
	tex *texture
}

func (l *stagingLock) Bytes() []byte {
	return l.tex.pix
}

func (l *stagingLock) Unlock() {
	l.tex.dirty = true
	l.tex.locked = false
}

// Ensure the gpu types satisfy the host interfaces.
var (
	_ host.Scene     = (*Scene)(nil)
	_ host.Element   = (*element)(nil)
	_ host.Material  = (*material)(nil)
	_ host.Texture   = (*texture)(nil)
	_ host.PixelLock = (*stagingLock)(nil)
)

// init registers the GPU backend. Creation fails without a provider, which
// makes the registry fall through to the software backend.
func init() {
	host.Register("gpu", 100, func(opts host.Options) (host.Scene, error) {
		provider, ok := opts.Provider.(gpucontext.DeviceProvider)
		if !ok || provider == nil {
			return nil, ErrNilProvider
		}
		s, err := NewScene(provider)
		if err != nil {
			return nil, err
		}
		overlay.Logger().Debug("overlay gpu scene created")
		return s, nil
	}, nil)
}
