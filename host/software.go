// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"
)

// SoftwareScene is a CPU-backed Scene implementation.
//
// It keeps every texture in ordinary memory and composites visible elements
// with the CPU, which makes it the reference backend for headless contexts
// and tests. It enforces the same resource invariants a GPU scene would:
// texture names are unique, and a texture has at most one outstanding lock.
//
// SoftwareScene is NOT safe for concurrent use.
type SoftwareScene struct {
	elements  map[string]*softwareElement
	materials map[string]*softwareMaterial
	textures  map[string]*softwareTexture
	order     []string // element names in creation order (z-order, back to front)
	closed    bool
}

// NewSoftwareScene creates an empty software scene.
func NewSoftwareScene() *SoftwareScene {
	return &SoftwareScene{
		elements:  make(map[string]*softwareElement),
		materials: make(map[string]*softwareMaterial),
		textures:  make(map[string]*softwareTexture),
	}
}

// CreateElement creates a hidden element at (0,0) with zero dimensions.
func (s *SoftwareScene) CreateElement(name string) (Element, error) {
	if s.closed {
		return nil, ErrSceneClosed
	}
	e := &softwareElement{}
	s.elements[name] = e
	s.order = append(s.order, name)
	return e, nil
}

// DestroyElement removes an element. Unknown names are ignored.
func (s *SoftwareScene) DestroyElement(name string) {
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
func (s *SoftwareScene) CreateMaterial(name string) (Material, error) {
	if s.closed {
		return nil, ErrSceneClosed
	}
	m := &softwareMaterial{}
	s.materials[name] = m
	return m, nil
}

// DestroyMaterial removes a material. Unknown names are ignored.
func (s *SoftwareScene) DestroyMaterial(name string) {
	delete(s.materials, name)
}

// CreateTexture allocates a named texture. The name must not be in use.
func (s *SoftwareScene) CreateTexture(name string, width, height int, format gputypes.TextureFormat) (Texture, error) {
	if s.closed {
		return nil, ErrSceneClosed
	}
	if _, ok := s.textures[name]; ok {
		return nil, fmt.Errorf("%w: %s", ErrTextureExists, describe(name, width, height))
	}

	width, height = validateSize(width, height)
	t := &softwareTexture{
		name:   name,
		width:  width,
		height: height,
		format: format,
		pix:    make([]byte, width*height*4),
	}
	s.textures[name] = t
	return t, nil
}

// RemoveTexture drops a texture from the registry. Unknown names are ignored.
func (s *SoftwareScene) RemoveTexture(name string) {
	delete(s.textures, name)
}

// TextureCount returns the number of registered textures.
func (s *SoftwareScene) TextureCount() int {
	return len(s.textures)
}

// Close releases all resources. Idempotent.
func (s *SoftwareScene) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.elements = nil
	s.materials = nil
	s.textures = nil
	s.order = nil
	return nil
}

// Composite alpha-blends every visible element's texture into dst at the
// element's position, in element creation order (back to front). Elements
// without a bound texture are skipped.
func (s *SoftwareScene) Composite(dst *image.RGBA) {
	if s.closed {
		return
	}
	for _, name := range s.order {
		e := s.elements[name]
		if e == nil || !e.visible || e.material == nil {
			continue
		}
		tex := e.material.texture
		if tex == nil {
			continue
		}

		src := &image.RGBA{
			Pix:    tex.pix,
			Stride: tex.width * 4,
			Rect:   image.Rect(0, 0, tex.width, tex.height),
		}
		r := src.Rect.Add(image.Pt(e.left, e.top))
		op := draw.Over
		if !e.material.alphaBlend {
			op = draw.Src
		}
		draw.Draw(dst, r, src, image.Point{}, op)
	}
}

type softwareElement struct {
	left, top     int
	width, height int
	visible       bool
	material      *softwareMaterial
}

func (e *softwareElement) SetPosition(left, top int) {
	e.left = left
	e.top = top
}

func (e *softwareElement) SetDimensions(width, height int) {
	e.width = width
	e.height = height
}

func (e *softwareElement) SetMaterial(m Material) {
	sm, _ := m.(*softwareMaterial)
	e.material = sm
}

func (e *softwareElement) Show()         { e.visible = true }
func (e *softwareElement) Hide()         { e.visible = false }
func (e *softwareElement) Visible() bool { return e.visible }

type softwareMaterial struct {
	texture    *softwareTexture
	alphaBlend bool
}

func (m *softwareMaterial) BindTexture(t Texture) {
	st, _ := t.(*softwareTexture)
	m.texture = st
}

func (m *softwareMaterial) ClearBindings() {
	m.texture = nil
}

func (m *softwareMaterial) SetAlphaBlend(enabled bool) {
	m.alphaBlend = enabled
}

type softwareTexture struct {
	name          string
	width, height int
	format        gputypes.TextureFormat
	pix           []byte
	locked        bool
}

func (t *softwareTexture) Name() string                   { return t.name }
func (t *softwareTexture) Width() int                     { return t.width }
func (t *softwareTexture) Height() int                    { return t.height }
func (t *softwareTexture) Format() gputypes.TextureFormat { return t.format }

// Lock hands out the texture's backing memory for CPU writes.
func (t *softwareTexture) Lock() (PixelLock, error) {
	if t.locked {
		return nil, fmt.Errorf("%w: %s", ErrTextureLocked, t.name)
	}
	t.locked = true
	return &softwareLock{tex: t}, nil
}

type softwareLock struct {
	tex *softwareTexture
}

// Bytes returns the texture's backing memory. Writes land directly in the
// texture; Unlock only releases the lock.
func (l *softwareLock) Bytes() []byte {
	return l.tex.pix
}

func (l *softwareLock) Unlock() {
	l.tex.locked = false
}

// Ensure the software types satisfy the host interfaces.
var (
	_ Scene     = (*SoftwareScene)(nil)
	_ Element   = (*softwareElement)(nil)
	_ Material  = (*softwareMaterial)(nil)
	_ Texture   = (*softwareTexture)(nil)
	_ PixelLock = (*softwareLock)(nil)
)
