// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package host defines the boundary between the overlay core and the
// scene/graphics system it composites into.
//
// The overlay core never talks to a GPU directly. It consumes the
// interfaces in this package: a Scene that can create overlay elements,
// materials, and named textures; a Viewport that reports the live on-screen
// size of the render target; and a Context bundling the two for attachment.
//
// A CPU-backed software Scene is registered by default (see NewScene).
// GPU-backed scenes are provided by sub-packages such as host/gpu and
// selected through the same registry.
package host

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
)

// DefaultFormat is the pixel format used for overlay textures: 32-bit
// packed alpha+RGB, four bytes per pixel in R, G, B, A order.
const DefaultFormat = gputypes.TextureFormatRGBA8Unorm

// Errors shared by Scene implementations.
var (
	// ErrTextureExists is returned when creating a texture whose name is
	// already registered with the scene. At most one texture of a given
	// name may exist at a time; remove the old one first.
	ErrTextureExists = errors.New("host: texture name already exists")

	// ErrTextureLocked is returned when locking a texture that already has
	// an outstanding lock. A texture has at most one lock at a time.
	ErrTextureLocked = errors.New("host: texture already locked")

	// ErrSceneClosed is returned when operating on a closed scene.
	ErrSceneClosed = errors.New("host: scene is closed")
)

// Scene is the retained-mode side of the bridge: it owns overlay elements,
// materials, and named textures.
//
// Scene implementations are not required to be safe for concurrent use.
// The overlay core drives a scene from a single rendering goroutine.
type Scene interface {
	// CreateElement creates a 2D overlay element in the scene graph.
	// Elements start hidden at position (0,0) with zero dimensions.
	CreateElement(name string) (Element, error)

	// DestroyElement removes an element from the scene.
	// Destroying an element that is already gone is a no-op.
	DestroyElement(name string)

	// CreateMaterial creates a material with a single texture unit and
	// no texture bound.
	CreateMaterial(name string) (Material, error)

	// DestroyMaterial removes a material from the scene.
	// Destroying a material that is already gone is a no-op.
	DestroyMaterial(name string)

	// CreateTexture creates a named 2D texture of the given size and
	// format. Returns ErrTextureExists if the name is taken.
	CreateTexture(name string, width, height int, format gputypes.TextureFormat) (Texture, error)

	// RemoveTexture removes a texture from the scene's resource registry.
	// Removing a texture that is already gone is a no-op.
	RemoveTexture(name string)

	// Close releases every resource the scene still owns.
	// Close is idempotent; multiple calls are safe.
	Close() error
}

// Element is an overlay's node in the scene graph: a screen-space rectangle
// with a position, dimensions, visibility, and a bound material.
type Element interface {
	// SetPosition moves the element's top-left corner, in pixels from the
	// container's top-left.
	SetPosition(left, top int)

	// SetDimensions sets the element's on-screen size in pixels.
	SetDimensions(width, height int)

	// SetMaterial binds the material the element is rendered with.
	SetMaterial(m Material)

	// Show makes the element visible.
	Show()

	// Hide makes the element invisible.
	Hide()

	// Visible reports whether the element is currently shown.
	Visible() bool
}

// Material is a scene material with exactly one texture unit.
type Material interface {
	// BindTexture attaches a texture to the material's texture unit,
	// replacing any previous binding.
	BindTexture(t Texture)

	// ClearBindings detaches the texture unit. Required before the bound
	// texture is removed from the scene, so the material never holds a
	// dangling reference.
	ClearBindings()

	// SetAlphaBlend enables or disables transparent alpha blending for
	// the texture unit.
	SetAlphaBlend(enabled bool)
}

// Texture is a GPU-resident 2D pixel surface registered under a unique
// name within its scene.
type Texture interface {
	// Name returns the texture's registry name.
	Name() string

	// Width returns the texture width in pixels.
	Width() int

	// Height returns the texture height in pixels.
	Height() int

	// Format returns the texture pixel format.
	Format() gputypes.TextureFormat

	// Lock acquires exclusive CPU write access to the texture's backing
	// memory. Returns ErrTextureLocked if a lock is already outstanding.
	Lock() (PixelLock, error)
}

// PixelLock is a transient, exclusive access token to a texture's backing
// memory. Unlock must be called exactly once; the overlay core enforces
// this through overlay.ScopedPixelBuffer.
type PixelLock interface {
	// Bytes returns the writable backing memory: Width*Height*4 bytes in
	// R, G, B, A channel order, row-major, no padding.
	Bytes() []byte

	// Unlock flushes the written pixels to the texture and releases the
	// lock.
	Unlock()
}

// Viewport reports the current on-screen pixel size of the render target.
//
// The size is queried fresh on every placement and render call and never
// cached, so a window resize between frames is picked up on the next call.
type Viewport interface {
	// Size returns the viewport's current width and height in pixels.
	Size() (width, height int)
}

// Context bundles the scene and viewport an overlay attaches to. Either
// accessor may return nil when the corresponding facility is unavailable;
// the overlay core degrades to a no-op in that case.
type Context interface {
	// Scene returns the scene to composite into, or nil.
	Scene() Scene

	// Viewport returns the render target's viewport, or nil.
	Viewport() Viewport
}

// NewContext builds a Context from a scene and viewport pair.
// Either argument may be nil.
func NewContext(scene Scene, viewport Viewport) Context {
	return &simpleContext{scene: scene, viewport: viewport}
}

type simpleContext struct {
	scene    Scene
	viewport Viewport
}

func (c *simpleContext) Scene() Scene       { return c.scene }
func (c *simpleContext) Viewport() Viewport { return c.viewport }

// FixedViewport is a Viewport with a settable size, useful for headless
// rendering and tests.
type FixedViewport struct {
	W, H int
}

// Size returns the viewport's current size.
func (v *FixedViewport) Size() (width, height int) {
	return v.W, v.H
}

// validateSize floors degenerate texture dimensions to the 1x1 minimum.
// Zero-sized textures are invalid in every backend, so dimensions are
// coerced, never rejected.
func validateSize(width, height int) (int, int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}

// describe formats a texture identity for error messages.
func describe(name string, width, height int) string {
	return fmt.Sprintf("%s (%dx%d)", name, width, height)
}
