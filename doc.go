// Package overlay renders screen-space 2D panels composited on top of
// GPU-rendered content.
//
// # Overview
//
// overlay bridges an immediate-mode 2D drawing surface and a retained-mode
// scene: a Manager owns a Panel (one texture, one material, one scene
// element), places it inside the live viewport under one of four corner
// anchors, and drives a per-frame cycle that locks the texture's backing
// memory, hands a cleared pixel surface to a Drawable, and flushes the
// result back to the GPU.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/overlay"
//	    "github.com/gogpu/overlay/host"
//	    "github.com/gogpu/overlay/widget"
//	)
//
//	scene, _ := host.NewScene(host.Options{})
//	mgr := overlay.NewManager()
//	mgr.Attach(host.NewContext(scene, viewport))
//	mgr.SetGeometry(160, 160, 16, 16, overlay.AnchorTopRight)
//	mgr.SetVisible(true)
//
//	hud := widget.NewHeadingIndicator()
//	// per frame:
//	hud.SetHeading(yawDegrees)
//	mgr.Render(hud)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Geometry, ScopedPixelBuffer, Panel, Manager, Drawable
//   - host: scene/viewport boundary interfaces, backend registry, software scene
//   - host/gpu: gpucontext-backed scene (enable with a DeviceProvider)
//   - widget: instrument drawables painted with gogpu/gg
//
// # Failure Model
//
// Absence of underlying resources (no scene host, no texture, no viewport)
// degrades to silent no-ops and dropped frames. Nothing in this package is
// fatal to the host process; a missing overlay is less disruptive than an
// interruption.
//
// # Coordinate System
//
// Pixel coordinates with origin (0,0) at the container's top-left,
// X increasing right and Y increasing down. Anchor offsets are measured
// from the anchored corner toward the container's interior.
package overlay

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
