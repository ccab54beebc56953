// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package widget provides instrument drawables for the overlay package.
//
// Each widget implements overlay.Drawable: the overlay manager resizes the
// widget to its texture dimensions and calls Paint with a transparent
// surface once per frame. Widgets paint with gogpu/gg and keep their
// drawing context across frames, recreating it only on resize.
//
// Text labels (cardinal letters, readouts) are drawn only when a font face
// has been set with SetFont; without one the instruments fall back to
// purely geometric markings.
package widget
