// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package widget

import (
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// canvas owns a widget's drawing context and handles the resize-then-blit
// cycle shared by all instruments.
type canvas struct {
	dc     *gg.Context
	face   text.Face
	width  int
	height int
}

// Resize recreates the drawing context when the dimensions change.
// Degenerate dimensions are floored to 1.
func (c *canvas) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if c.dc != nil && c.width == width && c.height == height {
		return
	}
	if c.dc != nil {
		_ = c.dc.Close()
	}
	c.dc = gg.NewContext(width, height)
	if c.face != nil {
		c.dc.SetFont(c.face)
	}
	c.width = width
	c.height = height
}

// SetFont sets the font face used for the instrument's labels. Without a
// font, labels are skipped and only geometric markings are drawn.
func (c *canvas) SetFont(face text.Face) {
	c.face = face
	if c.dc != nil {
		c.dc.SetFont(face)
	}
}

// begin clears the context to fully transparent and returns it,
// lazily sizing the canvas to img when Resize was never called.
func (c *canvas) begin(img *image.RGBA) *gg.Context {
	if c.dc == nil || c.width != img.Rect.Dx() || c.height != img.Rect.Dy() {
		c.Resize(img.Rect.Dx(), img.Rect.Dy())
	}
	c.dc.ClearWithColor(gg.Transparent)
	return c.dc
}

// blit copies the rendered pixmap into img, row by row so destination
// images with a padded stride work too.
func (c *canvas) blit(img *image.RGBA) {
	data := c.dc.ResizeTarget().Data()
	w := min(c.width, img.Rect.Dx())
	h := min(c.height, img.Rect.Dy())
	for y := 0; y < h; y++ {
		src := data[y*c.width*4 : y*c.width*4+w*4]
		dst := img.Pix[y*img.Stride : y*img.Stride+w*4]
		copy(dst, src)
	}
}

// hasFont reports whether labels can be drawn.
func (c *canvas) hasFont() bool {
	return c.face != nil
}
