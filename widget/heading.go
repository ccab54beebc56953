// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package widget

import (
	"image"
	"math"
	"strconv"

	"github.com/gogpu/gg"

	"github.com/gogpu/overlay"
)

// HeadingIndicator is a compass-card instrument: a rose that rotates with
// the vehicle heading under a fixed bezel and lubber line.
type HeadingIndicator struct {
	canvas
	heading float64 // degrees, [0, 360)
}

// NewHeadingIndicator creates a heading indicator pointing north.
func NewHeadingIndicator() *HeadingIndicator {
	return &HeadingIndicator{}
}

// SetHeading sets the heading in degrees. Any value is accepted and
// normalized into [0, 360).
func (h *HeadingIndicator) SetHeading(yaw float64) {
	yaw = math.Mod(yaw, 360)
	if yaw < 0 {
		yaw += 360
	}
	h.heading = yaw
}

// Heading returns the normalized heading in degrees.
func (h *HeadingIndicator) Heading() float64 {
	return h.heading
}

// Paint draws the instrument into img.
func (h *HeadingIndicator) Paint(img *image.RGBA) {
	dc := h.begin(img)

	w := float64(h.width)
	ht := float64(h.height)
	size := math.Min(w, ht)
	cx := w / 2
	cy := ht / 2
	radius := size/2 - 6
	if radius < 4 {
		radius = 4
	}

	h.drawBezel(dc, cx, cy, radius)

	// Rose rotates opposite the heading so the current heading sits under
	// the fixed lubber line at the top.
	dc.Push()
	dc.RotateAbout(-h.heading*math.Pi/180, cx, cy)
	h.drawRose(dc, cx, cy, radius*0.78)
	dc.Pop()

	h.drawFixedRing(dc, cx, cy, radius)

	h.blit(img)
}

// drawBezel paints the instrument face and its shadow rings.
func (h *HeadingIndicator) drawBezel(dc *gg.Context, cx, cy, radius float64) {
	// Soft drop shadow
	for i := 0; i < 5; i++ {
		dc.SetRGBA(0, 0, 0, float64(50-i*10)/255)
		dc.SetLineWidth(1)
		dc.DrawCircle(cx, cy, radius+float64(i))
		_ = dc.Stroke()
	}

	// Face
	dc.SetRGBA(0.08, 0.09, 0.11, 0.92)
	dc.DrawCircle(cx, cy, radius)
	_ = dc.Fill()

	// Bezel rim
	dc.SetRGBA(0.55, 0.58, 0.62, 1)
	dc.SetLineWidth(2)
	dc.DrawCircle(cx, cy, radius)
	_ = dc.Stroke()
}

// drawRose paints the rotating compass card: tick marks every 10 degrees,
// heavier every 30, and cardinal markers.
func (h *HeadingIndicator) drawRose(dc *gg.Context, cx, cy, radius float64) {
	for deg := 0; deg < 360; deg += 10 {
		a := float64(deg) * math.Pi / 180
		// 0 degrees (north) points up.
		dx := math.Sin(a)
		dy := -math.Cos(a)

		inner := radius * 0.86
		width := 1.0
		if deg%30 == 0 {
			inner = radius * 0.78
			width = 2.0
		}
		dc.SetRGBA(0.9, 0.92, 0.95, 1)
		dc.SetLineWidth(width)
		dc.DrawLine(cx+dx*inner, cy+dy*inner, cx+dx*radius, cy+dy*radius)
		_ = dc.Stroke()
	}

	// Cardinal markers: north in red, the rest in white.
	cardinals := []struct {
		deg   int
		label string
		r, g  float64
		b     float64
	}{
		{0, "N", 0.86, 0.20, 0.20},
		{90, "E", 0.92, 0.94, 0.97},
		{180, "S", 0.92, 0.94, 0.97},
		{270, "W", 0.92, 0.94, 0.97},
	}
	for _, c := range cardinals {
		a := float64(c.deg) * math.Pi / 180
		dx := math.Sin(a)
		dy := -math.Cos(a)

		// Marker triangle just inside the tick ring.
		tip := radius * 0.74
		base := radius * 0.62
		px := -dy
		py := dx
		dc.SetRGBA(c.r, c.g, c.b, 1)
		dc.MoveTo(cx+dx*tip, cy+dy*tip)
		dc.LineTo(cx+dx*base+px*4, cy+dy*base+py*4)
		dc.LineTo(cx+dx*base-px*4, cy+dy*base-py*4)
		dc.ClosePath()
		_ = dc.Fill()

		if h.hasFont() {
			dc.DrawStringAnchored(c.label, cx+dx*radius*0.5, cy+dy*radius*0.5, 0.5, 0.5)
		}
	}
}

// drawFixedRing paints the non-rotating outer ring, the lubber chevron at
// the top, and the digital heading readout.
func (h *HeadingIndicator) drawFixedRing(dc *gg.Context, cx, cy, radius float64) {
	dc.SetRGBA(0.75, 0.78, 0.82, 1)
	dc.SetLineWidth(1.5)
	dc.DrawCircle(cx, cy, radius*0.92)
	_ = dc.Stroke()

	// Lubber chevron pointing down at the rose from the top of the bezel.
	top := cy - radius*0.92
	dc.SetRGBA(1, 0.85, 0.2, 1)
	dc.MoveTo(cx, top+radius*0.12)
	dc.LineTo(cx-radius*0.06, top-2)
	dc.LineTo(cx+radius*0.06, top-2)
	dc.ClosePath()
	_ = dc.Fill()

	if h.hasFont() {
		label := strconv.Itoa(int(math.Round(h.heading))%360) + "°"
		dc.SetRGBA(1, 1, 1, 1)
		dc.DrawStringAnchored(label, cx, cy+radius*0.45, 0.5, 0.5)
	}
}

var _ overlay.Drawable = (*HeadingIndicator)(nil)
