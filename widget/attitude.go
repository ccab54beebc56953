// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package widget

import (
	"image"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/overlay"
)

// AttitudeIndicator is an artificial horizon: sky and ground halves that
// roll and shift with the vehicle attitude, behind a fixed aircraft symbol
// and bank scale.
type AttitudeIndicator struct {
	canvas
	roll  float64 // degrees, positive = right wing down
	pitch float64 // degrees, positive = nose up
}

// NewAttitudeIndicator creates an attitude indicator in level flight.
func NewAttitudeIndicator() *AttitudeIndicator {
	return &AttitudeIndicator{}
}

// SetAttitude sets roll and pitch in degrees. Roll is normalized into
// (-180, 180]; pitch is clamped to ±90.
func (a *AttitudeIndicator) SetAttitude(roll, pitch float64) {
	roll = math.Mod(roll, 360)
	if roll > 180 {
		roll -= 360
	} else if roll <= -180 {
		roll += 360
	}
	a.roll = roll
	a.pitch = math.Max(-90, math.Min(90, pitch))
}

// Attitude returns the current roll and pitch in degrees.
func (a *AttitudeIndicator) Attitude() (roll, pitch float64) {
	return a.roll, a.pitch
}

// Paint draws the instrument into img.
func (a *AttitudeIndicator) Paint(img *image.RGBA) {
	dc := a.begin(img)

	w := float64(a.width)
	h := float64(a.height)
	size := math.Min(w, h)
	cx := w / 2
	cy := h / 2
	radius := size/2 - 6
	if radius < 4 {
		radius = 4
	}
	pxPerDeg := radius / 45 // pitch ladder scale

	// Horizon ball, clipped to the instrument face.
	dc.Push()
	dc.DrawCircle(cx, cy, radius)
	dc.Clip()
	dc.RotateAbout(-a.roll*math.Pi/180, cx, cy)

	shift := a.pitch * pxPerDeg
	horizon := cy + shift

	// Sky above the horizon line, ground below. The rectangles are drawn
	// oversized so rotation never exposes a corner.
	dc.SetRGBA(0.18, 0.45, 0.78, 1)
	dc.DrawRectangle(cx-2*radius, horizon-4*radius, 4*radius, 4*radius)
	_ = dc.Fill()
	dc.SetRGBA(0.45, 0.30, 0.14, 1)
	dc.DrawRectangle(cx-2*radius, horizon, 4*radius, 4*radius)
	_ = dc.Fill()

	dc.SetRGBA(1, 1, 1, 1)
	dc.SetLineWidth(2)
	dc.DrawLine(cx-2*radius, horizon, cx+2*radius, horizon)
	_ = dc.Stroke()

	a.drawPitchLadder(dc, cx, horizon, radius, pxPerDeg)

	dc.ResetClip()
	dc.Pop()

	a.drawBankScale(dc, cx, cy, radius)
	a.drawAircraftSymbol(dc, cx, cy, radius)

	// Rim
	dc.SetRGBA(0.55, 0.58, 0.62, 1)
	dc.SetLineWidth(2)
	dc.DrawCircle(cx, cy, radius)
	_ = dc.Stroke()

	a.blit(img)
}

// drawPitchLadder paints pitch reference lines every 10 degrees.
func (a *AttitudeIndicator) drawPitchLadder(dc *gg.Context, cx, horizon, radius, pxPerDeg float64) {
	dc.SetRGBA(1, 1, 1, 0.9)
	for deg := -30; deg <= 30; deg += 10 {
		if deg == 0 {
			continue
		}
		y := horizon - float64(deg)*pxPerDeg
		half := radius * 0.22
		if deg%20 != 0 {
			half = radius * 0.13
		}
		dc.SetLineWidth(1.5)
		dc.DrawLine(cx-half, y, cx+half, y)
		_ = dc.Stroke()
	}
}

// drawBankScale paints the fixed roll arc with ticks at standard bank
// angles and a pointer at the current roll.
func (a *AttitudeIndicator) drawBankScale(dc *gg.Context, cx, cy, radius float64) {
	dc.SetRGBA(0.92, 0.94, 0.97, 1)
	for _, deg := range []float64{-60, -45, -30, -20, -10, 0, 10, 20, 30, 45, 60} {
		rad := (deg - 90) * math.Pi / 180
		dx := math.Cos(rad)
		dy := math.Sin(rad)
		outer := radius * 0.98
		inner := radius * 0.90
		if deg == 0 || math.Abs(deg) == 30 || math.Abs(deg) == 60 {
			inner = radius * 0.86
		}
		dc.SetLineWidth(1.5)
		dc.DrawLine(cx+dx*inner, cy+dy*inner, cx+dx*outer, cy+dy*outer)
		_ = dc.Stroke()
	}

	// Bank pointer rotates with roll.
	rad := (-a.roll - 90) * math.Pi / 180
	dx := math.Cos(rad)
	dy := math.Sin(rad)
	px := -dy
	py := dx
	tip := radius * 0.86
	base := radius * 0.76
	dc.SetRGBA(1, 0.85, 0.2, 1)
	dc.MoveTo(cx+dx*tip, cy+dy*tip)
	dc.LineTo(cx+dx*base+px*4, cy+dy*base+py*4)
	dc.LineTo(cx+dx*base-px*4, cy+dy*base-py*4)
	dc.ClosePath()
	_ = dc.Fill()
}

// drawAircraftSymbol paints the fixed wings-and-dot reference symbol.
func (a *AttitudeIndicator) drawAircraftSymbol(dc *gg.Context, cx, cy, radius float64) {
	wing := radius * 0.35
	dc.SetRGBA(1, 0.85, 0.2, 1)
	dc.SetLineWidth(3)
	dc.DrawLine(cx-wing, cy, cx-wing*0.35, cy)
	_ = dc.Stroke()
	dc.DrawLine(cx+wing*0.35, cy, cx+wing, cy)
	_ = dc.Stroke()
	dc.DrawCircle(cx, cy, 2.5)
	_ = dc.Fill()
}

var _ overlay.Drawable = (*AttitudeIndicator)(nil)
