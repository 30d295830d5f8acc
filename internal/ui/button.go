package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ButtonRect is the clickable area of a button, recorded while drawing.
type ButtonRect struct {
	X, Y, W, H float64
}

// Contains reports whether (px, py) is inside the button.
func (r ButtonRect) Contains(px, py int) bool {
	if r.W == 0 || r.H == 0 {
		return false
	}
	return PointInRect(px, py, r.X, r.Y, r.W, r.H)
}

// Clicked reports whether the left mouse button was just pressed on the button.
func (r ButtonRect) Clicked() bool {
	mx, my, clicked := MouseJustClicked()
	return clicked && r.Contains(mx, my)
}

// DrawButton draws a filled rounded button with a centered label and an
// optional glyph to its left. Disabled buttons are greyed out.
func DrawButton(dst *ebiten.Image, r ButtonRect, label string, glyph *ebiten.Image, enabled, focused bool) {
	fill := color.Color(ColorPrimary)
	fg := color.Color(ColorSurface)
	if !enabled {
		fill = ColorDisabled
		fg = ColorTextMuted
	}
	if focused {
		DrawFilledRoundRect(dst, float32(r.X-4), float32(r.Y-4), float32(r.W+8), float32(r.H+8), float32(r.H/2+4), ColorFocusBorder)
	}
	DrawFilledRoundRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), float32(r.H/2), fill)

	tw, _ := MeasureText(label, FontSizeHeading)
	cx := r.X + r.W/2
	if glyph != nil {
		gw := float64(glyph.Bounds().Dx())
		gap := 10.0
		left := cx - (gw+gap+tw)/2
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(left, r.Y+(r.H-float64(glyph.Bounds().Dy()))/2)
		op.ColorScale.ScaleWithColor(fg)
		dst.DrawImage(glyph, op)
		cx = left + gw + gap + tw/2
	}
	DrawTextCentered(dst, label, cx, r.Y+r.H/2, FontSizeHeading, fg)
}

// DrawFilledRoundRect draws a filled rectangle with rounded corners.
func DrawFilledRoundRect(dst *ebiten.Image, x, y, w, h, radius float32, clr color.Color) {
	radius = min(radius, w/2, h/2)
	vector.DrawFilledRect(dst, x+radius, y, w-2*radius, h, clr, true)
	vector.DrawFilledRect(dst, x, y+radius, radius, h-2*radius, clr, true)
	vector.DrawFilledRect(dst, x+w-radius, y+radius, radius, h-2*radius, clr, true)
	vector.DrawFilledCircle(dst, x+radius, y+radius, radius, clr, true)
	vector.DrawFilledCircle(dst, x+w-radius, y+radius, radius, clr, true)
	vector.DrawFilledCircle(dst, x+radius, y+h-radius, radius, clr, true)
	vector.DrawFilledCircle(dst, x+w-radius, y+h-radius, radius, clr, true)
}
