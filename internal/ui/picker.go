package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/linkmind/internal/gesture"
	"github.com/depeter/linkmind/internal/wheel"
)

// WheelPicker draws a wheel.Scroller and feeds it pointer input.
type WheelPicker struct {
	Label    string
	Accent   color.Color
	Scroller *wheel.Scroller
	X, Y     float64 // top-left of the viewport
	Shift    float64 // vertical draw offset, applied to hit tests too
	Focused  bool

	tracker  gesture.Tracker
	touchID  ebiten.TouchID
	touching bool
	touchIDs []ebiten.TouchID
	input    Pointer
	now      func() time.Time

	viewport *ebiten.Image
	fade     *ebiten.Image
}

func NewWheelPicker(label string, accent color.Color, s *wheel.Scroller) *WheelPicker {
	return &WheelPicker{
		Label:    label,
		Accent:   accent,
		Scroller: s,
		input:    ebitenPointer{},
		now:      time.Now,
	}
}

func (p *WheelPicker) Width() float64 { return PickerWidth }

// Height is the viewport height: VisibleItems rows.
func (p *WheelPicker) Height() float64 {
	m := p.Scroller.Mapper()
	return float64(m.VisibleItems) * m.ItemHeight
}

// Contains reports whether (px, py) is inside the viewport as drawn.
func (p *WheelPicker) Contains(px, py int) bool {
	return PointInRect(px, py, p.X, p.Y+p.Shift, p.Width(), p.Height())
}

// Update turns this frame's mouse, touch and wheel input into scroller calls.
func (p *WheelPicker) Update() {
	now := p.now()
	p.updateMouse(now)
	p.updateTouch(now)

	if p.tracker.Active() {
		return
	}
	mx, my := p.input.Cursor()
	if _, dy := p.input.Wheel(); dy != 0 && p.Contains(mx, my) {
		p.Scroller.WheelStep(WheelDirection(dy))
	}
}

func (p *WheelPicker) updateMouse(now time.Time) {
	mx, my := p.input.Cursor()
	switch {
	case p.tracker.Active() && !p.touching:
		if !p.input.MousePressed() {
			p.endDrag(now)
			return
		}
		p.moveDrag(float64(my), now)
	case !p.tracker.Active():
		if p.input.MouseJustPressed() && p.Contains(mx, my) {
			p.touching = false
			p.beginDrag(float64(my), now)
		}
	}
}

func (p *WheelPicker) updateTouch(now time.Time) {
	if p.tracker.Active() && p.touching {
		if p.input.TouchJustReleased(p.touchID) {
			p.endDrag(now)
			return
		}
		_, ty := p.input.TouchPosition(p.touchID)
		p.moveDrag(float64(ty), now)
		return
	}
	if p.tracker.Active() {
		return
	}
	p.touchIDs = p.input.AppendJustPressedTouchIDs(p.touchIDs[:0])
	for _, id := range p.touchIDs {
		tx, ty := p.input.TouchPosition(id)
		if p.Contains(tx, ty) {
			p.touchID = id
			p.touching = true
			p.beginDrag(float64(ty), now)
			return
		}
	}
}

func (p *WheelPicker) beginDrag(y float64, now time.Time) {
	p.tracker.Start(y, now)
	p.Scroller.DragStart()
}

func (p *WheelPicker) moveDrag(y float64, now time.Time) {
	delta, v := p.tracker.Move(y, now)
	p.Scroller.DragMove(delta, v)
}

func (p *WheelPicker) endDrag(now time.Time) {
	v := p.tracker.End(now)
	p.touching = false
	p.Scroller.DragEnd(v)
}

// Draw renders the label, frame, lens band, rows and fade masks.
func (p *WheelPicker) Draw(dst *ebiten.Image) {
	p.DrawAt(dst, 0, 1)
}

// DrawAt draws the picker shifted down by dy and faded by alpha.
func (p *WheelPicker) DrawAt(dst *ebiten.Image, dy, alpha float64) {
	w, h := p.Width(), p.Height()
	x, y := p.X, p.Y+dy
	m := p.Scroller.Mapper()

	DrawTextScaled(dst, p.Label, x+w/2, y-PickerLabelH/2-8, FontSizeHeading, 1, alpha, p.Accent)

	border := p.Accent
	if p.Focused {
		border = ColorFocusBorder
	}
	DrawFilledRoundRect(dst, float32(x-PickerBorder), float32(y-PickerBorder),
		float32(w+2*PickerBorder), float32(h+2*PickerBorder), 18, border)

	vp := p.viewportImage(int(w), int(h))
	vp.Fill(ColorSurface)

	center := m.CenterOffset()
	vector.DrawFilledRect(vp, 0, float32(center), float32(w), float32(m.ItemHeight), ColorLens, false)
	vector.StrokeLine(vp, 0, float32(center), float32(w), float32(center), 1, p.Accent, false)
	vector.StrokeLine(vp, 0, float32(center+m.ItemHeight), float32(w), float32(center+m.ItemHeight), 1, p.Accent, false)

	offset := p.Scroller.Offset()
	selected := p.Scroller.VirtualIndex()
	for _, it := range p.Scroller.Window() {
		rel := it.Position + offset
		cy := center + rel + m.ItemHeight/2
		if cy < -m.ItemHeight || cy > h+m.ItemHeight {
			continue
		}
		scale, opacity := wheel.Appearance(math.Abs(rel), m.ItemHeight)
		clr := color.Color(ColorText)
		if it.VirtualIndex == selected {
			clr = p.Accent
		}
		DrawTextScaled(vp, it.Label, w/2, cy, PickerFontSize, scale, opacity, clr)
	}

	fade := p.fadeImage(m.ItemHeight)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, 1)
	vp.DrawImage(fade, op)
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, -1)
	op.GeoM.Translate(0, h)
	vp.DrawImage(fade, op)

	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(vp, op)
}

func (p *WheelPicker) viewportImage(w, h int) *ebiten.Image {
	if p.viewport == nil || p.viewport.Bounds().Dx() != w || p.viewport.Bounds().Dy() != h {
		p.viewport = ebiten.NewImage(w, h)
	}
	return p.viewport
}

// fadeImage is a 1px wide surface-colored gradient, opaque at the top.
func (p *WheelPicker) fadeImage(itemHeight float64) *ebiten.Image {
	fh := int(FadeRows * itemHeight)
	if p.fade != nil && p.fade.Bounds().Dy() == fh {
		return p.fade
	}
	img := image.NewNRGBA(image.Rect(0, 0, 1, fh))
	for y := 0; y < fh; y++ {
		a := 1 - float64(y)/float64(fh)
		img.SetNRGBA(0, y, color.NRGBA{R: ColorSurface.R, G: ColorSurface.G, B: ColorSurface.B, A: uint8(a * 0xFF)})
	}
	p.fade = ebiten.NewImageFromImage(img)
	return p.fade
}

// DebugLine summarizes the scroller state for the debug overlay.
func (p *WheelPicker) DebugLine() string {
	s := p.Scroller
	idx, snapped := s.Last()
	return fmt.Sprintf("%s: offset=%.1f index=%d (%s) last=(%d,%v) drag=%v snap=%v inertia=%v",
		p.Label, s.Offset(), s.Index(), s.Selected(), idx, snapped, s.Dragging(), s.Snapping(), s.InertiaRunning())
}
