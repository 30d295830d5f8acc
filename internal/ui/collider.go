package ui

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/linkmind/assets/icon"
	"github.com/depeter/linkmind/internal/locale"
	"github.com/depeter/linkmind/internal/wheel"
)

const (
	headerY  = 80
	pickersY = 230
)

// ColliderScreen shows two subject wheels and the Collide button. Collide
// is only accepted once both wheels report a snapped selection.
type ColliderScreen struct {
	tr         *locale.Translator
	springs    wheel.SpringDriver
	Pickers    [2]*WheelPicker
	focus      int
	collideKey string

	button     ButtonRect
	zap        *ebiten.Image
	shake      Shake
	intro      Intro
	introShown bool

	// OnCollide is called with both selections when a collision is accepted.
	OnCollide func(left, right string)
}

func NewColliderScreen(tr *locale.Translator, springs wheel.SpringDriver, left, right *WheelPicker, collideKey string) *ColliderScreen {
	cs := &ColliderScreen{
		tr:         tr,
		springs:    springs,
		Pickers:    [2]*WheelPicker{left, right},
		collideKey: collideKey,
	}
	cs.setFocus(0)
	cs.layout()
	return cs
}

func (cs *ColliderScreen) Name() string { return "Collider" }

func (cs *ColliderScreen) OnEnter() {
	if !cs.introShown {
		cs.introShown = true
		cs.intro.Start(cs.springs)
	}
}

func (cs *ColliderScreen) OnExit() {}

// Ready reports whether both wheels last reported a snapped selection.
func (cs *ColliderScreen) Ready() bool {
	for _, p := range cs.Pickers {
		if _, snapped := p.Scroller.Last(); !snapped {
			return false
		}
	}
	return true
}

// Selection returns the labels both wheels last settled on.
func (cs *ColliderScreen) Selection() (left, right string) {
	li, _ := cs.Pickers[0].Scroller.Last()
	ri, _ := cs.Pickers[1].Scroller.Last()
	return cs.Pickers[0].Scroller.Items()[li], cs.Pickers[1].Scroller.Items()[ri]
}

// Status returns the line shown above the button and whether it is a warning.
func (cs *ColliderScreen) Status() (string, bool) {
	if !cs.Ready() {
		return cs.tr.T("WaitHint"), true
	}
	return cs.tr.Pair(cs.Selection()), false
}

// Collide fires OnCollide when both wheels are snapped, and shakes the
// button otherwise.
func (cs *ColliderScreen) Collide() bool {
	if !cs.Ready() {
		cs.shake.Start()
		slog.Debug("collide rejected, wheels moving")
		return false
	}
	left, right := cs.Selection()
	slog.Info("collide", "left", left, "right", right)
	if cs.OnCollide != nil {
		cs.OnCollide(left, right)
	}
	return true
}

func (cs *ColliderScreen) Focus() int { return cs.focus }

func (cs *ColliderScreen) setFocus(i int) {
	cs.focus = i
	for j, p := range cs.Pickers {
		p.Focused = j == i
	}
}

func (cs *ColliderScreen) focused() *WheelPicker { return cs.Pickers[cs.focus] }

func (cs *ColliderScreen) layout() {
	total := 2*PickerWidth + PickerGap
	x := float64(ScreenWidth-total) / 2
	for i, p := range cs.Pickers {
		p.X = x + float64(i)*(PickerWidth+PickerGap)
		p.Y = pickersY
	}
	bottom := pickersY + cs.Pickers[0].Height()
	cs.button = ButtonRect{
		X: float64(ScreenWidth-ButtonWidth) / 2,
		Y: bottom + 80,
		W: ButtonWidth,
		H: ButtonHeight,
	}
}

func (cs *ColliderScreen) Update() (*ScreenTransition, error) {
	cs.shake.Advance(frameDuration())

	dir, enter, _ := InputState()
	switch dir {
	case DirLeft:
		cs.setFocus(0)
	case DirRight:
		cs.setFocus(1)
	case DirUp:
		cs.focused().Scroller.WheelStep(-1)
	case DirDown:
		cs.focused().Scroller.WheelStep(1)
	}
	if steps := EvdevWheelSteps(); steps != 0 {
		cs.focused().Scroller.WheelStep(steps)
	}

	for _, p := range cs.Pickers {
		p.Shift = cs.intro.Slide()
		p.Update()
	}

	if enter || KeyJustPressed(cs.collideKey) || cs.button.Clicked() {
		cs.Collide()
	}
	return nil, nil
}

func (cs *ColliderScreen) Draw(dst *ebiten.Image) {
	slide := cs.intro.Slide()
	alpha := cs.intro.Progress()
	cx := float64(ScreenWidth) / 2

	DrawTextScaled(dst, cs.tr.T("Title"), cx, headerY-slide, FontSizeTitle, 1, alpha, ColorText)
	DrawTextScaled(dst, cs.tr.T("Subtitle"), cx, headerY+45-slide, FontSizeBody, 1, alpha, ColorTextSecondary)

	for _, p := range cs.Pickers {
		p.DrawAt(dst, p.Shift, alpha)
	}

	status, warn := cs.Status()
	clr := ColorSuccess
	if warn {
		clr = ColorWarning
	}
	DrawTextScaled(dst, status, cx, cs.button.Y-36+slide, FontSizeBody, 1, alpha, clr)

	r := cs.button
	r.X += cs.shake.Offset()
	r.Y += slide
	DrawButton(dst, r, cs.tr.T("Collide"), cs.zapGlyph(), cs.Ready(), false)

	DrawTextScaled(dst, cs.tr.T("UsageHint"), cx, r.Y+r.H+40, FontSizeSmall, 1, alpha, ColorTextMuted)
}

func (cs *ColliderScreen) zapGlyph() *ebiten.Image {
	if cs.zap != nil {
		return cs.zap
	}
	img, err := icon.Zap(28)
	if err != nil {
		slog.Warn("render zap glyph", "err", err)
		return nil
	}
	cs.zap = ebiten.NewImageFromImage(img)
	return cs.zap
}

// DebugLines lists both pickers and the collide readiness.
func (cs *ColliderScreen) DebugLines() []string {
	lines := make([]string, 0, len(cs.Pickers)+1)
	for _, p := range cs.Pickers {
		lines = append(lines, p.DebugLine())
	}
	return append(lines, fmt.Sprintf("focus=%d ready=%v shake=%v intro=%.2f", cs.focus, cs.Ready(), cs.shake.Active(), cs.intro.Progress()))
}
