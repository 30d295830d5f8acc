package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/linkmind/internal/history"
	"github.com/depeter/linkmind/internal/locale"
	"github.com/depeter/linkmind/internal/wheel"
)

const (
	cardWidth  = 360
	cardHeight = 150
	cardGap    = 24
)

// ResultScreen shows a collided pairing with generated research directions
// and the most recent collisions.
type ResultScreen struct {
	tr          *locale.Translator
	springs     wheel.SpringDriver
	left, right string
	directions  []locale.Direction
	recent      []history.Pairing

	button ButtonRect
	intro  Intro
}

func NewResultScreen(tr *locale.Translator, springs wheel.SpringDriver, left, right string, recent []history.Pairing) *ResultScreen {
	rs := &ResultScreen{
		tr:         tr,
		springs:    springs,
		left:       left,
		right:      right,
		directions: tr.Directions(left, right),
		recent:     recent,
	}
	rs.button = ButtonRect{
		X: float64(ScreenWidth-ButtonWidth) / 2,
		Y: float64(ScreenHeight - ButtonHeight - SectionPadding),
		W: ButtonWidth,
		H: ButtonHeight,
	}
	return rs
}

func (rs *ResultScreen) Name() string { return "Result" }

func (rs *ResultScreen) OnEnter() { rs.intro.Start(rs.springs) }
func (rs *ResultScreen) OnExit()  {}

func (rs *ResultScreen) Update() (*ScreenTransition, error) {
	_, enter, back := InputState()
	if back || enter || rs.button.Clicked() {
		return &ScreenTransition{Type: TransitionPop}, nil
	}
	return nil, nil
}

func (rs *ResultScreen) Draw(dst *ebiten.Image) {
	slide := rs.intro.Slide()
	alpha := rs.intro.Progress()
	cx := float64(ScreenWidth) / 2

	DrawTextScaled(dst, rs.tr.T("ResultTitle"), cx, 70-slide, FontSizeTitle, 1, alpha, ColorAccent)
	DrawTextScaled(dst, rs.tr.T("ResultSubtitle"), cx, 112-slide, FontSizeBody, 1, alpha, ColorTextSecondary)
	DrawTextScaled(dst, fmt.Sprintf("%s × %s", rs.left, rs.right), cx, 180-slide, FontSizeTitle, 1.2, alpha, ColorText)

	DrawTextScaled(dst, rs.tr.T("DirectionsHeading"), cx, 250+slide, FontSizeHeading, 1, alpha, ColorText)
	total := float64(len(rs.directions))*cardWidth + float64(len(rs.directions)-1)*cardGap
	x := cx - total/2
	y := 280 + slide
	for i, d := range rs.directions {
		border := ColorPrimary
		if i%2 == 1 {
			border = ColorAccent
		}
		DrawFilledRoundRect(dst, float32(x-2), float32(y-2), cardWidth+4, cardHeight+4, 16, border)
		DrawFilledRoundRect(dst, float32(x), float32(y), cardWidth, cardHeight, 14, ColorSurface)
		DrawText(dst, d.Title, x+20, y+18, FontSizeHeading, border)
		DrawTextWrapped(dst, d.Body, x+20, y+60, cardWidth-40, FontSizeBody, ColorTextSecondary)
		x += cardWidth + cardGap
	}

	y += cardHeight + 40
	DrawText(dst, rs.tr.T("RecentHeading"), SectionPadding*2, y, FontSizeHeading, ColorText)
	y += FontSizeHeading + 16
	if len(rs.recent) == 0 {
		DrawText(dst, rs.tr.T("NoHistory"), SectionPadding*2, y, FontSizeBody, ColorTextMuted)
	}
	for _, p := range rs.recent {
		if y > rs.button.Y-FontSizeBody-12 {
			break
		}
		line := fmt.Sprintf("%s × %s", p.Left, p.Right)
		DrawText(dst, line, SectionPadding*2, y, FontSizeBody, ColorTextSecondary)
		if !p.At.IsZero() {
			DrawText(dst, p.At.Local().Format("2006-01-02 15:04"), ScreenWidth/2, y, FontSizeSmall, ColorTextMuted)
		}
		y += FontSizeBody + 10
	}

	DrawButton(dst, rs.button, rs.tr.T("KeepExploring"), nil, true, true)
}
