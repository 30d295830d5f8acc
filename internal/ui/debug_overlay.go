package ui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var debugOverlayVisible bool

// ToggleDebugOverlay toggles the debug overlay on F12.
func ToggleDebugOverlay() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// DrawDebugOverlay draws the debug overlay if visible. When the current
// screen is a DebugSource its lines are listed first.
func DrawDebugOverlay(screen *ebiten.Image, current Screen) {
	if !debugOverlayVisible {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 18.0
		marginR = 20.0
		marginT = 20.0
	)

	var stateLines []string
	if src, ok := current.(DebugSource); ok {
		stateLines = src.DebugLines()
	}
	evdevEvents := EvdevRecentEvents()

	lines := 2 // header + separator
	lines += max(len(stateLines), 1)
	lines += 2 // blank + evdev header
	lines += max(len(evdevEvents), 1)
	panelH := float64(lines)*lineH + padY*2
	panelW := 620.0
	px := float64(ScreenWidth) - panelW - marginR
	py := marginT

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), ColorOverlay, false)

	x := px + padX
	y := py + padY

	name := "-"
	if current != nil {
		name = current.Name()
	}
	DrawText(screen, fmt.Sprintf("Debug: %s  tps=%.0f fps=%.0f (F12 to close)", name, ebiten.ActualTPS(), ebiten.ActualFPS()), x, y, FontSizeSmall, ColorPrimary)
	y += lineH

	DrawText(screen, "--- pickers ---", x, y, FontSizeSmall, ColorTextMuted)
	y += lineH

	if len(stateLines) == 0 {
		DrawText(screen, "(none)", x, y, FontSizeSmall, ColorTextMuted)
		y += lineH
	}
	for _, l := range stateLines {
		DrawText(screen, l, x, y, FontSizeSmall, ColorOverlayText)
		y += lineH
	}

	y += lineH * 0.5
	DrawText(screen, "--- evdev events ---", x, y, FontSizeSmall, ColorTextMuted)
	y += lineH

	if len(evdevEvents) == 0 {
		DrawText(screen, "(none)", x, y, FontSizeSmall, ColorTextMuted)
		return
	}
	now := time.Now()
	for _, ev := range evdevEvents {
		age := now.Sub(ev.Time).Truncate(time.Millisecond)
		line := fmt.Sprintf("%s  %-10s  val=%d  %s ago", ev.Device, ev.Name, ev.Value, age)
		DrawText(screen, line, x, y, FontSizeSmall, ColorOverlayText)
		y += lineH
	}
}
