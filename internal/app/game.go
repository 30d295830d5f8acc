package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/linkmind/internal/config"
	"github.com/depeter/linkmind/internal/ui"
	"github.com/depeter/linkmind/internal/wheel"
)

// Game implements ebiten.Game and manages the overall application.
type Game struct {
	Config  *config.Config
	Screens *ui.ScreenManager
	Frames  *wheel.Frames

	Width, Height int
}

// NewGame creates the Game. frames must be the scheduler every picker and
// spring in the app was built on.
func NewGame(cfg *config.Config, frames *wheel.Frames) *Game {
	return &Game{
		Config:  cfg,
		Screens: ui.NewScreenManager(),
		Frames:  frames,
		Width:   ui.ScreenWidth,
		Height:  ui.ScreenHeight,
	}
}

func (g *Game) Update() error {
	// Alt+Enter toggles fullscreen
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	} else if ui.KeyJustPressed(g.Config.Keybinds.Fullscreen) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// F12 toggles debug overlay
	ui.ToggleDebugOverlay()

	if err := g.Screens.Update(); err != nil {
		return err
	}

	// Input above may have started or cancelled animations; they advance
	// once per tick from here.
	g.Frames.Tick()

	ui.UpdateInputState()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)
	g.Screens.Draw(screen)
	ui.DrawDebugOverlay(screen, g.Screens.Current())
}

// Layout keeps a fixed logical resolution; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Width, g.Height
}
