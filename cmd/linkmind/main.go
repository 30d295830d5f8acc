package main

import (
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/depeter/linkmind/assets/icon"
	"github.com/depeter/linkmind/internal/app"
	"github.com/depeter/linkmind/internal/config"
	"github.com/depeter/linkmind/internal/history"
	"github.com/depeter/linkmind/internal/locale"
	"github.com/depeter/linkmind/internal/logging"
	"github.com/depeter/linkmind/internal/ui"
	"github.com/depeter/linkmind/internal/wheel"
)

func main() {
	if err := run(ebiten.RunGame); err != nil {
		os.Exit(1)
	}
}

// run starts the app and blocks in runGame. Failures are logged here, so
// the deferred closes have run by the time main exits.
func run(runGame func(ebiten.Game) error) error {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		return err
	}

	if cfg.Log.Path != "" {
		logging.SetLogPath(cfg.Log.Path)
	}
	logging.SetRawLevel(cfg.Log.Level)
	log := logging.Get()
	defer logging.Close()

	// Write the defaults on first run so there is a file to edit.
	if path, err := config.ConfigPath(); err == nil {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := cfg.Save(); err != nil {
				log.Warn("failed to write default config", "path", path, "err", err)
			}
		}
	}

	tr, err := locale.New(cfg.Locale.Language)
	if err != nil {
		log.Error("failed to load messages", "err", err)
		return err
	}

	// Init fonts
	if err := ui.InitFonts(loadFont(cfg, tr)); err != nil {
		log.Error("failed to init fonts", "err", err)
		return err
	}

	// History is optional; the app still works without it.
	var store *history.Store
	if path, err := cfg.HistoryPath(); err != nil {
		log.Warn("no history path", "err", err)
	} else if store, err = history.Open(path); err != nil {
		log.Warn("history disabled", "path", path, "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	frames := wheel.NewFrames()
	game := app.NewGame(cfg, frames)

	sf := &screenFactory{
		game:    game,
		cfg:     cfg,
		tr:      tr,
		store:   store,
		springs: wheel.NewHarmonicaDriver(frames, ebiten.DefaultTPS),
		log:     log,
	}
	sf.pushCollider()

	ui.StartEvdev()

	// Configure window
	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle(tr.T("Title"))
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	log.Info("starting", "lang", tr.Language().String(), "infinite", cfg.Picker.Infinite)
	if err := runGame(game); err != nil {
		log.Error("game exited", "err", err)
		return err
	}
	return nil
}

// loadFont returns the configured font, or Go Regular. Go Regular has no
// CJK glyphs, so non-Latin languages warn without a font_path.
func loadFont(cfg *config.Config, tr *locale.Translator) []byte {
	if cfg.UI.FontPath != "" {
		data, err := os.ReadFile(cfg.UI.FontPath)
		if err == nil {
			return data
		}
		slog.Warn("failed to read font, using built-in", "path", cfg.UI.FontPath, "err", err)
	}
	if base, _ := tr.Language().Base(); base.String() != "en" {
		slog.Warn("built-in font lacks glyphs for this language; set ui.font_path", "lang", tr.Language().String())
	}
	return goregular.TTF
}
