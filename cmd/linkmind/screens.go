package main

import (
	"image/color"
	"log/slog"
	"time"

	"github.com/depeter/linkmind/internal/app"
	"github.com/depeter/linkmind/internal/config"
	"github.com/depeter/linkmind/internal/history"
	"github.com/depeter/linkmind/internal/locale"
	"github.com/depeter/linkmind/internal/ui"
	"github.com/depeter/linkmind/internal/wheel"
)

// screenFactory captures the shared dependencies for creating and wiring screens.
type screenFactory struct {
	game    *app.Game
	cfg     *config.Config
	tr      *locale.Translator
	store   *history.Store
	springs wheel.SpringDriver
	log     *slog.Logger
}

func (sf *screenFactory) newPicker(name, label string, items []string, accent color.Color) *ui.WheelPicker {
	s := wheel.New(sf.game.Frames, items,
		wheel.WithInfinite(sf.cfg.Picker.Infinite),
		wheel.WithItemHeight(sf.cfg.Picker.ItemHeight),
		wheel.WithVisibleItems(sf.cfg.Picker.VisibleItems),
		wheel.WithSpringDriver(sf.springs),
		wheel.WithLogger(sf.log),
		wheel.WithName(name),
	)
	return ui.NewWheelPicker(label, accent, s)
}

func (sf *screenFactory) pushCollider() {
	a, b := sf.cfg.Subjects.A, sf.cfg.Subjects.B
	if len(a) == 0 {
		a = sf.tr.SubjectsA()
	}
	if len(b) == 0 {
		b = sf.tr.SubjectsB()
	}
	left := sf.newPicker("a", sf.tr.T("SubjectALabel"), a, ui.ColorPrimary)
	right := sf.newPicker("b", sf.tr.T("SubjectBLabel"), b, ui.ColorAccent)

	collider := ui.NewColliderScreen(sf.tr, sf.springs, left, right, sf.cfg.Keybinds.Collide)
	collider.OnCollide = func(l, r string) {
		sf.record(l, r)
		sf.pushResult(l, r)
	}
	sf.game.Screens.Replace(collider)
}

func (sf *screenFactory) pushResult(left, right string) {
	sf.game.Screens.Push(ui.NewResultScreen(sf.tr, sf.springs, left, right, sf.recent()))
}

func (sf *screenFactory) record(left, right string) {
	if sf.store == nil {
		return
	}
	if _, err := sf.store.Add(history.Pairing{Left: left, Right: right, At: time.Now()}); err != nil {
		sf.log.Warn("failed to record pairing", "err", err)
	}
}

func (sf *screenFactory) recent() []history.Pairing {
	if sf.store == nil {
		return nil
	}
	recent, err := sf.store.Recent(sf.cfg.History.Limit)
	if err != nil {
		sf.log.Warn("failed to load history", "err", err)
	}
	return recent
}
