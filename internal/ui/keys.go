package ui

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// bindableKeys are the names accepted by [keybinds]. Arrows, Escape and
// F12 are taken by navigation and the debug overlay.
var bindableKeys = map[string]ebiten.Key{
	"space":  ebiten.KeySpace,
	"enter":  ebiten.KeyEnter,
	"return": ebiten.KeyEnter,
	"tab":    ebiten.KeyTab,
	"c":      ebiten.KeyC,
	"f":      ebiten.KeyF,
	"x":      ebiten.KeyX,
	"z":      ebiten.KeyZ,
	"f11":    ebiten.KeyF11,
}

// ParseKey converts a config key name to an ebiten.Key.
func ParseKey(name string) (ebiten.Key, bool) {
	k, ok := bindableKeys[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// KeyJustPressed checks if the key named by the config string was just pressed.
func KeyJustPressed(name string) bool {
	if k, ok := ParseKey(name); ok {
		return inpututil.IsKeyJustPressed(k)
	}
	return false
}
