//go:build linux

package ui

import (
	"log/slog"
	"path/filepath"
	"slices"
	"sync"
	"time"

	evdev "github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

var (
	evdevBackPressed atomic.Bool
	evdevWheelSteps  atomic.Int32
)

const recentEventsMax = 8

var (
	recentEventsMu sync.Mutex
	recentEvents   []EvdevEvent

	evdevOnce sync.Once
)

// StartEvdev scans input devices once and watches each readable one for
// KEY_BACK presses and standalone scroll wheels (remote dials, knobs).
// Devices with REL_X are mice; their wheel already reaches ebiten.
func StartEvdev() {
	evdevOnce.Do(func() {
		paths, err := evdev.ListDevicePaths()
		if err != nil {
			slog.Debug("evdev: list devices", "err", err)
			return
		}
		for _, p := range paths {
			go readEvdev(p.Path)
		}
	})
}

func readEvdev(path string) {
	dev, err := evdev.Open(path)
	if err != nil {
		// No permission or device not accessible, skip silently
		return
	}
	defer dev.Close()

	rel := dev.CapableEvents(evdev.EV_REL)
	wheelOnly := !slices.Contains(rel, evdev.REL_X) &&
		(slices.Contains(rel, evdev.REL_WHEEL) || slices.Contains(rel, evdev.REL_DIAL))

	device := filepath.Base(path)
	for {
		ev, err := dev.ReadOne()
		if err != nil {
			return
		}
		handleEvdevEvent(device, wheelOnly, ev.Type, ev.Code, ev.Value)
	}
}

// handleEvdevEvent records key presses and accumulates wheel detents.
func handleEvdevEvent(device string, wheelOnly bool, typ evdev.EvType, code evdev.EvCode, value int32) {
	switch {
	case typ == evdev.EV_KEY && value == 1:
		recordEvdevEvent(device, typ, code, value)
		if code == evdev.KEY_BACK {
			evdevBackPressed.Store(true)
		}
	case typ == evdev.EV_REL && wheelOnly && (code == evdev.REL_WHEEL || code == evdev.REL_DIAL):
		recordEvdevEvent(device, typ, code, value)
		// Wheel up is positive, which moves to the previous item.
		evdevWheelSteps.Add(-value)
	}
}

func recordEvdevEvent(device string, typ evdev.EvType, code evdev.EvCode, value int32) {
	ev := EvdevEvent{
		Time:   time.Now(),
		Device: device,
		Type:   uint16(typ),
		Code:   uint16(code),
		Name:   evdev.CodeName(typ, code),
		Value:  value,
	}
	recentEventsMu.Lock()
	recentEvents = append(recentEvents, ev)
	if len(recentEvents) > recentEventsMax {
		recentEvents = recentEvents[len(recentEvents)-recentEventsMax:]
	}
	recentEventsMu.Unlock()

	slog.Debug("evdev event", "device", device, "code", ev.Name, "value", value)
}

// EvdevBackJustPressed returns true once if the evdev KEY_BACK was pressed,
// then resets the flag.
func EvdevBackJustPressed() bool {
	return evdevBackPressed.CompareAndSwap(true, false)
}

// EvdevWheelSteps drains the wheel detents seen since the last call.
// Positive values move towards later items.
func EvdevWheelSteps() int {
	return int(evdevWheelSteps.Swap(0))
}

// EvdevRecentEvents returns a snapshot of the most recent evdev events.
func EvdevRecentEvents() []EvdevEvent {
	recentEventsMu.Lock()
	defer recentEventsMu.Unlock()
	out := make([]EvdevEvent, len(recentEvents))
	copy(out, recentEvents)
	return out
}
