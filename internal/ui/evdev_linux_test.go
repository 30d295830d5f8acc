//go:build linux

package ui

import (
	"testing"

	evdev "github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
)

func TestEvdevWheelSteps(t *testing.T) {
	EvdevWheelSteps()

	// Scroll down twice on a dial, once up on a mouse wheel (ignored).
	handleEvdevEvent("event5", true, evdev.EV_REL, evdev.REL_WHEEL, -1)
	handleEvdevEvent("event5", true, evdev.EV_REL, evdev.REL_DIAL, -1)
	handleEvdevEvent("event2", false, evdev.EV_REL, evdev.REL_WHEEL, 1)

	assert.Equal(t, 2, EvdevWheelSteps())
	assert.Equal(t, 0, EvdevWheelSteps())
}

func TestEvdevBack(t *testing.T) {
	EvdevBackJustPressed()

	handleEvdevEvent("event1", false, evdev.EV_KEY, evdev.KEY_BACK, 0)
	assert.False(t, EvdevBackJustPressed(), "release is not a press")

	handleEvdevEvent("event1", false, evdev.EV_KEY, evdev.KEY_BACK, 1)
	assert.True(t, EvdevBackJustPressed())
	assert.False(t, EvdevBackJustPressed())

	events := EvdevRecentEvents()
	if assert.NotEmpty(t, events) {
		last := events[len(events)-1]
		assert.Equal(t, "event1", last.Device)
		assert.Equal(t, uint16(evdev.KEY_BACK), last.Code)
	}
}

func TestEvdevRecentEventsBounded(t *testing.T) {
	for i := 0; i < recentEventsMax*2; i++ {
		handleEvdevEvent("event9", false, evdev.EV_KEY, evdev.KEY_A, 1)
	}
	assert.Len(t, EvdevRecentEvents(), recentEventsMax)
}
