package ui

import "time"

// EvdevEvent represents a captured evdev input event.
type EvdevEvent struct {
	Time   time.Time
	Device string // e.g. "event3"
	Type   uint16
	Code   uint16
	Name   string // e.g. "KEY_BACK", "REL_WHEEL"
	Value  int32
}
