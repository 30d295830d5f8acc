package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Pointer is the mouse, touch and wheel state a WheelPicker reads each tick.
type Pointer interface {
	Cursor() (x, y int)
	MouseJustPressed() bool
	MousePressed() bool
	Wheel() (dx, dy float64)
	AppendJustPressedTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID
	TouchPosition(id ebiten.TouchID) (x, y int)
	TouchJustReleased(id ebiten.TouchID) bool
}

// ebitenPointer reads the live ebiten input state.
type ebitenPointer struct{}

func (ebitenPointer) Cursor() (int, int) { return ebiten.CursorPosition() }

func (ebitenPointer) MouseJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (ebitenPointer) MousePressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (ebitenPointer) Wheel() (float64, float64) { return MouseWheelDelta() }

func (ebitenPointer) AppendJustPressedTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return inpututil.AppendJustPressedTouchIDs(ids)
}

func (ebitenPointer) TouchPosition(id ebiten.TouchID) (int, int) {
	return ebiten.TouchPosition(id)
}

func (ebitenPointer) TouchJustReleased(id ebiten.TouchID) bool {
	return inpututil.IsTouchJustReleased(id)
}
