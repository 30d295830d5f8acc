package ui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

type fakeScreen struct {
	name           string
	entered, exits int
	next           *ScreenTransition
}

func (f *fakeScreen) Update() (*ScreenTransition, error) {
	tr := f.next
	f.next = nil
	return tr, nil
}
func (f *fakeScreen) Draw(*ebiten.Image) {}
func (f *fakeScreen) OnEnter()           { f.entered++ }
func (f *fakeScreen) OnExit()            { f.exits++ }
func (f *fakeScreen) Name() string       { return f.name }

func TestScreenManagerTransitions(t *testing.T) {
	sm := NewScreenManager()
	root := &fakeScreen{name: "root"}
	child := &fakeScreen{name: "child"}

	sm.Push(root)
	root.next = &ScreenTransition{Type: TransitionPush, Screen: child}
	assert.NoError(t, sm.Update())
	assert.Equal(t, child, sm.Current())
	assert.Equal(t, 2, sm.StackSize())

	child.next = &ScreenTransition{Type: TransitionPop}
	assert.NoError(t, sm.Update())
	assert.Equal(t, root, sm.Current())
	assert.Equal(t, 2, root.entered, "root re-entered after pop")
	assert.Equal(t, 1, child.exits)
}

func TestScreenManagerKeepsRoot(t *testing.T) {
	sm := NewScreenManager()
	root := &fakeScreen{name: "root"}
	sm.Push(root)
	sm.Pop()
	assert.Equal(t, root, sm.Current())
	assert.Zero(t, root.exits)
}

func TestScreenManagerReplace(t *testing.T) {
	sm := NewScreenManager()
	a, b := &fakeScreen{name: "a"}, &fakeScreen{name: "b"}
	sm.Replace(a)
	sm.Replace(b)
	assert.Equal(t, 1, sm.StackSize())
	assert.Equal(t, 1, a.exits)
	assert.Equal(t, "b", sm.Current().Name())
}

func TestButtonRectContains(t *testing.T) {
	r := ButtonRect{X: 10, Y: 20, W: 100, H: 40}
	assert.True(t, r.Contains(10, 20))
	assert.True(t, r.Contains(110, 60))
	assert.False(t, r.Contains(111, 30))
	assert.False(t, ButtonRect{}.Contains(0, 0), "unlaid-out button")
}

func TestWheelDirection(t *testing.T) {
	assert.Equal(t, 1, WheelDirection(-1))
	assert.Equal(t, -1, WheelDirection(0.5))
	assert.Equal(t, 0, WheelDirection(0))
}

func TestParseKey(t *testing.T) {
	k, ok := ParseKey(" Space ")
	assert.True(t, ok)
	assert.Equal(t, ebiten.KeySpace, k)

	k, ok = ParseKey("F")
	assert.True(t, ok)
	assert.Equal(t, ebiten.KeyF, k)

	_, ok = ParseKey("hyper")
	assert.False(t, ok)

	_, ok = ParseKey("Escape")
	assert.False(t, ok, "reserved for back navigation")
}
