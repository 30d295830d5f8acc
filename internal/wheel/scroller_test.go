package wheel

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScroller(items []string, opts ...Option) (*Scroller, *Frames, *recorder, *fakeClock) {
	f := NewFrames()
	rec := &recorder{}
	clk := newFakeClock()
	opts = append([]Option{WithOnSnapComplete(rec.onSnap), WithClock(clk.Now)}, opts...)
	return New(f, items, opts...), f, rec, clk
}

func TestNew(t *testing.T) {
	t.Run("FiniteDefaultIndex", func(t *testing.T) {
		s, _, _, _ := newTestScroller(letters(5), WithDefaultIndex(3))
		assert.Equal(t, -180.0, s.Offset())
		assert.Equal(t, 3, s.Index())
		assert.True(t, s.Snapped())

		idx, snapped := s.Last()
		assert.Equal(t, 3, idx)
		assert.True(t, snapped)
	})

	t.Run("FiniteDefaultIndexClamped", func(t *testing.T) {
		s, _, _, _ := newTestScroller(letters(3), WithDefaultIndex(9))
		assert.Equal(t, 2, s.Index())
	})

	t.Run("InfiniteStartsAtMidpoint", func(t *testing.T) {
		s, _, _, _ := newTestScroller(letters(10), WithInfinite(true), WithDefaultIndex(4))
		assert.Equal(t, 10*midpointCycles+4, s.VirtualIndex())
		assert.Equal(t, 4, s.Index())
		assert.Equal(t, "E", s.Selected())
	})

	t.Run("EmptyItemsPanics", func(t *testing.T) {
		assert.Panics(t, func() { New(NewFrames(), nil) })
	})
}

func TestDragWithoutMotionSnapsBack(t *testing.T) {
	s, f, rec, _ := newTestScroller([]string{"A", "B", "C"}, WithDefaultIndex(1))

	s.DragStart()
	assert.Equal(t, report{1, false}, rec.last())
	assert.False(t, s.Snapped())

	s.DragEnd(0)
	assert.True(t, s.Snapping())

	settle(t, f)
	assert.Equal(t, []report{{1, false}, {1, false}, {1, true}}, rec.reports)
	assert.Equal(t, -60.0, s.Offset())
	assert.True(t, s.Snapped())
}

func TestDragMove(t *testing.T) {
	t.Run("AppliesDamping", func(t *testing.T) {
		s, _, _, _ := newTestScroller(letters(5), WithDefaultIndex(2))
		s.DragStart()
		s.DragMove(-10, -300)
		assert.InDelta(t, -132, s.Offset(), 1e-9)
		assert.InDelta(t, -360, s.Velocity(), 1e-9)
	})

	t.Run("FiniteClamps", func(t *testing.T) {
		s, _, _, _ := newTestScroller(letters(4))
		s.DragStart()
		s.DragMove(500, 0)
		assert.Equal(t, 0.0, s.Offset())
		s.DragMove(-5000, 0)
		assert.Equal(t, -180.0, s.Offset())
	})

	t.Run("InfiniteUnbounded", func(t *testing.T) {
		s, _, _, _ := newTestScroller(letters(4), WithInfinite(true))
		start := s.Offset()
		s.DragStart()
		s.DragMove(-5000, 0)
		assert.InDelta(t, start-6000, s.Offset(), 1e-9)
		assert.Equal(t, s.Mapper().Wrap(s.VirtualIndex()), s.Index())
	})

	t.Run("IgnoredWhenNotDragging", func(t *testing.T) {
		s, _, _, _ := newTestScroller(letters(4))
		s.DragMove(-100, 0)
		assert.Equal(t, 0.0, s.Offset())
	})

	t.Run("ReportsIndexChanges", func(t *testing.T) {
		var changes []int
		s, _, _, _ := newTestScroller(letters(5), WithOnIndexChange(func(i int) { changes = append(changes, i) }))
		s.DragStart()
		for i := 0; i < 10; i++ {
			s.DragMove(-10, 0)
		}
		assert.Equal(t, []int{1, 2}, changes)
	})
}

func TestSlowReleaseSnapsWithoutInertia(t *testing.T) {
	s, f, rec, _ := newTestScroller(letters(5))
	s.DragStart()
	s.DragMove(-40, 0)

	s.StartInertia(0.3)
	assert.False(t, s.InertiaRunning())
	assert.True(t, s.Snapping())
	assert.Equal(t, report{1, false}, rec.last())
	assert.InDelta(t, -48, s.Offset(), 1e-9, "no inertia tick may run before the snap")
	assert.Equal(t, 1, f.Pending(), "only the spring is scheduled")
}

func TestInertia(t *testing.T) {
	var changes []int
	s, f, rec, _ := newTestScroller(letters(20), WithDefaultIndex(5), WithOnIndexChange(func(i int) { changes = append(changes, i) }))

	s.DragStart()
	s.DragEnd(-100) // 12px per frame towards later items
	require.True(t, s.InertiaRunning())
	assert.False(t, s.Snapping())

	f.Tick()
	assert.InDelta(t, -300-11.4, s.Offset(), 1e-9)

	settle(t, f)
	last := rec.last()
	assert.True(t, last.Snapped)
	assert.Greater(t, last.Index, 5)
	assert.Equal(t, s.Mapper().OffsetFor(last.Index), s.Offset())
	assert.NotEmpty(t, changes)
	assert.Equal(t, 0.0, s.Velocity())
}

func TestFlingSettlesOnItem(t *testing.T) {
	t.Run("FiniteStopsAtEnd", func(t *testing.T) {
		s, f, rec, _ := newTestScroller(letters(6))
		s.DragStart()
		s.DragMove(-100, -2000)
		s.DragEnd(-2000)
		settle(t, f)

		assert.Equal(t, report{5, true}, rec.last())
		assert.Equal(t, -300.0, s.Offset())
	})

	t.Run("InfiniteAlignedAndConsistent", func(t *testing.T) {
		s, f, rec, _ := newTestScroller(letters(7), WithInfinite(true), WithItemHeight(48))
		s.DragStart()
		s.DragMove(37, 1500)
		s.DragEnd(4321)
		settle(t, f)

		last := rec.last()
		require.True(t, last.Snapped)
		assert.Equal(t, 0.0, math.Mod(s.Offset(), 48))
		assert.Equal(t, last.Index, s.Mapper().Wrap(s.VirtualIndex()))
	})
}

func TestWheelStep(t *testing.T) {
	t.Run("DebouncedWithinWindow", func(t *testing.T) {
		s, f, _, clk := newTestScroller([]string{"A", "B", "C", "D"})

		assert.True(t, s.WheelStep(1))
		clk.Advance(10 * time.Millisecond)
		assert.False(t, s.WheelStep(1))

		settle(t, f)
		assert.Equal(t, 1, s.Index())
	})

	t.Run("DebounceOutlastsSettle", func(t *testing.T) {
		s, f, _, clk := newTestScroller(letters(5))
		require.True(t, s.WheelStep(1))
		settle(t, f)

		clk.Advance(100 * time.Millisecond)
		assert.False(t, s.WheelStep(1))
		clk.Advance(200 * time.Millisecond)
		assert.True(t, s.WheelStep(1))
		settle(t, f)
		assert.Equal(t, 2, s.Index())
	})

	t.Run("IgnoredWhileSnapping", func(t *testing.T) {
		s, f, _, clk := newTestScroller(letters(5), WithInfinite(true))
		require.True(t, s.WheelStep(1))
		f.Tick()
		clk.Advance(time.Second)
		assert.False(t, s.WheelStep(1))
	})

	t.Run("IgnoredWhileDragging", func(t *testing.T) {
		s, _, _, _ := newTestScroller(letters(5))
		s.DragStart()
		assert.False(t, s.WheelStep(1))
	})

	t.Run("FiniteBoundaryIsNoop", func(t *testing.T) {
		s, f, rec, _ := newTestScroller(letters(3))
		assert.False(t, s.WheelStep(-1))
		assert.Empty(t, rec.reports)
		assert.Equal(t, 0, f.Pending())
	})

	t.Run("ReportsUnsettledThenSettled", func(t *testing.T) {
		s, f, rec, _ := newTestScroller(letters(5), WithDefaultIndex(2))
		require.True(t, s.WheelStep(-1))
		assert.Equal(t, []report{{1, false}}, rec.reports)
		settle(t, f)
		assert.Equal(t, []report{{1, false}, {1, true}}, rec.reports)
		assert.Equal(t, -60.0, s.Offset())
	})

	t.Run("InfiniteWrapsPastEnd", func(t *testing.T) {
		s, f, rec, clk := newTestScroller(letters(10), WithInfinite(true), WithDefaultIndex(8))

		var seen []int
		for i := 0; i < 3; i++ {
			clk.Advance(InfiniteWheelDebounce)
			require.True(t, s.WheelStep(1))
			settle(t, f)
			seen = append(seen, rec.last().Index)
		}
		assert.Equal(t, []int{9, 0, 1}, seen)
		assert.Equal(t, "B", s.Selected())
	})

	t.Run("InfiniteWrapsBeforeStart", func(t *testing.T) {
		s, f, rec, clk := newTestScroller(letters(10), WithInfinite(true))
		clk.Advance(InfiniteWheelDebounce)
		require.True(t, s.WheelStep(-1))
		settle(t, f)
		assert.Equal(t, report{9, true}, rec.last())
	})
}

func TestDragStartCancelsSpring(t *testing.T) {
	s, f, rec, _ := newTestScroller(letters(5))
	require.True(t, s.WheelStep(1))
	f.Tick()
	f.Tick()
	require.True(t, s.Snapping())

	s.DragStart()
	count := len(rec.reports)
	offset := s.Offset()

	for i := 0; i < 200; i++ {
		f.Tick()
	}
	assert.Len(t, rec.reports, count, "stale spring reported after drag start")
	assert.Equal(t, offset, s.Offset())
	assert.False(t, s.Snapping())
	assert.Equal(t, 0, f.Pending())
}

func TestDragStartCancelsInertia(t *testing.T) {
	s, f, _, _ := newTestScroller(letters(20))
	s.DragStart()
	s.DragEnd(-200)
	f.Tick()
	require.True(t, s.InertiaRunning())

	s.DragStart()
	assert.False(t, s.InertiaRunning())
	offset := s.Offset()
	f.Tick()
	assert.Equal(t, offset, s.Offset())

	// Cancelled motion still ends in a settled report once released.
	s.DragEnd(0)
	settle(t, f)
	_, snapped := s.Last()
	assert.True(t, snapped)
	assert.True(t, s.Snapped())
}

func TestNewInertiaReplacesOld(t *testing.T) {
	s, f, _, _ := newTestScroller(letters(20), WithDefaultIndex(10))
	s.StartInertia(-20)
	s.StartInertia(20)
	assert.Equal(t, 1, f.Pending())

	f.Tick()
	assert.InDelta(t, -600+19, s.Offset(), 1e-9)
}

type stubAnimation struct{ stopped bool }

func (a *stubAnimation) Stop() { a.stopped = true }

// stubDriver records animations and lets the test fire callbacks directly.
type stubDriver struct {
	params []SpringParams
	anims  []*stubAnimation
}

func (d *stubDriver) Animate(p SpringParams) Animation {
	a := &stubAnimation{}
	d.params = append(d.params, p)
	d.anims = append(d.anims, a)
	return a
}

func TestSnapParameters(t *testing.T) {
	d := &stubDriver{}
	s, _, _, _ := newTestScroller(letters(5), WithSpringDriver(d))
	s.DragStart()
	s.DragMove(-20, 0)
	s.DragEnd(0)

	require.Len(t, d.params, 1)
	p := d.params[0]
	assert.Equal(t, -24.0, p.From)
	assert.Equal(t, -0.0, p.To)
	assert.Equal(t, float64(SpringStiffness), p.Stiffness)
	assert.Equal(t, float64(SpringDamping), p.Damping)
}

func TestStaleCompletionIgnored(t *testing.T) {
	d := &stubDriver{}
	s, _, rec, _ := newTestScroller(letters(5), WithSpringDriver(d))

	require.True(t, s.WheelStep(1))
	s.DragStart()
	assert.True(t, d.anims[0].stopped)

	d.params[0].OnUpdate(-999)
	d.params[0].OnComplete()
	assert.False(t, rec.last().Snapped)
	assert.NotEqual(t, -999.0, s.Offset())

	// The stub never moved the list, so the release snaps back to 0.
	s.DragEnd(0)
	require.Len(t, d.params, 2)
	d.params[1].OnComplete()
	assert.Equal(t, report{0, true}, rec.last())
	assert.True(t, s.Snapped())
}

func TestRecenter(t *testing.T) {
	s, f, rec, _ := newTestScroller(letters(3), WithInfinite(true), WithDefaultIndex(1))

	// Push the offset far past the origin, as a long session would.
	s.offset = s.origin + s.mapper.OffsetFor(3*midpointCycles/2*3+2)
	before := s.Index()
	s.snapFrom(0)
	settle(t, f)

	assert.Equal(t, report{before, true}, rec.last())
	assert.Equal(t, before, s.Index())
	assert.LessOrEqual(t, math.Abs(s.Offset()-s.origin), math.Abs(s.origin)/2)
	assert.Equal(t, 0.0, math.Mod(s.Offset(), 60))
}
