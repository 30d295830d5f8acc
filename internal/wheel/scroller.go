// Package wheel implements the motion engine of a vertical wheel picker:
// drag and wheel input, inertia, spring snapping and index mapping.
//
// Everything runs on the caller's frame loop. A Scroller is not safe for
// concurrent use; it is driven from a single goroutine that also calls
// Frames.Tick once per frame.
package wheel

import (
	"log/slog"
	"time"
)

const (
	DefaultItemHeight   = 60
	DefaultVisibleItems = 5

	// DragDamping scales pointer deltas and velocities.
	DragDamping = 1.2
	// ReleaseAttenuation converts a pointer velocity into per-frame inertia.
	ReleaseAttenuation = 0.1
	// VelocityThreshold is the per-frame speed below which inertia stops.
	VelocityThreshold = 0.5
	// Friction is the per-frame inertia decay.
	Friction = 0.95

	SpringStiffness = 300
	SpringDamping   = 30

	FiniteWheelDebounce   = 300 * time.Millisecond
	InfiniteWheelDebounce = 50 * time.Millisecond

	// midpointCycles is how many whole list repetitions sit above the
	// infinite variant's origin, so it can wrap both ways.
	midpointCycles = 1000
)

// Option configures a Scroller.
type Option func(*Scroller)

// WithDefaultIndex sets the initially selected item.
func WithDefaultIndex(i int) Option {
	return func(s *Scroller) { s.defaultIndex = i }
}

// WithInfinite enables wrap-around scrolling.
func WithInfinite(infinite bool) Option {
	return func(s *Scroller) { s.mapper.Infinite = infinite }
}

func WithItemHeight(h float64) Option {
	return func(s *Scroller) {
		if h > 0 {
			s.mapper.ItemHeight = h
		}
	}
}

func WithVisibleItems(n int) Option {
	return func(s *Scroller) {
		if n > 0 {
			s.mapper.VisibleItems = n
		}
	}
}

// WithClock replaces time.Now for wheel debouncing.
func WithClock(now func() time.Time) Option {
	return func(s *Scroller) { s.now = now }
}

// WithSpringDriver replaces the harmonica driver.
func WithSpringDriver(d SpringDriver) Option {
	return func(s *Scroller) { s.springs = d }
}

// WithOnSnapComplete registers the settle/unsettle callback.
func WithOnSnapComplete(fn func(index int, snapped bool)) Option {
	return func(s *Scroller) { s.onSnapComplete = fn }
}

// WithOnIndexChange registers a callback for live index changes while the
// list moves.
func WithOnIndexChange(fn func(index int)) Option {
	return func(s *Scroller) { s.onIndexChange = fn }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Scroller) { s.log = l }
}

// WithName labels the scroller's log records.
func WithName(name string) Option {
	return func(s *Scroller) { s.name = name }
}

// Scroller owns the offset of one picker and every animation moving it.
type Scroller struct {
	items  []string
	mapper Mapper
	frames *Frames

	springs SpringDriver
	now     func() time.Time
	log     *slog.Logger
	name    string

	defaultIndex int
	origin       float64 // cycle-aligned origin of the infinite variant

	offset   float64
	velocity float64
	index    int // Nearest(offset) as last reported to onIndexChange

	dragging bool
	snapping bool
	settled  bool

	spring    Animation
	inertia   *FrameRequest
	epoch     uint64
	lastWheel time.Time

	lastIndex   int
	lastSnapped bool

	onSnapComplete func(index int, snapped bool)
	onIndexChange  func(index int)
}

// New creates a scroller over items, scheduling its motion on frames.
// It panics if items is empty.
func New(frames *Frames, items []string, opts ...Option) *Scroller {
	if len(items) == 0 {
		panic("wheel: empty item list")
	}
	s := &Scroller{
		items:  items,
		frames: frames,
		mapper: Mapper{
			Count:        len(items),
			ItemHeight:   DefaultItemHeight,
			VisibleItems: DefaultVisibleItems,
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.springs == nil {
		s.springs = NewHarmonicaDriver(frames, 60)
	}
	if s.log == nil {
		s.log = slog.Default()
	}

	start := s.defaultIndex
	if s.mapper.Infinite {
		start = s.mapper.Wrap(start)
		cycle := s.mapper.Count * midpointCycles
		s.origin = s.mapper.OffsetFor(cycle)
		start += cycle
	} else {
		start = s.mapper.Clamp(start)
	}
	s.offset = s.mapper.OffsetFor(start)
	s.index = start
	s.settled = true
	s.lastIndex = s.mapper.Wrap(start)
	s.lastSnapped = true
	return s
}

// Items returns the item list.
func (s *Scroller) Items() []string { return s.items }

// Mapper returns the index mapper in use.
func (s *Scroller) Mapper() Mapper { return s.mapper }

// Offset returns the current list translation.
func (s *Scroller) Offset() float64 { return s.offset }

// Velocity returns the last recorded drag or inertia velocity.
func (s *Scroller) Velocity() float64 { return s.velocity }

// Index returns the item nearest to the current offset, in [0, len(items)).
func (s *Scroller) Index() int { return s.mapper.Index(s.offset) }

// VirtualIndex returns the unbounded index nearest to the current offset.
func (s *Scroller) VirtualIndex() int { return s.mapper.VirtualIndex(s.offset) }

// Selected returns the label of the item at Index.
func (s *Scroller) Selected() string { return s.items[s.Index()] }

func (s *Scroller) Dragging() bool { return s.dragging }
func (s *Scroller) Snapping() bool { return s.snapping }

// InertiaRunning reports whether the inertia loop is scheduled.
func (s *Scroller) InertiaRunning() bool { return !s.inertia.Done() }

// Snapped reports whether the offset rests on an item and nothing moves it.
func (s *Scroller) Snapped() bool {
	return s.settled && !s.dragging && s.spring == nil && s.inertia.Done()
}

// Last returns the most recent (index, snapped) pair passed to the
// snap callback, starting with the default index and true.
func (s *Scroller) Last() (index int, snapped bool) {
	return s.lastIndex, s.lastSnapped
}

// Window returns the rows to render for the current offset.
func (s *Scroller) Window() []VirtualItem {
	return s.mapper.Window(s.offset, s.items)
}

// cancelMotion stops the spring and the inertia loop. Bumping the epoch
// makes callbacks of any stopped animation no-ops.
func (s *Scroller) cancelMotion() {
	if s.spring != nil {
		s.spring.Stop()
		s.spring = nil
	}
	if s.inertia != nil {
		s.inertia.Cancel()
		s.inertia = nil
	}
	s.epoch++
}

func (s *Scroller) notify(index int, snapped bool) {
	s.lastIndex, s.lastSnapped = index, snapped
	s.log.Debug("picker state", "picker", s.name, "index", index, "snapped", snapped, "offset", s.offset)
	if s.onSnapComplete != nil {
		s.onSnapComplete(index, snapped)
	}
}

// trackIndex reports index changes while the offset moves freely.
func (s *Scroller) trackIndex() {
	n := s.mapper.Nearest(s.offset)
	if n == s.index {
		return
	}
	s.index = n
	if s.onIndexChange != nil {
		s.onIndexChange(s.mapper.Wrap(n))
	}
}
