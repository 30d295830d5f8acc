package wheel

import "go.uber.org/atomic"

// FrameRequest is a callback scheduled to run on the next frame.
// Each request runs at most once; Cancel before it runs drops it.
type FrameRequest struct {
	fn    func()
	spent *atomic.Bool
}

// Cancel drops the request if it has not run yet. Safe on a nil request.
func (r *FrameRequest) Cancel() {
	if r == nil {
		return
	}
	r.spent.Store(true)
}

// Done reports whether the request has run or was cancelled.
func (r *FrameRequest) Done() bool {
	return r == nil || r.spent.Load()
}

// Frames is a per-frame scheduler, the equivalent of requestAnimationFrame.
// The host calls Tick once per display frame (ebiten's Update). Callbacks
// requested while a Tick is running are deferred to the following Tick.
type Frames struct {
	queue []*FrameRequest
	frame uint64
}

func NewFrames() *Frames {
	return &Frames{}
}

// Request schedules fn for the next Tick.
func (f *Frames) Request(fn func()) *FrameRequest {
	r := &FrameRequest{fn: fn, spent: atomic.NewBool(false)}
	f.queue = append(f.queue, r)
	return r
}

// Tick runs every live request that was queued before this call.
func (f *Frames) Tick() {
	f.frame++
	pending := f.queue
	f.queue = nil
	for _, r := range pending {
		if !r.spent.CompareAndSwap(false, true) {
			continue
		}
		r.fn()
	}
}

// Pending returns the number of live requests waiting for the next Tick.
func (f *Frames) Pending() int {
	n := 0
	for _, r := range f.queue {
		if !r.spent.Load() {
			n++
		}
	}
	return n
}

// Frame returns how many ticks have run.
func (f *Frames) Frame() uint64 {
	return f.frame
}
