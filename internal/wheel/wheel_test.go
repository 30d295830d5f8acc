package wheel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type report struct {
	Index   int
	Snapped bool
}

// recorder collects snap callbacks.
type recorder struct {
	reports []report
}

func (r *recorder) onSnap(index int, snapped bool) {
	r.reports = append(r.reports, report{index, snapped})
}

func (r *recorder) last() report {
	if len(r.reports) == 0 {
		return report{-1, false}
	}
	return r.reports[len(r.reports)-1]
}

// settle ticks frames until nothing is scheduled.
func settle(t *testing.T, f *Frames) int {
	t.Helper()
	for i := 0; i < 5000; i++ {
		if f.Pending() == 0 {
			return i
		}
		f.Tick()
	}
	require.FailNow(t, "frames never went idle")
	return 0
}

func letters(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('A' + i))
	}
	return out
}
