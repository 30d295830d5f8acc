package wheel

import "math"

// Mapper converts a continuous offset into item indices.
//
// Offsets grow negative as the list scrolls towards later items: index i is
// centered when offset == -i*ItemHeight.
type Mapper struct {
	Count        int
	ItemHeight   float64
	VisibleItems int
	Infinite     bool
}

// VirtualItem is one row of the visible window.
type VirtualItem struct {
	VirtualIndex int
	Index        int // wrapped into [0, Count)
	Label        string
	Position     float64 // VirtualIndex * ItemHeight, in list coordinates
}

// VirtualIndex returns the unbounded index nearest to offset.
// Halves round towards the later item.
func (m Mapper) VirtualIndex(offset float64) int {
	return int(math.Floor(-offset/m.ItemHeight + 0.5))
}

// Nearest returns the index the picker would settle on from offset: the
// virtual index in the infinite variant, the clamped index otherwise.
func (m Mapper) Nearest(offset float64) int {
	v := m.VirtualIndex(offset)
	if m.Infinite {
		return v
	}
	return m.Clamp(v)
}

// Index returns the displayed item index for offset, always in [0, Count).
func (m Mapper) Index(offset float64) int {
	return m.Wrap(m.Nearest(offset))
}

// Wrap reduces a virtual index into [0, Count).
func (m Mapper) Wrap(v int) int {
	return ((v % m.Count) + m.Count) % m.Count
}

// Clamp limits i to [0, Count-1].
func (m Mapper) Clamp(i int) int {
	return max(0, min(m.Count-1, i))
}

// OffsetFor returns the exact offset that centers virtual index v.
func (m Mapper) OffsetFor(v int) float64 {
	return float64(-v) * m.ItemHeight
}

// MinOffset is the offset of the last item in the finite variant.
func (m Mapper) MinOffset() float64 {
	return m.OffsetFor(m.Count - 1)
}

// ClampOffset limits offset to the finite range; the infinite variant is
// left unbounded.
func (m Mapper) ClampOffset(offset float64) float64 {
	if m.Infinite {
		return offset
	}
	return math.Max(m.MinOffset(), math.Min(0, offset))
}

// CenterOffset is the distance from the viewport top to the selection row.
func (m Mapper) CenterOffset() float64 {
	return float64(m.VisibleItems/2) * m.ItemHeight
}

// Window returns VisibleItems*3 rows centered on offset. The finite variant
// omits rows that fall outside the list.
func (m Mapper) Window(offset float64, items []string) []VirtualItem {
	size := m.VisibleItems * 3
	start := m.VirtualIndex(offset) - size/2

	out := make([]VirtualItem, 0, size)
	for i := 0; i < size; i++ {
		v := start + i
		if !m.Infinite && (v < 0 || v >= m.Count) {
			continue
		}
		idx := m.Wrap(v)
		out = append(out, VirtualItem{
			VirtualIndex: v,
			Index:        idx,
			Label:        items[idx],
			Position:     float64(v) * m.ItemHeight,
		})
	}
	return out
}

// Appearance returns the scale and opacity of a row whose center lies
// distance pixels from the selection row.
func Appearance(distance, itemHeight float64) (scale, opacity float64) {
	if distance <= 0 {
		return 1.2, 1
	}
	rows := distance / itemHeight
	scale = math.Max(0.8, 1.2-rows*0.2)
	opacity = math.Max(0.4, 1-rows*0.3)
	return scale, opacity
}
