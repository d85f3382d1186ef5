// Package timeline holds the normalized telemetry timeline and the
// two-handle brush used to select a sub-range of it for inspection.
package timeline

// Selection is an inclusive index range into the normalized timeline.
// Invariant: 0 <= StartIndex < EndIndex <= len-1, enforced on every
// mutation, never only at construction.
type Selection struct {
	StartIndex int
	EndIndex   int
}

// ChangeListener receives the post-clamp selection after every mutation.
type ChangeListener func(sel Selection)

// Brush is a stateful two-handle range selector over an ordered timeline.
// A brush over fewer than two points is inert: handles cannot be created
// and mutations are ignored.
type Brush struct {
	length   int
	sel      Selection
	listener ChangeListener
}

// NewBrush creates a brush spanning the full range of a timeline with the
// given number of points.
func NewBrush(length int) *Brush {
	b := &Brush{length: length}
	if length >= 2 {
		b.sel = Selection{StartIndex: 0, EndIndex: length - 1}
	}
	return b
}

// OnChange registers the single change listener. Passing nil clears it.
func (b *Brush) OnChange(fn ChangeListener) {
	b.listener = fn
}

// Interactive reports whether the timeline is long enough to brush.
// Length 0 renders a calibrating placeholder, length 1 a static one.
func (b *Brush) Interactive() bool {
	return b.length >= 2
}

// Selection returns the current range. Meaningless when !Interactive().
func (b *Brush) Selection() Selection {
	return b.sel
}

// Length returns the number of points the brush spans.
func (b *Brush) Length() int {
	return b.length
}

// SetStart moves the start handle, clamping into [0, EndIndex-1].
func (b *Brush) SetStart(i int) {
	if !b.Interactive() {
		return
	}
	b.sel.StartIndex = clamp(i, 0, b.sel.EndIndex-1)
	b.notify()
}

// SetEnd moves the end handle, clamping into [StartIndex+1, length-1].
func (b *Brush) SetEnd(i int) {
	if !b.Interactive() {
		return
	}
	b.sel.EndIndex = clamp(i, b.sel.StartIndex+1, b.length-1)
	b.notify()
}

// Resize adjusts the brush to a timeline of a new length, recomputing both
// handles together so the invariant survives shrinking.
func (b *Brush) Resize(length int) {
	b.length = length
	if length < 2 {
		b.sel = Selection{}
		return
	}
	end := clamp(b.sel.EndIndex, 1, length-1)
	start := clamp(b.sel.StartIndex, 0, end-1)
	if b.sel == (Selection{}) {
		start, end = 0, length-1
	}
	b.sel = Selection{StartIndex: start, EndIndex: end}
	b.notify()
}

func (b *Brush) notify() {
	if b.listener != nil {
		b.listener(b.sel)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
