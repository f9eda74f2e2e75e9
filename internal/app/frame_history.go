package app

import "time"

// FrameHistory is a circular buffer of recent frame intervals.
type FrameHistory struct {
	buf   []time.Duration
	pos   int
	count int
	last  time.Time
}

// NewFrameHistory creates a buffer holding the given number of intervals.
func NewFrameHistory(capacity int) *FrameHistory {
	if capacity < 1 {
		capacity = 1
	}
	return &FrameHistory{
		buf: make([]time.Duration, capacity),
	}
}

// Mark records a frame at t. The first mark only sets the reference time.
func (h *FrameHistory) Mark(t time.Time) {
	if !h.last.IsZero() && t.After(h.last) {
		h.push(t.Sub(h.last))
	}
	h.last = t
}

// Reset forgets the reference time so a pause is not counted as a frame.
func (h *FrameHistory) Reset() {
	h.last = time.Time{}
}

func (h *FrameHistory) push(d time.Duration) {
	h.buf[h.pos] = d
	h.pos = (h.pos + 1) % len(h.buf)
	if h.count < len(h.buf) {
		h.count++
	}
}

// FPS returns the average frame rate over the stored intervals, or 0.
func (h *FrameHistory) FPS() float64 {
	if h.count == 0 {
		return 0
	}
	var total time.Duration
	for i := 0; i < h.count; i++ {
		total += h.buf[i]
	}
	if total <= 0 {
		return 0
	}
	return float64(h.count) / total.Seconds()
}

// Len returns the number of stored intervals.
func (h *FrameHistory) Len() int {
	return h.count
}
