package game

import "time"

// frameHistory keeps the last N tick intervals in a ring buffer so the debug
// overlay can show how uneven the frame pacing is.
type frameHistory struct {
	buffer    []time.Duration
	nextIndex int
	filled    bool
}

func newFrameHistory(size int) *frameHistory {
	return &frameHistory{buffer: make([]time.Duration, max(size, 1))}
}

func (h *frameHistory) record(dt time.Duration) {
	h.buffer[h.nextIndex] = dt
	h.nextIndex++
	if h.nextIndex >= len(h.buffer) {
		h.nextIndex = 0
		h.filled = true
	}
}

// len returns how many intervals are stored.
func (h *frameHistory) len() int {
	if h.filled {
		return len(h.buffer)
	}
	return h.nextIndex
}

// stats returns the mean and the longest stored interval.
func (h *frameHistory) stats() (mean, longest time.Duration) {
	n := h.len()
	if n == 0 {
		return 0, 0
	}
	var sum time.Duration
	for _, dt := range h.buffer[:n] {
		sum += dt
		if dt > longest {
			longest = dt
		}
	}
	return sum / time.Duration(n), longest
}
