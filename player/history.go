package player

import "github.com/go-gl/mathgl/mgl32"

// Sample is one tick of recorded agent state.
type Sample struct {
	Tick     int64
	Pos      mgl32.Vec3
	Vel      mgl32.Vec3
	Grounded bool
}

// History is a fixed-size circular buffer of per-tick agent samples, used for
// movement trails and replay-style inspection of recent ticks.
type History struct {
	buffer   []Sample
	capacity int
	head     int
	size     int
}

// NewHistory returns a history holding up to capacity samples.
func NewHistory(capacity int) *History {
	return &History{
		buffer:   make([]Sample, capacity),
		capacity: capacity,
	}
}

// Add records a sample, evicting the oldest once the buffer is full.
func (h *History) Add(s Sample) {
	h.buffer[h.head] = s
	h.head = (h.head + 1) % h.capacity
	if h.size < h.capacity {
		h.size++
	}
}

// At retrieves the sample recorded for the exact tick, if still buffered.
func (h *History) At(tick int64) (Sample, bool) {
	// Search backwards from most recent; samples are tick-ordered, so the
	// scan can stop once it passes the target.
	for i := 0; i < h.size; i++ {
		idx := (h.head - 1 - i + h.capacity) % h.capacity
		if h.buffer[idx].Tick == tick {
			return h.buffer[idx], true
		}
		if h.buffer[idx].Tick < tick {
			break
		}
	}
	return Sample{}, false
}

// Closest retrieves the buffered sample nearest to the given tick.
func (h *History) Closest(tick int64) (Sample, bool) {
	if h.size == 0 {
		return Sample{}, false
	}

	var closest Sample
	closestDist := int64(1<<63 - 1)
	for i := 0; i < h.size; i++ {
		idx := (h.head - 1 - i + h.capacity) % h.capacity
		dist := h.buffer[idx].Tick - tick
		if dist < 0 {
			dist = -dist
		}
		if dist < closestDist {
			closestDist = dist
			closest = h.buffer[idx]
		}
	}
	return closest, true
}

// Len reports how many samples are buffered.
func (h *History) Len() int {
	return h.size
}

// Range calls fn for each buffered sample from oldest to newest.
func (h *History) Range(fn func(Sample)) {
	for i := 0; i < h.size; i++ {
		idx := (h.head - h.size + i + h.capacity) % h.capacity
		fn(h.buffer[idx])
	}
}
