package player

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func sampleAt(tick int64) Sample {
	return Sample{Tick: tick, Pos: mgl32.Vec3{float32(tick), 0, 0}}
}

func TestHistoryExactLookup(t *testing.T) {
	h := NewHistory(8)
	for tick := int64(1); tick <= 5; tick++ {
		h.Add(sampleAt(tick))
	}

	s, ok := h.At(3)
	if !ok {
		t.Fatalf("tick 3 not found")
	}
	if s.Pos.X() != 3 {
		t.Fatalf("wrong sample for tick 3: %v", s)
	}
	if _, ok := h.At(9); ok {
		t.Fatalf("unrecorded tick found")
	}
}

func TestHistoryEviction(t *testing.T) {
	h := NewHistory(4)
	for tick := int64(1); tick <= 6; tick++ {
		h.Add(sampleAt(tick))
	}

	if h.Len() != 4 {
		t.Fatalf("len = %d, want 4", h.Len())
	}
	if _, ok := h.At(2); ok {
		t.Fatalf("evicted tick still found")
	}
	if _, ok := h.At(6); !ok {
		t.Fatalf("newest tick missing")
	}
}

func TestHistoryClosest(t *testing.T) {
	h := NewHistory(8)
	h.Add(sampleAt(10))
	h.Add(sampleAt(20))

	s, ok := h.Closest(13)
	if !ok || s.Tick != 10 {
		t.Fatalf("closest to 13 = %v, want tick 10", s)
	}
	s, ok = h.Closest(100)
	if !ok || s.Tick != 20 {
		t.Fatalf("closest to 100 = %v, want tick 20", s)
	}

	if _, ok := NewHistory(4).Closest(1); ok {
		t.Fatalf("empty history returned a sample")
	}
}

func TestHistoryRangeOrdered(t *testing.T) {
	h := NewHistory(4)
	for tick := int64(1); tick <= 6; tick++ {
		h.Add(sampleAt(tick))
	}

	var ticks []int64
	h.Range(func(s Sample) {
		ticks = append(ticks, s.Tick)
	})

	want := []int64{3, 4, 5, 6}
	if len(ticks) != len(want) {
		t.Fatalf("ticks = %v, want %v", ticks, want)
	}
	for i := range want {
		if ticks[i] != want[i] {
			t.Fatalf("ticks = %v, want %v", ticks, want)
		}
	}
}
