package world

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func approxEqual(t *testing.T, got, want, tol float32, field string) {
	t.Helper()
	if math32.Abs(got-want) > tol {
		t.Fatalf("%s = %.6f, want %.6f (tol=%.6f)", field, got, want, tol)
	}
}

func TestBoxFootprint(t *testing.T) {
	b := Box{
		Center:      mgl32.Vec3{10, 2, 0},
		HalfExtents: mgl32.Vec3{1, 2, 1},
	}

	if !b.InFootprint(mgl32.Vec3{11.2, 0, 0}, 0.4) {
		t.Fatalf("position within grown footprint rejected")
	}
	if b.InFootprint(mgl32.Vec3{11.5, 0, 0}, 0.4) {
		t.Fatalf("position outside grown footprint accepted")
	}
	// Exact boundary contact on either axis is not overlap.
	if b.InFootprint(mgl32.Vec3{11.4, 0, 0}, 0.4) {
		t.Fatalf("boundary contact on X counted as overlap")
	}
	if b.InFootprint(mgl32.Vec3{10, 0, 1.4}, 0.4) {
		t.Fatalf("boundary contact on Z counted as overlap")
	}

	approxEqual(t, b.Top(), 4, 0, "top")
	approxEqual(t, b.Base(), 0, 0, "base")
}

func TestBoxBBoxBounds(t *testing.T) {
	b := Box{
		Center:      mgl32.Vec3{10, 2, -3},
		HalfExtents: mgl32.Vec3{1, 2, 0.5},
	}
	bb := b.BBox()

	approxEqual(t, bb.Min().X(), 9, 0, "min x")
	approxEqual(t, bb.Max().X(), 11, 0, "max x")
	approxEqual(t, bb.Min().Y(), 0, 0, "min y")
	approxEqual(t, bb.Max().Y(), 4, 0, "max y")
	approxEqual(t, bb.Min().Z(), -3.5, 0, "min z")
	approxEqual(t, bb.Max().Z(), -2.5, 0, "max z")
}

func TestSlopeHeightAt(t *testing.T) {
	s := Slope{
		Box: Box{
			Center:      mgl32.Vec3{0, 1, 0},
			HalfExtents: mgl32.Vec3{12, 1, 12},
		},
		RiseDir:     mgl32.Vec2{1, 0},
		RisePerUnit: 0.2,
	}

	// Ten units along the rise direction gains 10 x 0.2 over the nominal top.
	approxEqual(t, s.HeightAt(mgl32.Vec3{10, 0, 0}), s.Top()+2, 1e-4, "height along rise")
	approxEqual(t, s.HeightAt(mgl32.Vec3{-10, 0, 0}), s.Top()-2, 1e-4, "height against rise")
	// Movement perpendicular to the rise direction does not change height.
	approxEqual(t, s.HeightAt(mgl32.Vec3{0, 0, 7}), s.Top(), 1e-4, "height across rise")
}

func TestParseLevel(t *testing.T) {
	raw := []byte(`
boxes:
  - name: wall
    center: [0, 4, -10]
    half_extents: [10, 4, 0.25]
    wall: true
  - name: platform
    center: [5, 0.5, 5]
    half_extents: [2, 0.5, 2]
slopes:
  - name: ramp
    center: [20, 1, 0]
    half_extents: [8, 1, 6]
    rise_dir: [2, 0]
    rise_per_unit: 0.2
`)

	l, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if l.VolumeCount() != 3 {
		t.Fatalf("volume count = %d, want 3", l.VolumeCount())
	}

	walls := 0
	l.Walls(func(name string, b Box) {
		walls++
		if name != "wall" {
			t.Fatalf("wall name = %q", name)
		}
	})
	if walls != 1 {
		t.Fatalf("wall count = %d, want 1", walls)
	}

	l.Slopes(func(name string, s Slope) {
		// rise_dir is normalized on load.
		approxEqual(t, s.RiseDir.Len(), 1, 1e-4, "rise dir length")
	})
}

func TestParseLevelRejectsBadGeometry(t *testing.T) {
	cases := map[string]string{
		"missing name": `
boxes:
  - center: [0, 0, 0]
    half_extents: [1, 1, 1]
`,
		"non-positive extents": `
boxes:
  - name: degenerate
    center: [0, 0, 0]
    half_extents: [1, 0, 1]
`,
		"zero rise dir": `
slopes:
  - name: flat
    center: [0, 0, 0]
    half_extents: [1, 1, 1]
    rise_dir: [0, 0]
    rise_per_unit: 0.2
`,
	}

	for name, raw := range cases {
		if _, err := Parse([]byte(raw)); err == nil {
			t.Fatalf("%s: parse accepted invalid level", name)
		}
	}
}

func TestLevelDigest(t *testing.T) {
	a := DefaultArena()
	b := DefaultArena()
	if a.Digest() != b.Digest() {
		t.Fatalf("identical levels produced different digests")
	}

	b.AddBox("extra", Box{
		Center:      mgl32.Vec3{1, 1, 1},
		HalfExtents: mgl32.Vec3{1, 1, 1},
	})
	if a.Digest() == b.Digest() {
		t.Fatalf("different levels produced the same digest")
	}
}

func TestDefaultArena(t *testing.T) {
	l := DefaultArena()

	boxes, walls, slopes := 0, 0, 0
	l.Boxes(func(string, Box) { boxes++ })
	l.Walls(func(string, Box) { walls++ })
	l.Slopes(func(string, Slope) { slopes++ })

	if boxes != 16 {
		t.Fatalf("box count = %d, want 16", boxes)
	}
	// Boundary walls and pillars block horizontally; the stair steps do not.
	if walls != 13 {
		t.Fatalf("wall count = %d, want 13", walls)
	}
	if slopes != 2 {
		t.Fatalf("slope count = %d, want 2", slopes)
	}

	// The stair steps stay within step-up reach of each other.
	var prev float32
	for _, name := range stairNames {
		step, ok := l.boxes.Get(name)
		if !ok {
			t.Fatalf("missing stair %q", name)
		}
		if rise := step.Top() - prev; rise > 0.6 {
			t.Fatalf("stair %q rises %.2f, beyond step-up reach", name, rise)
		}
		prev = step.Top()
	}
}
