package world

import "github.com/go-gl/mathgl/mgl32"

// ArenaSize is the half-width of the default arena.
const ArenaSize = float32(100)

// DefaultArena builds the stock test arena: a square of boundary walls,
// scattered pillars, a stair block and two ramps over the baseline floor
// plane at y=0. It is meant for movement iteration rather than play.
func DefaultArena() *Level {
	l := NewLevel()

	const (
		wallHeight    = float32(8)
		wallThickness = float32(0.5)
	)

	l.AddBox("north_wall", Box{
		Center:      mgl32.Vec3{0, wallHeight / 2, -ArenaSize},
		HalfExtents: mgl32.Vec3{ArenaSize, wallHeight / 2, wallThickness / 2},
		Wall:        true,
	})
	l.AddBox("south_wall", Box{
		Center:      mgl32.Vec3{0, wallHeight / 2, ArenaSize},
		HalfExtents: mgl32.Vec3{ArenaSize, wallHeight / 2, wallThickness / 2},
		Wall:        true,
	})
	l.AddBox("east_wall", Box{
		Center:      mgl32.Vec3{ArenaSize, wallHeight / 2, 0},
		HalfExtents: mgl32.Vec3{wallThickness / 2, wallHeight / 2, ArenaSize},
		Wall:        true,
	})
	l.AddBox("west_wall", Box{
		Center:      mgl32.Vec3{-ArenaSize, wallHeight / 2, 0},
		HalfExtents: mgl32.Vec3{wallThickness / 2, wallHeight / 2, ArenaSize},
		Wall:        true,
	})

	pillars := []mgl32.Vec3{
		{-40, 2, -40},
		{40, 2, -40},
		{-40, 2, 40},
		{40, 2, 40},
		{0, 1.5, 0},
		{-70, 3, 0},
		{70, 3, 0},
		{0, 3, -70},
		{0, 3, 70},
	}
	names := []string{
		"pillar_nw", "pillar_ne", "pillar_sw", "pillar_se", "pillar_center",
		"pillar_w", "pillar_e", "pillar_n", "pillar_s",
	}
	for i, pos := range pillars {
		l.AddBox(names[i], Box{
			Center:      pos,
			HalfExtents: mgl32.Vec3{1, pos.Y(), 1},
			Wall:        true,
		})
	}

	// Three steps, each within step-up reach of the previous one.
	for i, top := range []float32{0.5, 1.0, 1.5} {
		l.AddBox(stairNames[i], Box{
			Center:      mgl32.Vec3{12 + float32(i)*3, top / 2, 20},
			HalfExtents: mgl32.Vec3{1.5, top / 2, 4},
		})
	}

	l.AddSlope("ramp_east", Slope{
		Box: Box{
			Center:      mgl32.Vec3{30, 1, 0},
			HalfExtents: mgl32.Vec3{8, 1, 6},
		},
		RiseDir:     mgl32.Vec2{1, 0},
		RisePerUnit: 0.2,
	})
	l.AddSlope("ramp_south", Slope{
		Box: Box{
			Center:      mgl32.Vec3{-30, 1.25, 30},
			HalfExtents: mgl32.Vec3{6, 1.25, 10},
		},
		RiseDir:     mgl32.Vec2{0, 1},
		RisePerUnit: 0.25,
	})

	return l
}

var stairNames = []string{"stair_low", "stair_mid", "stair_high"}
