package simulation

import (
	"github.com/chewxy/math32"

	"github.com/strafekit/strafekit/game"
	"github.com/strafekit/strafekit/player"
	"github.com/strafekit/strafekit/world"
)

// resolveCollisions pushes the agent out of penetrating volumes. The pass
// order is fixed for deterministic replay: floor clamp, then slope volumes,
// then walls. Overlapping volumes are resolved independently in a single
// sequential pass; simultaneous penetration of two non-parallel walls may
// leave a residual for one tick, corrected on the next.
func resolveCollisions(m player.MovementComponent, lvl *world.Level, dbg *player.Debugger) {
	clampToFloor(m, dbg)
	resolveSlopes(m, lvl, dbg)
	resolveWalls(m, lvl, dbg)
}

// clampToFloor snaps the agent up to the supporting surface computed by the
// ground resolver and zeroes any downward velocity (landing). It never moves
// the agent horizontally.
func clampToFloor(m player.MovementComponent, dbg *player.Debugger) {
	if m.Feet() >= m.GroundHeight() {
		return
	}

	pos := m.Pos()
	pos[1] = m.GroundHeight() + m.Height()/2
	m.SetPos(pos)

	vel := m.Vel()
	if vel.Y() < 0 {
		vel[1] = 0
		m.SetVel(vel)
	}
	dbg.Notify(player.DebugModeCollisions, true, "floor clamp to %v", m.GroundHeight())
}

// resolveSlopes pushes the agent out of slope bodies it is embedded in. An
// embedding shallower than the steppable gap is left to the ground resolver
// and floor clamp. Otherwise the smallest of three corrections wins: push up
// onto the surface, push out on X, or push out on Z. The vertical candidate
// compares a height delta against horizontal penetration depths without unit
// normalization; the resulting bias toward vertical resolution at shallow
// embedding depths is part of the tuned feel and kept as-is.
func resolveSlopes(m player.MovementComponent, lvl *world.Level, dbg *player.Debugger) {
	radius := m.Radius()

	lvl.Slopes(func(name string, s world.Slope) {
		pos := m.Pos()
		if !s.InFootprint(pos, radius) {
			return
		}

		feetY := m.Feet()
		slopeHeight := s.HeightAt(pos)
		if feetY >= slopeHeight || feetY <= s.Base()-game.SlopeBaseMargin {
			return
		}

		heightDiff := slopeHeight - feetY
		if heightDiff < game.SlopeSteppableGap {
			return
		}

		diffX := pos.X() - s.Center.X()
		diffZ := pos.Z() - s.Center.Z()
		combinedX := s.HalfExtents.X() + radius
		combinedZ := s.HalfExtents.Z() + radius

		penX := combinedX - math32.Abs(diffX)
		penZ := combinedZ - math32.Abs(diffZ)
		penY := heightDiff

		vel := m.Vel()
		switch {
		case penY < penX && penY < penZ && penY < game.SlopeMaxVerticalPush:
			pos[1] = slopeHeight + m.Height()/2
			if vel.Y() < 0 {
				vel[1] = 0
			}
			dbg.Notify(player.DebugModeCollisions, true, "slope %q push up (penY=%v)", name, penY)
		case penX < penZ:
			if diffX > 0 {
				pos[0] = s.Center.X() + combinedX
				vel[0] = math32.Max(vel.X(), 0)
			} else {
				pos[0] = s.Center.X() - combinedX
				vel[0] = math32.Min(vel.X(), 0)
			}
			dbg.Notify(player.DebugModeCollisions, true, "slope %q push out X (penX=%v)", name, penX)
		default:
			if diffZ > 0 {
				pos[2] = s.Center.Z() + combinedZ
				vel[2] = math32.Max(vel.Z(), 0)
			} else {
				pos[2] = s.Center.Z() - combinedZ
				vel[2] = math32.Min(vel.Z(), 0)
			}
			dbg.Notify(player.DebugModeCollisions, true, "slope %q push out Z (penZ=%v)", name, penZ)
		}
		m.SetPos(pos)
		m.SetVel(vel)
	})
}

// resolveWalls pushes the agent out of wall-tagged boxes along the
// horizontal axis of least penetration and clamps the velocity component so
// it cannot keep driving into the surface. Vertical position and velocity
// are never affected.
func resolveWalls(m player.MovementComponent, lvl *world.Level, dbg *player.Debugger) {
	radius := m.Radius()

	lvl.Walls(func(name string, b world.Box) {
		pos := m.Pos()
		if !b.InFootprint(pos, radius) {
			return
		}

		diffX := pos.X() - b.Center.X()
		diffZ := pos.Z() - b.Center.Z()
		combinedX := b.HalfExtents.X() + radius
		combinedZ := b.HalfExtents.Z() + radius

		penX := combinedX - math32.Abs(diffX)
		penZ := combinedZ - math32.Abs(diffZ)

		vel := m.Vel()
		if penX < penZ {
			if diffX > 0 {
				pos[0] = b.Center.X() + combinedX
				vel[0] = math32.Max(vel.X(), 0)
			} else {
				pos[0] = b.Center.X() - combinedX
				vel[0] = math32.Min(vel.X(), 0)
			}
			dbg.Notify(player.DebugModeCollisions, true, "wall %q push out X (penX=%v)", name, penX)
		} else {
			if diffZ > 0 {
				pos[2] = b.Center.Z() + combinedZ
				vel[2] = math32.Max(vel.Z(), 0)
			} else {
				pos[2] = b.Center.Z() - combinedZ
				vel[2] = math32.Min(vel.Z(), 0)
			}
			dbg.Notify(player.DebugModeCollisions, true, "wall %q push out Z (penZ=%v)", name, penZ)
		}
		m.SetPos(pos)
		m.SetVel(vel)
	})
}
