package simulation

import (
	"github.com/strafekit/strafekit/game"
	"github.com/strafekit/strafekit/player"
	"github.com/strafekit/strafekit/tuning"
	"github.com/strafekit/strafekit/world"
)

// resolveGround computes the supporting height beneath or around the agent
// and whether it is grounded on it. Only floor-tagged boxes and slope tops
// participate; the literal ground plane contributes the baseline height 0.
//
// A floor candidate is accepted when it is within step-up reach of the feet,
// or strictly below the agent's center: the latter lets a falling agent find
// its landing surface while above a taller volume in the same footprint.
// Among accepted candidates the highest surface wins.
func resolveGround(m player.MovementComponent, lvl *world.Level, t tuning.Tuning, dbg *player.Debugger) {
	pos := m.Pos()
	feetY := m.Feet()
	radius := m.Radius()

	groundHeight := float32(0)
	consider := func(name string, floorTop float32) {
		canStepUp := floorTop <= feetY+t.MaxStepUp
		isBelowCenter := floorTop < pos.Y()
		if (canStepUp || isBelowCenter) && floorTop > groundHeight {
			groundHeight = floorTop
			dbg.Notify(player.DebugModeGroundSim, true, "supporting surface %q (top=%v stepUp=%v)", name, floorTop, canStepUp)
		}
	}

	lvl.Floors(func(name string, b world.Box) {
		if b.InFootprint(pos, radius) {
			consider(name, b.Top())
		}
	})
	lvl.Slopes(func(name string, s world.Slope) {
		if s.InFootprint(pos, radius) {
			consider(name, s.HeightAt(pos))
		}
	})

	m.SetGroundHeight(groundHeight)

	// The velocity guard keeps the agent airborne on the way up through a
	// surface during a jump.
	grounded := feetY <= groundHeight+game.GroundedTolerance &&
		m.Vel().Y() <= game.RisingVelocityEpsilon
	m.SetGrounded(grounded)
	dbg.Notify(player.DebugModeGroundSim, true, "ground resolved (height=%v grounded=%v)", groundHeight, grounded)
}
