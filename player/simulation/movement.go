package simulation

import (
	"github.com/strafekit/strafekit/assert"
	"github.com/strafekit/strafekit/game"
	"github.com/strafekit/strafekit/player"
	"github.com/strafekit/strafekit/tuning"
	"github.com/strafekit/strafekit/world"
)

// Simulate advances a single agent by one tick of dt seconds against the
// given level. The pipeline order is fixed and load-bearing: ground
// resolution, jump and locomotion, gravity, collision resolution, position
// integration. Reordering the collision passes changes outcomes in
// contact-heavy cases.
func Simulate(m player.MovementComponent, lvl *world.Level, t tuning.Tuning, dt float32, dbg *player.Debugger) {
	assert.IsTrue(m != nil, "movement component must be non-nil for simulation")
	assert.IsTrue(lvl != nil, "level must be non-nil for simulation")
	if dt <= 0 {
		return
	}

	dbg.Notify(player.DebugModeMovementSim, true, "BEGIN movement sim (pos=%v vel=%v)", m.Pos(), m.Vel())

	resolveGround(m, lvl, t, dbg)
	applyLocomotion(m, t, dt, dbg)
	applyGravity(m, t, dt)
	resolveCollisions(m, lvl, dbg)
	m.SetPos(m.Pos().Add(m.Vel().Mul(dt)))

	dbg.Notify(player.DebugModeMovementSim, true, "END movement sim (pos=%v vel=%v grounded=%v)", m.Pos(), m.Vel(), m.Grounded())
}

// applyLocomotion executes the jump transition and updates the horizontal
// velocity through the ground or air kernel. The jump fires the instant it
// is wished for while grounded, so a held jump chains automatically; the
// rest of this tick then runs the airborne branch.
func applyLocomotion(m player.MovementComponent, t tuning.Tuning, dt float32, dbg *player.Debugger) {
	if m.Grounded() && m.WishJump() {
		vel := m.Vel()
		vel[1] = t.JumpSpeed
		m.SetVel(vel)
		m.SetGrounded(false)
		dbg.Notify(player.DebugModeMovementSim, true, "jump force applied: %v", vel)
	}

	wishDir := m.WishDir()
	hzVel := game.HzVec3(m.Vel())

	if m.Grounded() {
		hzVel = game.ApplyFriction(hzVel, t.GroundFriction, t.StopSpeed, dt)
		if wishDir.LenSqr() > 0 {
			hzVel = game.Accelerate(hzVel, wishDir, t.MaxGroundSpeed, t.GroundAccel, dt)
		}
	} else if wishDir.LenSqr() > 0 {
		hzVel = game.AirAccelerate(hzVel, wishDir, t.MaxGroundSpeed, t.AirAccel, t.AirWishSpeedCap, t.AirSpeedCap, dt)
	}

	newVel := m.Vel()
	newVel[0], newVel[2] = hzVel.X(), hzVel.Z()
	m.SetVel(newVel)
	dbg.Notify(player.DebugModeMovementSim, true, "locomotion applied (grounded=%v wishDir=%v): %v", m.Grounded(), wishDir, newVel)
}

// applyGravity pulls the vertical velocity down while airborne.
func applyGravity(m player.MovementComponent, t tuning.Tuning, dt float32) {
	if m.Grounded() {
		return
	}
	vel := m.Vel()
	vel[1] -= t.Gravity * dt
	m.SetVel(vel)
}
