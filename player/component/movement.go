package component

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/strafekit/strafekit/assert"
	"github.com/strafekit/strafekit/game"
)

// AgentMovementComponent is the standard implementation of
// player.MovementComponent: the mutable movement record of a single agent,
// exclusively owned by the simulation tick.
type AgentMovementComponent struct {
	pos, lastPos mgl32.Vec3
	vel, lastVel mgl32.Vec3

	wishDir  mgl32.Vec3
	wishJump bool

	grounded     bool
	groundHeight float32

	radius, height float32
}

// NewAgentMovement returns a movement component spawned at the given
// position with zero velocity, not grounded.
func NewAgentMovement(spawn mgl32.Vec3, radius, height float32) *AgentMovementComponent {
	assert.IsTrue(radius > 0 && height > 0, "agent dimensions must be positive (radius=%v height=%v)", radius, height)
	return &AgentMovementComponent{
		pos:     spawn,
		lastPos: spawn,
		radius:  radius,
		height:  height,
	}
}

// Pos returns the position of the movement component.
func (mc *AgentMovementComponent) Pos() mgl32.Vec3 {
	return mc.pos
}

// LastPos returns the previous position of the movement component.
func (mc *AgentMovementComponent) LastPos() mgl32.Vec3 {
	return mc.lastPos
}

// SetPos sets the position of the movement component.
func (mc *AgentMovementComponent) SetPos(newPos mgl32.Vec3) {
	mc.lastPos = mc.pos
	mc.pos = newPos
}

// Vel returns the velocity of the movement component.
func (mc *AgentMovementComponent) Vel() mgl32.Vec3 {
	return mc.vel
}

// LastVel returns the previous velocity of the movement component.
func (mc *AgentMovementComponent) LastVel() mgl32.Vec3 {
	return mc.lastVel
}

// SetVel sets the velocity of the movement component.
func (mc *AgentMovementComponent) SetVel(newVel mgl32.Vec3) {
	mc.lastVel = mc.vel
	mc.vel = newVel
}

// WishDir returns the horizontal wish direction for this tick.
func (mc *AgentMovementComponent) WishDir() mgl32.Vec3 {
	return mc.wishDir
}

// SetWishDir sets the horizontal wish direction for this tick. The direction
// is re-normalized defensively; a degenerate input becomes the zero vector.
func (mc *AgentMovementComponent) SetWishDir(dir mgl32.Vec3) {
	mc.wishDir = game.SafeNormalize(game.HzVec3(dir))
}

// WishJump reports whether a jump is requested this tick.
func (mc *AgentMovementComponent) WishJump() bool {
	return mc.wishJump
}

// SetWishJump sets the jump request for this tick.
func (mc *AgentMovementComponent) SetWishJump(jump bool) {
	mc.wishJump = jump
}

// Grounded reports whether the agent stood on a surface this tick.
func (mc *AgentMovementComponent) Grounded() bool {
	return mc.grounded
}

// SetGrounded sets whether the agent is on a surface.
func (mc *AgentMovementComponent) SetGrounded(grounded bool) {
	mc.grounded = grounded
}

// GroundHeight returns the supporting surface height computed this tick.
func (mc *AgentMovementComponent) GroundHeight() float32 {
	return mc.groundHeight
}

// SetGroundHeight sets the supporting surface height.
func (mc *AgentMovementComponent) SetGroundHeight(height float32) {
	mc.groundHeight = height
}

// Radius returns the horizontal radius of the agent footprint.
func (mc *AgentMovementComponent) Radius() float32 {
	return mc.radius
}

// Height returns the full height of the agent.
func (mc *AgentMovementComponent) Height() float32 {
	return mc.height
}

// Feet returns the y coordinate of the agent's feet.
func (mc *AgentMovementComponent) Feet() float32 {
	return mc.pos.Y() - mc.height/2
}

// BoundingBox returns the bounding box of the movement component translated
// to its current position.
func (mc *AgentMovementComponent) BoundingBox() cube.BBox {
	return cube.Box(
		mc.pos.X()-mc.radius,
		mc.Feet(),
		mc.pos.Z()-mc.radius,
		mc.pos.X()+mc.radius,
		mc.Feet()+mc.height,
		mc.pos.Z()+mc.radius,
	)
}

// Landed reports whether the agent stopped a significant fall between the
// previous tick and this one.
func (mc *AgentMovementComponent) Landed() bool {
	wasFalling := mc.lastVel.Y() < -2
	stoppedFalling := mc.vel.Y() > mc.lastVel.Y()+1 || mc.vel.Y() >= 0
	return wasFalling && stoppedFalling
}
