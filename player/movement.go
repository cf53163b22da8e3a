package player

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// MovementComponent is the per-agent movement state threaded through the
// simulation each tick. The concrete implementation lives in
// player/component; the simulation only ever talks to this interface, so a
// replay or an AI reusing the locomotion core can supply its own.
type MovementComponent interface {
	// Pos returns the position of the movement component. The position is
	// the center of the agent's capsule-like footprint.
	Pos() mgl32.Vec3
	// LastPos returns the position before the most recent SetPos.
	LastPos() mgl32.Vec3
	// SetPos sets the position of the movement component.
	SetPos(newPos mgl32.Vec3)

	// Vel returns the velocity of the movement component.
	Vel() mgl32.Vec3
	// LastVel returns the velocity before the most recent SetVel.
	LastVel() mgl32.Vec3
	// SetVel sets the velocity of the movement component.
	SetVel(newVel mgl32.Vec3)

	// WishDir returns the horizontal direction the agent currently intends
	// to move: a unit vector, or zero when no movement is held.
	WishDir() mgl32.Vec3
	// SetWishDir sets the wish direction for this tick.
	SetWishDir(dir mgl32.Vec3)

	// WishJump reports whether a jump is requested this tick. It is level
	// triggered: true for the whole duration the jump key is held, which is
	// what enables automatic repeat jumps.
	WishJump() bool
	// SetWishJump sets the jump request for this tick.
	SetWishJump(jump bool)

	// Grounded reports whether the agent stood on a surface this tick.
	Grounded() bool
	// SetGrounded sets whether the agent is on a surface.
	SetGrounded(grounded bool)

	// GroundHeight returns the y coordinate of the supporting surface
	// computed this tick.
	GroundHeight() float32
	// SetGroundHeight sets the supporting surface height.
	SetGroundHeight(height float32)

	// Radius returns the horizontal radius of the agent footprint.
	Radius() float32
	// Height returns the full height of the agent.
	Height() float32
	// Feet returns the y coordinate of the agent's feet.
	Feet() float32

	// BoundingBox returns the agent bounding box translated to the current
	// position.
	BoundingBox() cube.BBox

	// Landed reports whether the agent landed between the previous tick and
	// this one, inferred from a sharp drop in downward velocity. Grounded
	// flips back to false immediately during held-jump chains, so consumers
	// watch the velocity instead.
	Landed() bool
}
