package game

// Default movement tuning. The relationship between DefaultAirWishSpeedCap
// and DefaultMaxGroundSpeed is what produces the tight air-strafe curves:
// the cap must stay well below the ground speed.
const (
	DefaultMaxGroundSpeed  = float32(7.5)
	DefaultGroundAccel     = float32(6.0)
	DefaultAirAccel        = float32(12.0)
	DefaultAirWishSpeedCap = float32(1.5)
	DefaultAirSpeedCap     = float32(25.0)
	DefaultGroundFriction  = float32(5.0)
	DefaultStopSpeed       = float32(1.8)
	DefaultGravity         = float32(12.0)
	DefaultJumpSpeed       = float32(6.2)
	DefaultAgentRadius     = float32(0.4)
	DefaultAgentHeight     = float32(1.8)

	// StepHeight is how far above the feet a floor surface may sit and still
	// be walked onto without a vertical collision response.
	StepHeight = float32(0.6)

	// FrictionStopEpsilon is the speed below which ground friction snaps the
	// velocity to exactly zero instead of decaying it asymptotically.
	FrictionStopEpsilon = float32(0.1)

	// GroundedTolerance is how far the feet may hover above the supporting
	// surface while still counting as grounded.
	GroundedTolerance = float32(0.1)

	// RisingVelocityEpsilon is the upward velocity above which an agent is
	// never considered grounded, so a jump does not re-ground on the way up
	// through a surface.
	RisingVelocityEpsilon = float32(0.1)

	// SlopeSteppableGap is the largest embedding depth into a slope volume
	// that is still treated as a walkable surface rather than a side hit.
	SlopeSteppableGap = float32(0.6)

	// SlopeBaseMargin extends slope embedding checks slightly below the
	// volume base so a fast agent cannot tunnel under the test.
	SlopeBaseMargin = float32(0.5)

	// SlopeMaxVerticalPush bounds the vertical push-out candidate during
	// slope resolution; anything larger resolves horizontally instead.
	SlopeMaxVerticalPush = float32(2.0)
)
