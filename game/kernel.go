package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ApplyFriction returns the velocity with ground friction applied over dt.
// Speeds below FrictionStopEpsilon snap to exactly zero. The direction of the
// remaining velocity is preserved by scaling, never re-derived.
func ApplyFriction(vel mgl32.Vec3, friction, stopSpeed, dt float32) mgl32.Vec3 {
	speed := vel.Len()
	if speed < FrictionStopEpsilon {
		return mgl32.Vec3{}
	}

	control := math32.Max(speed, stopSpeed)
	drop := control * friction * dt
	newSpeed := math32.Max(speed-drop, 0)
	if newSpeed == 0 {
		return mgl32.Vec3{}
	}

	return vel.Mul(newSpeed / speed)
}

// Accelerate returns the velocity accelerated toward wishDir on the ground.
// Only the component of the current velocity along wishDir counts against the
// wish speed, so a strafe input can add perpendicular speed without reducing
// the forward component. The vertical component is never touched.
func Accelerate(vel, wishDir mgl32.Vec3, wishSpeed, accel, dt float32) mgl32.Vec3 {
	currentSpeed := vel.Dot(wishDir)
	addSpeed := wishSpeed - currentSpeed
	if addSpeed <= 0 {
		return vel
	}

	accelSpeed := math32.Min(accel*wishSpeed*dt, addSpeed)
	return vel.Add(wishDir.Mul(accelSpeed))
}

// AirAccelerate returns the velocity accelerated toward wishDir while
// airborne. The add-speed deficit is computed against min(wishSpeed,
// airWishCap) while the acceleration magnitude still scales with the full
// wishSpeed: with a wish direction roughly perpendicular to the velocity the
// dot product stays near zero against the small cap, so the increment keeps
// applying even near top speed and strafing gains real speed. Horizontal
// speed is then rescaled down to airSpeedCap if exceeded, leaving the
// vertical component untouched.
func AirAccelerate(vel, wishDir mgl32.Vec3, wishSpeed, accel, airWishCap, airSpeedCap, dt float32) mgl32.Vec3 {
	cappedWishSpeed := math32.Min(wishSpeed, airWishCap)

	currentSpeed := vel.Dot(wishDir)
	addSpeed := cappedWishSpeed - currentSpeed
	if addSpeed <= 0 {
		return vel
	}

	accelSpeed := math32.Min(accel*wishSpeed*dt, addSpeed)
	newVel := vel.Add(wishDir.Mul(accelSpeed))

	hzSpeed := Vec3HzDist(newVel)
	if hzSpeed > airSpeedCap {
		scale := airSpeedCap / hzSpeed
		newVel[0] *= scale
		newVel[2] *= scale
	}

	return newVel
}
