package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}

// ClampFloat clamps a value between a minimum and maximum.
func ClampFloat(val, min, max float32) float32 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl32.Vec3) float32 {
	return vec3.X()*vec3.X() + vec3.Z()*vec3.Z()
}

// Vec3HzDist returns the horizontal distance in a vector.
func Vec3HzDist(vec3 mgl32.Vec3) float32 {
	return math32.Sqrt(Vec3HzDistSqr(vec3))
}

// HzVec3 returns the vector with its vertical component zeroed.
func HzVec3(vec3 mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{vec3.X(), 0, vec3.Z()}
}

// SafeNormalize returns the vector scaled to unit length, or the zero vector
// when its length is too small to normalize without blowing up.
func SafeNormalize(vec3 mgl32.Vec3) mgl32.Vec3 {
	lenSqr := vec3.LenSqr()
	if lenSqr < 1e-12 {
		return mgl32.Vec3{}
	}
	return vec3.Mul(1 / math32.Sqrt(lenSqr))
}

// WishDirection builds the normalized horizontal wish direction from the
// forward and strafe impulses (each in [-1, 1]) and the facing yaw in
// radians. A zero impulse pair yields the zero vector.
func WishDirection(forward, strafe, yaw float32) mgl32.Vec3 {
	sin, cos := math32.Sin(yaw), math32.Cos(yaw)
	dir := mgl32.Vec3{
		strafe*cos - forward*sin,
		0,
		-forward*cos - strafe*sin,
	}
	return SafeNormalize(dir)
}
