package world

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// Box is a static axis-aligned box volume, stored as a center position and
// half-extents. Wall-tagged boxes block horizontal movement; untagged boxes
// are floor-only surfaces (platforms, stairs) that never push sideways.
type Box struct {
	Center      mgl32.Vec3
	HalfExtents mgl32.Vec3
	Wall        bool
}

// BBox returns the volume as a bounding box.
func (b Box) BBox() cube.BBox {
	min := b.Center.Sub(b.HalfExtents)
	max := b.Center.Add(b.HalfExtents)
	return cube.Box(min.X(), min.Y(), min.Z(), max.X(), max.Y(), max.Z())
}

// Top returns the y coordinate of the volume's top face.
func (b Box) Top() float32 {
	return b.Center.Y() + b.HalfExtents.Y()
}

// Base returns the y coordinate of the volume's bottom face.
func (b Box) Base() float32 {
	return b.Center.Y() - b.HalfExtents.Y()
}

// InFootprint reports whether the given position lies within the volume's
// horizontal footprint grown by the agent radius. Exact boundary contact does
// not count as overlap.
func (b Box) InFootprint(pos mgl32.Vec3, radius float32) bool {
	bb := b.BBox().Grow(radius)
	return pos.X() > bb.Min().X() && pos.X() < bb.Max().X() &&
		pos.Z() > bb.Min().Z() && pos.Z() < bb.Max().Z()
}

// Slope is a box volume whose top surface height varies linearly along a
// horizontal rise direction. Slopes are solid for side collision but
// walkable from above.
type Slope struct {
	Box
	// RiseDir is the unit horizontal direction along which the surface
	// rises. X maps to world X and Y to world Z.
	RiseDir mgl32.Vec2
	// RisePerUnit is the surface height gained per unit travelled along
	// RiseDir.
	RisePerUnit float32
}

// HeightAt returns the height of the slope surface at the given world
// position: the nominal top of the volume plus the signed projection of the
// position onto the rise direction, scaled by the rise rate.
func (s Slope) HeightAt(pos mgl32.Vec3) float32 {
	along := (pos.X()-s.Center.X())*s.RiseDir.X() + (pos.Z()-s.Center.Z())*s.RiseDir.Y()
	return s.Top() + along*s.RisePerUnit
}
