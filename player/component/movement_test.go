package component

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestNewAgentMovementSpawnState(t *testing.T) {
	mc := NewAgentMovement(mgl32.Vec3{0, 1.9, 10}, 0.4, 1.8)

	if mc.Vel() != (mgl32.Vec3{}) {
		t.Fatalf("spawn velocity = %v, want zero", mc.Vel())
	}
	if mc.Grounded() {
		t.Fatalf("spawned grounded")
	}
	if got := mc.Feet(); math32.Abs(got-1) > 1e-5 {
		t.Fatalf("feet = %v, want 1", got)
	}
}

func TestSetPosShadowsLast(t *testing.T) {
	mc := NewAgentMovement(mgl32.Vec3{}, 0.4, 1.8)
	mc.SetPos(mgl32.Vec3{1, 2, 3})

	if mc.LastPos() != (mgl32.Vec3{}) {
		t.Fatalf("last pos = %v, want zero", mc.LastPos())
	}
	if mc.Pos() != (mgl32.Vec3{1, 2, 3}) {
		t.Fatalf("pos = %v", mc.Pos())
	}
}

func TestSetWishDirNormalizes(t *testing.T) {
	mc := NewAgentMovement(mgl32.Vec3{}, 0.4, 1.8)

	mc.SetWishDir(mgl32.Vec3{3, 5, 0})
	got := mc.WishDir()
	if got.Y() != 0 {
		t.Fatalf("wish dir has vertical component: %v", got)
	}
	if math32.Abs(got.Len()-1) > 1e-5 {
		t.Fatalf("wish dir not unit length: %v", got)
	}

	mc.SetWishDir(mgl32.Vec3{})
	if mc.WishDir() != (mgl32.Vec3{}) {
		t.Fatalf("zero wish dir = %v, want zero", mc.WishDir())
	}
}

func TestBoundingBox(t *testing.T) {
	mc := NewAgentMovement(mgl32.Vec3{1, 0.9, -2}, 0.4, 1.8)
	bb := mc.BoundingBox()

	if math32.Abs(bb.Min().Y()) > 1e-5 || math32.Abs(bb.Max().Y()-1.8) > 1e-5 {
		t.Fatalf("bbox y range [%v, %v], want [0, 1.8]", bb.Min().Y(), bb.Max().Y())
	}
	if math32.Abs(bb.Max().X()-1.4) > 1e-5 || math32.Abs(bb.Min().X()-0.6) > 1e-5 {
		t.Fatalf("bbox x range [%v, %v]", bb.Min().X(), bb.Max().X())
	}
}

func TestLanded(t *testing.T) {
	mc := NewAgentMovement(mgl32.Vec3{}, 0.4, 1.8)

	// Falling fast, then vertical velocity zeroed by the floor clamp.
	mc.SetVel(mgl32.Vec3{0, -8, 0})
	mc.SetVel(mgl32.Vec3{0, 0, 0})
	if !mc.Landed() {
		t.Fatalf("hard stop not detected as landing")
	}

	// Gentle descent is not a landing.
	mc.SetVel(mgl32.Vec3{0, -1, 0})
	mc.SetVel(mgl32.Vec3{0, 0, 0})
	if mc.Landed() {
		t.Fatalf("gentle stop detected as landing")
	}

	// Continuing to fall is not a landing.
	mc.SetVel(mgl32.Vec3{0, -8, 0})
	mc.SetVel(mgl32.Vec3{0, -8.2, 0})
	if mc.Landed() {
		t.Fatalf("ongoing fall detected as landing")
	}
}
