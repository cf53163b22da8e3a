package world

import (
	"encoding/binary"
	"math"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/zeebo/xxh3"
)

// Level is the static collider set of a session: named box and slope volumes
// in authoring order. A Level is built once before simulation starts and is
// read-only afterwards, so any number of agents may scan it concurrently.
type Level struct {
	boxes  *orderedmap.OrderedMap[string, Box]
	slopes *orderedmap.OrderedMap[string, Slope]
}

// NewLevel returns an empty level.
func NewLevel() *Level {
	return &Level{
		boxes:  orderedmap.NewOrderedMap[string, Box](),
		slopes: orderedmap.NewOrderedMap[string, Slope](),
	}
}

// AddBox registers a named box volume. Re-using a name replaces the volume
// but keeps its original position in the resolution order.
func (l *Level) AddBox(name string, b Box) {
	l.boxes.Set(name, b)
}

// AddSlope registers a named slope volume.
func (l *Level) AddSlope(name string, s Slope) {
	l.slopes.Set(name, s)
}

// Boxes calls fn for every box volume in authoring order.
func (l *Level) Boxes(fn func(name string, b Box)) {
	for el := l.boxes.Front(); el != nil; el = el.Next() {
		fn(el.Key, el.Value)
	}
}

// Slopes calls fn for every slope volume in authoring order.
func (l *Level) Slopes(fn func(name string, s Slope)) {
	for el := l.slopes.Front(); el != nil; el = el.Next() {
		fn(el.Key, el.Value)
	}
}

// Walls calls fn for every wall-tagged box volume in authoring order.
func (l *Level) Walls(fn func(name string, b Box)) {
	l.Boxes(func(name string, b Box) {
		if b.Wall {
			fn(name, b)
		}
	})
}

// Floors calls fn for every floor-only box volume in authoring order. Slope
// volumes are walkable from above as well but are iterated separately
// through Slopes.
func (l *Level) Floors(fn func(name string, b Box)) {
	l.Boxes(func(name string, b Box) {
		if !b.Wall {
			fn(name, b)
		}
	})
}

// VolumeCount returns the number of box and slope volumes in the level.
func (l *Level) VolumeCount() int {
	return l.boxes.Len() + l.slopes.Len()
}

// Digest returns a fingerprint of the level geometry. Two levels with the
// same volumes in the same order share a digest, which makes it usable as a
// session identity for replay compatibility checks.
func (l *Level) Digest() uint64 {
	buf := make([]byte, 0, 64*l.VolumeCount())
	l.Boxes(func(name string, b Box) {
		buf = append(buf, name...)
		buf = appendVec3(buf, b.Center)
		buf = appendVec3(buf, b.HalfExtents)
		if b.Wall {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	})
	l.Slopes(func(name string, s Slope) {
		buf = append(buf, name...)
		buf = appendVec3(buf, s.Center)
		buf = appendVec3(buf, s.HalfExtents)
		buf = appendFloat32(buf, s.RiseDir.X())
		buf = appendFloat32(buf, s.RiseDir.Y())
		buf = appendFloat32(buf, s.RisePerUnit)
	})
	return xxh3.Hash(buf)
}

func appendVec3(buf []byte, v mgl32.Vec3) []byte {
	buf = appendFloat32(buf, v.X())
	buf = appendFloat32(buf, v.Y())
	return appendFloat32(buf, v.Z())
}

func appendFloat32(buf []byte, f float32) []byte {
	return binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
}
