package world

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/strafekit/strafekit/game"
)

type levelFile struct {
	Boxes  []boxEntry  `yaml:"boxes"`
	Slopes []slopeEntry `yaml:"slopes"`
}

type boxEntry struct {
	Name        string     `yaml:"name"`
	Center      [3]float32 `yaml:"center"`
	HalfExtents [3]float32 `yaml:"half_extents"`
	Wall        bool       `yaml:"wall"`
}

type slopeEntry struct {
	Name        string     `yaml:"name"`
	Center      [3]float32 `yaml:"center"`
	HalfExtents [3]float32 `yaml:"half_extents"`
	RiseDir     [2]float32 `yaml:"rise_dir"`
	RisePerUnit float32    `yaml:"rise_per_unit"`
}

// Load reads a level from a YAML file produced by level authoring.
func Load(path string) (*Level, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return Parse(raw)
}

// Parse decodes level geometry from YAML.
func Parse(raw []byte) (*Level, error) {
	var f levelFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode level: %w", err)
	}

	l := NewLevel()
	for i, e := range f.Boxes {
		if e.Name == "" {
			return nil, fmt.Errorf("box %d: missing name", i)
		}
		if err := checkExtents(e.HalfExtents); err != nil {
			return nil, fmt.Errorf("box %q: %w", e.Name, err)
		}
		l.AddBox(e.Name, Box{
			Center:      vec3(e.Center),
			HalfExtents: vec3(e.HalfExtents),
			Wall:        e.Wall,
		})
	}
	for i, e := range f.Slopes {
		if e.Name == "" {
			return nil, fmt.Errorf("slope %d: missing name", i)
		}
		if err := checkExtents(e.HalfExtents); err != nil {
			return nil, fmt.Errorf("slope %q: %w", e.Name, err)
		}
		rise := game.SafeNormalize(mgl32.Vec3{e.RiseDir[0], 0, e.RiseDir[1]})
		if rise == (mgl32.Vec3{}) {
			return nil, fmt.Errorf("slope %q: rise_dir must be a nonzero horizontal vector", e.Name)
		}
		l.AddSlope(e.Name, Slope{
			Box: Box{
				Center:      vec3(e.Center),
				HalfExtents: vec3(e.HalfExtents),
			},
			RiseDir:     mgl32.Vec2{rise.X(), rise.Z()},
			RisePerUnit: e.RisePerUnit,
		})
	}
	return l, nil
}

func checkExtents(half [3]float32) error {
	for _, v := range half {
		if v <= 0 {
			return fmt.Errorf("half_extents must be positive, got %v", half)
		}
	}
	return nil
}

func vec3(v [3]float32) mgl32.Vec3 {
	return mgl32.Vec3{v[0], v[1], v[2]}
}
