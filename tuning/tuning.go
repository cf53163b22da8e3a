package tuning

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/strafekit/strafekit/game"
)

// Tuning is the flat record of movement constants, loaded once at startup.
// All values must be positive. The intended relationship AirWishSpeedCap ≤
// MaxGroundSpeed is what produces tight air-strafe curves; it is a tuning
// guideline rather than a validated invariant.
type Tuning struct {
	MaxGroundSpeed  float32 `yaml:"max_ground_speed"`
	GroundAccel     float32 `yaml:"ground_accel"`
	AirAccel        float32 `yaml:"air_accel"`
	AirWishSpeedCap float32 `yaml:"air_wish_speed_cap"`
	AirSpeedCap     float32 `yaml:"air_speed_cap"`
	GroundFriction  float32 `yaml:"ground_friction"`
	StopSpeed       float32 `yaml:"stop_speed"`
	Gravity         float32 `yaml:"gravity"`
	JumpSpeed       float32 `yaml:"jump_speed"`
	AgentRadius     float32 `yaml:"agent_radius"`
	AgentHeight     float32 `yaml:"agent_height"`
	MaxStepUp       float32 `yaml:"max_step_up"`
}

// Default returns the stock surf/bhop tuning.
func Default() Tuning {
	return Tuning{
		MaxGroundSpeed:  game.DefaultMaxGroundSpeed,
		GroundAccel:     game.DefaultGroundAccel,
		AirAccel:        game.DefaultAirAccel,
		AirWishSpeedCap: game.DefaultAirWishSpeedCap,
		AirSpeedCap:     game.DefaultAirSpeedCap,
		GroundFriction:  game.DefaultGroundFriction,
		StopSpeed:       game.DefaultStopSpeed,
		Gravity:         game.DefaultGravity,
		JumpSpeed:       game.DefaultJumpSpeed,
		AgentRadius:     game.DefaultAgentRadius,
		AgentHeight:     game.DefaultAgentHeight,
		MaxStepUp:       game.StepHeight,
	}
}

// Validate returns an error if any constant is zero or negative.
func (t Tuning) Validate() error {
	fields := []struct {
		name string
		val  float32
	}{
		{"max_ground_speed", t.MaxGroundSpeed},
		{"ground_accel", t.GroundAccel},
		{"air_accel", t.AirAccel},
		{"air_wish_speed_cap", t.AirWishSpeedCap},
		{"air_speed_cap", t.AirSpeedCap},
		{"ground_friction", t.GroundFriction},
		{"stop_speed", t.StopSpeed},
		{"gravity", t.Gravity},
		{"jump_speed", t.JumpSpeed},
		{"agent_radius", t.AgentRadius},
		{"agent_height", t.AgentHeight},
		{"max_step_up", t.MaxStepUp},
	}
	for _, f := range fields {
		if f.val <= 0 {
			return fmt.Errorf("tuning: %s must be positive, got %v", f.name, f.val)
		}
	}
	return nil
}

// Load reads tuning from a YAML file, or writes the default tuning to the
// path and returns it when the file does not yet exist.
func Load(path string) (Tuning, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t := Default()
		data, err := yaml.Marshal(t)
		if err != nil {
			return t, fmt.Errorf("encode default tuning: %w", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return t, fmt.Errorf("create default tuning: %w", err)
		}
		return t, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("read tuning: %w", err)
	}
	var t Tuning
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return Tuning{}, fmt.Errorf("decode tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}
