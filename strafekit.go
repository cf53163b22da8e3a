// Package strafekit implements the locomotion core of a first-person action
// game with speedrun-style movement: Quake-descended ground acceleration and
// friction, low-friction air control that permits gaining speed by strafing,
// slope walking, step-up onto low ledges, and push-out collision against
// static box and slope volumes.
package strafekit

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/strafekit/strafekit/player"
	"github.com/strafekit/strafekit/player/component"
	"github.com/strafekit/strafekit/player/simulation"
	"github.com/strafekit/strafekit/tuning"
	"github.com/strafekit/strafekit/world"
)

// Input is the per-tick player intent, already derived from device state by
// the input collaborator: a normalized horizontal wish direction (or zero)
// and a level-triggered jump request.
type Input struct {
	WishDir mgl32.Vec3
	Jump    bool
}

// Output is the per-tick simulation result read by rendering and HUD
// collaborators.
type Output struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Grounded bool
}

// Sim ties a level, a tuning record and one agent's movement state into a
// tickable simulation. Ticks are synchronous; the only concurrent access Sim
// supports is swapping the tuning between ticks via SetTuning.
type Sim struct {
	level    *world.Level
	movement player.MovementComponent
	dbg      *player.Debugger

	tick    int64
	history *player.History

	mu     sync.Mutex
	tuning tuning.Tuning
}

// historyTicks is how many recent ticks of agent state a Sim buffers.
const historyTicks = 256

// New returns a simulation for the given level and tuning, with an agent
// spawned just above the baseline floor near the arena origin.
func New(lvl *world.Level, t tuning.Tuning) *Sim {
	spawn := mgl32.Vec3{0, t.AgentHeight/2 + 1, 10}
	return NewAt(lvl, t, spawn)
}

// NewAt returns a simulation with the agent spawned at the given position
// with zero velocity, not grounded.
func NewAt(lvl *world.Level, t tuning.Tuning, spawn mgl32.Vec3) *Sim {
	return &Sim{
		level:    lvl,
		movement: component.NewAgentMovement(spawn, t.AgentRadius, t.AgentHeight),
		dbg:      player.NopDebugger(),
		history:  player.NewHistory(historyTicks),
		tuning:   t,
	}
}

// UseDebugger routes simulation tracing through the given debugger.
func (s *Sim) UseDebugger(dbg *player.Debugger) {
	s.dbg = dbg
}

// Tick advances the simulation by dt seconds with the given player intent
// and returns the updated outputs.
func (s *Sim) Tick(in Input, dt float32) Output {
	s.mu.Lock()
	t := s.tuning
	s.mu.Unlock()

	s.movement.SetWishDir(in.WishDir)
	s.movement.SetWishJump(in.Jump)
	simulation.Simulate(s.movement, s.level, t, dt, s.dbg)

	s.tick++
	s.history.Add(player.Sample{
		Tick:     s.tick,
		Pos:      s.movement.Pos(),
		Vel:      s.movement.Vel(),
		Grounded: s.movement.Grounded(),
	})

	return Output{
		Position: s.movement.Pos(),
		Velocity: s.movement.Vel(),
		Grounded: s.movement.Grounded(),
	}
}

// TickCount returns the number of ticks simulated so far.
func (s *Sim) TickCount() int64 {
	return s.tick
}

// History exposes the buffer of recent per-tick agent samples.
func (s *Sim) History() *player.History {
	return s.history
}

// SetTuning swaps the tuning used by subsequent ticks. Invalid tuning is
// rejected and the current tuning stays in effect.
func (s *Sim) SetTuning(t tuning.Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	s.tuning = t
	s.mu.Unlock()
	return nil
}

// Tuning returns the tuning in effect.
func (s *Sim) Tuning() tuning.Tuning {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tuning
}

// Movement exposes the agent's movement state.
func (s *Sim) Movement() player.MovementComponent {
	return s.movement
}

// Level returns the static collider set the simulation runs against.
func (s *Sim) Level() *world.Level {
	return s.level
}
