package player

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Debug modes gate per-tick simulation tracing by subsystem.
const (
	DebugModeMovementSim = iota
	DebugModeGroundSim
	DebugModeCollisions
)

// Debugger traces simulation internals through a logrus logger. Each call is
// gated on a mode so the heavy movement trace can be toggled independently
// of collision tracing.
type Debugger struct {
	log   *logrus.Logger
	modes map[int]bool
}

// NewDebugger returns a Debugger that logs the given modes to log at debug
// level.
func NewDebugger(log *logrus.Logger, modes ...int) *Debugger {
	m := make(map[int]bool, len(modes))
	for _, mode := range modes {
		m[mode] = true
	}
	return &Debugger{log: log, modes: m}
}

// NopDebugger returns a Debugger that discards everything. It is the default
// for simulations that run without tracing, tests included.
func NopDebugger() *Debugger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &Debugger{log: log, modes: map[int]bool{}}
}

// Notify logs the formatted message if the given mode is enabled and the
// condition holds. Passing the condition keeps call sites free of branching.
func (d *Debugger) Notify(mode int, condition bool, format string, args ...interface{}) {
	if !condition || !d.modes[mode] {
		return
	}
	d.log.Debugf(format, args...)
}
