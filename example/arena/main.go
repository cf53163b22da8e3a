// Command arena runs an interactive top-down view of the default arena.
// WASD moves relative to the view yaw, left/right arrows turn, space jumps
// (hold it to chain bunny hops), and q or escape quits.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/strafekit/strafekit"
	"github.com/strafekit/strafekit/game"
	"github.com/strafekit/strafekit/player"
	"github.com/strafekit/strafekit/tuning"
	"github.com/strafekit/strafekit/world"
)

const (
	tickRate = 60

	// Terminals report key presses, not holds, so a key counts as held for
	// a short window after its last press event.
	holdWindow = 200 * time.Millisecond

	yawStep = 0.12
)

var (
	tuningPath = flag.String("tuning", "", "tuning yaml to load and hot-reload (empty for built-in defaults)")
	logPath    = flag.String("log", "arena.log", "log file path")
)

type app struct {
	screen tcell.Screen
	sim    *strafekit.Sim
	log    *logrus.Logger

	yaw  float32
	held map[rune]time.Time

	watcher *tuning.Watcher
}

func main() {
	flag.Parse()

	f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:     false,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	logger.SetOutput(f)

	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
	}

	tun := tuning.Default()
	var watcher *tuning.Watcher
	if *tuningPath != "" {
		tun, err = tuning.Load(*tuningPath)
		if err != nil {
			panic(err)
		}
		watcher, err = tuning.NewWatcher(*tuningPath)
		if err != nil {
			panic(err)
		}
		defer watcher.Close()
	}

	sim := strafekit.New(world.DefaultArena(), tun)
	if os.Getenv("SIM_DEBUG") != "" {
		sim.UseDebugger(player.NewDebugger(logger,
			player.DebugModeMovementSim, player.DebugModeGroundSim, player.DebugModeCollisions))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		panic(err)
	}
	if err := screen.Init(); err != nil {
		panic(err)
	}

	a := &app{
		screen:  screen,
		sim:     sim,
		log:     logger,
		held:    make(map[rune]time.Time),
		watcher: watcher,
	}
	defer screen.Fini()

	logger.Info("arena demo started")
	a.run()
	logger.Info("arena demo stopped")
}

func (a *app) run() {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			events <- a.screen.PollEvent()
		}
	}()

	var updates chan tuning.Tuning
	var watchErrs chan error
	if a.watcher != nil {
		updates = a.watcher.Updates
		watchErrs = a.watcher.Errors
	}

	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				return
			}
		case t := <-updates:
			if err := a.sim.SetTuning(t); err != nil {
				a.log.WithError(err).Warn("tuning reload rejected")
				continue
			}
			a.log.Info("tuning reloaded")
		case err := <-watchErrs:
			a.log.WithError(err).Warn("tuning watch error")
		case <-ticker.C:
			out := a.sim.Tick(a.input(), 1.0/tickRate)
			a.draw(out)
		}
	}
}

func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			a.yaw -= yawStep
		case tcell.KeyRight:
			a.yaw += yawStep
		case tcell.KeyRune:
			r := ev.Rune()
			if r == 'q' {
				return false
			}
			a.held[r] = time.Now()
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *app) keyHeld(r rune) bool {
	t, ok := a.held[r]
	return ok && time.Since(t) < holdWindow
}

func (a *app) input() strafekit.Input {
	var forward, strafe float32
	if a.keyHeld('w') {
		forward++
	}
	if a.keyHeld('s') {
		forward--
	}
	if a.keyHeld('d') {
		strafe++
	}
	if a.keyHeld('a') {
		strafe--
	}
	return strafekit.Input{
		WishDir: game.WishDirection(forward, strafe, a.yaw),
		Jump:    a.keyHeld(' '),
	}
}

// Cells per world unit. The vertical axis uses half the horizontal density
// so the map stays roughly square on typical terminal fonts.
const (
	cellsPerUnitX = 1.5
	cellsPerUnitZ = 0.75
)

func (a *app) draw(out strafekit.Output) {
	a.screen.Clear()
	w, h := a.screen.Size()
	cx, cy := w/2, h/2

	for row := 1; row < h-1; row++ {
		for col := 0; col < w; col++ {
			// Screen cell back to a world point on the XZ plane, camera
			// centered on the agent.
			wx := out.Position.X() + float32(col-cx)/cellsPerUnitX
			wz := out.Position.Z() + float32(row-cy)/cellsPerUnitZ

			ch, style, hit := a.cellAt(wx, wz)
			if hit {
				a.screen.SetContent(col, row, ch, nil, style)
			}
		}
	}

	trailStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	a.sim.History().Range(func(s player.Sample) {
		col := cx + int((s.Pos.X()-out.Position.X())*cellsPerUnitX)
		row := cy + int((s.Pos.Z()-out.Position.Z())*cellsPerUnitZ)
		if col >= 0 && col < w && row >= 1 && row < h-1 {
			a.screen.SetContent(col, row, '.', nil, trailStyle)
		}
	})

	a.screen.SetContent(cx, cy, '@', nil, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	a.drawText(0, 0, fmt.Sprintf("pos (%6.1f %5.1f %6.1f)  speed %5.2f  vy %5.2f  grounded %v",
		out.Position.X(), out.Position.Y(), out.Position.Z(),
		game.Vec3HzDist(out.Velocity), out.Velocity.Y(), out.Grounded))
	a.drawText(0, h-1, "wasd move  arrows turn  space jump (hold to bhop)  q quit")

	a.screen.Show()
}

// cellAt reports the map glyph for a world point, if any volume covers it.
func (a *app) cellAt(wx, wz float32) (rune, tcell.Style, bool) {
	var (
		ch    rune
		style tcell.Style
		hit   bool
	)
	a.sim.Level().Boxes(func(name string, b world.Box) {
		if !inRect(wx, wz, b) {
			return
		}
		if b.Wall {
			ch, style = '#', tcell.StyleDefault.Foreground(tcell.ColorGray)
		} else if !hit {
			ch, style = '=', tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
		}
		hit = true
	})
	a.sim.Level().Slopes(func(name string, s world.Slope) {
		if inRect(wx, wz, s.Box) && (!hit || ch == '=') {
			ch, style = '/', tcell.StyleDefault.Foreground(tcell.ColorGreen)
			hit = true
		}
	})
	return ch, style, hit
}

func inRect(wx, wz float32, b world.Box) bool {
	dx := wx - b.Center.X()
	dz := wz - b.Center.Z()
	return dx >= -b.HalfExtents.X() && dx <= b.HalfExtents.X() &&
		dz >= -b.HalfExtents.Z() && dz <= b.HalfExtents.Z()
}

func (a *app) drawText(x, y int, s string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, r := range s {
		a.screen.SetContent(x+i, y, r, nil, style)
	}
}
