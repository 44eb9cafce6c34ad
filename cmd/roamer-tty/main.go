// Command roamer-tty runs the roaming simulation in a terminal. Terminals
// report key presses but not releases, so a press holds its action for a
// short window that key repeat keeps refreshing.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/roamer/ecs"
	"github.com/plus3/roamer/render/term"
	"github.com/plus3/roamer/sim"
)

type Game struct {
	sim      *sim.Simulation
	renderer *ecs.Scheduler
	surface  *ecs.Singleton[term.Surface]
	latch    *term.Latch
	clock    sim.Clock
}

func NewGame(screen tcell.Screen, s *sim.Simulation, hold time.Duration) *Game {
	g := &Game{
		sim:      s,
		renderer: ecs.NewScheduler(s.Storage()),
		surface:  ecs.NewSingleton(s.Storage(), term.Surface{Screen: screen}),
		latch:    term.NewLatch(hold),
	}
	g.renderer.Register(&term.DrawSystem{})
	return g
}

// handleInput returns false when the player asked to quit.
func (g *Game) handleInput(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
			return false
		}
		g.latch.PressEvent(ev, now)

	case *tcell.EventResize:
		g.surface.Get().Sync()
	}
	return true
}

// frame advances the simulation by the time since the last frame and draws it.
func (g *Game) frame(now time.Time) {
	g.latch.Apply(g.sim.Input(), now)
	g.sim.Tick(g.clock.Next(now))

	g.surface.Get().Status = fmt.Sprintf("entities: %d  next spawn: %s  [wasd/arrows move, Shift run, c sneak, q quit]",
		g.sim.Len(), g.sim.SpawnRemaining().Round(100*time.Millisecond))
	g.renderer.Once(0)
}

func (g *Game) run(screen tcell.Screen, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	g.frame(time.Now())
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !g.handleInput(ev, time.Now()) {
				return
			}

		case now := <-ticker.C:
			g.frame(now)
		}
	}
}

func main() {
	configPath := flag.String("config", "", "Optional YAML config file.")
	seed := flag.Uint64("seed", 0, "Random seed for wanderers; 0 keeps the config's seed.")
	hold := flag.Duration("hold", term.DefaultHoldWindow, "How long a key press keeps its action held.")
	fps := flag.Int("fps", 60, "Frames per second.")
	flag.Parse()

	log.SetPrefix("roamer-tty: ")
	if *fps <= 0 {
		log.Fatalf("-fps must be positive, got %d", *fps)
	}

	cfg := sim.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = sim.LoadConfig(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	s, err := sim.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create simulation: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	NewGame(screen, s, *hold).run(screen, time.Second/time.Duration(*fps))
}
