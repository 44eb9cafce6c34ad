// Command roamer opens a window with the roaming simulation: steer the green
// square with WASD or the arrow keys, hold Shift to run and c to sneak.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/roamer/ecs"
	"github.com/plus3/roamer/ecs/debugui"
	debugui_ebiten "github.com/plus3/roamer/ecs/debugui/ebiten"
	"github.com/plus3/roamer/render"
	"github.com/plus3/roamer/sim"
)

const windowTitle = "Roamer"

type Game struct {
	Sim      *sim.Simulation
	Renderer *ecs.Scheduler
	Screen   *ecs.Singleton[render.Screen]

	Overlay *Overlay

	clock sim.Clock
	keys  *keyTranslator
}

// Overlay is the ImGui debug layer, run by its own scheduler over the
// simulation's storage.
type Overlay struct {
	Backend   *ecs.Singleton[debugui_ebiten.ImguiBackend]
	Input     *ecs.Singleton[debugui.ImguiInputState]
	Scheduler *ecs.Scheduler
	Stats     *debugui.StatsPanel
}

func main() {
	configPath := flag.String("config", "", "Optional YAML config file.")
	debug := flag.Bool("debug", false, "Show the ImGui debug overlay.")
	seed := flag.Uint64("seed", 0, "Random seed for wanderers; 0 keeps the config's seed.")
	verbose := flag.Bool("v", false, "Log every spawn.")
	flag.Parse()

	log.SetPrefix("roamer: ")

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

	opts := []sim.Option{sim.WithRegistry(debugui.RegisterComponents)}
	if *verbose {
		opts = append(opts, sim.WithLogger(log.Default()))
	}

	s, err := sim.New(cfg, opts...)
	if err != nil {
		log.Fatalf("Failed to create simulation: %v", err)
	}

	game := &Game{
		Sim:      s,
		Renderer: ecs.NewScheduler(s.Storage()),
		Screen:   ecs.NewSingleton[render.Screen](s.Storage()),
		keys:     newKeyTranslator(),
	}
	game.Renderer.Register(&render.DrawSystem{})

	width, height := int(cfg.Arena.Width), int(cfg.Arena.Height)
	if *debug {
		game.Overlay = newOverlay(s, width, height)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle(windowTitle)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game exited: %v", err)
	}
}

func newOverlay(s *sim.Simulation, width, height int) *Overlay {
	storage := s.Storage()
	ecs.NewSingleton(storage, debugui_ebiten.NewImguiBackend(windowTitle, width, height))

	overlay := &Overlay{
		Backend:   ecs.NewSingleton[debugui_ebiten.ImguiBackend](storage),
		Input:     ecs.NewSingleton[debugui.ImguiInputState](storage),
		Scheduler: ecs.NewScheduler(storage),
		Stats:     debugui.NewStatsPanel("Simulation", storage, s.Scheduler(), 120),
	}
	overlay.Scheduler.Register(&debugui.ImguiSystem{})

	overlay.Stats.Lines = func() []string {
		player := s.Player()
		return []string{
			fmt.Sprintf("Entities: %d", s.Len()),
			fmt.Sprintf("Next spawn in: %s", s.SpawnRemaining().Round(time.Millisecond)),
			fmt.Sprintf("Player: (%.1f, %.1f)", player.Pos.X, player.Pos.Y),
			fmt.Sprintf("Frames: %d", s.Frames()),
		}
	}
	storage.Spawn(overlay.Stats.Item())

	return overlay
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if !ebiten.IsFocused() {
		g.keys.Reset(g.Sim.Input())
	} else if g.Overlay == nil || !g.Overlay.Input.Get().WantCaptureKeyboard {
		g.keys.Update(g.Sim.Input())
	}

	elapsed := g.clock.Next(time.Now())
	g.Sim.Tick(elapsed)

	if g.Overlay != nil {
		g.Overlay.Stats.Record(elapsed)
		g.Overlay.Backend.Get().Frame(func() {
			g.Overlay.Scheduler.Once(elapsed)
		})
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Screen.Get().Image = screen
	g.Renderer.Once(0)

	if g.Overlay != nil {
		g.Overlay.Backend.Get().Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// The overlay needs the full window; the arena sits in its top-left corner.
	if g.Overlay != nil {
		g.Overlay.Backend.Get().Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	cfg := g.Sim.Config()
	return int(cfg.Arena.Width), int(cfg.Arena.Height)
}
