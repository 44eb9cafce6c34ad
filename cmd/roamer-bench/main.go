// Command roamer-bench runs the simulation headless at a fixed step, checks
// the arena bounds after every tick and prints a timing report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/roamer/input"
	"github.com/plus3/roamer/sim"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total wall-clock duration to run for.")
	fps := flag.Int("fps", 60, "Simulated frames per second; sets the elapsed time of every tick.")
	configPath := flag.String("config", "", "Optional YAML config file.")
	seed := flag.Uint64("seed", 1, "Random seed for wanderers and the scripted player.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Include GC pause metrics in the report.")
	flag.Parse()

	log.SetPrefix("roamer-bench: ")
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
	cfg.Seed = *seed

	s, err := sim.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create simulation: %v", err)
	}

	step := time.Second / time.Duration(*fps)
	report := &Report{
		Duration:       *duration,
		Step:           step,
		Seed:           *seed,
		ArenaSize:      fmt.Sprintf("%gx%g", cfg.Arena.Width, cfg.Arena.Height),
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s at %s per tick...", *duration, step)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	pilot := rand.New(rand.NewPCG(*seed, *seed+1))
	actions := input.Actions()
	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			// Flip one random action every ten ticks.
			if report.TotalTicks%10 == 0 {
				s.Input().Set(actions[pilot.IntN(len(actions))], pilot.IntN(2) == 0)
			}

			tickStart := time.Now()
			s.Tick(step)
			report.TickTime.Samples = append(report.TickTime.Samples, time.Since(tickStart))
			report.TotalTicks++
			report.SimulatedTime += step

			check(s, report)
		}
	}

	report.TotalTime = time.Since(startTime)
	report.Entities = s.Len()
	report.Spawned = s.Spawned()
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	if report.Violations > 0 {
		os.Exit(1)
	}
}

// check counts player bound violations and tracks how far any wanderer has
// strayed outside the arena.
func check(s *sim.Simulation, report *Report) {
	player := s.Player()
	if !player.Arena.Contains(player.Pos, player.Size) {
		report.Violations++
	}

	for _, entity := range s.Entities()[1:] {
		shape := entity.Shape()
		arena := s.Config().Arena
		over := max(
			-shape.X,
			-shape.Y,
			shape.X+shape.Width-arena.Width,
			shape.Y+shape.Height-arena.Height,
		)
		report.MaxOvershoot = max(report.MaxOvershoot, over)
	}
}
