// Package sim is the roaming simulation: a keyboard-driven player and a
// growing crowd of wanderers confined to a rectangular arena.
package sim

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/plus3/roamer/ecs"
	"github.com/plus3/roamer/input"
)

type options struct {
	rand     Rand
	logger   *log.Logger
	register []func(*ecs.ComponentRegistry)
}

// Option customizes a Simulation.
type Option func(*options)

// WithRand sets the wanderers' random source, overriding Config.Seed.
func WithRand(r Rand) Option {
	return func(o *options) { o.rand = r }
}

// WithLogger logs spawns to logger.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithRegistry registers extra components, for front ends that spawn their
// own entities into the simulation's storage.
func WithRegistry(register func(*ecs.ComponentRegistry)) Option {
	return func(o *options) { o.register = append(o.register, register) }
}

// Simulation owns the entity storage, the system schedule and the roster.
// It is not safe for concurrent use.
type Simulation struct {
	cfg       Config
	storage   *ecs.Storage
	scheduler *ecs.Scheduler

	roster *ecs.Singleton[Roster]
	spawn  *ecs.Singleton[SpawnClock]
	input  *input.State
	player *PlayerEntity

	frames int64
}

// New validates cfg and builds a simulation holding only the centred player.
func New(cfg Config, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rand == nil {
		o.rand = newRand(cfg.Seed)
	}

	registry := NewRegistry()
	for _, register := range o.register {
		register(registry)
	}

	storage := ecs.NewStorage(registry)
	ecs.NewSingleton(storage, cfg)
	ecs.NewSingleton(storage, input.State{})

	s := &Simulation{
		cfg:       cfg,
		storage:   storage,
		scheduler: ecs.NewScheduler(storage),
		roster:    ecs.NewSingleton(storage, Roster{}),
		spawn:     ecs.NewSingleton(storage, SpawnClock{Interval: cfg.SpawnInterval}),
		input:     ecs.NewSingleton[input.State](storage).Get(),
	}

	id := storage.Spawn(
		Body{
			Pos:   cfg.Arena.Center(cfg.Player.Size()),
			Size:  cfg.Player.Size(),
			Arena: cfg.Arena,
		},
		Sprite{Tag: TagPlayer},
		Pilot{BaseSpeed: cfg.Player.BaseSpeed, Input: s.input},
	)
	s.player = ecs.NewView[PlayerEntity](storage).Get(id)

	roster := s.roster.Get()
	roster.Entities = append(roster.Entities, s.player)

	s.scheduler.Register(&SpawnSystem{rand: o.rand, logger: o.logger})
	s.scheduler.Register(&AdvanceSystem{})

	return s, nil
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Tick advances the simulation by one frame. Negative elapsed counts as 0
// and elapsed above Config.MaxElapsed is clamped to it. A frame with no
// elapsed time only counts toward Frames: the player does not move even
// while a direction is held. A Clock's first frame is such a frame.
func (s *Simulation) Tick(elapsed time.Duration) {
	s.frames++

	elapsed = s.clamp(elapsed)
	if elapsed <= 0 {
		return
	}
	s.scheduler.Once(elapsed)
}

func (s *Simulation) clamp(elapsed time.Duration) time.Duration {
	if elapsed < 0 {
		return 0
	}
	if s.cfg.MaxElapsed > 0 && elapsed > s.cfg.MaxElapsed {
		return s.cfg.MaxElapsed
	}
	return elapsed
}

// Run ticks the simulation every interval until ctx is done, feeding it the
// wall-clock time between ticks.
func (s *Simulation) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var clock Clock
	s.Tick(clock.Next(time.Now()))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			s.Tick(clock.Next(now))
		}
	}
}

// Entities returns the roster: the player first, then wanderers in spawn
// order. The slice is shared with the simulation and only valid until the
// next Tick.
func (s *Simulation) Entities() []Entity {
	return s.roster.Get().Entities
}

// Shapes returns every entity's render shape in roster order.
func (s *Simulation) Shapes() []Shape {
	entities := s.Entities()
	shapes := make([]Shape, len(entities))
	for i, entity := range entities {
		shapes[i] = entity.Shape()
	}
	return shapes
}

func (s *Simulation) Len() int {
	return len(s.roster.Get().Entities)
}

// Input returns the held-action record the player reads each tick.
// Front ends mutate it between ticks.
func (s *Simulation) Input() *input.State {
	return s.input
}

func (s *Simulation) Player() *PlayerEntity {
	return s.player
}

func (s *Simulation) Storage() *ecs.Storage {
	return s.storage
}

func (s *Simulation) Scheduler() *ecs.Scheduler {
	return s.scheduler
}

func (s *Simulation) Config() Config {
	return s.cfg
}

// SpawnRemaining returns the elapsed time left until the next wanderer.
func (s *Simulation) SpawnRemaining() time.Duration {
	clock := s.spawn.Get()
	return clock.Interval - clock.Accumulated
}

// Spawned returns how many wanderers have been spawned.
func (s *Simulation) Spawned() int {
	return s.spawn.Get().Spawned
}

// Frames returns how many times Tick has been called.
func (s *Simulation) Frames() int64 {
	return s.frames
}
