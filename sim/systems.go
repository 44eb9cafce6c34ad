package sim

import (
	"log"

	"github.com/plus3/roamer/ecs"
)

// SpawnSystem accumulates elapsed time and appends one wanderer to the
// roster each time the spawn interval is reached. It never spawns more
// than one wanderer per frame, so a long frame does not catch up.
type SpawnSystem struct {
	Clock     ecs.Singleton[SpawnClock]
	Roster    ecs.Singleton[Roster]
	Config    ecs.Singleton[Config]
	Wanderers ecs.View[WanderingEntity]

	rand   Rand
	logger *log.Logger
}

func (s *SpawnSystem) Execute(frame *ecs.UpdateFrame) {
	clock := s.Clock.Get()
	clock.Accumulated += frame.Elapsed
	if clock.Accumulated < clock.Interval {
		return
	}
	clock.Accumulated = 0

	cfg := s.Config.Get()
	// Spawn straight into storage so AdvanceSystem moves the wanderer this frame.
	id := frame.Storage.Spawn(
		Body{Size: cfg.Wanderer.Size(), Arena: cfg.Arena},
		Sprite{Tag: TagEnemy},
		Wander{
			BaseSpeed:   cfg.Wanderer.BaseSpeed,
			Timer:       NewMovementTimer(cfg.InitialRetarget),
			RetargetMin: cfg.RetargetMin,
			RetargetMax: cfg.RetargetMax,
			Rand:        s.rand,
		},
	)

	wanderer := s.Wanderers.Get(id)
	roster := s.Roster.Get()
	roster.Entities = append(roster.Entities, wanderer)
	clock.Spawned++

	if s.logger != nil {
		s.logger.Printf("spawned wanderer %d (%d entities)", clock.Spawned, len(roster.Entities))
	}
}

// AdvanceSystem advances every roster entity in order.
type AdvanceSystem struct {
	Roster ecs.Singleton[Roster]
}

func (s *AdvanceSystem) Execute(frame *ecs.UpdateFrame) {
	for _, entity := range s.Roster.Get().Entities {
		entity.Advance(frame.Elapsed)
	}
}
