package sim

import (
	"time"

	"github.com/plus3/roamer/ecs"
	"github.com/plus3/roamer/input"
)

// Body places an entity in its arena.
type Body struct {
	Pos   Vec2
	Size  Size
	Arena Arena
}

type Sprite struct {
	Tag ColorTag
}

// Pilot drives an entity from held input actions.
type Pilot struct {
	BaseSpeed float64
	Input     *input.State
}

// Axis is one component of a wanderer's velocity.
type Axis struct {
	Dir   int
	Speed float64
}

// MovementTimer is a wanderer's retarget clock and current heading.
type MovementTimer struct {
	SinceRetarget time.Duration
	NextRetarget  time.Duration
	VelX, VelY    Axis
}

// Wander drives an entity along a randomized walk.
type Wander struct {
	BaseSpeed   float64
	Timer       MovementTimer
	RetargetMin time.Duration
	RetargetMax time.Duration
	Rand        Rand
}

// Rand is the random source wanderers draw from. *math/rand/v2.Rand
// satisfies it.
type Rand interface {
	// Float64 returns a number in [0, 1).
	Float64() float64
}

// SpawnClock accumulates elapsed time toward the next wanderer spawn.
type SpawnClock struct {
	Accumulated time.Duration
	Interval    time.Duration
	Spawned     int
}

// Roster is the ordered list of live entities: the player first, then
// wanderers in spawn order. It only grows.
type Roster struct {
	Entities []Entity
}

// NewRegistry returns a component registry with every simulation component
// registered.
func NewRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Body](registry)
	ecs.RegisterComponent[Sprite](registry)
	ecs.RegisterComponent[Pilot](registry)
	ecs.RegisterComponent[Wander](registry)
	return registry
}
