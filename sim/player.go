package sim

import (
	"time"

	"github.com/plus3/roamer/ecs"
	"github.com/plus3/roamer/input"
)

const (
	runMultiplier   = 2
	sneakMultiplier = 0.5
)

// PlayerEntity is the input-driven entity.
type PlayerEntity struct {
	ecs.EntityId
	*Body
	*Sprite
	*Pilot
}

// SpeedMultiplier returns 2 when running, 0.5 when sneaking and 1 when
// both or neither are held.
func SpeedMultiplier(intent input.Intent) float64 {
	switch {
	case intent.Run && !intent.Sneak:
		return runMultiplier
	case intent.Sneak && !intent.Run:
		return sneakMultiplier
	default:
		return 1
	}
}

// Advance moves the player by a fixed per-frame step along every held
// direction, then clamps it inside the arena. The step does not scale with
// elapsed.
func (p *PlayerEntity) Advance(elapsed time.Duration) {
	intent := p.Input.Intent()
	speed := p.BaseSpeed * SpeedMultiplier(intent)

	if intent.Up {
		p.Pos.Y -= speed
	}
	if intent.Left {
		p.Pos.X -= speed
	}
	if intent.Down {
		p.Pos.Y += speed
	}
	if intent.Right {
		p.Pos.X += speed
	}

	p.clamp()
}

func (p *PlayerEntity) clamp() {
	if p.Pos.X+p.Size.Width >= p.Arena.Width {
		p.Pos.X = p.Arena.Width - p.Size.Width
	}
	if p.Pos.X <= 0 {
		p.Pos.X = 0
	}
	if p.Pos.Y+p.Size.Height >= p.Arena.Height {
		p.Pos.Y = p.Arena.Height - p.Size.Height
	}
	if p.Pos.Y <= 0 {
		p.Pos.Y = 0
	}
}

func (p *PlayerEntity) Shape() Shape {
	return ShapeOf(p.Body, p.Sprite)
}
