package sim

import (
	"time"

	"github.com/plus3/roamer/ecs"
)

// WanderingEntity is an autonomous entity on a randomized walk.
type WanderingEntity struct {
	ecs.EntityId
	*Body
	*Sprite
	*Wander
}

// NewMovementTimer returns the timer a freshly spawned wanderer starts with:
// standing still, heading down-right, first retarget after firstRetarget.
func NewMovementTimer(firstRetarget time.Duration) MovementTimer {
	return MovementTimer{
		NextRetarget: firstRetarget,
		VelX:         Axis{Dir: 1},
		VelY:         Axis{Dir: 1},
	}
}

// Advance accumulates elapsed toward the next retarget, picks a new heading
// when it is due, moves one step and flips direction at the arena edges.
// Crossing an edge only redirects; the entity may sit past the edge for the
// frame it crossed. That one-step overshoot holds between retargets only: a
// retarget due while the entity is past an edge can point it outward again.
func (w *WanderingEntity) Advance(elapsed time.Duration) {
	timer := &w.Timer

	timer.SinceRetarget += elapsed
	if timer.SinceRetarget >= timer.NextRetarget {
		w.retarget()
	}

	w.Pos.X += timer.VelX.Speed * float64(timer.VelX.Dir)
	w.Pos.Y += timer.VelY.Speed * float64(timer.VelY.Dir)

	w.reflect()
}

func (w *WanderingEntity) retarget() {
	timer := &w.Timer
	timer.VelX = w.randomAxis()
	timer.VelY = w.randomAxis()

	span := w.RetargetMax - w.RetargetMin
	timer.NextRetarget = w.RetargetMin + time.Duration(w.Rand.Float64()*float64(span))
	timer.SinceRetarget = 0
}

func (w *WanderingEntity) randomAxis() Axis {
	dir := 1
	if w.Rand.Float64() < 0.5 {
		dir = -1
	}
	return Axis{Dir: dir, Speed: w.Rand.Float64() * w.BaseSpeed}
}

func (w *WanderingEntity) reflect() {
	timer := &w.Timer
	if w.Pos.X+w.Size.Width >= w.Arena.Width {
		timer.VelX.Dir = -1
	}
	if w.Pos.X <= 0 {
		timer.VelX.Dir = 1
	}
	if w.Pos.Y+w.Size.Height >= w.Arena.Height {
		timer.VelY.Dir = -1
	}
	if w.Pos.Y <= 0 {
		timer.VelY.Dir = 1
	}
}

func (w *WanderingEntity) Shape() Shape {
	return ShapeOf(w.Body, w.Sprite)
}
