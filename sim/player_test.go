package sim_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/roamer/input"
	"github.com/plus3/roamer/sim"
	"github.com/stretchr/testify/assert"
)

func slowPlayerConfig() sim.Config {
	cfg := sim.DefaultConfig()
	cfg.Player.BaseSpeed = 3
	return cfg
}

func TestSpeedMultiplier(t *testing.T) {
	tests := []struct {
		name   string
		intent input.Intent
		want   float64
	}{
		{"walk", input.Intent{}, 1},
		{"run", input.Intent{Run: true}, 2},
		{"sneak", input.Intent{Sneak: true}, 0.5},
		{"run and sneak cancel", input.Intent{Run: true, Sneak: true}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sim.SpeedMultiplier(tt.intent))
		})
	}
}

func TestPlayerStartsCentred(t *testing.T) {
	s := newSimulation(t, sim.DefaultConfig())

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, sim.Shape{X: 384, Y: 284, Width: 32, Height: 32, Tag: sim.TagPlayer}, s.Shapes()[0])
}

func TestPlayerRunUp(t *testing.T) {
	s := newSimulation(t, slowPlayerConfig())
	s.Input().Set(input.Up, true)
	s.Input().Set(input.Run, true)

	s.Tick(16 * time.Millisecond)
	assert.Equal(t, 278.0, s.Player().Pos.Y)
	assert.Equal(t, 384.0, s.Player().Pos.X)

	// The step is per frame, not per unit of time.
	s.Tick(time.Second)
	assert.Equal(t, 272.0, s.Player().Pos.Y)
}

func TestPlayerSneakLeft(t *testing.T) {
	s := newSimulation(t, slowPlayerConfig())
	s.Input().Set(input.Left, true)
	s.Input().Set(input.Sneak, true)

	s.Tick(16 * time.Millisecond)
	assert.Equal(t, 382.5, s.Player().Pos.X)
	assert.Equal(t, 284.0, s.Player().Pos.Y)
}

func TestPlayerSneakAndRun(t *testing.T) {
	s := newSimulation(t, slowPlayerConfig())
	s.Input().Set(input.Right, true)
	s.Input().Set(input.Sneak, true)
	s.Input().Set(input.Run, true)

	s.Tick(16 * time.Millisecond)
	assert.Equal(t, 387.0, s.Player().Pos.X)
}

func TestPlayerOpposingDirectionsCancel(t *testing.T) {
	s := newSimulation(t, slowPlayerConfig())
	s.Input().Set(input.Left, true)
	s.Input().Set(input.Right, true)

	s.Tick(16 * time.Millisecond)
	assert.Equal(t, 384.0, s.Player().Pos.X)
}

func TestPlayerClampsToArena(t *testing.T) {
	s := newSimulation(t, sim.DefaultConfig())

	s.Input().Set(input.Right, true)
	s.Input().Set(input.Down, true)
	s.Input().Set(input.Run, true)
	for i := 0; i < 100; i++ {
		s.Tick(16 * time.Millisecond)
	}
	assert.Equal(t, sim.Vec2{X: 768, Y: 568}, s.Player().Pos)

	s.Input().Reset()
	s.Input().Set(input.Left, true)
	s.Input().Set(input.Up, true)
	for i := 0; i < 100; i++ {
		s.Tick(16 * time.Millisecond)
	}
	assert.Equal(t, sim.Vec2{X: 0, Y: 0}, s.Player().Pos)
}

func TestPlayerNeverLeavesArena(t *testing.T) {
	s := newSimulation(t, sim.DefaultConfig(), sim.WithRand(rand.New(rand.NewPCG(1, 2))))
	keys := rand.New(rand.NewPCG(3, 4))
	actions := input.Actions()

	for i := 0; i < 2000; i++ {
		action := actions[keys.IntN(len(actions))]
		s.Input().Set(action, keys.IntN(2) == 0)
		s.Tick(time.Duration(keys.IntN(50)) * time.Millisecond)

		player := s.Player()
		assert.True(t, player.Arena.Contains(player.Pos, player.Size), "frame %d: %+v", i, player.Pos)
	}
}
