package sim_test

import (
	"testing"

	"github.com/plus3/roamer/sim"
	"github.com/stretchr/testify/require"
)

// stubRand replays a fixed sequence of draws, cycling when it runs out.
type stubRand struct {
	values []float64
	draws  int
}

func (r *stubRand) Float64() float64 {
	v := r.values[r.draws%len(r.values)]
	r.draws++
	return v
}

func newSimulation(t *testing.T, cfg sim.Config, opts ...sim.Option) *sim.Simulation {
	t.Helper()
	s, err := sim.New(cfg, opts...)
	require.NoError(t, err)
	return s
}

func newWanderer(x, y float64, rnd sim.Rand) *sim.WanderingEntity {
	cfg := sim.DefaultConfig()
	return &sim.WanderingEntity{
		Body: &sim.Body{
			Pos:   sim.Vec2{X: x, Y: y},
			Size:  cfg.Wanderer.Size(),
			Arena: cfg.Arena,
		},
		Sprite: &sim.Sprite{Tag: sim.TagEnemy},
		Wander: &sim.Wander{
			BaseSpeed:   cfg.Wanderer.BaseSpeed,
			Timer:       sim.NewMovementTimer(cfg.InitialRetarget),
			RetargetMin: cfg.RetargetMin,
			RetargetMax: cfg.RetargetMax,
			Rand:        rnd,
		},
	}
}
