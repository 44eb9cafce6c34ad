package sim_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/roamer/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, sim.DefaultConfig().Validate())
}

func TestParseConfig(t *testing.T) {
	cfg, err := sim.ParseConfig([]byte(`
arena: {width: 1024, height: 768}
wanderer: {width: 16, height: 16, base_speed: 8}
spawn_interval: 2s
retarget_max: 2500ms
seed: 7
`))
	require.NoError(t, err)

	assert.Equal(t, sim.Arena{Width: 1024, Height: 768}, cfg.Arena)
	assert.Equal(t, sim.EntityConfig{Width: 16, Height: 16, BaseSpeed: 8}, cfg.Wanderer)
	assert.Equal(t, 2*time.Second, cfg.SpawnInterval)
	assert.Equal(t, 2500*time.Millisecond, cfg.RetargetMax)
	assert.Equal(t, uint64(7), cfg.Seed)

	// Keys left out keep their defaults.
	defaults := sim.DefaultConfig()
	assert.Equal(t, defaults.Player, cfg.Player)
	assert.Equal(t, defaults.RetargetMin, cfg.RetargetMin)
	assert.Equal(t, defaults.MaxElapsed, cfg.MaxElapsed)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		invalid bool
	}{
		{"malformed yaml", "arena: [", false},
		{"bad duration", "spawn_interval: soon", false},
		{"zero arena", "arena: {width: 0, height: 600}", true},
		{"player too big", "player: {width: 900, height: 32, base_speed: 10}", true},
		{"negative speed", "wanderer: {width: 32, height: 32, base_speed: -1}", true},
		{"zero spawn interval", "spawn_interval: 0s", true},
		{"inverted retarget range", "retarget_min: 2s", true},
		{"empty retarget range", "retarget_min: 1s\nretarget_max: 1s", true},
		{"zero retarget range", "retarget_min: 0s\nretarget_max: 0s", true},
		{"zero retarget min", "retarget_min: 0s", true},
		{"negative max elapsed", "max_elapsed: -1s", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sim.ParseConfig([]byte(tt.data))
			require.Error(t, err)
			assert.Equal(t, tt.invalid, errors.Is(err, sim.ErrInvalidConfig), err.Error())
		})
	}
}

func TestValidateReportsPlayerBeforeWanderer(t *testing.T) {
	cfg := sim.DefaultConfig()
	cfg.Player.Width = 0
	cfg.Wanderer.Width = 0

	for i := 0; i < 20; i++ {
		err := cfg.Validate()
		require.ErrorIs(t, err, sim.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "player size")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roamer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player: {width: 20, height: 20, base_speed: 4}\n"), 0o644))

	cfg, err := sim.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, sim.EntityConfig{Width: 20, Height: 20, BaseSpeed: 4}, cfg.Player)

	_, err = sim.LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
