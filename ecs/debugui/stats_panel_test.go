package debugui

import (
	"testing"
	"time"

	"github.com/plus3/roamer/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type marker struct{ N int }

type countSystem struct {
	Markers ecs.Query[struct{ *marker }]
	seen    int
}

func (s *countSystem) Execute(frame *ecs.UpdateFrame) {
	s.seen = s.Markers.Len()
}

func TestStatsPanelAverageFrame(t *testing.T) {
	panel := NewStatsPanel("Stats", nil, nil, 4)
	assert.Equal(t, time.Duration(0), panel.AverageFrame())

	panel.Record(10 * time.Millisecond)
	panel.Record(20 * time.Millisecond)
	assert.Equal(t, 15*time.Millisecond, panel.AverageFrame())

	// Older samples roll off once the history is full.
	for i := 0; i < 4; i++ {
		panel.Record(2 * time.Millisecond)
	}
	assert.InDelta(t, float64(2*time.Millisecond), float64(panel.AverageFrame()), float64(time.Microsecond))
}

func TestStatsRows(t *testing.T) {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[marker](registry)
	RegisterComponents(registry)

	storage := ecs.NewStorage(registry)
	storage.Spawn(marker{N: 1})
	storage.Spawn(marker{N: 2})
	storage.Spawn(ImguiItem{})

	scheduler := ecs.NewScheduler(storage)
	counter := &countSystem{}
	scheduler.Register(counter)
	scheduler.Once(time.Millisecond)
	assert.Equal(t, 2, counter.seen)

	rows := archetypeRows(storage.CollectStats())
	require.Len(t, rows, 2)
	counts := []string{rows[0][2], rows[1][2]}
	assert.ElementsMatch(t, []string{"1", "2"}, counts)

	systems := systemRows(scheduler.GetStats())
	require.Len(t, systems, 1)
	assert.Equal(t, "countSystem", systems[0][0])
	assert.Equal(t, "1", systems[0][1])
}

func TestStatsPanelItem(t *testing.T) {
	panel := NewStatsPanel("Stats", nil, nil, 0)
	assert.NotNil(t, panel.Item().Render)
	assert.Len(t, panel.history, 1)
}
