package debugui

import (
	"fmt"
	"strings"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/roamer/ecs"
)

// StatsPanel shows storage and scheduler statistics next to a frame time
// graph. Lines, when set, adds application rows at the top of the window.
type StatsPanel struct {
	Title     string
	Storage   *ecs.Storage
	Scheduler *ecs.Scheduler
	Lines     func() []string

	history []float32
	index   int
	filled  int
}

func NewStatsPanel(title string, storage *ecs.Storage, scheduler *ecs.Scheduler, historyFrames int) *StatsPanel {
	return &StatsPanel{
		Title:     title,
		Storage:   storage,
		Scheduler: scheduler,
		history:   make([]float32, max(historyFrames, 1)),
	}
}

// Item returns an ImguiItem that renders the panel.
func (p *StatsPanel) Item() ImguiItem {
	return ImguiItem{Render: p.Render}
}

// Record adds one frame's duration to the graph history.
func (p *StatsPanel) Record(frame time.Duration) {
	p.history[p.index] = float32(frame.Seconds() * 1000)
	p.index = (p.index + 1) % len(p.history)
	p.filled = min(p.filled+1, len(p.history))
}

// AverageFrame is the mean of the recorded frame durations.
func (p *StatsPanel) AverageFrame() time.Duration {
	if p.filled == 0 {
		return 0
	}

	var total float64
	for _, ms := range p.history[:p.filled] {
		total += float64(ms)
	}
	return time.Duration(total / float64(p.filled) * float64(time.Millisecond))
}

func (p *StatsPanel) Render() {
	if !imgui.BeginV(p.Title, nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if p.Lines != nil {
		for _, line := range p.Lines() {
			imgui.Text(line)
		}
		imgui.Separator()
	}

	avg := p.AverageFrame()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg.Seconds()*1000, 1/avg.Seconds()))
	}
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &p.history[0], int32(len(p.history)))

	if p.Storage != nil {
		p.renderStorage(p.Storage.CollectStats())
	}
	if p.Scheduler != nil {
		p.renderSystems(p.Scheduler.GetStats())
	}

	imgui.End()
}

func (p *StatsPanel) renderStorage(stats *ecs.StorageStats) {
	imgui.Text(fmt.Sprintf("Total Entities: %d", stats.TotalEntityCount))
	imgui.Text(fmt.Sprintf("Archetypes: %d", stats.ArchetypeCount))
	imgui.Text(fmt.Sprintf("Singletons: %d", stats.SingletonCount))

	if imgui.TreeNodeStr("Archetype Details") {
		renderTable("ArchStatsTable", []string{"Archetype ID", "Components", "Entity Count"}, archetypeRows(stats))
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Singleton Details") {
		for _, singletonType := range stats.SingletonTypes {
			imgui.BulletText(singletonType)
		}
		imgui.TreePop()
	}
}

func (p *StatsPanel) renderSystems(stats *ecs.SchedulerStats) {
	if imgui.TreeNodeStr(fmt.Sprintf("Systems (%d)", stats.SystemCount)) {
		renderTable("SystemStatsTable", []string{"System", "Runs", "Last", "Avg", "Max"}, systemRows(stats))
		imgui.TreePop()
	}
}

func renderTable(id string, headers []string, rows [][]string) {
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if !imgui.BeginTableV(id, int32(len(headers)), tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}

	for _, header := range headers {
		imgui.TableSetupColumn(header)
	}
	imgui.TableHeadersRow()

	for _, row := range rows {
		imgui.TableNextRow()
		for _, cell := range row {
			imgui.TableNextColumn()
			imgui.Text(cell)
		}
	}

	imgui.EndTable()
}

func archetypeRows(stats *ecs.StorageStats) [][]string {
	rows := make([][]string, 0, len(stats.ArchetypeBreakdown))
	for _, arch := range stats.ArchetypeBreakdown {
		rows = append(rows, []string{
			fmt.Sprintf("0x%X", arch.ID),
			strings.Join(arch.ComponentTypes, ", "),
			fmt.Sprintf("%d", arch.EntityCount),
		})
	}
	return rows
}

func systemRows(stats *ecs.SchedulerStats) [][]string {
	rows := make([][]string, 0, len(stats.Systems))
	for _, sys := range stats.Systems {
		rows = append(rows, []string{
			sys.Name,
			fmt.Sprintf("%d", sys.ExecutionCount),
			sys.LastDuration.String(),
			sys.AvgDuration.String(),
			sys.MaxDuration.String(),
		})
	}
	return rows
}
