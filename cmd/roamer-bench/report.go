package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	Step      time.Duration
	Seed      uint64
	ArenaSize string

	// Results
	TotalTicks     int64
	TotalTime      time.Duration
	SimulatedTime  time.Duration
	Entities       int
	Spawned        int
	MaxOvershoot   float64
	Violations     int
	TickTime       Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

const reportTemplate = `
# Roamer Simulation Report

## Run Configuration
- **Run Duration:** {{.Duration}}
- **Tick Step:** {{.Step}}
- **Seed:** {{.Seed}}
- **Arena:** {{.ArenaSize}}

## Simulation Results
- **Total Ticks:** {{.TotalTicks}}
- **Simulated Time:** {{.SimulatedTime}}
- **Entities:** {{.Entities}} ({{.Spawned}} spawned)
- **Player Bound Violations:** {{.Violations}}
- **Max Wanderer Overshoot:** {{printf "%.2f" .MaxOvershoot}}px

## Performance Results
- **Total Test Time:** {{.TotalTime}}
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}

## Memory Usage
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} MB (start) -> {{mb .MemStatsEnd.HeapAlloc}} MB (end)
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} MB (start) -> {{mb .MemStatsEnd.TotalAlloc}} MB (end)
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

var reportFuncs = template.FuncMap{
	"mb": func(v uint64) string {
		return fmt.Sprintf("%.2f", float64(v)/1024/1024)
	},
	"usub": func(a, b uint32) uint32 {
		return a - b
	},
	"ns": func(ns uint64) string {
		return time.Duration(ns).String()
	},
}

func (r *Report) Generate(w io.Writer) error {
	tmpl, err := template.New("report").Funcs(reportFuncs).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}
	return tmpl.Execute(w, r)
}
