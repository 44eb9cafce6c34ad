package ecs

import (
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// storageBinder is implemented by Query, View and Singleton.
type storageBinder interface {
	Init(storage *Storage)
}

// queryExecutor is implemented by Query.
type queryExecutor interface {
	Execute()
}

type registeredSystem struct {
	system  System
	queries []queryExecutor
	stats   *systemStatsInternal
}

// Scheduler manages and executes systems in registration order.
type Scheduler struct {
	storage *Storage
	systems []*registeredSystem
}

// NewScheduler creates a new scheduler for the given storage.
func NewScheduler(storage *Storage) *Scheduler {
	return &Scheduler{
		storage: storage,
	}
}

// Register adds a system to the scheduler and binds its Query, View and
// Singleton fields to the scheduler's storage.
func (s *Scheduler) Register(system System) {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systems = append(s.systems, &registeredSystem{
		system:  system,
		queries: s.bindFields(system),
		stats: &systemStatsInternal{
			name:        systemType.Name(),
			minDuration: time.Duration(1<<63 - 1),
		},
	})
}

func (s *Scheduler) bindFields(system System) []queryExecutor {
	systemValue := reflect.ValueOf(system)
	if systemValue.Kind() != reflect.Ptr || systemValue.Elem().Kind() != reflect.Struct {
		return nil
	}
	systemValue = systemValue.Elem()

	var queries []queryExecutor
	for i := 0; i < systemValue.NumField(); i++ {
		field := systemValue.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		addr := field.Addr().Interface()
		if binder, ok := addr.(storageBinder); ok {
			binder.Init(s.storage)
		}
		if query, ok := addr.(queryExecutor); ok {
			queries = append(queries, query)
		}
	}
	return queries
}

// Once executes all registered systems once with the given elapsed time.
// Each system's queries are refreshed right before it runs, so entities
// spawned by an earlier system are visible to later ones in the same pass.
// Deferred commands run after the last system.
func (s *Scheduler) Once(elapsed time.Duration) {
	frame := newUpdateFrame(elapsed, s.storage)

	for _, reg := range s.systems {
		start := time.Now()
		for _, query := range reg.queries {
			query.Execute()
		}
		reg.system.Execute(frame)
		duration := time.Since(start)

		stats := reg.stats
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	frame.Commands.Flush()
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.systems)),
	}

	var totalExecs int64
	for i, reg := range s.systems {
		internal := reg.stats
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
