package ecs

import (
	"sort"
)

// StorageStats is a point-in-time summary of a Storage.
type StorageStats struct {
	ArchetypeCount     int
	TotalEntityCount   int
	SingletonCount     int
	ArchetypeBreakdown []ArchetypeStats
	SingletonTypes     []string
}

// ArchetypeStats describes a single archetype.
type ArchetypeStats struct {
	ID             uint32
	ComponentTypes []string
	EntityCount    int
}

// CollectStats walks the storage and summarises archetypes and singletons.
// Breakdown entries are sorted by archetype ID, singleton names alphabetically.
func (s *Storage) CollectStats() *StorageStats {
	stats := &StorageStats{
		ArchetypeCount: s.archetypes.Len(),
		SingletonCount: len(s.singletons),
	}

	s.archetypes.ForEach(func(id uint32, archetype *Archetype) bool {
		names := make([]string, 0, len(archetype.types))
		for _, typ := range archetype.types {
			names = append(names, typ.String())
		}

		count := archetype.Len()
		stats.TotalEntityCount += count
		stats.ArchetypeBreakdown = append(stats.ArchetypeBreakdown, ArchetypeStats{
			ID:             id,
			ComponentTypes: names,
			EntityCount:    count,
		})
		return true
	})

	sort.Slice(stats.ArchetypeBreakdown, func(i, j int) bool {
		return stats.ArchetypeBreakdown[i].ID < stats.ArchetypeBreakdown[j].ID
	})

	for typ := range s.singletons {
		stats.SingletonTypes = append(stats.SingletonTypes, typ.String())
	}
	sort.Strings(stats.SingletonTypes)

	return stats
}
