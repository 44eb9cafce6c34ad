package ecs

import (
	"iter"
)

// Query wraps a View with a per-frame cache of matching entities.
// Results come back in spawn order, which is also render order.
type Query[T any] struct {
	view    *View[T]
	storage *Storage
	matches map[uint32]bool

	cachedEntities   []EntityId
	cachedComponents []T
	cacheValid       bool
}

// NewQuery creates a new Query over the given storage.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init initializes or re-initializes the Query with a storage.
// Called by the Scheduler during system registration.
func (q *Query[T]) Init(storage *Storage) {
	q.view = NewView[T](storage)
	q.storage = storage
	q.matches = make(map[uint32]bool)
	q.cacheValid = false
}

// Execute builds the entity and component caches for this frame.
// Called automatically by the Scheduler before the owning system runs.
func (q *Query[T]) Execute() {
	q.cachedEntities = q.cachedEntities[:0]
	q.cachedComponents = q.cachedComponents[:0]

	var item T
	for id := range q.storage.Entities() {
		if !q.matchesArchetype(id.ArchetypeId()) {
			continue
		}
		if !q.view.Fill(id, &item) {
			continue
		}
		q.cachedEntities = append(q.cachedEntities, id)
		q.cachedComponents = append(q.cachedComponents, item)
	}

	q.cacheValid = true
}

func (q *Query[T]) matchesArchetype(archetypeId uint32) bool {
	matched, seen := q.matches[archetypeId]
	if !seen {
		archetype := q.storage.archetype(archetypeId)
		matched = archetype != nil && q.view.matchesArchetype(archetype)
		q.matches[archetypeId] = matched
	}
	return matched
}

// Len returns the number of entities captured by the last Execute.
func (q *Query[T]) Len() int {
	return len(q.cachedEntities)
}

// Iter returns an iterator over component data.
// Panics if Execute() has not been called.
func (q *Query[T]) Iter() iter.Seq[T] {
	if !q.cacheValid {
		panic("Query.Iter() called before Query.Execute()")
	}

	return func(yield func(T) bool) {
		for i := range q.cachedComponents {
			if !yield(q.cachedComponents[i]) {
				return
			}
		}
	}
}

// Entries returns an iterator over entity IDs and component data.
// Panics if Execute() has not been called.
func (q *Query[T]) Entries() iter.Seq2[EntityId, T] {
	if !q.cacheValid {
		panic("Query.Entries() called before Query.Execute()")
	}

	return func(yield func(EntityId, T) bool) {
		for i := range q.cachedEntities {
			if !yield(q.cachedEntities[i], q.cachedComponents[i]) {
				return
			}
		}
	}
}
