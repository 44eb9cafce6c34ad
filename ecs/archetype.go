package ecs

import (
	"reflect"
	"slices"
)

type byTypeName []reflect.Type

func (a byTypeName) Len() int           { return len(a) }
func (a byTypeName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byTypeName) Less(i, j int) bool { return a[i].String() < a[j].String() }

// Archetype represents a unique combination of component types
type Archetype struct {
	id       uint32
	types    []reflect.Type
	storages []componentStorage
}

func newArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:       id,
		types:    types,
		storages: make([]componentStorage, len(types)),
	}

	for idx, typ := range types {
		factory := registry.getFactory(typ)
		if factory == nil {
			panic("component type " + typ.String() + " not registered")
		}
		a.storages[idx] = factory()
	}

	return a
}

// spawn appends one row of components and returns its index.
// Every column grows in lockstep, so the index is shared by all columns.
func (a *Archetype) spawn(components []any) uint32 {
	var storagePos int
	for _, comp := range components {
		compType := reflect.TypeOf(comp)
		if compType.Kind() == reflect.Ptr {
			compType = compType.Elem()
		}

		idx := a.column(compType)
		if idx == -1 {
			panic("component type " + compType.String() + " does not belong to archetype")
		}
		storagePos = a.storages[idx].Append(comp)
	}

	return uint32(storagePos)
}

func (a *Archetype) column(compType reflect.Type) int {
	for i, typ := range a.types {
		if typ == compType {
			return i
		}
	}
	return -1
}

// GetComponent returns a pointer to the component of the given type for the
// entity at entityIndex, or nil when the archetype lacks that component.
func (a *Archetype) GetComponent(entityIndex uint32, compType reflect.Type) any {
	idx := a.column(compType)
	if idx == -1 {
		return nil
	}
	return a.storages[idx].Get(int(entityIndex))
}

// HasComponent checks if this archetype has the given component type
func (a *Archetype) HasComponent(compType reflect.Type) bool {
	return slices.Contains(a.types, compType)
}

// ID returns the archetype's unique identifier
func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the sorted component types for this archetype
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// Len returns the number of entities stored in this archetype
func (a *Archetype) Len() int {
	if len(a.storages) == 0 {
		return 0
	}
	return a.storages[0].Len()
}

// Iter returns an iterator over all EntityIds in this archetype, in spawn order
func (a *Archetype) Iter() func(yield func(EntityId) bool) {
	return func(yield func(EntityId) bool) {
		if len(a.storages) == 0 {
			return
		}

		for index := range a.storages[0].Iter() {
			if !yield(NewEntityId(a.id, uint32(index))) {
				return
			}
		}
	}
}
