package ecs

import (
	"iter"
	"reflect"
	"sort"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// Storage is the main ECS storage. It owns every archetype, remembers the
// order entities were spawned in, and holds singleton components.
type Storage struct {
	archetypes *intmap.Map[uint32, *Archetype]
	registry   *ComponentRegistry
	order      []EntityId
	singletons map[reflect.Type]*singletonEntry
}

type singletonEntry struct {
	typ     reflect.Type
	dataPtr unsafe.Pointer
}

// NewStorage creates a new ECS storage system with the given component registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		archetypes: intmap.New[uint32, *Archetype](16),
		registry:   registry,
		singletons: make(map[reflect.Type]*singletonEntry),
	}
}

// GetArchetype returns an archetype storage (if one exists)
func (s *Storage) GetArchetype(components ...any) *Archetype {
	types := extractComponentTypes(components)
	archetype, _ := s.archetypes.Get(hashTypesToUint32(types))
	return archetype
}

func (s *Storage) archetype(id uint32) *Archetype {
	archetype, _ := s.archetypes.Get(id)
	return archetype
}

// Spawn creates a new entity with the provided components
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	types := extractComponentTypes(components)
	archetypeId := hashTypesToUint32(types)

	archetype, exists := s.archetypes.Get(archetypeId)
	if !exists {
		archetype = newArchetype(archetypeId, types, s.registry)
		s.archetypes.Put(archetypeId, archetype)
	}

	id := NewEntityId(archetypeId, archetype.spawn(components))
	s.order = append(s.order, id)
	return id
}

// Len returns the number of entities in the storage
func (s *Storage) Len() int {
	return len(s.order)
}

// Entities iterates every entity in the order it was spawned
func (s *Storage) Entities() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		for _, id := range s.order {
			if !yield(id) {
				return
			}
		}
	}
}

// GetComponent returns the component for the given entity ID and component type
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	archetype := s.archetype(id.ArchetypeId())
	if archetype == nil {
		return nil
	}
	return archetype.GetComponent(id.Index(), compType)
}

// HasComponent checks if an entity has a specific component type
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	archetype := s.archetype(id.ArchetypeId())
	if archetype == nil {
		return false
	}
	return archetype.HasComponent(compType)
}

// AddSingleton stores value as the singleton of its type, replacing any
// existing one. Pointers handed out for a replaced singleton keep pointing
// at the old value.
func (s *Storage) AddSingleton(value any) {
	typ := reflect.TypeOf(value)
	if typ == nil {
		panic("cannot add nil singleton")
	}

	ptr := reflect.New(typ)
	ptr.Elem().Set(reflect.ValueOf(value))
	s.singletons[typ] = &singletonEntry{
		typ:     typ,
		dataPtr: ptr.UnsafePointer(),
	}
}

func (s *Storage) getSingletonEntry(typ reflect.Type) *singletonEntry {
	return s.singletons[typ]
}

// ReadSingleton points *out at the stored singleton of type T.
// out must be a **T. Returns false if no such singleton exists.
func (s *Storage) ReadSingleton(out any) bool {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton expects a pointer to a pointer")
	}

	typ := rv.Elem().Type().Elem()
	entry := s.getSingletonEntry(typ)
	if entry == nil {
		return false
	}

	rv.Elem().Set(reflect.NewAt(typ, entry.dataPtr))
	return true
}

// extractComponentTypes extracts and sorts component types from a slice of components
func extractComponentTypes(components []any) []reflect.Type {
	types := make([]reflect.Type, 0, len(components))
	for _, comp := range components {
		compType := reflect.TypeOf(comp)

		if compType.Kind() == reflect.Ptr {
			compType = compType.Elem()
		}

		// Components are value types; pointers, maps, channels and functions are not.
		if compType.Kind() == reflect.Ptr || compType.Kind() == reflect.Map ||
			compType.Kind() == reflect.Chan || compType.Kind() == reflect.Func {
			panic("components cannot be pointers, maps, channels, or functions")
		}

		types = append(types, compType)
	}
	sort.Sort(byTypeName(types))
	return types
}

// hashTypesToUint32 generates a uint32 hash for a sorted slice of types
func hashTypesToUint32(types []reflect.Type) uint32 {
	var h uint32 = 2166136261     // FNV-1a 32-bit offset basis
	const prime uint32 = 16777619 // FNV-1a 32-bit prime

	for _, t := range types {
		// The rtype pointer identifies the type uniquely within a process
		ptr := (*iface)(unsafe.Pointer(&t)).data
		val := uint32(uintptr(ptr))

		if unsafe.Sizeof(uintptr(0)) == 8 {
			val ^= uint32(uintptr(ptr) >> 32)
		}

		h ^= val
		h *= prime
	}

	return h
}

type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns a typed pointer to an entity's component, or nil.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return comp
}
