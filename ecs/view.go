package ecs

import (
	"reflect"
	"unsafe"
)

var entityIdType = reflect.TypeFor[EntityId]()

// View resolves entities into a struct of component pointers.
// The type T must be a struct whose fields are pointers to component types,
// embedded or named. A field of type EntityId receives the entity's ID.
//
//	type Mover struct {
//		ecs.EntityId
//		*Position
//		*Velocity
//	}
type View[T any] struct {
	storage     *Storage
	types       []reflect.Type
	fieldOffset []uintptr
	idOffset    uintptr
	hasId       bool
}

// NewView creates a new view for the given struct type
func NewView[T any](storage *Storage) *View[T] {
	v := &View[T]{}
	v.Init(storage)
	return v
}

// Init binds the View to a storage and computes its field layout.
// This is called automatically by the Scheduler for View fields of systems.
func (v *View[T]) Init(storage *Storage) {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	v.storage = storage
	v.types = v.types[:0]
	v.fieldOffset = v.fieldOffset[:0]
	v.hasId = false

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		if field.Type == entityIdType {
			v.idOffset = field.Offset
			v.hasId = true
			continue
		}

		if field.Type.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types: " + field.Name)
		}

		v.types = append(v.types, field.Type.Elem())
		v.fieldOffset = append(v.fieldOffset, field.Offset)
	}
}

// Fill populates the provided struct pointer with component data for the given entity.
// Returns false if the entity is missing any of the view's components.
func (v *View[T]) Fill(id EntityId, ptr *T) bool {
	archetype := v.storage.archetype(id.ArchetypeId())
	if archetype == nil {
		return false
	}

	structPtr := unsafe.Pointer(ptr)

	for i, componentType := range v.types {
		component := archetype.GetComponent(id.Index(), componentType)
		if component == nil {
			return false
		}

		// Copy the data word out of the interface; it is the component's address.
		fieldPtr := unsafe.Add(structPtr, v.fieldOffset[i])
		*(*unsafe.Pointer)(fieldPtr) = (*iface)(unsafe.Pointer(&component)).data
	}

	if v.hasId {
		*(*EntityId)(unsafe.Add(structPtr, v.idOffset)) = id
	}

	return true
}

// Get returns a populated view struct for the given entity, or nil if the entity
// doesn't have all the required components
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

// matchesArchetype checks if an archetype contains all the component types for this view
func (v *View[T]) matchesArchetype(archetype *Archetype) bool {
	for _, requiredType := range v.types {
		if !archetype.HasComponent(requiredType) {
			return false
		}
	}
	return true
}
