package ecs

import (
	"iter"
	"reflect"
)

// ComponentRegistry manages component type registration for an ECS instance.
// Each Storage instance has its own ComponentRegistry, allowing multiple
// independent simulations to coexist without interference.
type ComponentRegistry struct {
	factories map[reflect.Type]func() componentStorage
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() componentStorage),
	}
}

// RegisterComponent registers a new component type with the given registry.
// This must be called for each component type before it can be spawned.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	r.factories[t] = func() componentStorage {
		return &blockStorage[T]{}
	}
}

// Registered reports whether the component type T has been registered.
func Registered[T any](r *ComponentRegistry) bool {
	_, ok := r.factories[reflect.TypeFor[T]()]
	return ok
}

func (r *ComponentRegistry) getFactory(t reflect.Type) func() componentStorage {
	return r.factories[t]
}

// componentStorage is a type-erased column of components.
type componentStorage interface {
	Append(item any) int
	Get(index int) any
	Len() int
	Iter() iter.Seq[int]
}

const blockSize = 64

// blockStorage stores components of type T in fixed-size blocks.
// Blocks are heap allocated individually so a component's address never
// changes once appended; views may hold on to component pointers.
type blockStorage[T any] struct {
	blocks []*[blockSize]T
	count  int
}

// Append adds a component to storage and returns its index.
func (cs *blockStorage[T]) Append(item any) int {
	var concrete T
	if ptr, ok := item.(*T); ok {
		concrete = *ptr
	} else if val, ok := item.(T); ok {
		concrete = val
	} else {
		return -1
	}

	index := cs.count
	blockIdx := index / blockSize
	if blockIdx >= len(cs.blocks) {
		cs.blocks = append(cs.blocks, new([blockSize]T))
	}

	cs.blocks[blockIdx][index%blockSize] = concrete
	cs.count++
	return index
}

// Get returns a pointer to the component at the given index, or nil.
func (cs *blockStorage[T]) Get(index int) any {
	if index < 0 || index >= cs.count {
		return nil
	}
	return &cs.blocks[index/blockSize][index%blockSize]
}

func (cs *blockStorage[T]) Len() int {
	return cs.count
}

func (cs *blockStorage[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < cs.count; i++ {
			if !yield(i) {
				return
			}
		}
	}
}
