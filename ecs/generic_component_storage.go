package ecs

import (
	"iter"
	"reflect"
)

// ComponentRegistry manages component type registration for an ECS instance.
// Each Storage owns its registry, so independent worlds (a running game and a
// headless simulation, for example) never share component storage.
type ComponentRegistry struct {
	factories map[reflect.Type]func() iComponentStorage
}

// NewComponentRegistry creates an empty component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() iComponentStorage),
	}
}

// RegisterComponent registers T with the registry. Every component type must be
// registered before an entity carrying it is spawned.
func RegisterComponent[T any](r *ComponentRegistry) {
	r.factories[reflect.TypeFor[T]()] = func() iComponentStorage {
		return &genericComponentStorage[T]{}
	}
}

// Registered reports whether t has a storage factory.
func (r *ComponentRegistry) Registered(t reflect.Type) bool {
	_, ok := r.factories[t]
	return ok
}

func (r *ComponentRegistry) getFactory(t reflect.Type) func() iComponentStorage {
	return r.factories[t]
}

const genericBlockSize = 64

type componentBlock[T any] struct {
	items  [genericBlockSize]T
	filled [genericBlockSize]bool
}

// genericComponentStorage stores components of type T in fixed-size blocks.
// Blocks are heap allocated individually so pointers handed out by Get stay
// valid when the storage grows.
type genericComponentStorage[T any] struct {
	blocks    []*componentBlock[T]
	freeSlots []int
	nextIndex int
	live      int
}

func (cs *genericComponentStorage[T]) locate(index int) (*componentBlock[T], int) {
	if index < 0 {
		return nil, 0
	}
	blockIdx := index / genericBlockSize
	if blockIdx >= len(cs.blocks) {
		return nil, 0
	}
	return cs.blocks[blockIdx], index % genericBlockSize
}

// Append stores item (a T or *T) and returns its slot index, or -1 when item
// has the wrong type.
func (cs *genericComponentStorage[T]) Append(item any) int {
	var value T
	switch v := item.(type) {
	case *T:
		value = *v
	case T:
		value = v
	default:
		return -1
	}

	var index int
	if n := len(cs.freeSlots); n > 0 {
		index = cs.freeSlots[n-1]
		cs.freeSlots = cs.freeSlots[:n-1]
	} else {
		index = cs.nextIndex
		cs.nextIndex++
		if index/genericBlockSize >= len(cs.blocks) {
			cs.blocks = append(cs.blocks, &componentBlock[T]{})
		}
	}

	block, slot := cs.locate(index)
	block.items[slot] = value
	block.filled[slot] = true
	cs.live++
	return index
}

// Get returns a *T for the slot, or nil when the slot is empty.
func (cs *genericComponentStorage[T]) Get(index int) any {
	block, slot := cs.locate(index)
	if block == nil || !block.filled[slot] {
		return nil
	}
	return &block.items[slot]
}

// Delete empties the slot and queues it for reuse.
func (cs *genericComponentStorage[T]) Delete(index int) {
	block, slot := cs.locate(index)
	if block == nil || !block.filled[slot] {
		return
	}
	var zero T
	block.items[slot] = zero
	block.filled[slot] = false
	cs.freeSlots = append(cs.freeSlots, index)
	cs.live--
}

func (cs *genericComponentStorage[T]) Has(index int) bool {
	block, slot := cs.locate(index)
	return block != nil && block.filled[slot]
}

func (cs *genericComponentStorage[T]) Len() int {
	return cs.live
}

func (cs *genericComponentStorage[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < cs.nextIndex; i++ {
			block, slot := cs.locate(i)
			if block == nil || !block.filled[slot] {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}
