package ecs_test

import (
	"testing"

	"github.com/plus3/scienteer/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type movable struct {
	*Position
	*Velocity
}

type labelled struct {
	*Position
	Name *Name `ecs:"optional"`
}

func TestViewGetAndMutate(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 1}, Velocity{DX: 2})

	view := ecs.NewView[movable](storage)
	m := view.Get(id)
	require.NotNil(t, m)

	m.Position.X += m.Velocity.DX
	assert.Equal(t, 3.0, ecs.ReadComponent[Position](storage, id).X)
}

func TestViewRequiredComponentMissing(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{})

	view := ecs.NewView[movable](storage)
	assert.Nil(t, view.Get(id))
	assert.Equal(t, 0, view.Count())
}

func TestViewOptionalComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	named := storage.Spawn(Position{X: 1}, Name("a"))
	anonymous := storage.Spawn(Position{X: 2})

	view := ecs.NewView[labelled](storage)
	assert.Equal(t, 2, view.Count())

	got := view.Get(named)
	require.NotNil(t, got)
	require.NotNil(t, got.Name)
	assert.Equal(t, Name("a"), *got.Name)

	got = view.Get(anonymous)
	require.NotNil(t, got)
	assert.Nil(t, got.Name)
}

func TestViewGetRef(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 7}, Velocity{})
	ref := storage.CreateEntityRef(id)

	view := ecs.NewView[movable](storage)
	require.NotNil(t, view.GetRef(ref))
	assert.Equal(t, 7.0, view.GetRef(ref).Position.X)

	storage.Delete(id)
	assert.Nil(t, view.GetRef(ref))
	assert.Nil(t, view.GetRef(nil))
}

func TestViewIterSkipsDeleted(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	keep := storage.Spawn(Position{}, Velocity{})
	drop := storage.Spawn(Position{}, Velocity{})
	storage.Spawn(Position{}, Velocity{}, Health{})
	storage.Delete(drop)

	view := ecs.NewView[movable](storage)
	seen := map[ecs.EntityId]bool{}
	for id := range view.Iter() {
		seen[id] = true
	}
	assert.Len(t, seen, 2)
	assert.True(t, seen[keep])
	assert.False(t, seen[drop])
}

func TestViewInvalidTypes(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	assert.Panics(t, func() { ecs.NewView[int](storage) })
	assert.Panics(t, func() {
		ecs.NewView[struct{ Position Position }](storage)
	})
	assert.Panics(t, func() {
		ecs.NewView[struct {
			P *Position `ecs:"sometimes"`
		}](storage)
	})
}

func TestQueryRequiresRefresh(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	q := ecs.NewQuery[movable](storage)
	assert.Panics(t, func() { q.Iter() })
	assert.Panics(t, func() { q.Values() })
}

func TestQuerySnapshot(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	storage.Spawn(Position{X: 1}, Velocity{DX: 1})

	q := ecs.NewQuery[movable](storage)
	q.Refresh()
	assert.Equal(t, 1, q.Len())

	// New archetypes and entities show up on the next refresh only.
	storage.Spawn(Position{X: 2}, Velocity{DX: 1}, Name("b"))
	assert.Equal(t, 1, q.Len())

	q.Refresh()
	assert.Equal(t, 2, q.Len())

	total := 0.0
	for m := range q.Values() {
		total += m.Position.X
	}
	assert.Equal(t, 3.0, total)
}
