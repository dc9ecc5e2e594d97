package ecs_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/plus3/scienteer/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityIdEncoding(t *testing.T) {
	tests := []struct {
		archetypeId uint32
		index       uint32
	}{
		{0, 0},
		{0xFFFFFFFF, 0xFFFFFFFF},
		{1, 0},
		{0, 1},
		{0x12345678, 0x9ABCDEF0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("archetype=%d,index=%d", tt.archetypeId, tt.index), func(t *testing.T) {
			entityId := ecs.NewEntityId(tt.archetypeId, tt.index)
			assert.Equal(t, tt.archetypeId, entityId.ArchetypeId())
			assert.Equal(t, tt.index, entityId.Index())
		})
	}
}

func TestSpawnAndGetComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(&Position{X: 3, Y: 4}, Name("crate"))
	assert.True(t, storage.Alive(id))

	pos := ecs.ReadComponent[Position](storage, id)
	require.NotNil(t, pos)
	assert.Equal(t, 3.0, pos.X)
	assert.Equal(t, 4.0, pos.Y)

	name := ecs.ReadComponent[Name](storage, id)
	require.NotNil(t, name)
	assert.Equal(t, Name("crate"), *name)

	assert.Nil(t, ecs.ReadComponent[Velocity](storage, id))
	assert.True(t, storage.HasComponent(id, reflect.TypeFor[Position]()))
	assert.False(t, storage.HasComponent(id, reflect.TypeFor[Velocity]()))
}

func TestSpawnWithoutComponentsPanics(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	assert.Panics(t, func() { storage.Spawn() })
}

func TestSpawnUnregisteredComponentPanics(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	assert.Panics(t, func() { storage.Spawn(Counter{}) })
}

func TestSpawnRejectsPointerComponents(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	p := &Position{}
	assert.Panics(t, func() { storage.Spawn(&p) })
}

func TestSameArchetypeRegardlessOfOrder(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	a := storage.Spawn(Position{}, Velocity{})
	b := storage.Spawn(Velocity{}, Position{})

	assert.Equal(t, a.ArchetypeId(), b.ArchetypeId())
	assert.NotEqual(t, a.Index(), b.Index())
	assert.Len(t, storage.GetArchetypes(), 1)
	assert.NotNil(t, storage.GetArchetype(Velocity{}, Position{}))
	assert.Nil(t, storage.GetArchetype(Position{}))
}

func TestDeleteEntity(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 1}, Health{Current: 10, Max: 10})
	storage.Delete(id)

	assert.False(t, storage.Alive(id))
	assert.Nil(t, storage.GetComponent(id, reflect.TypeFor[Position]()))

	// Deleting again, or deleting an unknown id, is a no-op.
	storage.Delete(id)
	storage.Delete(ecs.NewEntityId(99, 0))
}

func TestDeletedSlotsAreReused(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	first := storage.Spawn(Position{X: 1})
	storage.Spawn(Position{X: 2})
	storage.Delete(first)

	reused := storage.Spawn(Position{X: 3})
	assert.Equal(t, first.Index(), reused.Index())
	assert.Equal(t, 3.0, ecs.ReadComponent[Position](storage, reused).X)
}

func TestComponentPointersSurviveGrowth(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 1})
	pos := ecs.ReadComponent[Position](storage, id)

	for i := 0; i < 1000; i++ {
		storage.Spawn(Position{X: float64(i)})
	}

	pos.X = 42
	assert.Equal(t, 42.0, ecs.ReadComponent[Position](storage, id).X)
}

func TestEntityRefInvalidatedOnDelete(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 5})
	ref := storage.CreateEntityRef(id)
	require.NotNil(t, ref)
	assert.True(t, ref.Valid())
	assert.Same(t, ref, storage.CreateEntityRef(id))

	resolved, ok := storage.ResolveEntityRef(ref)
	assert.True(t, ok)
	assert.Equal(t, id, resolved)

	storage.Delete(id)
	assert.False(t, ref.Valid())
	_, ok = storage.ResolveEntityRef(ref)
	assert.False(t, ok)

	assert.Nil(t, storage.CreateEntityRef(id))
}

func TestSingletons(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	counter := ecs.NewSingleton[Counter](storage, Counter{Ticks: 3})
	counter.Get().Ticks++

	var read *Counter
	require.True(t, storage.ReadSingleton(&read))
	assert.Equal(t, 4, read.Ticks)

	var missing *Health
	assert.False(t, storage.ReadSingleton(&missing))
	assert.Nil(t, missing)

	again := ecs.NewSingleton[Counter](storage, Counter{Ticks: 100})
	assert.Equal(t, 4, again.Get().Ticks)
}

func TestCollectStats(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	stats := storage.CollectStats()
	assert.Equal(t, 0, stats.ArchetypeCount)
	assert.Equal(t, 0, stats.TotalEntityCount)

	storage.Spawn(Position{}, Velocity{})
	storage.Spawn(Position{}, Velocity{})
	doomed := storage.Spawn(Name("x"))
	storage.Delete(doomed)
	ecs.NewSingleton[Counter](storage)

	stats = storage.CollectStats()
	assert.Equal(t, 2, stats.ArchetypeCount)
	assert.Equal(t, 2, stats.TotalEntityCount)
	assert.Equal(t, 1, stats.SingletonCount)
	assert.Equal(t, []string{"ecs_test.Counter"}, stats.SingletonTypes)

	counts := map[string]int{}
	for _, arch := range stats.ArchetypeBreakdown {
		counts[arch.Label()] = arch.EntityCount
	}
	assert.Equal(t, map[string]int{
		"ecs_test.Name":                       0,
		"ecs_test.Position+ecs_test.Velocity": 2,
	}, counts)
}
