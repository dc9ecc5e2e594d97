package ecs_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/scienteer/ecs"
)

type MovementSystem struct {
	Entities ecs.Query[struct {
		*Position
		*Velocity
	}]
	ExecuteCount int
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	for item := range s.Entities.Values() {
		item.Position.X += item.Velocity.DX * frame.DeltaTime
		item.Position.Y += item.Velocity.DY * frame.DeltaTime
	}
}

type TickSystem struct {
	Counter ecs.Singleton[Counter]
	Elapsed []float64
	Indices []uint64
}

func (s *TickSystem) Execute(frame *ecs.UpdateFrame) {
	s.Counter.Get().Ticks++
	s.Elapsed = append(s.Elapsed, frame.Elapsed)
	s.Indices = append(s.Indices, frame.Index)
}

func TestScheduler(t *testing.T) {
	registry := newTestRegistry()

	t.Run("system execution and query binding", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		movement := &MovementSystem{}
		scheduler.Register(movement)

		id := storage.Spawn(Position{}, Velocity{DX: 10, DY: 20})

		scheduler.Once(0.5)
		scheduler.Once(0.5)

		if movement.ExecuteCount != 2 {
			t.Errorf("expected MovementSystem to execute twice, got %d", movement.ExecuteCount)
		}

		pos := ecs.ReadComponent[Position](storage, id)
		if pos.X != 10 || pos.Y != 20 {
			t.Errorf("expected position (10, 20), got (%v, %v)", pos.X, pos.Y)
		}
	})

	t.Run("singletons and frame clock", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		ecs.NewSingleton[Counter](storage)
		scheduler := ecs.NewScheduler(storage)

		tick := &TickSystem{}
		scheduler.Register(tick)

		scheduler.Once(0.25)
		scheduler.Once(0.25)
		scheduler.Once(0.5)

		if got := tick.Counter.Get().Ticks; got != 3 {
			t.Errorf("expected 3 ticks, got %d", got)
		}
		want := []float64{0.25, 0.5, 1.0}
		for i, e := range want {
			if tick.Elapsed[i] != e {
				t.Errorf("frame %d: expected elapsed %v, got %v", i, e, tick.Elapsed[i])
			}
			if tick.Indices[i] != uint64(i) {
				t.Errorf("frame %d: expected index %d, got %d", i, i, tick.Indices[i])
			}
		}
		if scheduler.Elapsed() != 1.0 || scheduler.Frames() != 3 {
			t.Errorf("expected 1.0s over 3 frames, got %vs over %d", scheduler.Elapsed(), scheduler.Frames())
		}
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		movement := &MovementSystem{}
		scheduler.Register(movement)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, 1*time.Millisecond)
			done <- true
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		if movement.ExecuteCount == 0 {
			t.Error("expected system to execute at least once")
		}
	})

	t.Run("stats", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		stats := scheduler.GetStats()
		if stats.SystemCount != 0 || stats.TotalExecutions != 0 {
			t.Errorf("expected empty stats, got %+v", stats)
		}

		scheduler.Register(&MovementSystem{})
		ecs.NewSingleton[Counter](storage)
		scheduler.Register(&TickSystem{})

		for i := 0; i < 3; i++ {
			scheduler.Once(0.016)
		}

		stats = scheduler.GetStats()
		if stats.SystemCount != 2 {
			t.Errorf("expected 2 systems, got %d", stats.SystemCount)
		}
		if stats.TotalExecutions != 6 {
			t.Errorf("expected 6 total executions, got %d", stats.TotalExecutions)
		}
		if stats.Systems[0].Name != "MovementSystem" || stats.Systems[1].Name != "TickSystem" {
			t.Errorf("unexpected system names: %q, %q", stats.Systems[0].Name, stats.Systems[1].Name)
		}
		for _, s := range stats.Systems {
			if s.ExecutionCount != 3 {
				t.Errorf("%s: expected 3 executions, got %d", s.Name, s.ExecutionCount)
			}
			if s.MinDuration > s.MaxDuration {
				t.Errorf("%s: min %v above max %v", s.Name, s.MinDuration, s.MaxDuration)
			}
		}
	})
}
