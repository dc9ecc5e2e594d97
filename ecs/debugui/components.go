package debugui

import (
	"github.com/plus3/scienteer/ecs"
)

// StoragePanel shows frame timing and the archetype breakdown of a storage.
type StoragePanel struct {
	target       *ecs.Storage
	frameHistory []float32
	frameIndex   int
	timer        *FrameTimer
}

// SchedulerPanel shows per-system execution timings.
type SchedulerPanel struct {
	scheduler *ecs.Scheduler
}

// EntityBrowser lists the entities of a storage and inspects the selected one.
type EntityBrowser struct {
	target     *ecs.Storage
	filterText string
	selected   ecs.EntityId
	hasPick    bool
}
