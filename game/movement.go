package game

import (
	"github.com/plus3/scienteer/config"
	"github.com/plus3/scienteer/ecs"
)

// MovementSystem integrates every Movable's velocity into its position and
// keeps it from sinking below the ground plane.
type MovementSystem struct {
	Config   config.Config
	Entities ecs.Query[Movable]
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	ground := s.Config.World.GroundLevel
	for m := range s.Entities.Values() {
		pos := &m.Transform.Position
		*pos = pos.Add(m.Velocity.Speed.Scale(frame.DeltaTime))
		pos.Y = max(pos.Y, ground)
	}
}
