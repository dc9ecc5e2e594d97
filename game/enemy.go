package game

import (
	"math"

	"github.com/plus3/scienteer/config"
	"github.com/plus3/scienteer/ecs"
)

// EnemyPatrolSystem walks every enemy between the play-area edges while it
// bobs on a sine wave around its starting height.
type EnemyPatrolSystem struct {
	Config  config.Config
	Enemies ecs.Query[Patroller]
	Stats   ecs.Singleton[SessionStats]
}

func (s *EnemyPatrolSystem) Execute(frame *ecs.UpdateFrame) {
	cfg := s.Config.Enemy
	left, right := s.Config.EnemyBounds()
	step := cfg.Speed * frame.DeltaTime

	for e := range s.Enemies.Values() {
		e.Enemy.Time += frame.DeltaTime
		pos := &e.Transform.Position
		pos.Y = e.Enemy.StartY + math.Sin(e.Enemy.Time*cfg.WaveFrequency)*cfg.WaveAmplitude

		if e.Enemy.MovingRight {
			pos.X += step
			if pos.X > right {
				e.Enemy.MovingRight = false
				e.Transform.Scale.X = -1
				s.Stats.Get().EnemyTurns++
			}
		} else {
			pos.X -= step
			if pos.X < left {
				e.Enemy.MovingRight = true
				e.Transform.Scale.X = 1
				s.Stats.Get().EnemyTurns++
			}
		}
	}
}

func spawnEnemy(storage *ecs.Storage, cfg config.Config) ecs.EntityId {
	return storage.Spawn(
		NewTransform(-cfg.HalfWidth(), 0, 0),
		Sprite{
			Asset: AssetEnemy,
			Size:  Vec2{X: cfg.Enemy.Size / 2, Y: cfg.Enemy.Size},
		},
		Enemy{MovingRight: true},
		Velocity{},
	)
}
