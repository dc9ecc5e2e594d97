package game

import (
	"github.com/plus3/scienteer/config"
	"github.com/plus3/scienteer/ecs"
)

// ProjectileSpawnSystem throws a bottle in the facing direction while fire
// is held, at most once per cooldown.
type ProjectileSpawnSystem struct {
	Config config.Config
	Input  Input
	Player *ecs.EntityRef

	View  ecs.View[Shooter]
	Stats ecs.Singleton[SessionStats]
}

func (s *ProjectileSpawnSystem) Execute(frame *ecs.UpdateFrame) {
	if !s.Input.Pressed(Fire) {
		return
	}

	p := resolve(&s.View, s.Player, "player")
	if frame.Elapsed < p.Player.LastShotTime+s.Config.Projectile.Cooldown {
		return
	}

	speed := s.Config.Projectile.Speed
	if !p.Player.FacingRight {
		speed = -speed
	}
	size := s.Config.Projectile.Size

	frame.Commands.Spawn(
		NewTransform(p.Transform.Position.X, p.Transform.Position.Y, 0),
		Sprite{
			Asset: AssetProjectile,
			Size:  Vec2{X: size, Y: size},
			FlipX: !p.Player.FacingRight,
		},
		Projectile{},
		Velocity{Speed: Vec2{X: speed}},
	)
	p.Player.LastShotTime = frame.Elapsed
	s.Stats.Get().ShotsFired++
}

// ProjectileCleanupSystem removes projectiles that left the play area.
type ProjectileCleanupSystem struct {
	Config      config.Config
	Projectiles ecs.Query[Flying]
	Stats       ecs.Singleton[SessionStats]
}

func (s *ProjectileCleanupSystem) Execute(frame *ecs.UpdateFrame) {
	half := s.Config.HalfWidth()
	for id, p := range s.Projectiles.Iter() {
		if x := p.Transform.Position.X; x < -half || x > half {
			frame.Commands.Delete(id)
			s.Stats.Get().ProjectilesDespawned++
		}
	}
}

// ProjectileRotationSystem spins every projectile at a constant rate.
type ProjectileRotationSystem struct {
	Config      config.Config
	Projectiles ecs.Query[Flying]
}

func (s *ProjectileRotationSystem) Execute(frame *ecs.UpdateFrame) {
	step := s.Config.Projectile.RotationSpeed * frame.DeltaTime
	for p := range s.Projectiles.Values() {
		p.Transform.Rotation += step
	}
}
