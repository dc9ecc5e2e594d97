package game

import (
	"github.com/plus3/scienteer/config"
	"github.com/plus3/scienteer/ecs"
)

// resolve returns the handle's view or panics. The player is spawned once at
// bootstrap and never deleted, so a dead handle is a programming error.
func resolve[T any](view *ecs.View[T], ref *ecs.EntityRef, what string) *T {
	v := view.GetRef(ref)
	if v == nil {
		panic("game: " + what + " entity no longer resolves")
	}
	return v
}

// PlayerControlSystem turns input into player velocity, facing and jumps.
type PlayerControlSystem struct {
	Config config.Config
	Input  Input
	Player *ecs.EntityRef

	View  ecs.View[Controlled]
	Stats ecs.Singleton[SessionStats]
}

func (s *PlayerControlSystem) Execute(frame *ecs.UpdateFrame) {
	p := resolve(&s.View, s.Player, "player")

	// Both directions held cancel out; the right-hand press wins the facing.
	direction := 0.0
	if s.Input.Pressed(MoveLeft) {
		direction--
		p.Player.FacingRight = false
		p.Sprite.FlipX = true
	}
	if s.Input.Pressed(MoveRight) {
		direction++
		p.Player.FacingRight = true
		p.Sprite.FlipX = false
	}

	if s.Input.JustPressed(Jump) && !p.Player.IsJumping {
		p.Velocity.Speed.Y = s.Config.Player.JumpForce
		p.Player.IsJumping = true
		s.Stats.Get().Jumps++
	}

	p.Velocity.Speed.X = direction * s.Config.Player.Speed
}

// GravitySystem accelerates the player downward and detects landing.
//
// The landing test reads the position integrated last frame; MovementSystem
// clamps the position after this frame's integration.
type GravitySystem struct {
	Config config.Config
	Player *ecs.EntityRef

	View  ecs.View[Controlled]
	Stats ecs.Singleton[SessionStats]
}

func (s *GravitySystem) Execute(frame *ecs.UpdateFrame) {
	p := resolve(&s.View, s.Player, "player")

	p.Velocity.Speed.Y += s.Config.World.Gravity * frame.DeltaTime

	if p.Transform.Position.Y <= s.Config.World.GroundLevel && p.Velocity.Speed.Y <= 0 {
		p.Velocity.Speed.Y = 0
		if p.Player.IsJumping {
			p.Player.IsJumping = false
			s.Stats.Get().Landings++
		}
	}
}

func spawnPlayer(storage *ecs.Storage, cfg config.Config) *ecs.EntityRef {
	id := storage.Spawn(
		NewTransform(0, cfg.World.GroundLevel, 0),
		Sprite{
			Asset: AssetPlayer,
			Size:  Vec2{X: cfg.Player.SpriteSize, Y: cfg.Player.SpriteSize},
		},
		Player{
			FacingRight: true,
			// Ready to fire on the first frame.
			LastShotTime: -cfg.Projectile.Cooldown,
		},
		Velocity{},
	)
	return storage.CreateEntityRef(id)
}
