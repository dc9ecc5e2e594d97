// Package game implements the Scienteer gameplay loop on top of the ecs
// package: the components, the per-frame systems and the scene bootstrap.
package game

import (
	"math"

	"github.com/plus3/scienteer/ecs"
)

// Vec2 is a point or direction in world space. The origin is the centre of
// the screen and +Y points up.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Finite reports whether both coordinates are finite numbers.
func (v Vec2) Finite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Transform places an entity in the world.
type Transform struct {
	Position Vec2

	// Depth orders drawing only; larger is nearer the camera.
	Depth float64

	// Rotation is counter-clockwise, in radians.
	Rotation float64
	Scale    Vec2
}

// NewTransform returns an unrotated, unscaled transform.
func NewTransform(x, y, depth float64) Transform {
	return Transform{
		Position: Vec2{X: x, Y: y},
		Depth:    depth,
		Scale:    Vec2{X: 1, Y: 1},
	}
}

// Velocity is in world units per second.
type Velocity struct {
	Speed Vec2
}

// AssetID names an image the host supplies.
type AssetID string

const (
	AssetBackground AssetID = "levels/lab.png"
	AssetPlayer     AssetID = "scientist.png"
	AssetEnemy      AssetID = "alien.png"
	AssetProjectile AssetID = "bottle.png"
)

// Sprite is the draw data the host renders at the entity's Transform.
type Sprite struct {
	Asset AssetID
	Size  Vec2
	FlipX bool
}

// Player is the scientist. Exactly one exists per World.
type Player struct {
	IsJumping   bool
	FacingRight bool

	// LastShotTime is the world time of the most recent shot, in seconds.
	LastShotTime float64
}

// Enemy is a patrolling alien.
type Enemy struct {
	StartY      float64
	Time        float64
	MovingRight bool
}

// Projectile marks a thrown chemical bottle.
type Projectile struct{}

// Background marks the static level image.
type Background struct{}

// Camera is the pixel-perfect view. The host renders VirtualWidth x
// VirtualHeight pixels centred on the camera's Transform.
type Camera struct {
	VirtualWidth  int
	VirtualHeight int
}

// SessionStats counts gameplay events since the world was created.
type SessionStats struct {
	Frames               uint64
	ShotsFired           int
	ProjectilesDespawned int
	Jumps                int
	Landings             int
	EnemyTurns           int
}

// RegisterComponents registers every gameplay component with registry.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Sprite](registry)
	ecs.RegisterComponent[Player](registry)
	ecs.RegisterComponent[Enemy](registry)
	ecs.RegisterComponent[Projectile](registry)
	ecs.RegisterComponent[Background](registry)
	ecs.RegisterComponent[Camera](registry)
}

// Movable is anything that the movement integrator advances.
type Movable struct {
	*Transform
	*Velocity
}

// Controlled is the player as the controller and gravity see it.
type Controlled struct {
	*Player
	*Velocity
	*Transform
	*Sprite
}

// Shooter is the player as the projectile spawner sees it.
type Shooter struct {
	*Player
	*Transform
}

// Patroller is an enemy on its wave path.
type Patroller struct {
	*Enemy
	*Transform
}

// Flying is a live projectile.
type Flying struct {
	*Projectile
	*Transform
}

// Drawable is anything the host renders.
type Drawable struct {
	*Transform
	*Sprite
}
