// Package config holds the tuning table shared by every gameplay system.
//
// A Config is built once at startup, by Default or Load, and then passed by
// value. Nothing mutates it after the world is created.
package config

// Config is the complete tuning table.
type Config struct {
	Window     Window     `yaml:"window"`
	Camera     Camera     `yaml:"camera"`
	World      World      `yaml:"world"`
	Player     Player     `yaml:"player"`
	Projectile Projectile `yaml:"projectile"`
	Enemy      Enemy      `yaml:"enemy"`
}

// Window is the OS window and the horizontal play area.
type Window struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Title  string  `yaml:"title"`
}

// Camera is the pixel-perfect render target.
type Camera struct {
	VirtualWidth  int `yaml:"virtual_width"`
	VirtualHeight int `yaml:"virtual_height"`
}

type World struct {
	GroundLevel float64 `yaml:"ground_level"`

	// Gravity is an acceleration in units/s², negative pulls down.
	Gravity float64 `yaml:"gravity"`
}

type Player struct {
	Speed      float64 `yaml:"speed"`
	JumpForce  float64 `yaml:"jump_force"`
	SpriteSize float64 `yaml:"sprite_size"`
}

type Projectile struct {
	Speed float64 `yaml:"speed"`
	Size  float64 `yaml:"size"`

	// Cooldown is the minimum number of seconds between two shots.
	Cooldown float64 `yaml:"cooldown"`

	// RotationSpeed is in radians per second.
	RotationSpeed float64 `yaml:"rotation_speed"`
}

type Enemy struct {
	Speed         float64 `yaml:"speed"`
	Size          float64 `yaml:"size"`
	WaveAmplitude float64 `yaml:"wave_amplitude"`
	WaveFrequency float64 `yaml:"wave_frequency"`
}

// Default returns the built-in tuning, identical to defaults.yaml.
func Default() Config {
	return Config{
		Window: Window{Width: 800, Height: 600, Title: "Scienteer"},
		Camera: Camera{VirtualWidth: 320, VirtualHeight: 240},
		World:  World{GroundLevel: -90, Gravity: -800},
		Player: Player{Speed: 100, JumpForce: 300, SpriteSize: 32},
		Projectile: Projectile{
			Speed:         200,
			Size:          16,
			Cooldown:      0.6,
			RotationSpeed: 2,
		},
		Enemy: Enemy{Speed: 60, Size: 32, WaveAmplitude: 50, WaveFrequency: 2},
	}
}

// HalfWidth is the horizontal extent of the play area on each side of the origin.
func (c Config) HalfWidth() float64 {
	return c.Window.Width / 2
}

// EnemyBounds returns the x positions at which a patrolling enemy turns around.
func (c Config) EnemyBounds() (left, right float64) {
	return -c.HalfWidth() + c.Enemy.Size, c.HalfWidth() - c.Enemy.Size
}
