package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"maps"
	"math"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultYAML []byte

// Load builds the tuning table. An empty path yields the embedded defaults;
// otherwise the file is decoded over the defaults, so it only needs to name
// the values it changes. The result is validated.
func Load(path string) (Config, error) {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Config{}, fmt.Errorf("embedded defaults: %w", err)
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := decodeInto(&cfg, data); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := decodeInto(&cfg, data); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeInto(cfg *Config, data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate reports every value that would break the gameplay invariants.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	finite := map[string]float64{
		"window.width":              c.Window.Width,
		"window.height":             c.Window.Height,
		"world.ground_level":        c.World.GroundLevel,
		"world.gravity":             c.World.Gravity,
		"player.speed":              c.Player.Speed,
		"player.jump_force":         c.Player.JumpForce,
		"player.sprite_size":        c.Player.SpriteSize,
		"projectile.speed":          c.Projectile.Speed,
		"projectile.size":           c.Projectile.Size,
		"projectile.cooldown":       c.Projectile.Cooldown,
		"projectile.rotation_speed": c.Projectile.RotationSpeed,
		"enemy.speed":               c.Enemy.Speed,
		"enemy.size":                c.Enemy.Size,
		"enemy.wave_amplitude":      c.Enemy.WaveAmplitude,
		"enemy.wave_frequency":      c.Enemy.WaveFrequency,
	}
	for _, name := range slices.Sorted(maps.Keys(finite)) {
		v := finite[name]
		check(!math.IsNaN(v) && !math.IsInf(v, 0), "%s must be finite, got %v", name, v)
	}

	check(c.Window.Width > 0, "window.width must be positive, got %v", c.Window.Width)
	check(c.Window.Height > 0, "window.height must be positive, got %v", c.Window.Height)
	check(c.Camera.VirtualWidth > 0, "camera.virtual_width must be positive, got %d", c.Camera.VirtualWidth)
	check(c.Camera.VirtualHeight > 0, "camera.virtual_height must be positive, got %d", c.Camera.VirtualHeight)
	check(c.World.Gravity < 0, "world.gravity must be negative, got %v", c.World.Gravity)
	check(c.Player.Speed >= 0, "player.speed must not be negative, got %v", c.Player.Speed)
	check(c.Player.JumpForce > 0, "player.jump_force must be positive, got %v", c.Player.JumpForce)
	check(c.Player.SpriteSize > 0, "player.sprite_size must be positive, got %v", c.Player.SpriteSize)
	check(c.Projectile.Speed > 0, "projectile.speed must be positive, got %v", c.Projectile.Speed)
	check(c.Projectile.Size > 0, "projectile.size must be positive, got %v", c.Projectile.Size)
	check(c.Projectile.Cooldown >= 0, "projectile.cooldown must not be negative, got %v", c.Projectile.Cooldown)
	check(c.Enemy.Speed >= 0, "enemy.speed must not be negative, got %v", c.Enemy.Speed)
	check(c.Enemy.Size > 0, "enemy.size must be positive, got %v", c.Enemy.Size)

	left, right := c.EnemyBounds()
	check(left < right, "enemy.size %v leaves no room to patrol a %v wide window", c.Enemy.Size, c.Window.Width)

	return errors.Join(errs...)
}
