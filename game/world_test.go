package game_test

import (
	"math"
	"testing"

	"github.com/plus3/scienteer/config"
	"github.com/plus3/scienteer/ecs"
	"github.com/plus3/scienteer/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorld(t *testing.T, cfg config.Config) (*game.World, *game.InputState) {
	t.Helper()
	input := game.NewInputState()
	w, err := game.NewWorld(cfg, input)
	require.NoError(t, err)
	return w, input
}

func TestNewWorldScene(t *testing.T) {
	cfg := config.Default()
	w, _ := newWorld(t, cfg)

	p := w.Player()
	assert.Equal(t, game.Vec2{X: 0, Y: cfg.World.GroundLevel}, p.Transform.Position)
	assert.True(t, p.Player.FacingRight)
	assert.False(t, p.Player.IsJumping)
	assert.Equal(t, game.AssetPlayer, p.Sprite.Asset)

	enemies := w.Enemies()
	require.Len(t, enemies, 1)
	assert.Equal(t, game.Vec2{X: -400, Y: 0}, enemies[0].Transform.Position)
	assert.True(t, enemies[0].Enemy.MovingRight)

	assert.Equal(t, game.Camera{VirtualWidth: 320, VirtualHeight: 240}, w.Camera())
	assert.Empty(t, w.Projectiles())

	drawables := w.Drawables()
	require.Len(t, drawables, 3)
	assert.Equal(t, game.AssetBackground, drawables[0].Sprite.Asset)
	assert.Equal(t, -1.0, drawables[0].Transform.Depth)
	assert.Equal(t, game.Vec2{X: 320, Y: 240}, drawables[0].Sprite.Size)
}

func TestNewWorldRejectsBadInput(t *testing.T) {
	cfg := config.Default()
	cfg.World.Gravity = 10
	_, err := game.NewWorld(cfg, game.NewInputState())
	assert.Error(t, err)

	_, err = game.NewWorld(config.Default(), nil)
	assert.Error(t, err)
}

func TestIdleFrameLandsImmediately(t *testing.T) {
	cfg := config.Default()
	w, _ := newWorld(t, cfg)

	w.Advance(0.1)

	p := w.Player()
	assert.Equal(t, 0.0, p.Velocity.Speed.Y)
	assert.Equal(t, cfg.World.GroundLevel, p.Transform.Position.Y)
	assert.False(t, p.Player.IsJumping)
	assert.Equal(t, uint64(1), w.Stats().Frames)
}

func TestHorizontalControl(t *testing.T) {
	tests := []struct {
		name        string
		held        []game.Action
		wantX       float64
		facingRight bool
		flipX       bool
	}{
		{"idle", nil, 0, true, false},
		{"right", []game.Action{game.MoveRight}, 25, true, false},
		{"left", []game.Action{game.MoveLeft}, -25, false, true},
		{"both cancel", []game.Action{game.MoveLeft, game.MoveRight}, 0, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, input := newWorld(t, config.Default())
			input.Press(tt.held...)

			w.Advance(0.25)

			p := w.Player()
			assert.Equal(t, tt.wantX, p.Transform.Position.X)
			assert.Equal(t, tt.facingRight, p.Player.FacingRight)
			assert.Equal(t, tt.flipX, p.Sprite.FlipX)
		})
	}
}

func TestJumpArcAndLanding(t *testing.T) {
	cfg := config.Default()
	w, input := newWorld(t, cfg)
	input.Press(game.Jump)

	// vy: 300 → 200 after gravity; each frame then loses 100.
	wantY := []float64{-65, -52.5, -52.5, -65, -90, -90}
	for i, y := range wantY {
		w.Advance(0.125)
		assert.Equal(t, y, w.Player().Transform.Position.Y, "frame %d", i+1)
	}

	p := w.Player()
	assert.False(t, p.Player.IsJumping)
	assert.Equal(t, 0.0, p.Velocity.Speed.Y)

	// Still held: no second jump without a new press.
	for range 10 {
		w.Advance(0.125)
	}
	stats := w.Stats()
	assert.Equal(t, 1, stats.Jumps)
	assert.Equal(t, 1, stats.Landings)
	assert.Equal(t, cfg.World.GroundLevel, w.Player().Transform.Position.Y)

	input.Release(game.Jump)
	w.Advance(0.125)
	input.Press(game.Jump)
	w.Advance(0.125)
	assert.Equal(t, 2, w.Stats().Jumps)
	assert.True(t, w.Player().Player.IsJumping)
}

func TestPlayerNeverBelowGround(t *testing.T) {
	cfg := config.Default()
	w, input := newWorld(t, cfg)

	for i := range 600 {
		input.ReleaseAll()
		switch {
		case i%37 < 3:
			input.Press(game.Jump)
		case i%11 < 5:
			input.Press(game.MoveLeft, game.Fire)
		default:
			input.Press(game.MoveRight)
		}
		w.Advance(1.0 / 60)
		require.GreaterOrEqual(t, w.Player().Transform.Position.Y, cfg.World.GroundLevel, "frame %d", i)
	}
}

func TestFireCooldown(t *testing.T) {
	cfg := config.Default()
	cfg.Projectile.Cooldown = 0.5
	w, input := newWorld(t, cfg)
	input.Press(game.Fire)

	var shots []float64
	for range 12 {
		before := w.Stats().ShotsFired
		w.Advance(0.125)
		if w.Stats().ShotsFired > before {
			shots = append(shots, w.Elapsed())
		}
	}

	assert.Equal(t, []float64{0.125, 0.625, 1.125}, shots)
	assert.Len(t, w.Projectiles(), 3)
}

func TestFireCooldownAtFrameRate(t *testing.T) {
	cfg := config.Default()
	w, input := newWorld(t, cfg)
	input.Press(game.Fire)

	var shots []float64
	for range 300 {
		before := w.Stats().ShotsFired
		w.Advance(1.0 / 60)
		if w.Stats().ShotsFired > before {
			shots = append(shots, w.Elapsed())
		}
	}

	require.NotEmpty(t, shots)
	assert.InDelta(t, 1.0/60, shots[0], 1e-12)
	for i := 1; i < len(shots); i++ {
		assert.GreaterOrEqual(t, shots[i]-shots[i-1], cfg.Projectile.Cooldown-1e-9)
		assert.Less(t, shots[i]-shots[i-1], cfg.Projectile.Cooldown+1.0/60+1e-9)
	}
}

func TestProjectileDirectionAndSpin(t *testing.T) {
	w, input := newWorld(t, config.Default())
	input.Press(game.MoveLeft, game.Fire)
	w.Advance(0.125)
	input.ReleaseAll()

	shots := w.Projectiles()
	require.Len(t, shots, 1)
	proj := ecs.NewView[game.Drawable](w.Storage())
	var sprite *game.Sprite
	for _, d := range proj.Iter() {
		if d.Sprite.Asset == game.AssetProjectile {
			sprite = d.Sprite
		}
	}
	require.NotNil(t, sprite)
	assert.True(t, sprite.FlipX)

	// Spawned at the player, who moved 12.5 left this frame.
	assert.Equal(t, -12.5, shots[0].Transform.Position.X)
	assert.Equal(t, 0.25, shots[0].Transform.Rotation)

	for range 3 {
		w.Advance(0.125)
	}
	assert.Equal(t, -12.5-75, shots[0].Transform.Position.X)
	assert.Equal(t, 1.0, shots[0].Transform.Rotation)
}

func TestProjectileCleanup(t *testing.T) {
	w, input := newWorld(t, config.Default())
	input.Press(game.Fire)
	w.Advance(0.125)
	input.ReleaseAll()

	// 25 units per frame: x reaches 400 after 16 frames and 425 after 17.
	for range 16 {
		w.Advance(0.125)
	}
	shots := w.Projectiles()
	require.Len(t, shots, 1)
	assert.Equal(t, 400.0, shots[0].Transform.Position.X)

	w.Advance(0.125)
	assert.Empty(t, w.Projectiles())
	assert.Equal(t, 1, w.Stats().ProjectilesDespawned)
}

func TestEnemyFlipsAtRightBoundary(t *testing.T) {
	cfg := config.Default()
	w, _ := newWorld(t, cfg)
	_, right := cfg.EnemyBounds()

	flipFrame := 0
	for frame := 1; frame <= 200 && flipFrame == 0; frame++ {
		w.Advance(0.125)
		e := w.Enemies()[0]
		if !e.Enemy.MovingRight {
			flipFrame = frame
			assert.Greater(t, e.Transform.Position.X, right)
			assert.Equal(t, -400+7.5*float64(frame), e.Transform.Position.X)
			assert.Equal(t, -1.0, e.Transform.Scale.X)
		} else {
			assert.LessOrEqual(t, e.Transform.Position.X, right)
		}
	}

	assert.Equal(t, 103, flipFrame)
	assert.Equal(t, 1, w.Stats().EnemyTurns)

	w.Advance(0.125)
	assert.Equal(t, 365.0, w.Enemies()[0].Transform.Position.X)
}

func TestEnemyPatrolAlternates(t *testing.T) {
	cfg := config.Default()
	w, _ := newWorld(t, cfg)
	left, right := cfg.EnemyBounds()
	step := cfg.Enemy.Speed / 60

	wasRight := true
	turns := 0
	for range 60 * 60 {
		w.Advance(1.0 / 60)
		e := w.Enemies()[0]
		x := e.Transform.Position.X
		assert.GreaterOrEqual(t, x, -cfg.HalfWidth())
		assert.LessOrEqual(t, x, right+step+1e-9)
		if e.Enemy.MovingRight != wasRight {
			turns++
			wasRight = e.Enemy.MovingRight
			if wasRight {
				assert.Less(t, x, left)
			} else {
				assert.Greater(t, x, right)
			}
		}
	}

	assert.Equal(t, turns, w.Stats().EnemyTurns)
	assert.GreaterOrEqual(t, turns, 4)
}

func TestEnemyWave(t *testing.T) {
	cfg := config.Default()
	w, _ := newWorld(t, cfg)

	for range 100 {
		w.Advance(0.125)
		e := w.Enemies()[0]
		want := e.Enemy.StartY + cfg.Enemy.WaveAmplitude*math.Sin(cfg.Enemy.WaveFrequency*w.Elapsed())
		assert.InDelta(t, want, e.Transform.Position.Y, 1e-9)
	}
}

func TestDeadPlayerPanics(t *testing.T) {
	w, _ := newWorld(t, config.Default())
	for id := range ecs.NewView[game.Controlled](w.Storage()).Iter() {
		w.Storage().Delete(id)
	}

	assert.Panics(t, func() { w.Advance(0.125) })
}

func mustWorld(t *testing.T, input game.Input) *game.World {
	t.Helper()
	w, err := game.NewWorld(config.Default(), input)
	require.NoError(t, err)
	return w
}
