package game

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/plus3/scienteer/config"
	"github.com/plus3/scienteer/ecs"
)

// World owns the entity store, the scheduler and the player handle.
type World struct {
	config    config.Config
	input     Input
	logger    *log.Logger
	storage   *ecs.Storage
	scheduler *ecs.Scheduler

	player *ecs.EntityRef
	camera ecs.EntityId

	controlled *ecs.View[Controlled]
	drawables  *ecs.View[Drawable]
	flying     *ecs.View[Flying]
	patrollers *ecs.View[Patroller]
	stats      *ecs.Singleton[SessionStats]
}

// Option configures a World at construction.
type Option func(*World)

// WithLogger routes bootstrap logging to logger.
func WithLogger(logger *log.Logger) Option {
	return func(w *World) {
		w.logger = logger
	}
}

// NewWorld validates cfg, spawns the scene and registers the gameplay
// systems in frame order.
func NewWorld(cfg config.Config, input Input, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if input == nil {
		return nil, errors.New("nil input")
	}

	registry := ecs.NewComponentRegistry()
	RegisterComponents(registry)
	storage := ecs.NewStorage(registry)

	w := &World{
		config:    cfg,
		input:     input,
		logger:    log.New(io.Discard),
		storage:   storage,
		scheduler: ecs.NewScheduler(storage),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.stats = ecs.NewSingleton(storage, SessionStats{})
	w.spawnScene()

	w.controlled = ecs.NewView[Controlled](storage)
	w.drawables = ecs.NewView[Drawable](storage)
	w.flying = ecs.NewView[Flying](storage)
	w.patrollers = ecs.NewView[Patroller](storage)

	w.registerSystems()
	return w, nil
}

func (w *World) spawnScene() {
	cfg := w.config
	vw, vh := float64(cfg.Camera.VirtualWidth), float64(cfg.Camera.VirtualHeight)

	w.camera = w.storage.Spawn(
		NewTransform(0, 0, 0),
		Camera{VirtualWidth: cfg.Camera.VirtualWidth, VirtualHeight: cfg.Camera.VirtualHeight},
	)
	w.storage.Spawn(
		NewTransform(0, 0, -1),
		Sprite{Asset: AssetBackground, Size: Vec2{X: vw, Y: vh}},
		Background{},
	)
	w.player = spawnPlayer(w.storage, cfg)
	enemy := spawnEnemy(w.storage, cfg)

	w.logger.Debug("scene spawned",
		"player", w.player.Id,
		"enemy", enemy,
		"ground", cfg.World.GroundLevel,
		"virtual", fmt.Sprintf("%dx%d", cfg.Camera.VirtualWidth, cfg.Camera.VirtualHeight),
	)
}

func (w *World) registerSystems() {
	cfg := w.config
	systems := []ecs.System{
		&PlayerControlSystem{Config: cfg, Input: w.input, Player: w.player},
		&GravitySystem{Config: cfg, Player: w.player},
		&MovementSystem{Config: cfg},
		&ProjectileSpawnSystem{Config: cfg, Input: w.input, Player: w.player},
		&ProjectileCleanupSystem{Config: cfg},
		&ProjectileRotationSystem{Config: cfg},
		&EnemyPatrolSystem{Config: cfg},
	}
	for _, system := range systems {
		w.scheduler.Register(system)
	}
	w.logger.Debug("systems registered", "count", len(systems))
}

// Advance runs one frame of dt seconds.
func (w *World) Advance(dt float64) {
	w.scheduler.Once(dt)
	w.stats.Get().Frames++
	if ender, ok := w.input.(FrameEnder); ok {
		ender.EndFrame()
	}
}

func (w *World) Config() config.Config {
	return w.config
}

// Elapsed is the simulated time in seconds, including the last frame.
func (w *World) Elapsed() float64 {
	return w.scheduler.Elapsed()
}

func (w *World) Storage() *ecs.Storage {
	return w.storage
}

func (w *World) Scheduler() *ecs.Scheduler {
	return w.scheduler
}

// Stats returns a copy of the session counters.
func (w *World) Stats() SessionStats {
	return *w.stats.Get()
}

// Player returns the live player components. It panics if the player has
// been removed.
func (w *World) Player() Controlled {
	return *resolve(w.controlled, w.player, "player")
}

// Camera returns the camera's virtual resolution.
func (w *World) Camera() Camera {
	if c := ecs.ReadComponent[Camera](w.storage, w.camera); c != nil {
		return *c
	}
	return Camera{}
}

// CameraPosition returns the world point at the centre of the screen.
func (w *World) CameraPosition() Vec2 {
	if t := ecs.ReadComponent[Transform](w.storage, w.camera); t != nil {
		return t.Position
	}
	return Vec2{}
}

// Projectiles returns every live projectile.
func (w *World) Projectiles() []Flying {
	return slices.Collect(w.flying.Values())
}

// Enemies returns every live enemy.
func (w *World) Enemies() []Patroller {
	return slices.Collect(w.patrollers.Values())
}

// Drawables returns every sprite in back-to-front order.
func (w *World) Drawables() []Drawable {
	out := slices.Collect(w.drawables.Values())
	slices.SortStableFunc(out, func(a, b Drawable) int {
		return cmp.Compare(a.Transform.Depth, b.Transform.Depth)
	})
	return out
}
