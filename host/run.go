package host

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/scienteer/config"
	debugui_ebiten "github.com/plus3/scienteer/ecs/debugui/ebiten"
	"github.com/plus3/scienteer/game"
)

// Options controls the windowed run.
type Options struct {
	AssetDir string
	Debug    bool
	Logger   *log.Logger
}

// Run opens the game window and blocks until it is closed.
func Run(cfg config.Config, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	width, height := int(cfg.Window.Width), int(cfg.Window.Height)

	var overlay *debugui_ebiten.Overlay
	if opts.Debug {
		overlay = debugui_ebiten.NewOverlay(cfg.Window.Title, width, height)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle(cfg.Window.Title)
	}

	input := &KeyboardInput{}
	if overlay != nil {
		input.Suppressed = overlay.WantsKeyboard
	}

	world, err := game.NewWorld(cfg, input, game.WithLogger(logger))
	if err != nil {
		return err
	}

	assets, err := LoadAssets(opts.AssetDir, logger)
	if err != nil {
		return err
	}

	if overlay != nil {
		overlay.Inspect(world.Storage(), world.Scheduler())
		overlay.Add(gameplayPanel(world))
	}

	logger.Info("starting", "window", fmt.Sprintf("%dx%d", width, height), "debug", opts.Debug, "assets", opts.AssetDir)
	if err := ebiten.RunGame(NewGame(world, assets, overlay)); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	logger.Info("window closed", "elapsed", world.Elapsed(), "frames", world.Stats().Frames)
	return nil
}
