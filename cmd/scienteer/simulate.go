package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/plus3/scienteer/config"
	"github.com/plus3/scienteer/game"
)

var (
	flagDuration time.Duration
	flagFPS      int
	flagScript   string
	flagTrace    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the game headless with scripted input",
	Long: `Advance the game at a fixed frame rate without a window and print a report.

The script is a ';'-separated list of START-END:action[,action] segments in
seconds. Actions are left, right, jump and fire. A segment without -END is a
one-frame tap.

Examples:
  scienteer simulate
  scienteer simulate --duration 3s --script "0-3:fire"
  scienteer simulate --script "0-1.5:right;0.5:jump;2-4:left,fire" --trace`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		script, err := game.ParseScript(flagScript)
		if err != nil {
			return fmt.Errorf("invalid --script: %w", err)
		}

		report, err := simulate(cfg, simulation{
			Duration: flagDuration,
			FPS:      flagFPS,
			Script:   script,
			Text:     flagScript,
			Trace:    flagTrace,
		}, logger)
		if err != nil {
			return err
		}
		return report.Generate(os.Stdout)
	},
}

func init() {
	simulateCmd.Flags().DurationVar(&flagDuration, "duration", 10*time.Second, "Simulated time to run for")
	simulateCmd.Flags().IntVar(&flagFPS, "fps", 60, "Fixed frame rate")
	simulateCmd.Flags().StringVar(&flagScript, "script", "", "Input timeline, e.g. \"0-2:right,fire;1:jump\"")
	simulateCmd.Flags().BoolVar(&flagTrace, "trace", false, "Log the player and enemy state every frame at debug level")
}

type simulation struct {
	Duration time.Duration
	FPS      int
	Script   *game.Script
	Text     string
	Trace    bool
}

func simulate(cfg config.Config, sim simulation, logger *log.Logger) (*Report, error) {
	if sim.FPS <= 0 {
		return nil, fmt.Errorf("fps must be positive, got %d", sim.FPS)
	}
	if sim.Duration <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %s", sim.Duration)
	}
	if sim.Script == nil {
		sim.Script = &game.Script{}
	}

	input := game.NewInputState()
	world, err := game.NewWorld(cfg, input, game.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	dt := 1 / float64(sim.FPS)
	frames := int(sim.Duration.Seconds() * float64(sim.FPS))

	report := &Report{
		RunID:    runID,
		Duration: sim.Duration,
		FPS:      sim.FPS,
		Script:   sim.Text,
		Segments: sim.Script.Len(),
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0, frames),
		},
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info("simulating", "duration", sim.Duration, "fps", sim.FPS, "frames", frames, "segments", sim.Script.Len())
	start := time.Now()
	for i := range frames {
		sim.Script.Apply(input, float64(i)*dt, dt)

		updateStart := time.Now()
		world.Advance(dt)
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))

		if sim.Trace {
			p := world.Player()
			logger.Debug("frame",
				"index", i,
				"t", fmt.Sprintf("%.3f", world.Elapsed()),
				"player", fmt.Sprintf("(%.1f, %.1f)", p.Transform.Position.X, p.Transform.Position.Y),
				"jumping", p.Player.IsJumping,
				"projectiles", len(world.Projectiles()),
			)
		}
	}
	report.TotalTime = time.Since(start)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	p := world.Player()
	report.Elapsed = world.Elapsed()
	report.Frames = world.Stats().Frames
	report.Session = world.Stats()
	report.PlayerPosition = p.Transform.Position
	report.PlayerJumping = p.Player.IsJumping
	report.Projectiles = len(world.Projectiles())
	for _, e := range world.Enemies() {
		report.Enemies = append(report.Enemies, e.Transform.Position)
	}
	report.Systems = world.Scheduler().GetStats().Systems
	report.Storage = world.Storage().CollectStats()

	logger.Info("simulation finished", "frames", report.Frames, "wall", report.TotalTime)
	return report, nil
}
