package main

import (
	"github.com/spf13/cobra"

	"github.com/plus3/scienteer/host"
)

var (
	flagAssets string
	flagDebug  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the game window",
	Long: `Open the game window.

Images are read from the asset directory: levels/lab.png, scientist.png,
alien.png and bottle.png. Missing images are drawn as coloured blocks.

Controls:
  A/Left, D/Right  - Walk
  Space/Up         - Jump
  Ctrl             - Throw a bottle (hold to keep throwing)`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return host.Run(cfg, host.Options{
			AssetDir: flagAssets,
			Debug:    flagDebug,
			Logger:   logger,
		})
	},
}

func init() {
	runCmd.Flags().StringVar(&flagAssets, "assets", "assets", "Directory holding the game images")
	runCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show the ImGui debug panels")
}
