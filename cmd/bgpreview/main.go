// Command bgpreview shows the parallax background on its own and reloads it
// whenever a layer image or the config file changes on disk.
package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/parallax/config"
	"github.com/spf13/cobra"
)

var (
	configPath string
	assetDir   string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "bgpreview",
	Short: "Preview and live-reload the parallax background",
	Long: `Renders only the background stack, with the ground line drawn on top.
Layer images and the config file are watched; edits show up immediately.

Click a layer button to hide or show it. G toggles the ground line, Escape quits.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a game.yaml (default: search ~/.parallax, ./configs, then built-in)")
	rootCmd.Flags().StringVarP(&assetDir, "assets", "a", "assets", "asset directory to load and watch")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "bgpreview",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := loadConfig(configPath, logger)
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		return err
	}

	p, err := newPreview(cfg, configPath, assetDir, logger)
	if err != nil {
		logger.Error("could not start preview", "err", err)
		return err
	}
	defer p.Close()

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle("bgpreview - " + cfg.Screen.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Timing.TPS)

	if err := ebiten.RunGame(p); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func loadConfig(path string, logger *log.Logger) (config.Config, error) {
	cfg, skipped, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	for _, err := range skipped {
		logger.Warn("ignoring config file", "err", err)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
