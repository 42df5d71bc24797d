package main

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/parallax/assets"
	"github.com/milk9111/parallax/background"
	"github.com/milk9111/parallax/config"
	"github.com/milk9111/parallax/input"
	"github.com/milk9111/parallax/player"
	"github.com/milk9111/parallax/render"
	"github.com/spf13/cobra"
)

var (
	configPath string
	assetDir   string
	tps        int
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "parallax",
	Short: "Side-scrolling parallax background with a jumping player",
	Long: `Opens a window with a five-layer parallax background and a player
that can walk left and right and jump.

Controls: Left/Right or A/D to move, Space/Up/W to jump, Escape to quit.`,
	SilenceUsage: true,
	RunE:         runGame,
}

var validateCmd = &cobra.Command{
	Use:          "validate",
	Short:        "Check the configuration and print the background layer plan",
	Long:         `Loads the configuration and every asset without opening a window, then prints where each background layer would be drawn.`,
	SilenceUsage: true,
	RunE:         runValidate,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a game.yaml (default: search ~/.parallax, ./configs, then built-in)")
	rootCmd.PersistentFlags().StringVarP(&assetDir, "assets", "a", "", "load assets from this directory instead of the embedded set")
	rootCmd.Flags().IntVar(&tps, "tps", 0, "override ticks per second")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging and the on-screen HUD")

	rootCmd.AddCommand(validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "parallax",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, skipped, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	for _, err := range skipped {
		logger.Warn("ignoring config file", "err", err)
	}
	if tps > 0 {
		cfg.Timing.TPS = tps
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	logger.Debug("config loaded", "source", cfg.Source)
	return cfg, nil
}

// buildGame loads every asset and wires the game together. Missing or
// unreadable images are logged and replaced, never fatal.
func buildGame(cfg *config.Config, fsys fs.FS, upload render.Uploader, src input.Source, logger *log.Logger) *Game {
	bg := background.Load(cfg, fsys, upload, logger)
	p := player.Load(cfg, fsys, upload, logger)
	return NewGame(cfg.Screen.Width, cfg.Screen.Height, src, bg, p, debug)
}

func runGame(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := loadConfig(logger)
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		return err
	}

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle(cfg.Screen.Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.Timing.TPS)

	assetSource := assetDir
	if assetSource == "" {
		assetSource = "embedded"
	}
	logger.Info("starting",
		"config", cfg.Source,
		"assets", assetSource,
		"size", fmt.Sprintf("%dx%d", cfg.Screen.Width, cfg.Screen.Height),
		"tps", cfg.Timing.TPS,
	)

	game := buildGame(&cfg, assets.Open(assetDir), render.Upload, input.NewKeyboard(), logger)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game exited", "err", err)
		return err
	}
	logger.Debug("bye")
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	keep := func(img image.Image) render.Bitmap { return img }
	fsys := assets.Open(assetDir)
	bg := background.Load(&cfg, fsys, keep, logger)
	p := player.Load(&cfg, fsys, keep, logger)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "config: %s\n", cfg.Source)
	fmt.Fprintf(out, "viewport: %dx%d @ %d tps, ground line y=%d\n\n",
		cfg.Screen.Width, cfg.Screen.Height, cfg.Timing.TPS, cfg.Ground.LineY)

	var rec render.Recorder
	for i, l := range bg.Layers() {
		rec.Reset()
		background.New(bg.Viewport(), []background.Layer{l}).Render(&rec)

		if !l.Loaded() {
			fmt.Fprintf(out, "  %d %-18s missing\n", i, l.Name)
			continue
		}
		b := l.Image.Bounds()
		fmt.Fprintf(out, "  %d %-18s %-5s %4dx%-4d y=%-4d draws=%d\n",
			i, l.Name, l.Mode, b.Dx(), b.Dy(), l.ScreenY, len(rec.Calls))
	}

	s := p.Size()
	pos := p.Position()
	fmt.Fprintf(out, "\nplayer: %.0fx%.0f at (%.1f, %.1f)\n", s.X, s.Y, pos.X, pos.Y)
	return nil
}
