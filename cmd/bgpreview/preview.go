package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/parallax/assets"
	"github.com/milk9111/parallax/background"
	"github.com/milk9111/parallax/config"
	"github.com/milk9111/parallax/render"
	"golang.org/x/image/colornames"
)

type preview struct {
	cfg        config.Config
	configPath string
	assetDir   string
	logger     *log.Logger

	watcher *assets.Watcher
	ui      *ebitenui.UI

	bg *background.Compositor
	// shown is bg minus the hidden layers.
	shown      *background.Compositor
	hidden     map[int]bool
	showGround bool
	reloads    int
}

func newPreview(cfg config.Config, configPath, assetDir string, logger *log.Logger) (*preview, error) {
	var dirs []string
	for _, dir := range watchDirs(&cfg, configPath, assetDir) {
		if _, err := os.Stat(dir); err != nil {
			logger.Warn("not watching missing directory", "dir", dir)
			continue
		}
		dirs = append(dirs, dir)
	}

	w, err := assets.NewWatcher(dirs...)
	if err != nil {
		return nil, fmt.Errorf("bgpreview: watch %s: %w", strings.Join(dirs, ", "), err)
	}
	logger.Info("watching for changes", "dirs", dirs)

	p := &preview{
		cfg:        cfg,
		configPath: configPath,
		assetDir:   assetDir,
		logger:     logger,
		watcher:    w,
		hidden:     make(map[int]bool),
		showGround: true,
	}
	p.load()
	return p, nil
}

func (p *preview) Close() error {
	return p.watcher.Close()
}

// load rebuilds the compositor and the layer panel from p.cfg.
func (p *preview) load() {
	p.bg = background.Load(&p.cfg, assets.Open(p.assetDir), render.Upload, p.logger)
	p.ui = newLayerPanel(p.bg.Layers(), p.toggle, p.reload)
	p.refresh()
}

func (p *preview) refresh() {
	p.shown = background.New(p.bg.Viewport(), visibleLayers(p.bg.Layers(), p.hidden))
}

func (p *preview) toggle(order int) {
	p.hidden[order] = !p.hidden[order]
	p.refresh()
}

func (p *preview) reload() {
	p.reloads++
	p.load()
	p.logger.Info("background reloaded", "count", p.reloads)
}

func (p *preview) reloadConfig() {
	cfg, err := loadConfig(p.configPath, p.logger)
	if err != nil {
		p.logger.Warn("keeping previous config", "path", p.configPath, "err", err)
		return
	}
	p.cfg = cfg
}

// drainWatcher applies every pending file change. Several changes in one
// tick cause a single reload.
func (p *preview) drainWatcher() {
	changed := false
	for {
		select {
		case name, ok := <-p.watcher.Events:
			if !ok {
				p.finishDrain(changed)
				return
			}
			p.logger.Debug("file changed", "path", name)
			if isConfigFile(name, p.configPath) {
				p.reloadConfig()
			}
			changed = true
		case err, ok := <-p.watcher.Errors:
			if ok {
				p.logger.Warn("watch error", "err", err)
			}
		default:
			p.finishDrain(changed)
			return
		}
	}
}

func (p *preview) finishDrain(changed bool) {
	if changed {
		p.reload()
	}
}

func (p *preview) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		p.showGround = !p.showGround
	}
	p.drainWatcher()
	p.ui.Update()
	return nil
}

func (p *preview) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	p.shown.Render(render.Screen{Target: screen})

	if p.showGround {
		y := float32(p.cfg.Ground.LineY)
		vector.StrokeLine(screen, 0, y, float32(p.cfg.Screen.Width), y, 1, colornames.Yellow, false)
	}

	p.ui.Draw(screen)
	ebitenutil.DebugPrintAt(screen, p.status(), 4, 4)
}

func (p *preview) status() string {
	var b strings.Builder
	fmt.Fprintf(&b, "config: %s  reloads: %d\n", p.cfg.Source, p.reloads)
	for _, l := range p.bg.Layers() {
		state := "shown"
		switch {
		case !l.Loaded():
			state = "missing"
		case p.hidden[l.DrawOrder]:
			state = "hidden"
		}
		fmt.Fprintf(&b, "%d %s (%s, y=%d): %s\n", l.DrawOrder, l.Name, l.Mode, l.ScreenY, state)
	}
	return b.String()
}

func (p *preview) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.cfg.Screen.Width, p.cfg.Screen.Height
}

// watchDirs lists the directories holding the configured images and the
// config file, without duplicates.
func watchDirs(cfg *config.Config, configPath, assetDir string) []string {
	dirs := []string{filepath.Dir(filepath.Join(assetDir, cfg.Player.Sprite))}
	for _, lc := range cfg.Background.Layers {
		dirs = append(dirs, filepath.Dir(filepath.Join(assetDir, lc.Path)))
	}
	if configPath != "" {
		dirs = append(dirs, filepath.Dir(configPath))
	}
	slices.Sort(dirs)
	return slices.Compact(dirs)
}

func isConfigFile(name, configPath string) bool {
	return configPath != "" && filepath.Clean(name) == filepath.Clean(configPath)
}

func visibleLayers(layers []background.Layer, hidden map[int]bool) []background.Layer {
	return slices.DeleteFunc(slices.Clone(layers), func(l background.Layer) bool {
		return hidden[l.DrawOrder]
	})
}

