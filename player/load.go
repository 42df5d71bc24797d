package player

import (
	"image"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/milk9111/parallax/assets"
	"github.com/milk9111/parallax/config"
	"github.com/milk9111/parallax/render"
	"golang.org/x/image/colornames"
)

// ParamsFromConfig collects the motion constants of cfg.
func ParamsFromConfig(cfg *config.Config) Params {
	return Params{
		Gravity:     cfg.Player.Gravity,
		GravitySeed: cfg.Player.GravitySeed,
		Speed:       cfg.Player.Speed,
		JumpPower:   cfg.Player.JumpPower,
		GroundLineY: float64(cfg.Ground.LineY),
	}
}

// Load creates the player from cfg. When the sprite cannot be loaded a
// solid placeholder rectangle is used instead and the failure is logged.
func Load(cfg *config.Config, fsys fs.FS, upload render.Uploader, logger *log.Logger) *Controller {
	img := loadSprite(cfg, fsys, logger)
	return New(ParamsFromConfig(cfg), cfg.PlayerStartX(), upload(img))
}

func loadSprite(cfg *config.Config, fsys fs.FS, logger *log.Logger) image.Image {
	img, err := assets.LoadImage(fsys, cfg.Player.Sprite)
	if err == nil && !img.Bounds().Empty() {
		return img
	}
	if err == nil {
		logger.Warn("player sprite is empty, using placeholder", "path", cfg.Player.Sprite)
	} else {
		logger.Warn("player sprite unavailable, using placeholder", "path", cfg.Player.Sprite, "error", err)
	}
	ph := cfg.Player.Placeholder
	c, ok := colornames.Map[ph.Color]
	if !ok {
		c = colornames.Red
	}
	return assets.Solid(ph.Width, ph.Height, c)
}
