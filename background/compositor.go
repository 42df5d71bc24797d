// Package background loads and draws the fixed five-layer parallax backdrop.
package background

import (
	"fmt"
	"image"
	"io/fs"
	"math"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/milk9111/parallax/assets"
	"github.com/milk9111/parallax/config"
	"github.com/milk9111/parallax/render"
)

// Compositor owns the layer stack and draws it back to front.
type Compositor struct {
	viewport image.Point
	layers   []Layer
}

// New builds a compositor from already loaded layers. Layers are drawn in
// ascending DrawOrder regardless of slice order.
func New(viewport image.Point, layers []Layer) *Compositor {
	sorted := slices.Clone(layers)
	slices.SortStableFunc(sorted, func(a, b Layer) int {
		return a.DrawOrder - b.DrawOrder
	})
	return &Compositor{viewport: viewport, layers: sorted}
}

// Load reads, scales and positions every configured layer. A layer that
// cannot be loaded is logged and kept as an empty slot; Load never fails.
func Load(cfg *config.Config, fsys fs.FS, upload render.Uploader, logger *log.Logger) *Compositor {
	viewport := image.Pt(cfg.Screen.Width, cfg.Screen.Height)
	layers := make([]Layer, 0, len(cfg.Background.Layers))

	for i, lc := range cfg.Background.Layers {
		layer := Layer{
			Name:      lc.Name,
			Mode:      modeOf(lc.Scale),
			ScreenY:   screenY(lc, cfg.Ground.LineY),
			DrawOrder: i,
		}

		img, err := loadLayerImage(fsys, lc, viewport)
		if err != nil {
			logger.Warn("background layer unavailable", "layer", i, "name", lc.Name, "path", lc.Path, "error", err)
			layers = append(layers, layer)
			continue
		}

		layer.Image = upload(img)
		if lc.FillBelowGround {
			layer.Strip = belowGroundStrip(img.Bounds(), lc.GroundOffset)
			layer.StripY = cfg.Ground.LineY
		}
		logger.Debug("background layer placed",
			"layer", i,
			"name", lc.Name,
			"mode", layer.Mode,
			"size", fmt.Sprintf("%dx%d", img.Bounds().Dx(), img.Bounds().Dy()),
			"y", layer.ScreenY,
		)
		layers = append(layers, layer)
	}

	return New(viewport, layers)
}

// Layers returns the stack in draw order.
func (c *Compositor) Layers() []Layer {
	return slices.Clone(c.layers)
}

// Viewport returns the screen size the layers were placed for.
func (c *Compositor) Viewport() image.Point {
	return c.viewport
}

// Update is a no-op; the backdrop is static.
func (c *Compositor) Update() {}

// Render draws every loaded layer, furthest first. Missing layers leave a
// transparent gap.
func (c *Compositor) Render(s render.Surface) {
	for _, l := range c.layers {
		if !l.Loaded() {
			continue
		}
		switch l.Mode {
		case StretchToFill:
			s.Draw(l.Image, 0, float64(l.ScreenY))
		case TileHorizontal:
			c.renderTiled(s, l)
		}
	}
}

func (c *Compositor) renderTiled(s render.Surface, l Layer) {
	tileW := l.TileWidth()
	n := TileCount(c.viewport.X, tileW)
	for j := 0; j < n; j++ {
		s.Draw(l.Image, float64(j*tileW), float64(l.ScreenY))
	}

	stripH := l.Strip.Dy()
	if n == 0 || stripH <= 0 {
		return
	}
	rows := TileCount(c.viewport.Y-l.StripY, stripH)
	for k := 0; k < rows; k++ {
		y := float64(l.StripY + k*stripH)
		for j := 0; j < n; j++ {
			s.DrawClipped(l.Image, float64(j*tileW), y, l.Strip)
		}
	}
}

func loadLayerImage(fsys fs.FS, lc config.LayerConfig, viewport image.Point) (image.Image, error) {
	src, err := assets.LoadImage(fsys, lc.Path)
	if err != nil {
		return nil, err
	}
	w, h := scaledSize(lc, src.Bounds().Size(), viewport)
	img := assets.Scale(src, w, h)
	if img == nil {
		return nil, fmt.Errorf("%w: %s scales to empty %dx%d", assets.ErrAssetLoad, lc.Path, w, h)
	}
	return img, nil
}

// scaledSize returns the on-screen dimensions of a layer whose source
// image is src pixels large.
func scaledSize(lc config.LayerConfig, src, viewport image.Point) (int, int) {
	if lc.Size != nil {
		return lc.Size.Width, lc.Size.Height
	}
	if src.X <= 0 || src.Y <= 0 {
		return 0, 0
	}
	switch lc.Scale {
	case config.ScaleTile:
		return src.X, viewport.Y
	default:
		s := math.Max(float64(viewport.X)/float64(src.X), float64(viewport.Y)/float64(src.Y))
		w := max(ceilPixels(float64(src.X)*s), viewport.X)
		h := max(ceilPixels(float64(src.Y)*s), viewport.Y)
		return w, h
	}
}

// ceilPixels rounds up, ignoring float noise just above a whole pixel.
func ceilPixels(v float64) int {
	return int(math.Ceil(v - 1e-6))
}

func screenY(lc config.LayerConfig, groundLineY int) int {
	switch lc.Anchor {
	case config.AnchorGround:
		return groundLineY - lc.GroundOffset
	case config.AnchorBelowGround:
		return groundLineY + lc.Below
	default:
		return lc.Y
	}
}

func belowGroundStrip(b image.Rectangle, groundOffset int) image.Rectangle {
	if groundOffset < 0 || groundOffset >= b.Dy() {
		return image.Rectangle{}
	}
	return image.Rect(b.Min.X, b.Min.Y+groundOffset, b.Max.X, b.Max.Y)
}

func modeOf(s config.ScaleMode) ScaleMode {
	if s == config.ScaleTile {
		return TileHorizontal
	}
	return StretchToFill
}
