package background

import (
	"image"

	"github.com/milk9111/parallax/render"
)

// ScaleMode is the sizing policy a layer was loaded with.
type ScaleMode int

const (
	// StretchToFill layers are scaled uniformly to cover the viewport and
	// drawn once at X=0.
	StretchToFill ScaleMode = iota
	// TileHorizontal layers are repeated from X=0 until the viewport width is covered.
	TileHorizontal
)

func (m ScaleMode) String() string {
	switch m {
	case StretchToFill:
		return "fill"
	case TileHorizontal:
		return "tile"
	}
	return "unknown"
}

// Layer is one loaded slot of the background stack. It is not modified
// after loading.
type Layer struct {
	Name string
	// Image is nil when the asset failed to load; the slot is kept so
	// DrawOrder stays stable.
	Image     render.Bitmap
	Mode      ScaleMode
	ScreenY   int
	DrawOrder int

	// Strip is the part of a tiled image below its ground line, repeated
	// downward from StripY. Empty when unused.
	Strip  image.Rectangle
	StripY int
}

// Loaded reports whether the layer has something to draw.
func (l Layer) Loaded() bool {
	return l.Image != nil
}

// TileWidth is the horizontal repeat step of a tiled layer.
func (l Layer) TileWidth() int {
	if l.Image == nil {
		return 0
	}
	return l.Image.Bounds().Dx()
}

// TileCount is the number of repeats of width tileW needed to cover
// viewportW starting at X=0. It is 0 when either width is not positive.
func TileCount(viewportW, tileW int) int {
	if viewportW <= 0 || tileW <= 0 {
		return 0
	}
	return (viewportW + tileW - 1) / tileW
}
