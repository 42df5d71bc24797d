package assets

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Scale resizes src to w×h with nearest-neighbour sampling so pixel art
// stays crisp. It returns nil when either target dimension is not positive.
func Scale(src image.Image, w, h int) *image.NRGBA {
	if w <= 0 || h <= 0 {
		return nil
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Solid returns a w×h image filled with c.
func Solid(w, h int, c color.Color) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return dst
}
