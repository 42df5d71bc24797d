package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Bitmap is an opaque drawable image handle. *ebiten.Image satisfies it,
// and so does any image.Image.
type Bitmap interface {
	Bounds() image.Rectangle
}

// Surface receives ordered draw calls. Coordinates are screen pixels of the
// bitmap's top-left corner.
type Surface interface {
	Draw(b Bitmap, x, y float64)
	// DrawClipped draws only the src sub-rectangle of b, with src's
	// top-left corner placed at (x, y).
	DrawClipped(b Bitmap, x, y float64, src image.Rectangle)
}

// Uploader turns a decoded CPU image into a drawable Bitmap.
type Uploader func(img image.Image) Bitmap

// Upload copies img to the GPU.
func Upload(img image.Image) Bitmap {
	return ebiten.NewImageFromImage(img)
}

// Screen adapts an ebiten render target to Surface. Bitmaps that are not
// *ebiten.Image are ignored.
type Screen struct {
	Target *ebiten.Image
}

func (s Screen) Draw(b Bitmap, x, y float64) {
	img, ok := b.(*ebiten.Image)
	if !ok || img == nil || s.Target == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	s.Target.DrawImage(img, op)
}

func (s Screen) DrawClipped(b Bitmap, x, y float64, src image.Rectangle) {
	img, ok := b.(*ebiten.Image)
	if !ok || img == nil || s.Target == nil {
		return
	}
	sub, ok := img.SubImage(src).(*ebiten.Image)
	if !ok || sub.Bounds().Empty() {
		return
	}
	s.Draw(sub, x, y)
}
