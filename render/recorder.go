package render

import "image"

// Call is one draw issued against a Recorder.
type Call struct {
	Bitmap Bitmap
	X, Y   float64
	// Src is the drawn part of Bitmap in its own coordinates.
	Src image.Rectangle
}

// Rect returns the screen rectangle covered by the call.
func (c Call) Rect() image.Rectangle {
	return image.Rect(0, 0, c.Src.Dx(), c.Src.Dy()).Add(image.Pt(int(c.X), int(c.Y)))
}

// Recorder is a Surface that keeps every call in order. The layer preview
// tool prints it, and tests assert on it.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) Draw(b Bitmap, x, y float64) {
	r.Calls = append(r.Calls, Call{Bitmap: b, X: x, Y: y, Src: b.Bounds()})
}

func (r *Recorder) DrawClipped(b Bitmap, x, y float64, src image.Rectangle) {
	r.Calls = append(r.Calls, Call{Bitmap: b, X: x, Y: y, Src: src.Intersect(b.Bounds())})
}

// Reset drops recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
