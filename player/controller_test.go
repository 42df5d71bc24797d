package player

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"
	"github.com/milk9111/parallax/assets"
	"github.com/milk9111/parallax/config"
	"github.com/milk9111/parallax/render"
)

const eps = 1e-9

type box struct{ w, h int }

func (b box) Bounds() image.Rectangle { return image.Rect(0, 0, b.w, b.h) }

func traceParams() Params {
	return Params{
		Gravity:     0.35,
		GravitySeed: 1,
		Speed:       5,
		JumpPower:   10,
		GroundLineY: 550,
	}
}

func newTestPlayer() *Controller {
	return New(traceParams(), 200, box{w: 40, h: 50})
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestNewStartsGrounded(t *testing.T) {
	p := newTestPlayer()
	if p.State() != Grounded || !p.OnGround() {
		t.Fatalf("expected grounded, got %v", p.State())
	}
	if p.Bottom() != 550 {
		t.Fatalf("bottom = %v, expected 550", p.Bottom())
	}
	if v := p.Velocity(); v.X != 0 || v.Y != 0 {
		t.Fatalf("expected zero velocity, got %v", v)
	}
	if s := p.Size(); s.X != 40 || s.Y != 50 {
		t.Fatalf("size = %v, expected 40x50", s)
	}
}

func TestGravityIntegration(t *testing.T) {
	params := traceParams()
	params.GroundLineY = 1e9
	p := New(params, 0, box{w: 40, h: 50})
	p.Place(0, 0)

	y := 0.0
	for n := 1; n <= 120; n++ {
		p.Update()
		want := params.GravitySeed + float64(n-1)*params.Gravity
		if got := p.Velocity().Y; math.Abs(got-want) > 1e-9*float64(n) {
			t.Fatalf("tick %d: vy = %v, expected %v", n, got, want)
		}
		y += p.Velocity().Y
		if got := p.Position().Y; math.Abs(got-y) > eps*float64(n) {
			t.Fatalf("tick %d: y = %v, expected running sum %v", n, got, y)
		}
		if p.State() != Airborne {
			t.Fatalf("tick %d: expected airborne in free fall, got %v", n, p.State())
		}
	}
}

func TestWalkOffEdgeBecomesAirborne(t *testing.T) {
	p := newTestPlayer()
	p.Place(200, 300)
	if p.State() != Grounded {
		t.Fatal("Place must not change state")
	}
	p.Update()
	if p.State() != Airborne {
		t.Fatalf("expected airborne after losing ground, got %v", p.State())
	}
	if p.Velocity().Y != 1 {
		t.Fatalf("expected seeded fall speed 1, got %v", p.Velocity().Y)
	}
}

func TestLandingIsFixedPoint(t *testing.T) {
	p := newTestPlayer()
	p.Place(200, 400)
	p.Update()
	for i := 0; p.State() == Airborne; i++ {
		if i > 200 {
			t.Fatal("never landed")
		}
		p.Update()
	}
	for i := 0; i < 500; i++ {
		p.Update()
		if p.Bottom() != 550 || p.Velocity().Y != 0 || !p.OnGround() {
			t.Fatalf("tick %d after landing: bottom=%v vy=%v state=%v", i, p.Bottom(), p.Velocity().Y, p.State())
		}
	}
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	p := newTestPlayer()

	p.Jump()
	if p.Velocity().Y != -10 || p.State() != Airborne {
		t.Fatalf("grounded jump: vy=%v state=%v", p.Velocity().Y, p.State())
	}

	p.Update()
	before := p.Velocity().Y
	p.Jump()
	if p.Velocity().Y != before {
		t.Fatalf("airborne jump changed vy from %v to %v", before, p.Velocity().Y)
	}
	if p.State() != Airborne {
		t.Fatalf("expected airborne, got %v", p.State())
	}
}

func TestHorizontalCommands(t *testing.T) {
	tests := []struct {
		name string
		cmds func(p *Controller)
		want float64
	}{
		{"left", func(p *Controller) { p.MoveLeft() }, -5},
		{"right", func(p *Controller) { p.MoveRight() }, 5},
		{"last_wins", func(p *Controller) { p.MoveLeft(); p.MoveRight() }, 5},
		{"repeat", func(p *Controller) { p.MoveLeft(); p.MoveLeft() }, -5},
		{"stop", func(p *Controller) { p.MoveRight(); p.Stop() }, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestPlayer()
			tc.cmds(p)
			if got := p.Velocity().X; got != tc.want {
				t.Fatalf("vx = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestHorizontalMoveOnLandingTick(t *testing.T) {
	p := newTestPlayer()
	p.Place(200, 499.5)
	p.MoveRight()
	p.Update()
	if !p.OnGround() {
		t.Fatalf("expected landing, got %v", p.State())
	}
	if p.Position().X != 205 {
		t.Fatalf("x = %v, expected horizontal move in the landing tick", p.Position().X)
	}
}

func TestJumpTrace(t *testing.T) {
	p := newTestPlayer()

	p.Jump()
	if p.Velocity().Y != -10 || p.State() != Airborne {
		t.Fatalf("after jump: vy=%v state=%v", p.Velocity().Y, p.State())
	}

	// Tick 1: gravity first, then integrate.
	p.Update()
	if !near(p.Velocity().Y, -9.65) {
		t.Fatalf("tick 1: vy = %v, expected -9.65", p.Velocity().Y)
	}
	if !near(p.Bottom(), 540.35) {
		t.Fatalf("tick 1: bottom = %v, expected 540.35", p.Bottom())
	}
	if got := p.PixelBounds().Max.Y; got != 540 {
		t.Fatalf("tick 1: drawn bottom = %d, expected 540", got)
	}

	// Tick 2.
	p.Update()
	if !near(p.Velocity().Y, -9.3) || !near(p.Bottom(), 531.05) {
		t.Fatalf("tick 2: vy=%v bottom=%v", p.Velocity().Y, p.Bottom())
	}

	ticks := 2
	peak := p.Bottom()
	for p.State() == Airborne {
		p.Update()
		ticks++
		peak = math.Min(peak, p.Bottom())
		if ticks > 1000 {
			t.Fatal("never landed")
		}
	}
	if p.Bottom() != 550 || p.Velocity().Y != 0 {
		t.Fatalf("landed at bottom=%v vy=%v", p.Bottom(), p.Velocity().Y)
	}
	if peak >= 550 || peak < 400 {
		t.Fatalf("implausible jump apex %v", peak)
	}
}

func TestRenderDrawsAtPixelBounds(t *testing.T) {
	sprite := box{w: 40, h: 50}
	p := New(traceParams(), 200.7, sprite)
	p.Jump()
	p.Update()

	var rec render.Recorder
	p.Render(&rec)
	if len(rec.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(rec.Calls))
	}
	call := rec.Calls[0]
	if call.Bitmap != render.Bitmap(sprite) || call.X != 200 || call.Y != 490 {
		t.Fatalf("unexpected draw %+v", call)
	}
}

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, assets.Solid(w, h, color.White)); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestLoad(t *testing.T) {
	cfg := config.Default()
	logger := log.New(io.Discard)
	keep := func(img image.Image) render.Bitmap { return img }

	t.Run("sprite", func(t *testing.T) {
		fsys := fstest.MapFS{cfg.Player.Sprite: {Data: pngOf(t, 32, 48)}}
		p := Load(&cfg, fsys, keep, logger)
		if s := p.Size(); s.X != 32 || s.Y != 48 {
			t.Fatalf("size = %v, expected sprite size", s)
		}
		if p.Bottom() != 550 || p.Position().X != 200 {
			t.Fatalf("spawn at %v bottom %v", p.Position(), p.Bottom())
		}
	})

	t.Run("placeholder", func(t *testing.T) {
		p := Load(&cfg, fstest.MapFS{}, keep, logger)
		if s := p.Size(); s.X != 40 || s.Y != 50 {
			t.Fatalf("size = %v, expected 40x50 placeholder", s)
		}
		var rec render.Recorder
		p.Render(&rec)
		if len(rec.Calls) != 1 {
			t.Fatalf("placeholder not drawn")
		}
		img, ok := rec.Calls[0].Bitmap.(*image.NRGBA)
		if !ok {
			t.Fatalf("unexpected bitmap %T", rec.Calls[0].Bitmap)
		}
		if got := img.NRGBAAt(0, 0); got != (color.NRGBA{R: 255, A: 255}) {
			t.Fatalf("placeholder colour = %v, expected red", got)
		}
		p.Update()
		if !p.OnGround() {
			t.Fatal("placeholder player should be playable")
		}
	})
}
