package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/parallax/background"
	"github.com/milk9111/parallax/input"
	"github.com/milk9111/parallax/player"
	"github.com/milk9111/parallax/render"
	"golang.org/x/image/colornames"
)

// Entity is anything the game ticks and draws.
type Entity interface {
	Update()
	Render(s render.Surface)
}

type Game struct {
	frames int

	width, height int
	debug         bool
	running       bool

	input      input.Source
	player     *player.Controller
	background *background.Compositor
	// entities are drawn in slice order, backdrop first.
	entities []Entity
}

func NewGame(width, height int, src input.Source, bg *background.Compositor, p *player.Controller, debug bool) *Game {
	return &Game{
		width:      width,
		height:     height,
		debug:      debug,
		running:    true,
		input:      src,
		player:     p,
		background: bg,
		entities:   []Entity{bg, p},
	}
}

// Update runs one fixed tick. ebiten paces calls to the configured TPS.
func (g *Game) Update() error {
	for ev := range g.input.Events() {
		g.handle(ev)
	}
	if !g.running {
		return ebiten.Termination
	}

	g.frames++
	for _, e := range g.entities {
		e.Update()
	}
	return nil
}

// handle applies one input event to the player. A key-up only stops the
// player when it releases the direction currently being travelled.
func (g *Game) handle(ev input.Event) {
	switch ev.Kind {
	case input.Quit:
		g.running = false
	case input.KeyDown:
		switch ev.Key {
		case input.KeyLeft:
			g.player.MoveLeft()
		case input.KeyRight:
			g.player.MoveRight()
		case input.KeyJump:
			g.player.Jump()
		}
	case input.KeyUp:
		vx := g.player.Velocity().X
		switch {
		case ev.Key == input.KeyLeft && vx < 0:
			g.player.Stop()
		case ev.Key == input.KeyRight && vx > 0:
			g.player.Stop()
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	g.render(render.Screen{Target: screen})

	if g.debug {
		pos := g.player.Position()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %.2f  Frames: %d\nPlayer: %s (%.1f, %.1f)",
			ebiten.ActualTPS(), g.frames, g.player.State(), pos.X, pos.Y))
	}
}

func (g *Game) render(s render.Surface) {
	for _, e := range g.entities {
		e.Render(s)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
