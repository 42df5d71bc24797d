// Package player implements the controllable character: its kinematics,
// the flat-ground collision rule and the commands the game loop issues.
package player

import (
	"image"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/parallax/render"
)

// State is the ground-contact state of the player.
type State int

const (
	Grounded State = iota
	Airborne
)

func (s State) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Airborne:
		return "airborne"
	}
	return "unknown"
}

// Params are the tuning constants of the player's motion, in pixels and
// pixels per tick.
type Params struct {
	Gravity float64
	// GravitySeed is the downward speed gravity starts from when the
	// vertical velocity is exactly zero.
	GravitySeed float64
	Speed       float64
	JumpPower   float64
	GroundLineY float64
}

// Controller owns the single player's kinematic state. It is not safe for
// concurrent use; the game loop is its only caller.
type Controller struct {
	params Params

	// pos is the top-left corner of the bounding box.
	pos   cp.Vector
	vel   cp.Vector
	size  cp.Vector
	state State

	sprite render.Bitmap
}

// New places a player of the sprite's size standing on the ground line at x.
func New(params Params, x float64, sprite render.Bitmap) *Controller {
	b := sprite.Bounds()
	c := &Controller{
		params: params,
		size:   cp.Vector{X: float64(b.Dx()), Y: float64(b.Dy())},
		state:  Grounded,
		sprite: sprite,
	}
	c.pos = cp.Vector{X: x, Y: params.GroundLineY - c.size.Y}
	return c
}

// Update advances the player by one tick: gravity, vertical move, ground
// clamp, horizontal move, then the walk-off check. Horizontal motion runs
// after the clamp so a landing tick still moves sideways.
func (c *Controller) Update() {
	c.applyGravity()

	c.pos = c.pos.Add(cp.Vector{Y: c.vel.Y})
	if c.Bottom() >= c.params.GroundLineY {
		c.pos.Y = c.params.GroundLineY - c.size.Y
		c.vel.Y = 0
		c.state = Grounded
	}

	c.pos = c.pos.Add(cp.Vector{X: c.vel.X})

	// Unreachable on an endless flat ground; kept for ledges.
	if c.state == Grounded && c.vel.Y != 0 && c.Bottom() < c.params.GroundLineY {
		c.state = Airborne
	}
}

func (c *Controller) applyGravity() {
	if c.vel.Y == 0 {
		c.vel.Y = c.params.GravitySeed
		return
	}
	c.vel.Y += c.params.Gravity
}

// MoveLeft sets the horizontal velocity to the walking speed, leftwards.
func (c *Controller) MoveLeft() {
	c.vel.X = -c.params.Speed
}

// MoveRight sets the horizontal velocity to the walking speed, rightwards.
func (c *Controller) MoveRight() {
	c.vel.X = c.params.Speed
}

// Stop zeroes the horizontal velocity. Callers only stop when the released
// key matches the current direction of travel, so releasing an overridden
// key does not cancel a newer command.
func (c *Controller) Stop() {
	c.vel.X = 0
}

// Jump launches the player when Grounded and is a no-op otherwise.
func (c *Controller) Jump() {
	if c.state != Grounded {
		return
	}
	c.vel.Y = -c.params.JumpPower
	c.state = Airborne
}

// Place moves the bounding box's top-left corner without touching velocity
// or state; the next Update re-derives ground contact.
func (c *Controller) Place(x, y float64) {
	c.pos = cp.Vector{X: x, Y: y}
}

// Render draws the sprite at its pixel-snapped bounding box.
func (c *Controller) Render(s render.Surface) {
	if c.sprite == nil {
		return
	}
	r := c.PixelBounds()
	s.Draw(c.sprite, float64(r.Min.X), float64(r.Min.Y))
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) OnGround() bool {
	return c.state == Grounded
}

func (c *Controller) Position() cp.Vector {
	return c.pos
}

func (c *Controller) Velocity() cp.Vector {
	return c.vel
}

// Size is the bounding box size, taken from the sprite.
func (c *Controller) Size() cp.Vector {
	return c.size
}

// Bottom is the Y of the bounding box's bottom edge.
func (c *Controller) Bottom() float64 {
	return c.pos.Y + c.size.Y
}

// PixelBounds is the bounding box snapped down to whole pixels.
func (c *Controller) PixelBounds() image.Rectangle {
	x := int(math.Floor(c.pos.X))
	y := int(math.Floor(c.pos.Y))
	return image.Rect(x, y, x+int(c.size.X), y+int(c.size.Y))
}
