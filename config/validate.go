package config

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/image/colornames"
)

// ErrInvalidConfig marks a configuration the game refuses to start with.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate reports every problem found in c. The returned error matches
// ErrInvalidConfig with errors.Is.
func (c *Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		fail("screen: dimensions must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Timing.TPS <= 0 {
		fail("timing: tps must be positive, got %d", c.Timing.TPS)
	}
	if c.Ground.LineY < 0 || c.Ground.LineY > c.Screen.Height {
		fail("ground: line_y %d outside screen height %d", c.Ground.LineY, c.Screen.Height)
	}

	p := c.Player
	if p.Sprite == "" {
		fail("player: sprite is required")
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"speed", p.Speed},
		{"jump_power", p.JumpPower},
		{"gravity", p.Gravity},
		{"gravity_seed", p.GravitySeed},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v < 0 {
			fail("player: %s must be a finite non-negative number, got %v", f.name, f.v)
		}
	}
	if p.Placeholder.Width <= 0 || p.Placeholder.Height <= 0 {
		fail("player: placeholder dimensions must be positive, got %dx%d", p.Placeholder.Width, p.Placeholder.Height)
	}
	if _, ok := colornames.Map[p.Placeholder.Color]; !ok {
		fail("player: unknown placeholder color %q", p.Placeholder.Color)
	}

	if n := len(c.Background.Layers); n != LayerCount {
		fail("background: expected %d layers, got %d", LayerCount, n)
	}
	for i, l := range c.Background.Layers {
		if err := l.validate(); err != nil {
			fail("background: layer %d (%s): %w", i, l.Name, err)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

func (l LayerConfig) validate() error {
	if l.Path == "" {
		return errors.New("path is required")
	}
	switch l.Scale {
	case ScaleFill, ScaleTile:
	default:
		return fmt.Errorf("unknown scale %q", l.Scale)
	}
	switch l.Anchor {
	case AnchorFixed:
	case AnchorGround:
		if l.GroundOffset < 0 {
			return fmt.Errorf("ground_offset must not be negative, got %d", l.GroundOffset)
		}
	case AnchorBelowGround:
		if l.Below < 0 {
			return fmt.Errorf("below must not be negative, got %d", l.Below)
		}
	default:
		return fmt.Errorf("unknown anchor %q", l.Anchor)
	}
	if l.Size != nil && (l.Size.Width <= 0 || l.Size.Height <= 0) {
		return fmt.Errorf("size must be positive, got %dx%d", l.Size.Width, l.Size.Height)
	}
	if l.FillBelowGround && l.Anchor != AnchorGround {
		return errors.New("fill_below_ground requires the ground anchor")
	}
	return nil
}
