package config

// LayerCount is the fixed depth of the background stack.
const LayerCount = 5

// ScaleMode selects how a background layer is sized to the viewport.
type ScaleMode string

const (
	// ScaleFill scales uniformly until the layer covers the viewport.
	ScaleFill ScaleMode = "fill"
	// ScaleTile keeps the native width, matches the viewport height and
	// repeats the result horizontally.
	ScaleTile ScaleMode = "tile"
)

// Anchor selects how a layer's screen Y is derived.
type Anchor string

const (
	// AnchorFixed places the layer top at LayerConfig.Y.
	AnchorFixed Anchor = "fixed"
	// AnchorGround lines the layer's own ground line up with the screen ground line.
	AnchorGround Anchor = "ground"
	// AnchorBelowGround places the layer top LayerConfig.Below pixels under the ground line.
	AnchorBelowGround Anchor = "below_ground"
)

type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Timing     TimingConfig     `yaml:"timing"`
	Ground     GroundConfig     `yaml:"ground"`
	Player     PlayerConfig     `yaml:"player"`
	Background BackgroundConfig `yaml:"background"`

	// Source is where the config was read from ("embedded" for the built-in default).
	Source string `yaml:"-"`
}

type ScreenConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type TimingConfig struct {
	TPS int `yaml:"tps"`
}

type GroundConfig struct {
	// LineY is the screen row the player's feet rest on.
	LineY int `yaml:"line_y"`
}

type PlayerConfig struct {
	Sprite      string            `yaml:"sprite"`
	StartX      *float64          `yaml:"start_x"`
	Speed       float64           `yaml:"speed"`
	JumpPower   float64           `yaml:"jump_power"`
	Gravity     float64           `yaml:"gravity"`
	GravitySeed float64           `yaml:"gravity_seed"`
	Placeholder PlaceholderConfig `yaml:"placeholder"`
}

// PlaceholderConfig describes the rectangle drawn when the sprite is missing.
type PlaceholderConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Color  string `yaml:"color"`
}

type BackgroundConfig struct {
	Layers []LayerConfig `yaml:"layers"`
}

type LayerConfig struct {
	Name   string    `yaml:"name"`
	Path   string    `yaml:"path"`
	Scale  ScaleMode `yaml:"scale"`
	Anchor Anchor    `yaml:"anchor"`
	Y      int       `yaml:"y"`
	// GroundOffset is the distance from the top of the scaled bitmap down to
	// its drawn ground line.
	GroundOffset int `yaml:"ground_offset"`
	Below        int `yaml:"below"`
	// Size overrides the dimensions derived from the scale mode.
	Size            *Size `yaml:"size"`
	FillBelowGround bool  `yaml:"fill_below_ground"`
}

type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerStartX returns the configured spawn X, defaulting to a quarter of
// the screen width.
func (c *Config) PlayerStartX() float64 {
	if c.Player.StartX != nil {
		return *c.Player.StartX
	}
	return float64(c.Screen.Width / 4)
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
			Title:  "Simple Side Scroller with Layers",
		},
		Timing: TimingConfig{TPS: 60},
		Ground: GroundConfig{LineY: 550},
		Player: PlayerConfig{
			Sprite:      "sprites/girl_sprite.png",
			Speed:       5,
			JumpPower:   10,
			Gravity:     0.35,
			GravitySeed: 1,
			Placeholder: PlaceholderConfig{Width: 40, Height: 50, Color: "red"},
		},
		Background: BackgroundConfig{
			Layers: []LayerConfig{
				{Name: "sky", Path: "layer/parallax-mountain-bg.png", Scale: ScaleFill, Anchor: AnchorFixed, Y: 0},
				{Name: "far-mountains", Path: "layer/parallax-mountain-montain-far.png", Scale: ScaleFill, Anchor: AnchorFixed, Y: 50},
				{Name: "mountains", Path: "layer/parallax-mountain-mountains.png", Scale: ScaleFill, Anchor: AnchorFixed, Y: 150},
				{Name: "trees", Path: "layer/parallax-mountain-trees.png", Scale: ScaleTile, Anchor: AnchorGround, GroundOffset: 570, FillBelowGround: true},
				{Name: "foreground", Path: "layer/parallax-mountain-foreground-trees.png", Scale: ScaleTile, Anchor: AnchorBelowGround, Below: 20},
			},
		},
	}
}
