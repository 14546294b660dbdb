package polysandbox

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed scenes/default.toml
var defaultSceneTOML string

// SceneConfig is the TOML scene description: window, tick rate, key
// magnitudes and the initial shapes in spawn order. The last shape listed
// starts out active.
type SceneConfig struct {
	Window   WindowConfig   `toml:"window"`
	Loop     LoopConfig     `toml:"loop"`
	Controls ControlsConfig `toml:"controls"`
	Shapes   []ShapeConfig  `toml:"shape"`
}

// WindowConfig sizes the drawing surface in world units.
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// LoopConfig sets the tick cadence.
type LoopConfig struct {
	Interval Duration `toml:"interval"`
}

// ControlsConfig mirrors Controls.
type ControlsConfig struct {
	MoveSpeed   float64 `toml:"move_speed"`
	RotateSpeed float64 `toml:"rotate_speed"`
}

// ShapeConfig describes one shape. Which fields apply depends on Kind:
// "polygon" uses Size and Sides, "star" uses Size, Points and Ratio,
// "triangle" uses InnerAngle and SideLength.
type ShapeConfig struct {
	Kind       string  `toml:"kind"`
	X          float64 `toml:"x"`
	Y          float64 `toml:"y"`
	Rotation   float64 `toml:"rotation"`
	Size       float64 `toml:"size"`
	Sides      int     `toml:"sides"`
	Points     int     `toml:"points"`
	Ratio      float64 `toml:"ratio"`
	InnerAngle float64 `toml:"inner_angle"`
	SideLength float64 `toml:"side_length"`
}

// Duration decodes TOML strings like "20ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DefaultSceneConfig returns the built-in scene.
func DefaultSceneConfig() SceneConfig {
	cfg, err := ParseSceneConfig(defaultSceneTOML)
	if err != nil {
		panic(fmt.Sprintf("polysandbox: embedded scene: %v", err))
	}
	return cfg
}

// LoadSceneConfig reads a scene file.
func LoadSceneConfig(path string) (SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SceneConfig{}, fmt.Errorf("load scene: %w", err)
	}
	cfg, err := ParseSceneConfig(string(data))
	if err != nil {
		return SceneConfig{}, fmt.Errorf("load scene %s: %w", path, err)
	}
	return cfg, nil
}

// ParseSceneConfig decodes and validates a TOML scene. Unset window, loop
// and control values fall back to the defaults.
func ParseSceneConfig(data string) (SceneConfig, error) {
	var cfg SceneConfig
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return SceneConfig{}, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return SceneConfig{}, fmt.Errorf("%w: unknown keys: %s", ErrConfiguration, strings.Join(keys, ", "))
	}
	cfg.applyDefaults()
	if len(cfg.Shapes) == 0 {
		return SceneConfig{}, configErr("scene", "shape list", "must not be empty")
	}
	return cfg, nil
}

func (c *SceneConfig) applyDefaults() {
	if c.Window.Title == "" {
		c.Window.Title = "polysandbox"
	}
	if c.Window.Width <= 0 {
		c.Window.Width = 800
	}
	if c.Window.Height <= 0 {
		c.Window.Height = 600
	}
	if c.Loop.Interval.Duration <= 0 {
		c.Loop.Interval.Duration = DefaultInterval
	}
	if c.Controls.MoveSpeed == 0 {
		c.Controls.MoveSpeed = DefaultControls.MoveSpeed
	}
	if c.Controls.RotateSpeed == 0 {
		c.Controls.RotateSpeed = DefaultControls.RotateSpeed
	}
}

// ControlSet returns the configured key magnitudes.
func (c SceneConfig) ControlSet() Controls {
	return Controls{MoveSpeed: c.Controls.MoveSpeed, RotateSpeed: c.Controls.RotateSpeed}
}

// Build constructs the shape described by sc.
func (sc ShapeConfig) Build() (Shape, error) {
	switch strings.ToLower(sc.Kind) {
	case "polygon":
		return NewRegularPolygon(sc.X, sc.Y, sc.Size, sc.Rotation, sc.Sides)
	case "star":
		return NewRegularStar(sc.X, sc.Y, sc.Size, sc.Rotation, sc.Points, sc.Ratio)
	case "triangle":
		return NewIsoscelesTriangle(sc.X, sc.Y, sc.InnerAngle, sc.SideLength, sc.Rotation)
	default:
		return nil, configErr("scene", "shape kind", fmt.Sprintf("%q is not polygon, star or triangle", sc.Kind))
	}
}

// Populate spawns every configured shape into sim in order.
func (c SceneConfig) Populate(sim *Simulation) error {
	for i, sc := range c.Shapes {
		shape, err := sc.Build()
		if err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
		if _, err := sim.Spawn(shape); err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
	}
	return nil
}
