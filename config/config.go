package config

import (
	"drag"
	"drag/transform"
	"fmt"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/unicode/norm"
)

type Config struct {
	// Platform names the transform format: "webkit" or "gecko".
	Platform string `toml:"platform"`
	// UserAgent, when set, selects the format instead of Platform.
	UserAgent string `toml:"user_agent"`
	// Log is the file log output goes to; empty discards it.
	Log   string `toml:"log"`
	Boxes []Box  `toml:"box"`
}

type Box struct {
	Label       string `toml:"label"`
	Left        int    `toml:"left"`
	Top         int    `toml:"top"`
	Width       int    `toml:"width"`
	Height      int    `toml:"height"`
	Smooth      bool   `toml:"smooth"`
	Axis        string `toml:"axis"`
	ActiveClass string `toml:"active_class"`
	Range       Range  `toml:"range"`
}

type Range struct {
	X []float64 `toml:"x"`
	Y []float64 `toml:"y"`
}

func Default() *Config {
	return &Config{
		Platform: "webkit",
		Boxes: []Box{
			{Label: "drag me", Left: 2, Top: 2, Width: 16, Height: 3, ActiveClass: "dragging"},
			{Label: "smooth", Left: 24, Top: 2, Width: 16, Height: 3, Smooth: true, ActiveClass: "dragging"},
			{Label: "x only", Left: 2, Top: 8, Width: 12, Height: 3, Axis: "x", ActiveClass: "dragging",
				Range: Range{X: []float64{0, 60}}},
			{Label: "y in [0, 15]", Left: 50, Top: 2, Width: 14, Height: 3, Smooth: true, Axis: "y", ActiveClass: "dragging",
				Range: Range{Y: []float64{0, 15}}},
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

func Decode(data string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	for i := range c.Boxes {
		c.Boxes[i].Label = norm.NFC.String(c.Boxes[i].Label)
	}
}

func (c *Config) Format() (transform.Format, error) {
	if c.UserAgent != "" {
		return transform.Detect(c.UserAgent), nil
	}
	return transform.ByName(c.Platform)
}

func (b Box) Options() (drag.Options, error) {
	axis, err := drag.ParseAxis(b.Axis)
	if err != nil {
		return drag.Options{}, fmt.Errorf("box %q: %w", b.Label, err)
	}
	x, err := interval(b.Range.X)
	if err != nil {
		return drag.Options{}, fmt.Errorf("box %q: range x: %w", b.Label, err)
	}
	y, err := interval(b.Range.Y)
	if err != nil {
		return drag.Options{}, fmt.Errorf("box %q: range y: %w", b.Label, err)
	}
	return drag.Options{
		Smooth:      b.Smooth,
		Axis:        axis,
		Range:       drag.Range{X: x, Y: y},
		ActiveClass: b.ActiveClass,
	}, nil
}

func interval(bounds []float64) (*drag.Interval, error) {
	switch {
	case len(bounds) == 0:
		return nil, nil
	case len(bounds) != 2:
		return nil, fmt.Errorf("%w: want [min, max], got %d values", drag.ErrInvalidArgument, len(bounds))
	case bounds[0] > bounds[1]:
		return nil, fmt.Errorf("%w: min %g > max %g", drag.ErrInvalidArgument, bounds[0], bounds[1])
	}
	return &drag.Interval{Min: bounds[0], Max: bounds[1]}, nil
}
