// Package theme loads radial menu definitions from yaml: the item list with
// colors and glyphs, ring geometry, animation durations, and optional action
// script bindings. It plays the role a prefab layer plays in a game — data
// the host edits without recompiling — and pairs with Watcher for hot
// reload.
package theme

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Color wraps color.Color with yaml unmarshalling from "#rrggbb" or
// "#rrggbbaa" hex strings.
type Color struct {
	color.Color
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// ItemSpec is one menu entry as authored in yaml.
type ItemSpec struct {
	// Label doubles as the value reported on selection.
	Label      string `yaml:"label"`
	Glyph      string `yaml:"glyph"`
	Background Color  `yaml:"background"`
	IconColor  Color  `yaml:"icon_color"`
	// Action names a tengo script (basename, .tengo optional) run when
	// this item's activation completes. Empty means no script.
	Action string `yaml:"action"`
}

// MenuSpec is a whole menu definition.
type MenuSpec struct {
	Name        string     `yaml:"name"`
	Radius      float64    `yaml:"radius"`
	ItemSize    float64    `yaml:"item_size"`
	CenterSize  float64    `yaml:"center_size"`
	StrokeWidth float64    `yaml:"stroke_width"`
	OpenMS      int        `yaml:"open_duration_ms"`
	ActivateMS  int        `yaml:"activate_duration_ms"`
	Items       []ItemSpec `yaml:"items"`
}

// Parse unmarshals a menu definition and fills zero geometry/duration
// fields with usable defaults. An empty item list is legal.
func Parse(data []byte) (MenuSpec, error) {
	var spec MenuSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return MenuSpec{}, fmt.Errorf("theme: unmarshal menu spec: %w", err)
	}

	if spec.Radius <= 0 {
		spec.Radius = 100
	}
	if spec.ItemSize <= 0 {
		spec.ItemSize = 48
	}
	if spec.CenterSize <= 0 {
		spec.CenterSize = 56
	}
	if spec.StrokeWidth <= 0 {
		spec.StrokeWidth = 4
	}
	if spec.OpenMS <= 0 {
		spec.OpenMS = 600
	}
	if spec.ActivateMS <= 0 {
		spec.ActivateMS = 800
	}
	return spec, nil
}

// LoadFile reads and parses a menu definition from disk.
func LoadFile(path string) (MenuSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MenuSpec{}, fmt.Errorf("theme: load %s: %w", path, err)
	}
	spec, err := Parse(data)
	if err != nil {
		return MenuSpec{}, fmt.Errorf("theme: parse %s: %w", path, err)
	}
	return spec, nil
}

// OpenDuration returns the open/close animation duration.
func (s MenuSpec) OpenDuration() time.Duration {
	return time.Duration(s.OpenMS) * time.Millisecond
}

// ActivateDuration returns the activation animation duration.
func (s MenuSpec) ActivateDuration() time.Duration {
	return time.Duration(s.ActivateMS) * time.Millisecond
}
