package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/pong/match"
	"gopkg.in/yaml.v3"
)

// DefaultMatch is the prefab loaded when no other is configured.
const DefaultMatch = "match.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type MatchSpec struct {
	Name     string       `yaml:"name"`
	Field    FieldSpec    `yaml:"field"`
	Paddle   PaddleSpec   `yaml:"paddle"`
	Player   SideSpec     `yaml:"player"`
	Opponent OpponentSpec `yaml:"opponent"`
	Ball     BallSpec     `yaml:"ball"`
	WinScore *int         `yaml:"win_score"`
	Palette  PaletteSpec  `yaml:"palette"`
}

func LoadMatchSpec(name string) (*MatchSpec, error) {
	if name == "" {
		name = DefaultMatch
	}
	spec, err := LoadSpec[MatchSpec](name)
	if err != nil {
		return nil, err
	}
	if err := spec.Rules().Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return &spec, nil
}

type FieldSpec struct {
	Width  *float64 `yaml:"width"`
	Height *float64 `yaml:"height"`
}

type PaddleSpec struct {
	Width  *float64 `yaml:"width"`
	Height *float64 `yaml:"height"`
	Inset  *float64 `yaml:"inset"`
}

type SideSpec struct {
	Speed *float64   `yaml:"speed"`
	Color *YAMLColor `yaml:"color"`
}

type OpponentSpec struct {
	SideSpec         `yaml:",inline"`
	Script           string   `yaml:"script"`
	DeadZone         *float64 `yaml:"dead_zone"`
	RecenterDeadZone *float64 `yaml:"recenter_dead_zone"`
}

type BallSpec struct {
	Size            *float64   `yaml:"size"`
	ServeSpeed      *float64   `yaml:"serve_speed"`
	OpeningDY       *float64   `yaml:"opening_dy"`
	ServeSpread     *float64   `yaml:"serve_spread"`
	Deflection      *float64   `yaml:"deflection"`
	DeflectionNoise *float64   `yaml:"deflection_noise"`
	Color           *YAMLColor `yaml:"color"`
	Glow            *YAMLColor `yaml:"glow"`
}

type PaletteSpec struct {
	Background *YAMLColor `yaml:"background"`
	CenterLine *YAMLColor `yaml:"center_line"`
	Goals      *YAMLColor `yaml:"goals"`
	Face       *YAMLColor `yaml:"face"`
	Eyes       *YAMLColor `yaml:"eyes"`
	Smile      *YAMLColor `yaml:"smile"`
	Text       *YAMLColor `yaml:"text"`
}

// Rules overlays the prefab on match.DefaultRules. Omitted fields keep the
// default; an explicit zero is kept.
func (s *MatchSpec) Rules() match.Rules {
	r := match.DefaultRules()
	if s == nil {
		return r
	}
	overlay(&r.FieldWidth, s.Field.Width)
	overlay(&r.FieldHeight, s.Field.Height)
	overlay(&r.PaddleWidth, s.Paddle.Width)
	overlay(&r.PaddleHeight, s.Paddle.Height)
	overlay(&r.PaddleInset, s.Paddle.Inset)
	overlay(&r.PlayerSpeed, s.Player.Speed)
	overlay(&r.OpponentSpeed, s.Opponent.Speed)
	overlay(&r.DeadZone, s.Opponent.DeadZone)
	overlay(&r.RecenterDeadZone, s.Opponent.RecenterDeadZone)
	overlay(&r.BallSize, s.Ball.Size)
	overlay(&r.ServeSpeed, s.Ball.ServeSpeed)
	overlay(&r.OpeningDY, s.Ball.OpeningDY)
	overlay(&r.ServeSpread, s.Ball.ServeSpread)
	overlay(&r.Deflection, s.Ball.Deflection)
	overlay(&r.DeflectionNoise, s.Ball.DeflectionNoise)
	overlay(&r.WinScore, s.WinScore)
	return r
}

func overlay[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

type YAMLColor struct {
	color.Color
}

// Or returns the parsed color, or fallback when the field was omitted.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
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
