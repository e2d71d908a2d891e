// internal/defs/enemies.go
package defs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Visuals describes how an enemy looks; the simulation never reads it.
type Visuals struct {
	Color   string  `json:"color"`
	Shape   Shape   `json:"shape"`
	Size    float64 `json:"size"`
	Outline string  `json:"outline,omitempty"`
}

// RGBA parses Color ("#rrggbb" or "#rrggbbaa").
func (v Visuals) RGBA() color.RGBA {
	c, err := parseHexColor(v.Color)
	if err != nil {
		return color.RGBA{255, 255, 255, 255}
	}
	return c
}

// EnemyDefinition holds all the static data for one enemy kind.
type EnemyDefinition struct {
	ID            EnemyKind `json:"id"`
	Name          string    `json:"name"`
	Health        float64   `json:"health"`
	Speed         float64   `json:"speed"`
	Radius        float64   `json:"radius"`
	ScoreValue    int       `json:"score_value"`
	RotationSpeed float64   `json:"rotation_speed"`
	Visuals       Visuals   `json:"visuals"`
}

func (d EnemyDefinition) validate() error {
	if d.Health <= 0 {
		return fmt.Errorf("enemy %q: health must be positive", d.ID)
	}
	if d.Radius <= 0 {
		return fmt.Errorf("enemy %q: radius must be positive", d.ID)
	}
	if d.Speed < 0 {
		return fmt.Errorf("enemy %q: negative speed", d.ID)
	}
	return nil
}

func parseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	if len(s) == 6 {
		s += "ff"
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
