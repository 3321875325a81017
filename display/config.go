// Package display draws a running simulation in a window.
//
// Space pauses and resumes, the right arrow steps once while paused
// and escape quits. Particles are colored by speed, from blue when
// at rest to red at MaxSpeed and above.
//
// Build with the nogui tag to drop the window system dependency.
package display

import (
	"image/color"
	"math"

	"github.com/PrincetonUniversity/gassim"
	"github.com/PrincetonUniversity/gassim/driver"
)

// Config holds the parameters of the display.
type Config struct {
	Title      string  // window title
	TickRate   int     // ticks per second
	Scale      float64 // screen pixels per arena unit
	MaxSpeed   float64 // speed drawn in the hottest color
	ForcePause bool    // step manually only?

	// OnFrame is called with every new frame, after the step. May be nil.
	// Returning driver.ErrStop closes the window without error.
	OnFrame func(f driver.Frame) error
}

func (c *Config) withDefaults() *Config {
	out := Config{Title: "gassim", TickRate: 60, Scale: 1, MaxSpeed: 1}
	if c != nil {
		out = *c
	}
	if out.Title == "" {
		out.Title = "gassim"
	}
	if out.TickRate <= 0 {
		out.TickRate = 60
	}
	if out.Scale <= 0 {
		out.Scale = 1
	}
	if out.MaxSpeed <= 0 {
		out.MaxSpeed = 1
	}
	return &out
}

var (
	background = color.RGBA{0, 0, 0, 255}
	wall       = color.RGBA{80, 80, 80, 255}
)

// speedColor maps |v| in [0, max] to a hue going from blue to red.
func speedColor(v gassim.Vec2, max float64) color.RGBA {
	x := math.Min(gassim.Norm(v)/max, 1)
	r, g, b := hsvToRGB(240*(1-x), 1, 1)
	return color.RGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 255}
}

// hsvToRGB converts a color with hue h in degrees and saturation s
// and value v in [0, 1] to RGB components in [0, 1].
func hsvToRGB(h, s, v float64) (float64, float64, float64) {
	h = math.Mod(h, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}
