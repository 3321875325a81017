//go:build nogui

package display

import (
	"image/color"
	"testing"

	"github.com/PrincetonUniversity/gassim"
)

func TestSpeedColor(t *testing.T) {
	tests := []struct {
		name string
		v    gassim.Vec2
		want color.RGBA
	}{
		{"rest", gassim.Vec2{}, color.RGBA{0, 0, 255, 255}},
		{"max", gassim.Vec2{X: 3, Y: 4}, color.RGBA{255, 0, 0, 255}},
		{"above max", gassim.Vec2{X: 30}, color.RGBA{255, 0, 0, 255}},
		{"half", gassim.Vec2{Y: -2.5}, color.RGBA{0, 255, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := speedColor(tt.v, 5); got != tt.want {
				t.Errorf("speedColor = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithDefaults(t *testing.T) {
	c := (*Config)(nil).withDefaults()
	if c.TickRate != 60 || c.Scale != 1 || c.MaxSpeed != 1 || c.Title == "" {
		t.Fatalf("defaults = %+v", c)
	}
	c = (&Config{TickRate: 30, Scale: 2}).withDefaults()
	if c.TickRate != 30 || c.Scale != 2 {
		t.Fatalf("overrides lost: %+v", c)
	}
}
