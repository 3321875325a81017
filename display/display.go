//go:build !nogui

package display

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/PrincetonUniversity/gassim/driver"
)

// Run runs an interactive simulation in a window.
// It returns when the window is closed or escape is pressed.
func Run(d *driver.Driver, conf *Config) error {
	conf = conf.withDefaults()
	f := d.Frame()
	g := &game{
		d:     d,
		conf:  conf,
		pause: conf.ForcePause,
		frame: f,
		w:     int(f.Arena.Width * conf.Scale),
		h:     int(f.Arena.Height * conf.Scale),
	}

	ebiten.SetWindowSize(g.w, g.h)
	ebiten.SetWindowTitle(conf.Title)
	ebiten.SetTPS(conf.TickRate)

	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

// game implements ebiten.Game on top of a driver.
// Update runs at the tick rate and advances physics,
// Draw only reads the last frame.
type game struct {
	d     *driver.Driver
	conf  *Config
	pause bool
	frame driver.Frame
	w, h  int
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && !g.conf.ForcePause {
		g.pause = !g.pause
	}

	step := !g.pause
	if g.pause && repeated(ebiten.KeyArrowRight) {
		step = true
	}
	if step {
		g.d.Step()
		g.frame = g.d.Frame()
		if g.conf.OnFrame != nil {
			if err := g.conf.OnFrame(g.frame); errors.Is(err, driver.ErrStop) {
				return ebiten.Termination
			} else if err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	s := g.conf.Scale
	vector.StrokeRect(screen, 0, 0, float32(g.w), float32(g.h), 2, wall, false)
	for _, b := range g.frame.Bodies {
		vector.DrawFilledCircle(screen,
			float32(b.Pos.X*s), float32(b.Pos.Y*s), float32(b.Radius*s),
			speedColor(b.Vel, g.conf.MaxSpeed), true)
	}

	status := fmt.Sprintf("tick %d", g.frame.Tick)
	if g.pause {
		status += " (paused)"
	}
	ebitenutil.DebugPrint(screen, status)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}

// repeated reports whether k was just pressed or is held down long enough to repeat.
func repeated(k ebiten.Key) bool {
	const delay, interval = 30, 4
	n := inpututil.KeyPressDuration(k)
	return n == 1 || (n >= delay && (n-delay)%interval == 0)
}
