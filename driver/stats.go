package driver

import "log"

// LogStats returns a renderer that logs the energy, momentum and
// degenerate pair count of d every n frames.
func LogStats(l *log.Logger, d *Driver, n int) Renderer {
	return RendererFunc(func(f Frame) error {
		if n <= 0 || f.Tick%n != 0 {
			return nil
		}
		e, p, skipped := d.Stats()
		l.Printf("tick %d: energy=%.6g momentum=(%.6g, %.6g) skipped=%d", f.Tick, e, p.X, p.Y, skipped)
		return nil
	})
}
