//go:build hdf5

package hdf5

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PrincetonUniversity/gassim"
	"github.com/PrincetonUniversity/gassim/driver"
	"gonum.org/v1/hdf5"
)

type attrs struct {
	Particles int
	Seed      int64
}

func newDriver(t *testing.T, n int) *driver.Driver {
	t.Helper()
	w, err := gassim.Initialize(gassim.Config{
		Particles:   n,
		Width:       50,
		Height:      50,
		Radius:      2,
		SpeedLimit:  1,
		Restitution: 1,
		Seed:        11,
	})
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return driver.New(w)
}

func TestRecorderStopsAfterSteps(t *testing.T) {
	const n, steps = 4, 3
	d := newDriver(t, n)
	out := filepath.Join(t.TempDir(), "sub", "run.h5")
	var progress bytes.Buffer
	rec, err := Create(&Config{
		Output:   out,
		Steps:    steps,
		Datasets: []*Dataset{Particles(n), Radii(n)},
		Attrs:    &attrs{Particles: n, Seed: 11},
		Progress: &progress,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for k := 0; k < steps; k++ {
		if err := rec.Render(d.Frame()); err != nil {
			t.Fatalf("Render frame %d: %v", k, err)
		}
		d.Step()
	}
	if err := rec.Render(d.Frame()); !errors.Is(err, driver.ErrStop) {
		t.Fatalf("Render past the last row = %v, want ErrStop", err)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !strings.HasSuffix(progress.String(), "\r100%\n") {
		t.Fatalf("progress = %q", progress.String())
	}

	file, err := hdf5.OpenFile(out, hdf5.F_ACC_RDONLY)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer file.Close()
	dset, err := file.OpenDataset("radius")
	if err != nil {
		t.Fatalf("open radius: %v", err)
	}
	defer dset.Close()
	radii := make([]float64, n*steps)
	if err := dset.Read(&radii); err != nil {
		t.Fatalf("read radius: %v", err)
	}
	for i, r := range radii {
		if r != 2 {
			t.Fatalf("radius[%d] = %g, want 2", i, r)
		}
	}
}

func TestRunStepsWithRecorder(t *testing.T) {
	const n, steps = 2, 5
	d := newDriver(t, n)
	rec, err := Create(&Config{
		Output:   filepath.Join(t.TempDir(), "run.h5"),
		Steps:    steps,
		Datasets: []*Dataset{Particles(n)},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer rec.Close()

	// asking for more ticks than rows ends cleanly on the last row
	if err := d.RunSteps(2*steps, rec); err != nil {
		t.Fatalf("RunSteps: %v", err)
	}
	if d.Tick() != steps {
		t.Fatalf("Tick = %d, want %d", d.Tick(), steps)
	}
}

func TestCreateBadSteps(t *testing.T) {
	if _, err := Create(&Config{Output: filepath.Join(t.TempDir(), "x.h5")}); err == nil {
		t.Fatalf("expected an error for zero steps")
	}
}
