package driver

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PrincetonUniversity/gassim"
)

func newWorld(t *testing.T) *gassim.World {
	t.Helper()
	w, err := gassim.Initialize(gassim.Config{
		Particles:   10,
		Width:       100,
		Height:      100,
		Radius:      3,
		SpeedLimit:  2,
		Restitution: 1,
		Seed:        3,
	})
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return w
}

func TestStepAndFrame(t *testing.T) {
	d := New(newWorld(t))
	f0 := d.Frame()
	if f0.Tick != 0 || len(f0.Bodies) != 10 {
		t.Fatalf("initial frame: tick %d, %d bodies", f0.Tick, len(f0.Bodies))
	}
	if f0.Arena != (gassim.Arena{Width: 100, Height: 100}) {
		t.Fatalf("frame arena = %+v", f0.Arena)
	}
	d.Step()
	f1 := d.Frame()
	if f1.Tick != 1 {
		t.Fatalf("tick = %d, want 1", f1.Tick)
	}
	if f1.Bodies[0].Pos == f0.Bodies[0].Pos {
		t.Fatalf("frame 0 was modified by the step or the particle did not move")
	}
}

func TestRunSteps(t *testing.T) {
	d := New(newWorld(t))
	var ticks []int
	err := d.RunSteps(5, RendererFunc(func(f Frame) error {
		ticks = append(ticks, f.Tick)
		return nil
	}))
	if err != nil {
		t.Fatalf("RunSteps: %v", err)
	}
	want := []int{0, 1, 2, 3, 4}
	if len(ticks) != len(want) {
		t.Fatalf("rendered ticks %v, want %v", ticks, want)
	}
	for i := range want {
		if ticks[i] != want[i] {
			t.Fatalf("rendered ticks %v, want %v", ticks, want)
		}
	}
	if d.Tick() != 5 {
		t.Fatalf("Tick = %d, want 5", d.Tick())
	}
}

func TestRunStepsStop(t *testing.T) {
	d := New(newWorld(t))
	err := d.RunSteps(100, RendererFunc(func(f Frame) error {
		if f.Tick == 3 {
			return ErrStop
		}
		return nil
	}))
	if err != nil {
		t.Fatalf("RunSteps: %v", err)
	}
	if d.Tick() != 3 {
		t.Fatalf("Tick = %d, want 3", d.Tick())
	}
}

func TestRunStepsError(t *testing.T) {
	d := New(newWorld(t))
	boom := errors.New("boom")
	err := d.RunSteps(10, RendererFunc(func(f Frame) error {
		if f.Tick == 2 {
			return boom
		}
		return nil
	}))
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestMulti(t *testing.T) {
	var calls []string
	r := Multi(
		RendererFunc(func(Frame) error { calls = append(calls, "a"); return nil }),
		RendererFunc(func(Frame) error { calls = append(calls, "b"); return ErrStop }),
		RendererFunc(func(Frame) error { calls = append(calls, "c"); return nil }),
	)
	if err := r.Render(Frame{}); !errors.Is(err, ErrStop) {
		t.Fatalf("err = %v, want ErrStop", err)
	}
	if strings.Join(calls, "") != "ab" {
		t.Fatalf("calls = %v, want [a b]", calls)
	}
}

func TestRunCancel(t *testing.T) {
	d := New(newWorld(t))
	ctx, cancel := context.WithCancel(context.Background())
	frames := make(chan int, 1024)
	done := make(chan error, 1)
	go func() {
		done <- d.Run(ctx, 200, RendererFunc(func(f Frame) error {
			frames <- f.Tick
			return nil
		}))
	}()

	// read frames concurrently with the loop
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			if f := d.Frame(); len(f.Bodies) != 10 {
				t.Errorf("frame with %d bodies", len(f.Bodies))
			}
		}
	}()

	timeout := time.After(2 * time.Second)
	for got := 0; got < 3; got++ {
		select {
		case tick := <-frames:
			if tick != got+1 {
				t.Fatalf("frame tick %d, want %d", tick, got+1)
			}
		case <-timeout:
			t.Fatalf("timed out waiting for frames")
		}
	}
	cancel()
	wg.Wait()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not stop after cancel")
	}
}

func TestRunBadRate(t *testing.T) {
	d := New(newWorld(t))
	if err := d.Run(context.Background(), 0, Multi()); err == nil {
		t.Fatalf("expected error for zero rate")
	}
}

func TestLogStats(t *testing.T) {
	d := New(newWorld(t))
	var buf bytes.Buffer
	r := LogStats(log.New(&buf, "", 0), d, 2)
	if err := d.RunSteps(5, r); err != nil {
		t.Fatalf("RunSteps: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("logged %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[1], "tick 2: energy=") {
		t.Fatalf("unexpected line %q", lines[1])
	}
}
