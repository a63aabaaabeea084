package profiler

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestTickReportsEachInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := newProfiler(time.Second, clock.now)

	frames := []time.Duration{10 * time.Millisecond, 30 * time.Millisecond, 20 * time.Millisecond}
	for i, f := range frames {
		clock.t = clock.t.Add(250 * time.Millisecond)
		if p.Tick(f) {
			t.Fatalf("reported early at frame %d", i)
		}
	}

	clock.t = clock.t.Add(250 * time.Millisecond)
	if !p.Tick(40 * time.Millisecond) {
		t.Fatal("did not report after one second")
	}

	got := p.Last()
	want := Stats{
		Frames:   4,
		FPS:      4,
		MinFrame: 10 * time.Millisecond,
		AvgFrame: 25 * time.Millisecond,
		MaxFrame: 40 * time.Millisecond,
	}
	if got != want {
		t.Fatalf("stats = %+v, want %+v", got, want)
	}

	// the next interval starts fresh
	clock.t = clock.t.Add(2 * time.Second)
	if !p.Tick(5 * time.Millisecond) {
		t.Fatal("did not report second interval")
	}
	if got := p.Last(); got.Frames != 1 || got.MinFrame != 5*time.Millisecond || got.MaxFrame != 5*time.Millisecond || got.FPS != 0.5 {
		t.Fatalf("second interval = %+v", got)
	}
}

func TestNewProfilerDefaultInterval(t *testing.T) {
	if p := NewProfiler(0); p.updateInterval != time.Second {
		t.Fatalf("interval = %v", p.updateInterval)
	}
}
