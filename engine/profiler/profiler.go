package profiler

import (
	"log"
	"runtime"
	"time"
)

// Stats summarizes the frames recorded over one reporting interval.
type Stats struct {
	Frames   int
	FPS      float64
	MinFrame time.Duration
	AvgFrame time.Duration
	MaxFrame time.Duration
}

// Profiler tracks frame times and memory statistics for performance monitoring.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	frameTotal     time.Duration
	minFrame       time.Duration
	maxFrame       time.Duration
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	last           Stats

	now func() time.Time
}

// NewProfiler creates a new Profiler reporting every interval. Zero or negative intervals
// default to 1 second.
//
// Parameters:
//   - interval: how often to log statistics
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(interval time.Duration) *Profiler {
	return newProfiler(interval, time.Now)
}

func newProfiler(interval time.Duration, now func() time.Time) *Profiler {
	if interval <= 0 {
		interval = time.Second
	}
	return &Profiler{
		lastTime:       now(),
		updateInterval: interval,
		now:            now,
	}
}

// Tick should be called once per frame with that frame's duration.
// Logs performance statistics when the update interval has elapsed: FPS, min/avg/max frame
// time, heap usage, allocation rate, GC count/pause times and total memory.
//
// Parameters:
//   - frame: the time the frame took
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(frame time.Duration) bool {
	if p.frameCount == 0 || frame < p.minFrame {
		p.minFrame = frame
	}
	p.maxFrame = max(p.maxFrame, frame)
	p.frameTotal += frame
	p.frameCount++

	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	p.last = Stats{
		Frames:   p.frameCount,
		FPS:      float64(p.frameCount) / elapsed.Seconds(),
		MinFrame: p.minFrame,
		AvgFrame: p.frameTotal / time.Duration(p.frameCount),
		MaxFrame: p.maxFrame,
	}

	runtime.ReadMemStats(&p.memStats)
	// Alloc: live heap bytes. TotalAlloc: cumulative heap bytes. Sys: bytes obtained from the OS.
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024
	allocRateMB := float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / elapsed.Seconds()

	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of the last 256 pauses
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000
		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			maxPauseUs = max(maxPauseUs, p.memStats.PauseNs[i%256]/1000)
		}
	}

	log.Printf("[Profiler] FPS: %.2f | Frame: min %v avg %v max %v | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
		p.last.FPS, p.last.MinFrame, p.last.AvgFrame, p.last.MaxFrame, allocMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs, sysMB)

	p.frameCount = 0
	p.frameTotal = 0
	p.minFrame = 0
	p.maxFrame = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// Last returns the statistics from the most recent report.
//
// Returns:
//   - Stats: the last logged interval, zero before the first report
func (p *Profiler) Last() Stats {
	return p.last
}
