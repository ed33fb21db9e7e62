package profiler

import (
	"log"
	"runtime"
	"time"
)

// Snapshot is the set of statistics gathered over one reporting interval.
type Snapshot struct {
	Ticks       int           // host loop iterations
	Frames      int           // iterations that rendered a frame
	Elapsed     time.Duration // length of the interval
	FPS         float64       // rendered frames per second
	HeapMB      float64       // live heap
	AllocRateMB float64       // heap allocation rate in MB/s
	GCCount     uint32        // total collections so far
	LastPauseUs uint64        // most recent GC pause
	MaxPauseUs  uint64        // longest GC pause during the interval
	SysMB       float64       // memory obtained from the OS
}

// Profiler tracks frame rate and memory statistics for performance monitoring.
// Outputs stats to the log at a configurable interval.
//
// With on-demand rendering most loop iterations draw nothing, so ticks and rendered
// frames are counted separately.
type Profiler struct {
	tickCount      int
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	last           Snapshot

	now    func() time.Time
	logger *log.Logger
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		memStats:       runtime.MemStats{},
		now:            time.Now,
		logger:         log.Default(),
	}
	for _, opt := range options {
		opt(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick should be called once per host loop iteration.
// Logs performance statistics when the update interval has elapsed.
//
// Parameters:
//   - rendered: whether this iteration produced a frame
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(rendered bool) bool {
	p.tickCount++
	if rendered {
		p.frameCount++
	}

	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)

	s := Snapshot{
		Ticks:   p.tickCount,
		Frames:  p.frameCount,
		Elapsed: elapsed,
		FPS:     float64(p.frameCount) / elapsed.Seconds(),
		HeapMB:  float64(p.memStats.Alloc) / 1024 / 1024,
		SysMB:   float64(p.memStats.Sys) / 1024 / 1024,
		GCCount: p.memStats.NumGC,
	}

	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	s.AllocRateMB = float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	if s.GCCount > 0 {
		// PauseNs is a circular buffer of the last 256 GC pauses
		s.LastPauseUs = p.memStats.PauseNs[(s.GCCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if s.GCCount-startIdx > 256 {
			startIdx = s.GCCount - 256
		}
		for i := startIdx; i < s.GCCount; i++ {
			s.MaxPauseUs = max(s.MaxPauseUs, p.memStats.PauseNs[i%256]/1000)
		}
	}

	p.logger.Printf("[Profiler] FPS: %.2f | Frames: %d/%d ticks | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
		s.FPS, s.Frames, s.Ticks, s.HeapMB, s.AllocRateMB, s.GCCount, s.LastPauseUs, s.MaxPauseUs, s.SysMB)

	p.last = s
	p.tickCount = 0
	p.frameCount = 0
	p.lastTime = currentTime
	p.lastGCCount = s.GCCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// Last returns the statistics of the most recently logged interval.
//
// Returns:
//   - Snapshot: the last reported statistics, zero before the first report
func (p *Profiler) Last() Snapshot {
	return p.last
}
