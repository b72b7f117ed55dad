package system

import (
	"log"
	"time"
)

// FrameTimer measures how long each frame's update takes and keeps a
// running average.
type FrameTimer struct {
	start   time.Time
	running bool

	last   time.Duration
	total  time.Duration
	frames int

	// Verbose logs every frame when set.
	Verbose bool
}

func (f *FrameTimer) Start() {
	f.start = time.Now()
	f.running = true
}

func (f *FrameTimer) Stop() {
	if !f.running {
		log.Printf("perf: timer stopped before start")
		return
	}
	f.Record(time.Since(f.start))
	f.running = false
}

// Record adds one frame's elapsed time.
func (f *FrameTimer) Record(elapsed time.Duration) {
	f.last = elapsed
	f.total += elapsed
	f.frames++
	if f.Verbose {
		log.Printf("perf: frame=%v avg=%v", f.last, f.Average())
	}
}

func (f *FrameTimer) Last() time.Duration {
	return f.last
}

func (f *FrameTimer) Frames() int {
	return f.frames
}

func (f *FrameTimer) Average() time.Duration {
	if f.frames == 0 {
		return 0
	}
	return f.total / time.Duration(f.frames)
}
