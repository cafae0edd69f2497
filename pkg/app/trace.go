package app

import (
	"sync"
	"time"
)

const (
	frameTraceSamplesDefault   = 240
	defaultFrameTraceThreshold = 16667 * time.Microsecond
)

// FramePhaseTimings captures time spent in each phase of a tick (ms).
type FramePhaseTimings struct {
	EventsMs   float64 `json:"eventsMs"`
	MessagesMs float64 `json:"messagesMs"`
	LayoutMs   float64 `json:"layoutMs"`
	RenderMs   float64 `json:"renderMs"`
}

// FrameCounts captures per-tick workload.
type FrameCounts struct {
	Events   int `json:"events"`
	Messages int `json:"messages"`
}

// FrameFlags records what a tick did.
type FrameFlags struct {
	Relayout bool `json:"relayout,omitempty"`
	Redraw   bool `json:"redraw,omitempty"`
}

// FrameSample is one traced tick.
type FrameSample struct {
	Timestamp int64             `json:"ts"`
	FrameMs   float64           `json:"frameMs"`
	Phases    FramePhaseTimings `json:"phases"`
	Counts    FrameCounts       `json:"counts"`
	Flags     FrameFlags        `json:"flags"`
}

// FrameTimeline is a chronological copy of a trace buffer.
type FrameTimeline struct {
	Samples       []FrameSample `json:"samples"`
	DroppedFrames int           `json:"droppedFrames"`
	ThresholdMs   float64       `json:"thresholdMs"`
}

// FrameTraceBuffer keeps the most recent frame samples in a ring buffer.
type FrameTraceBuffer struct {
	mu        sync.RWMutex
	samples   []FrameSample
	index     int
	count     int
	dropped   int
	threshold time.Duration
}

// NewFrameTraceBuffer creates a buffer holding capacity samples. Ticks
// slower than threshold count as dropped frames. Non-positive arguments
// select 240 samples and a 60 fps budget.
func NewFrameTraceBuffer(capacity int, threshold time.Duration) *FrameTraceBuffer {
	if capacity <= 0 {
		capacity = frameTraceSamplesDefault
	}
	if threshold <= 0 {
		threshold = defaultFrameTraceThreshold
	}
	return &FrameTraceBuffer{
		samples:   make([]FrameSample, capacity),
		threshold: threshold,
	}
}

// Add records a sample.
func (b *FrameTraceBuffer) Add(sample FrameSample, frameDuration time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.samples[b.index] = sample
	b.index = (b.index + 1) % len(b.samples)
	if b.count < len(b.samples) {
		b.count++
	}
	if frameDuration > b.threshold {
		b.dropped++
	}
}

// Snapshot returns the samples oldest first.
func (b *FrameTraceBuffer) Snapshot() FrameTimeline {
	b.mu.RLock()
	defer b.mu.RUnlock()

	tl := FrameTimeline{
		DroppedFrames: b.dropped,
		ThresholdMs:   durationToMillis(b.threshold),
	}
	if b.count == 0 {
		return tl
	}
	tl.Samples = make([]FrameSample, b.count)
	if b.count < len(b.samples) {
		copy(tl.Samples, b.samples[:b.count])
	} else {
		n := copy(tl.Samples, b.samples[b.index:])
		copy(tl.Samples[n:], b.samples[:b.index])
	}
	return tl
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
