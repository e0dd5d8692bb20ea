package arc

import (
	"math"
	"sync/atomic"
)

// Stats aggregates arc-conversion quality metrics across many ArcToCubics
// calls. Its fields are updated with atomic operations (per spec.md §5)
// rather than a mutex, so a single Stats value may be shared by a Path
// System processing paths concurrently on multiple goroutines.
type Stats struct {
	arcsConverted     atomic.Uint64
	segmentsGenerated atomic.Uint64
	maxChordErrorBits atomic.Uint64
}

// Record folds the outcome of one ArcToCubics call into s: one arc, its
// segment count, and the worst mid-chord deviation among its segments
// (spec.md §4.3 "Quality stats").
func (s *Stats) Record(segments []BezierSegment) {
	s.arcsConverted.Add(1)
	s.segmentsGenerated.Add(uint64(len(segments)))
	for _, seg := range segments {
		s.observeError(seg.MidpointDeviation())
	}
}

func (s *Stats) observeError(e float64) {
	next := math.Float64bits(e)
	for {
		cur := s.maxChordErrorBits.Load()
		if e <= math.Float64frombits(cur) {
			return
		}
		if s.maxChordErrorBits.CompareAndSwap(cur, next) {
			return
		}
	}
}

// ArcsConverted returns the number of successful ArcToCubics calls recorded.
func (s *Stats) ArcsConverted() uint64 { return s.arcsConverted.Load() }

// SegmentsGenerated returns the total cubic segment count recorded.
func (s *Stats) SegmentsGenerated() uint64 { return s.segmentsGenerated.Load() }

// MaxChordError returns the largest mid-chord deviation recorded so far.
func (s *Stats) MaxChordError() float64 { return math.Float64frombits(s.maxChordErrorBits.Load()) }
