// Package segment slices a session into fixed-count equal-duration time
// windows and computes metrics per window.
package segment

import (
	"fmt"

	"github.com/strikelab/midipad/metrics"
	"github.com/strikelab/midipad/model"
	"github.com/strikelab/midipad/util"
)

// SegmentMetrics pairs one window with its computed metrics row.
type SegmentMetrics struct {
	Segment model.Segment
	Record  model.MetricsRecord
}

// Split partitions events into numSegments contiguous windows spanning the
// onset range and runs the metrics engine once per window.
//
// Windows are half-open [start, end) except the last, which is closed on
// both ends so a strike exactly at the final onset is not dropped. Every
// event lands in exactly one window.
func Split(label string, events []model.ClassifiedEvent, numSegments int) ([]SegmentMetrics, error) {
	if numSegments < 1 {
		return nil, fmt.Errorf("num segments must be >= 1, got %d", numSegments)
	}

	var minOnset, maxOnset float64
	if len(events) > 0 {
		minOnset = events[0].Onset
		maxOnset = events[0].Onset
		for _, ev := range events[1:] {
			minOnset = util.Min(minOnset, ev.Onset)
			maxOnset = util.Max(maxOnset, ev.Onset)
		}
	}

	duration := maxOnset - minOnset
	length := duration / float64(numSegments)

	assigned := make([][]model.ClassifiedEvent, numSegments)
	for _, ev := range events {
		idx := indexFor(ev.Onset, minOnset, length, numSegments)
		assigned[idx] = append(assigned[idx], ev)
	}

	res := make([]SegmentMetrics, 0, numSegments)
	for i := 0; i < numSegments; i++ {
		seg := model.Segment{
			Index: i,
			Start: minOnset + float64(i)*length,
			End:   minOnset + float64(i+1)*length,
		}
		segLabel := fmt.Sprintf("%s segment %d", label, i+1)
		res = append(res, SegmentMetrics{
			Segment: seg,
			Record:  metrics.Compute(segLabel, assigned[i]),
		})
	}
	return res, nil
}

// indexFor clamps to the last window so the closing boundary event stays
// in-range, and to window 0 when the whole session has zero duration.
func indexFor(onset, minOnset, length float64, numSegments int) int {
	if length <= 0 {
		return 0
	}
	idx := int((onset - minOnset) / length)
	if idx >= numSegments {
		idx = numSegments - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
