// Package metrics turns a classified event sequence into count, velocity
// and asynchrony statistics per anatomical group.
package metrics

import (
	"math"

	"github.com/strikelab/midipad/model"
	"github.com/strikelab/midipad/util"
)

// Compute builds the metrics row for one event sequence. The Total group
// spans every event including unclassified ones; UE/LF/RF only contain
// their own strikes. Never errors: empty groups produce all-zero stats.
func Compute(label string, events []model.ClassifiedEvent) model.MetricsRecord {
	groups := map[model.Role][]model.ClassifiedEvent{}
	for _, ev := range events {
		groups[ev.Role] = append(groups[ev.Role], ev)
	}

	return model.MetricsRecord{
		Label: label,
		Total: groupStats(events),
		UE:    groupStats(groups[model.RoleUE]),
		LF:    groupStats(groups[model.RoleLF]),
		RF:    groupStats(groups[model.RoleRF]),
	}
}

func groupStats(events []model.ClassifiedEvent) model.GroupStats {
	if len(events) == 0 {
		return model.GroupStats{}
	}

	velocities := make([]uint8, len(events))
	onsets := make([]float64, len(events))
	for i, ev := range events {
		velocities[i] = ev.Velocity
		onsets[i] = ev.Onset
	}

	// Asynchrony is the spread of a group's onsets around its own mean
	// onset, not deviation from an external clock. The mean deviation is
	// identically 0 whenever the group is non-empty; the stdev carries
	// the rhythmic-consistency signal.
	meanOnset := util.Mean(onsets)
	deviations := make([]float64, len(onsets))
	for i, t := range onsets {
		deviations[i] = t - meanOnset
	}

	return model.GroupStats{
		Count:         float64(len(events)),
		VelocityMean:  util.Mean(velocities),
		VelocityStdev: populationStdev(velocities),
		AsyncMean:     util.Mean(deviations),
		AsyncStdev:    populationStdev(deviations),
	}
}

// populationStdev divides by n, not n-1, matching the reference metric
// definition. Fewer than 2 samples has no dispersion and yields 0.
func populationStdev[A uint8 | float64](nums []A) float64 {
	if len(nums) < 2 {
		return 0
	}
	mean := util.Mean(nums)
	var sumSq float64
	for _, v := range nums {
		d := float64(v) - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(nums)))
}
