// Package session drives a batch run: list the source directory, decode
// and classify each file, and assemble the session table.
package session

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/strikelab/midipad/config"
	"github.com/strikelab/midipad/metrics"
	"github.com/strikelab/midipad/midi"
	"github.com/strikelab/midipad/model"
	"github.com/strikelab/midipad/segment"
	"github.com/strikelab/midipad/util"
)

// Aggregator processes session files strictly sequentially in
// directory-listing order. Decode is swappable for tests.
type Aggregator struct {
	Decode func(path string) ([]model.NoteEvent, error)
	Logger *zap.Logger
}

func New(logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{Decode: midi.ExtractFile, Logger: logger}
}

// Run computes one whole-session row per file. A decode failure aborts the
// whole batch; an empty directory yields an empty table.
func (a *Aggregator) Run(dir string, opts config.Options) (model.Table, error) {
	var table model.Table

	if err := opts.Validate(); err != nil {
		return table, err
	}
	mapping, err := opts.Mapping()
	if err != nil {
		return table, err
	}

	paths, err := util.GatherMidiPaths(dir)
	if err != nil {
		return table, fmt.Errorf("listing source dir: %w", err)
	}

	for i, path := range paths {
		a.Logger.Info("processing session",
			zap.String("file", filepath.Base(path)),
			zap.Int("index", i+1),
			zap.Int("total", len(paths)))

		events, err := a.Decode(path)
		if err != nil {
			return model.Table{}, err
		}
		table.Append(metrics.Compute(Label(path), mapping.ClassifyAll(events)))
	}

	if opts.TotalsRow && len(table.Rows) > 0 {
		table.Append(totalsRow(table.Rows))
	}
	return table, nil
}

// RunSegments computes per-(file, segment) rows, or one averaged row per
// segment index when opts.MeanSegments is set.
func (a *Aggregator) RunSegments(dir string, opts config.Options) (model.Table, error) {
	var table model.Table

	if err := opts.Validate(); err != nil {
		return table, err
	}
	mapping, err := opts.Mapping()
	if err != nil {
		return table, err
	}

	paths, err := util.GatherMidiPaths(dir)
	if err != nil {
		return table, fmt.Errorf("listing source dir: %w", err)
	}

	sums := make([]model.MetricsRecord, opts.NumSegments)
	for i, path := range paths {
		a.Logger.Info("processing session",
			zap.String("file", filepath.Base(path)),
			zap.Int("index", i+1),
			zap.Int("total", len(paths)))

		events, err := a.Decode(path)
		if err != nil {
			return model.Table{}, err
		}

		segs, err := segment.Split(Label(path), mapping.ClassifyAll(events), opts.NumSegments)
		if err != nil {
			return model.Table{}, err
		}
		for _, seg := range segs {
			if opts.MeanSegments {
				addRecord(&sums[seg.Segment.Index], seg.Record)
			} else {
				table.Append(seg.Record)
			}
		}
	}

	if opts.MeanSegments && len(paths) > 0 {
		for i, sum := range sums {
			rec := scaleRecord(sum, 1/float64(len(paths)))
			rec.Label = fmt.Sprintf("Segment %d", i+1)
			table.Append(rec)
		}
	}
	return table, nil
}

var digits = regexp.MustCompile(`\d+`)

// Label derives the row label from the filename. Session recordings are
// conventionally named with a patient number followed by a session number;
// anything else falls back to the filename stem.
func Label(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	nums := digits.FindAllString(stem, -1)
	if len(nums) >= 2 {
		return fmt.Sprintf("Patient %s session %s", nums[0], nums[1])
	}
	return stem
}

// totalsRow sums the counts and averages the per-file statistics, matching
// the summary row of the legacy clinical reports.
func totalsRow(rows []model.MetricsRecord) model.MetricsRecord {
	var sum model.MetricsRecord
	for _, row := range rows {
		addRecord(&sum, row)
	}
	res := scaleRecord(sum, 1/float64(len(rows)))
	res.Label = "TOTALS"
	res.Total.Count = sum.Total.Count
	res.UE.Count = sum.UE.Count
	res.LF.Count = sum.LF.Count
	res.RF.Count = sum.RF.Count
	return res
}

func addRecord(dst *model.MetricsRecord, src model.MetricsRecord) {
	addStats(&dst.Total, src.Total)
	addStats(&dst.UE, src.UE)
	addStats(&dst.LF, src.LF)
	addStats(&dst.RF, src.RF)
}

func addStats(dst *model.GroupStats, src model.GroupStats) {
	dst.Count += src.Count
	dst.VelocityMean += src.VelocityMean
	dst.VelocityStdev += src.VelocityStdev
	dst.AsyncMean += src.AsyncMean
	dst.AsyncStdev += src.AsyncStdev
}

func scaleRecord(rec model.MetricsRecord, factor float64) model.MetricsRecord {
	rec.Total = scaleStats(rec.Total, factor)
	rec.UE = scaleStats(rec.UE, factor)
	rec.LF = scaleStats(rec.LF, factor)
	rec.RF = scaleStats(rec.RF, factor)
	return rec
}

func scaleStats(s model.GroupStats, factor float64) model.GroupStats {
	s.Count *= factor
	s.VelocityMean *= factor
	s.VelocityStdev *= factor
	s.AsyncMean *= factor
	s.AsyncStdev *= factor
	return s
}
