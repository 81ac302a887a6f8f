// Package config holds every batch option with its default and a single
// eager validation pass that runs before any file is touched.
package config

import (
	"errors"
	"fmt"

	"github.com/strikelab/midipad/model"
	"github.com/strikelab/midipad/role"
)

const (
	FormatExcel = "excel"
	FormatCSV   = "csv"
)

var (
	ErrUnknownMetric = errors.New("unknown metric")
	ErrBadFormat     = errors.New("unknown output format")
	ErrBadSegments   = errors.New("num segments must be >= 1")
)

// Options enumerates every knob of a batch run.
type Options struct {
	Metrics      []string
	OutputFormat string
	SavePath     string
	UEKeys       []int
	LFKey        int
	RFKey        int
	NumSegments  int
	MeanSegments bool
	TotalsRow    bool
}

// Default returns the stock options: all metrics, excel output, the
// default drum-pad role layout, 10 segments.
func Default() Options {
	return Options{
		Metrics:      []string{"all"},
		OutputFormat: FormatExcel,
		SavePath:     "Output",
		UEKeys:       []int{38, 40, 43, 51, 53, 59},
		LFKey:        44,
		RFKey:        36,
		NumSegments:  10,
		MeanSegments: false,
		TotalsRow:    false,
	}
}

// Validate checks everything up front. A failing configuration never
// starts the batch.
func (o Options) Validate() error {
	if _, err := o.Mapping(); err != nil {
		return err
	}
	if o.OutputFormat != FormatExcel && o.OutputFormat != FormatCSV {
		return fmt.Errorf("%w: %q", ErrBadFormat, o.OutputFormat)
	}
	if o.NumSegments < 1 {
		return fmt.Errorf("%w, got %d", ErrBadSegments, o.NumSegments)
	}
	if !o.AllMetrics() {
		for _, m := range o.Metrics {
			if !model.KnownColumn(m) {
				return fmt.Errorf("%w: %q", ErrUnknownMetric, m)
			}
		}
	}
	return nil
}

// AllMetrics reports whether every column was requested.
func (o Options) AllMetrics() bool {
	return len(o.Metrics) == 0 || (len(o.Metrics) == 1 && o.Metrics[0] == "all")
}

// Mapping builds the role mapping from the configured keys.
func (o Options) Mapping() (role.Mapping, error) {
	return role.NewMapping(o.UEKeys, o.LFKey, o.RFKey)
}
