package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig mirrors the optional TOML config file. Pointer fields
// distinguish "unset" from an explicit zero.
type FileConfig struct {
	Metrics      []string `toml:"metrics"`
	OutputFormat *string  `toml:"output-format"`
	SavePath     *string  `toml:"save-path"`
	UEKeys       []int    `toml:"ue-keys"`
	LFKey        *int     `toml:"lf-key"`
	RFKey        *int     `toml:"rf-key"`
	NumSegments  *int     `toml:"num-segments"`
	MeanSegments *bool    `toml:"mean-segments"`
	TotalsRow    *bool    `toml:"totals-row"`
}

// LoadFile reads a TOML config from path. A missing file is not an error;
// the caller just keeps its defaults.
func LoadFile(path string) (FileConfig, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Apply overlays the file values onto o. Unset fields keep their current
// (default) values.
func (f FileConfig) Apply(o *Options) {
	if len(f.Metrics) > 0 {
		o.Metrics = f.Metrics
	}
	if f.OutputFormat != nil {
		o.OutputFormat = *f.OutputFormat
	}
	if f.SavePath != nil {
		o.SavePath = *f.SavePath
	}
	if len(f.UEKeys) > 0 {
		o.UEKeys = f.UEKeys
	}
	if f.LFKey != nil {
		o.LFKey = *f.LFKey
	}
	if f.RFKey != nil {
		o.RFKey = *f.RFKey
	}
	if f.NumSegments != nil {
		o.NumSegments = *f.NumSegments
	}
	if f.MeanSegments != nil {
		o.MeanSegments = *f.MeanSegments
	}
	if f.TotalsRow != nil {
		o.TotalsRow = *f.TotalsRow
	}
}
