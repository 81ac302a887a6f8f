package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/strikelab/midipad/role"
)

func TestDefaultsValidate(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidateUnknownMetric(t *testing.T) {
	opts := Default()
	opts.Metrics = []string{"UE_Counts", "Foo"}

	err := opts.Validate()
	assert.True(t, errors.Is(err, ErrUnknownMetric))
}

func TestValidateBadFormat(t *testing.T) {
	opts := Default()
	opts.OutputFormat = "pdf"

	err := opts.Validate()
	assert.True(t, errors.Is(err, ErrBadFormat))
}

func TestValidateBadSegmentCount(t *testing.T) {
	opts := Default()
	opts.NumSegments = 0

	err := opts.Validate()
	assert.True(t, errors.Is(err, ErrBadSegments))
}

func TestValidateOverlappingRoleKeys(t *testing.T) {
	opts := Default()
	opts.LFKey = 38 // already a UE key

	err := opts.Validate()
	assert.True(t, errors.Is(err, role.ErrOverlappingKeys))
}

func TestAllMetrics(t *testing.T) {
	assert := assert.New(t)
	assert.True(Default().AllMetrics())

	opts := Default()
	opts.Metrics = []string{"UE_Counts"}
	assert.False(opts.AllMetrics())
}

func TestLoadFileMissingIsNotAnError(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
	assert.NoError(t, err)
	assert.Equal(t, FileConfig{}, cfg)
}

func TestLoadFileApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "midipad.toml")
	body := `
metrics = ["Name", "UE_Counts"]
output-format = "csv"
save-path = "weekly"
ue-keys = [38, 40]
lf-key = 45
num-segments = 4
mean-segments = true
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	assert.NoError(t, err)

	opts := Default()
	cfg.Apply(&opts)

	assert := assert.New(t)
	assert.Equal([]string{"Name", "UE_Counts"}, opts.Metrics)
	assert.Equal(FormatCSV, opts.OutputFormat)
	assert.Equal("weekly", opts.SavePath)
	assert.Equal([]int{38, 40}, opts.UEKeys)
	assert.Equal(45, opts.LFKey)
	assert.Equal(36, opts.RFKey) // untouched default
	assert.Equal(4, opts.NumSegments)
	assert.True(opts.MeanSegments)
	assert.NoError(opts.Validate())
}
