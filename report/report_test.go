package report

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/strikelab/midipad/config"
	"github.com/strikelab/midipad/model"
)

func sampleTable() model.Table {
	var table model.Table
	table.Append(model.MetricsRecord{
		Label: "Patient 1 session 1",
		Total: model.GroupStats{Count: 3, VelocityMean: 80, VelocityStdev: 16.3299},
		UE:    model.GroupStats{Count: 1, VelocityMean: 80},
		LF:    model.GroupStats{Count: 1, VelocityMean: 60},
		RF:    model.GroupStats{Count: 1, VelocityMean: 100},
	})
	return table
}

func TestProjectAllColumns(t *testing.T) {
	rows := Project(sampleTable(), []string{"all"})

	assert := assert.New(t)
	assert.Len(rows, 2)
	assert.Equal(model.MetricColumns, rows[0])
	assert.Equal("Patient 1 session 1", rows[1][0])
	assert.Equal("3", rows[1][1])
	assert.Equal("80.00 (16.33)", rows[1][5])
}

func TestProjectSubsetOmitsName(t *testing.T) {
	rows := Project(sampleTable(), []string{"UE_Counts"})

	assert := assert.New(t)
	assert.Equal([]string{"UE_Counts"}, rows[0])
	assert.Equal([]string{"1"}, rows[1])
}

func TestProjectKeepsRequestOrder(t *testing.T) {
	rows := Project(sampleTable(), []string{"RF_Counts", "Name", "UE_Velocity"})

	assert := assert.New(t)
	assert.Equal([]string{"RF_Counts", "Name", "UE_Velocity"}, rows[0])
	assert.Equal([]string{"1", "Patient 1 session 1", "80.00 (0.00)"}, rows[1])
}

func TestFractionalCountsKeepDecimals(t *testing.T) {
	var table model.Table
	table.Append(model.MetricsRecord{
		Label: "Segment 1",
		Total: model.GroupStats{Count: 1.5},
	})
	rows := Project(table, []string{"Total_Counts"})

	assert.Equal(t, "1.50", rows[1][0])
}

func TestWriteCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report")
	rows := Project(sampleTable(), []string{"Name", "Total_Counts"})

	written, err := Write(rows, "csv", path)
	assert.NoError(t, err)
	assert.Equal(t, path+".csv", written)

	f, err := os.Open(written)
	assert.NoError(t, err)
	defer f.Close()

	got, err := csv.NewReader(f).ReadAll()
	assert.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestWriteExcelCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report")
	rows := Project(sampleTable(), []string{"all"})

	written, err := Write(rows, "excel", path)
	assert.NoError(t, err)
	assert.Equal(t, path+".xlsx", written)

	info, err := os.Stat(written)
	assert.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteRejectsUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report")

	written, err := Write(Project(sampleTable(), []string{"Name"}), "pdf", path)

	assert.True(t, errors.Is(err, config.ErrBadFormat))
	assert.Empty(t, written)
}

func TestRenderAlignsColumns(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, [][]string{
		{"Name", "Total_Counts"},
		{"Patient 1 session 1", "3"},
	})
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "Name                 Total_Counts", lines[0])
	assert.Equal(t, "Patient 1 session 1  3", lines[1])
}
