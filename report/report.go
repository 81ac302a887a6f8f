// Package report projects the session table onto the requested columns
// and serializes it.
package report

import (
	"fmt"
	"math"
	"strconv"

	"github.com/strikelab/midipad/model"
)

// Project renders the table as header + cell rows for the requested metric
// columns. metrics == ["all"] (or empty) selects every column; otherwise
// exactly the requested names in request order, including "Name" only when
// asked for. Metric names are validated by config before any file is read.
func Project(table model.Table, metricNames []string) [][]string {
	cols := metricNames
	if len(cols) == 0 || (len(cols) == 1 && cols[0] == "all") {
		cols = model.MetricColumns
	}

	res := make([][]string, 0, len(table.Rows)+1)
	header := make([]string, len(cols))
	copy(header, cols)
	res = append(res, header)

	for _, rec := range table.Rows {
		row := make([]string, len(cols))
		for i, col := range cols {
			row[i] = cell(rec, col)
		}
		res = append(res, row)
	}
	return res
}

func cell(rec model.MetricsRecord, col string) string {
	switch col {
	case "Name":
		return rec.Label
	case "Total_Counts":
		return formatCount(rec.Total.Count)
	case "UE_Counts":
		return formatCount(rec.UE.Count)
	case "LF_Counts":
		return formatCount(rec.LF.Count)
	case "RF_Counts":
		return formatCount(rec.RF.Count)
	case "Avg_Velocity":
		return formatPair(rec.Total.VelocityMean, rec.Total.VelocityStdev)
	case "UE_Velocity":
		return formatPair(rec.UE.VelocityMean, rec.UE.VelocityStdev)
	case "LF_Velocity":
		return formatPair(rec.LF.VelocityMean, rec.LF.VelocityStdev)
	case "RF_Velocity":
		return formatPair(rec.RF.VelocityMean, rec.RF.VelocityStdev)
	case "Avg_Async":
		return formatPair(rec.Total.AsyncMean, rec.Total.AsyncStdev)
	case "UE_Async":
		return formatPair(rec.UE.AsyncMean, rec.UE.AsyncStdev)
	case "LF_Async":
		return formatPair(rec.LF.AsyncMean, rec.LF.AsyncStdev)
	case "RF_Async":
		return formatPair(rec.RF.AsyncMean, rec.RF.AsyncStdev)
	}
	return ""
}

// formatCount prints whole counts as integers. Averaged segment counts can
// be fractional; those keep two decimals.
func formatCount(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatPair(mean, stdev float64) string {
	return fmt.Sprintf("%.2f (%.2f)", mean, stdev)
}
