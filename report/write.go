package report

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/strikelab/midipad/config"
)

const sheetName = "Sheet1"

// Write serializes projected rows to savePath in the given format
// ("excel" or "csv"), appending the extension. Returns the written path.
func Write(rows [][]string, format, savePath string) (string, error) {
	switch format {
	case config.FormatCSV:
		path := savePath + ".csv"
		return path, writeCSV(rows, path)
	case config.FormatExcel:
		path := savePath + ".xlsx"
		return path, writeExcel(rows, path)
	}
	return "", fmt.Errorf("%w: %q", config.ErrBadFormat, format)
}

func writeCSV(rows [][]string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return w.Error()
}

func writeExcel(rows [][]string, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		axis, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, axis, &cells); err != nil {
			return fmt.Errorf("writing report row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving report: %w", err)
	}
	return nil
}
