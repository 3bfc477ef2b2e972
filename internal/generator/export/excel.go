package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"golang-synth-datagen/internal/generator/dataset"
)

const (
	dataSheet       = "Data"
	dictionarySheet = "Data Dictionary"

	sampleValueCount = 3
)

// toExcel writes the dataset to a workbook with two sheets: the data itself
// and a generated data dictionary. The dictionary is purely descriptive and
// is computed fresh at export time, independent of the metrics calculator.
func (e *Exporter) toExcel(ds *dataset.Dataset, filename string) (string, error) {
	path := filepath.Join(e.outputDir, filename+".xlsx")

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", dataSheet)

	for c, name := range ds.ColumnNames() {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return "", fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetCellValue(dataSheet, cell, name); err != nil {
			return "", fmt.Errorf("failed to write header cell: %w", err)
		}
	}
	for i := 0; i < ds.NumRows(); i++ {
		for c, v := range ds.Row(i) {
			cell, err := excelize.CoordinatesToCellName(c+1, i+2)
			if err != nil {
				return "", fmt.Errorf("failed to compute cell name: %w", err)
			}
			if err := f.SetCellValue(dataSheet, cell, excelValue(v)); err != nil {
				return "", fmt.Errorf("failed to write data cell: %w", err)
			}
		}
	}

	if err := e.writeDataDictionary(f, ds); err != nil {
		return "", err
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}
	return path, nil
}

// writeDataDictionary adds the second sheet: one row per column with its
// inferred type, non-null/null counts, distinct-value count, and up to three
// sample values rendered as text.
func (e *Exporter) writeDataDictionary(f *excelize.File, ds *dataset.Dataset) error {
	if _, err := f.NewSheet(dictionarySheet); err != nil {
		return fmt.Errorf("failed to create dictionary sheet: %w", err)
	}

	headers := []string{"Column Name", "Data Type", "Non-Null Count", "Null Count", "Unique Values", "Sample Values"}
	for c, h := range headers {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetCellValue(dictionarySheet, cell, h); err != nil {
			return fmt.Errorf("failed to write dictionary header: %w", err)
		}
	}

	for i, col := range ds.Columns {
		nulls := 0
		distinct := make(map[string]struct{})
		var samples []string
		for _, v := range col.Values {
			if v == nil {
				nulls++
				continue
			}
			rendered := cellString(v)
			distinct[rendered] = struct{}{}
			if len(samples) < sampleValueCount {
				samples = append(samples, rendered)
			}
		}

		cells := []any{
			col.Name,
			string(col.Type),
			len(col.Values) - nulls,
			nulls,
			len(distinct),
			strings.Join(samples, ", "),
		}
		for c, v := range cells {
			cell, err := excelize.CoordinatesToCellName(c+1, i+2)
			if err != nil {
				return fmt.Errorf("failed to compute cell name: %w", err)
			}
			if err := f.SetCellValue(dictionarySheet, cell, v); err != nil {
				return fmt.Errorf("failed to write dictionary row: %w", err)
			}
		}
	}
	return nil
}

func excelValue(v any) any {
	if v == nil {
		return ""
	}
	return jsonValue(v)
}
