package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	inputsSheet      = "Inputs"
	estimationsSheet = "Estimations"
)

// XLSXRenderer writes a workbook with one sheet for the inputs and one for the estimations.
type XLSXRenderer struct{}

func NewXLSXRenderer() *XLSXRenderer {
	return &XLSXRenderer{}
}

func (r *XLSXRenderer) SupportedFormat() Format {
	return FormatXLSX
}

func (r *XLSXRenderer) Render(data *Data) ([]byte, error) {
	doc, err := NewDocument(data)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	inputRows := [][]interface{}{
		{"Key", "Value"},
		{"profile", doc.Profile},
		{"artifact", doc.Artifact},
		{"artifact_bytes", doc.ArtifactBytes},
	}
	for _, in := range doc.Inputs {
		inputRows = append(inputRows, []interface{}{in.Key, in.Value})
	}

	estimationRows := [][]interface{}{
		{"Key", "Value", "Unit", "Reason"},
	}
	for _, est := range doc.Estimations {
		estimationRows = append(estimationRows, []interface{}{est.Key, est.Value, est.Unit, est.Reason})
	}

	if err := f.SetSheetName("Sheet1", inputsSheet); err != nil {
		return nil, err
	}
	if err := writeRows(f, inputsSheet, inputRows); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(estimationsSheet); err != nil {
		return nil, err
	}
	if err := writeRows(f, estimationsSheet, estimationRows); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
