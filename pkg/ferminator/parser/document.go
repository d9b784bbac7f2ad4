// Package parser turns a spreadsheet workbook into the normalized grid.
package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Recursing/Ferminator/pkg/ferminator/models"
)

// ReadDocument extracts the ordered sheets of an open workbook into the
// abstract document consumed by BuildGrid. Occupied cells are visited in
// row-major order. Display text comes from the formatted value, with
// rich-text runs concatenated when present; any extraction failure falls
// back to what is already known rather than propagating an error.
func ReadDocument(f *excelize.File) (*models.Document, error) {
	doc := &models.Document{}

	for _, name := range f.GetSheetList() {
		sheet := models.Sheet{Name: name}
		rows, err := f.GetRows(name)
		if err != nil {
			doc.Sheets = append(doc.Sheets, sheet)
			continue
		}

		for rowIdx, row := range rows {
			for colIdx, display := range row {
				ref, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
				if err != nil {
					continue
				}

				formula, _ := f.GetCellFormula(name, ref)
				if display == "" && formula == "" {
					continue
				}

				raw, _ := f.GetCellValue(name, ref, excelize.Options{RawCellValue: true})
				if runs, err := f.GetCellRichText(name, ref); err == nil && len(runs) > 0 {
					var b strings.Builder
					for _, run := range runs {
						b.WriteString(run.Text)
					}
					display = b.String()
				}

				sheet.Cells = append(sheet.Cells, models.Cell{
					Ref:     ref,
					Row:     rowIdx + 1,
					Col:     colIdx + 1,
					Display: display,
					Raw:     raw,
					Formula: strings.TrimPrefix(formula, "="),
				})
			}
		}

		doc.Sheets = append(doc.Sheets, sheet)
	}

	return doc, nil
}
