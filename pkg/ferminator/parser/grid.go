package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Recursing/Ferminator/pkg/ferminator/models"
	"github.com/Recursing/Ferminator/pkg/ferminator/translate"
)

var (
	percentLiteral = regexp.MustCompile(`^[-+]?[0-9]+(\.[0-9]+)?%$`)
	hyperlinkCall  = regexp.MustCompile(`(?i)HYPERLINK\(`)
)

type gridBuilder struct {
	translator *translate.Translator
	normalizer *translate.AddressNormalizer
	multiSheet bool
}

// BuildGrid assembles the normalized grid from a document. Each occupied
// cell is classified as value or description, formulas are rewritten into
// the target dialect with sheet-qualified placeholder references, and text
// cells immediately left of a data cell become that cell's label. With
// multiple sheets, column numbers are offset so sheets tile left-to-right.
func BuildGrid(doc *models.Document) *models.Grid {
	names := doc.SheetNames()
	b := &gridBuilder{
		translator: translate.NewTranslator(),
		normalizer: translate.NewAddressNormalizer(names),
		multiSheet: len(names) > 1,
	}

	grid := models.NewGrid(names)
	colOffset := 0
	for _, sheet := range doc.Sheets {
		maxCol := 0
		for _, cell := range sheet.Cells {
			data := b.buildCell(sheet.Name, cell, colOffset)
			b.mergeLabel(grid, sheet.Name, cell, data)
			grid.Add(data)
			if cell.Col > maxCol {
				maxCol = cell.Col
			}
		}
		colOffset += maxCol
	}
	return grid
}

func (b *gridBuilder) buildCell(sheetName string, cell models.Cell, colOffset int) *models.CellData {
	text := cell.Display

	// A numeric stored value overrides richer display text.
	if cell.Raw != "" {
		if v, err := strconv.ParseFloat(cell.Raw, 64); err == nil {
			text = strconv.FormatFloat(v, 'f', -1, 64)
		}
	}

	if percentLiteral.MatchString(text) {
		if v, err := strconv.ParseFloat(strings.TrimSuffix(text, "%"), 64); err == nil {
			text = strconv.FormatFloat(v/100, 'f', -1, 64)
		}
	}

	if strings.Contains(text, ",") {
		if dotted := strings.ReplaceAll(text, ",", "."); isNumeric(dotted) {
			text = dotted
		}
	}

	data := &models.CellData{
		Address: b.address(sheetName, cell.Ref),
		RowNum:  cell.Row,
		ColNum:  cell.Col + colOffset,
	}
	if isNumeric(text) {
		data.Value = text
	} else {
		data.Description = text
	}

	if formula := cell.Formula; formula != "" && !hyperlinkCall.MatchString(formula) {
		formula = strings.ReplaceAll(formula, "$", "")
		translated, _ := b.translator.Translate(formula)
		data.Formula = "=" + b.normalizer.Normalize(translated, sheetName)
		data.Value = ""
	}

	return data
}

// mergeLabel promotes the immediate left neighbor into the current cell's
// description when the neighbor is a bare text cell. The neighbor leaves
// the grid; chains of labels are not merged transitively.
func (b *gridBuilder) mergeLabel(grid *models.Grid, sheetName string, cell models.Cell, cur *models.CellData) {
	if cur.Value == "" && cur.Formula == "" {
		return
	}
	if cell.Col < 2 {
		return
	}
	ref, err := excelize.CoordinatesToCellName(cell.Col-1, cell.Row)
	if err != nil {
		return
	}
	prev := grid.Get(b.address(sheetName, ref))
	if prev == nil || prev.Formula != "" || prev.Value != "" || prev.Description == "" {
		return
	}
	cur.Description = prev.Description
	grid.Remove(prev.Address)
}

func (b *gridBuilder) address(sheetName, ref string) string {
	if !b.multiSheet {
		return ref
	}
	return translate.SanitizeSheetName(sheetName) + "!" + ref
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
