// Package models defines data structures for spreadsheet conversion.
package models

// Cell is a single occupied cell as exposed by the spreadsheet document.
type Cell struct {
	// Ref is the sheet-local coordinate, e.g. "B3".
	Ref string
	// Row is the row index (1-based).
	Row int
	// Col is the column index (1-based).
	Col int
	// Display is the display text; rich-text runs are already concatenated.
	Display string
	// Raw is the stored value before number formatting is applied.
	Raw string
	// Formula is the cell formula without the leading "=", empty when none.
	Formula string
}

// Sheet holds the occupied cells of one worksheet in row-major order.
type Sheet struct {
	Name  string
	Cells []Cell
}

// Document is the abstract spreadsheet document consumed by the grid builder.
// It hides the container format behind ordered sheets of occupied cells.
type Document struct {
	Sheets []Sheet
}

// SheetNames returns the sheet names in document order.
func (d *Document) SheetNames() []string {
	names := make([]string, 0, len(d.Sheets))
	for _, s := range d.Sheets {
		names = append(names, s.Name)
	}
	return names
}
