package models

// CellData is one normalized grid cell. Exactly one of Value and Formula
// carries the cell's computation; Description holds an inferred label.
type CellData struct {
	// Address is the normalized coordinate, sheet-prefixed when the source
	// document has more than one sheet. It is the unique key within a Grid.
	Address string
	// Value is a literal numeric or text value, already normalized.
	Value string
	// Description is a human-readable label inferred from adjacent cells.
	Description string
	// Formula is the rewritten expression including the leading "=".
	Formula string
	// RowNum is the 1-based row number.
	RowNum int
	// ColNum is the 1-based column number; sheets tile left-to-right, so
	// columns of later sheets are offset past the widest earlier sheet.
	ColNum int
}

// Grid is the normalized collection of cells keyed by address.
type Grid struct {
	Cells      map[string]*CellData
	SheetNames []string

	order []string
}

// NewGrid creates an empty grid for the given sheets.
func NewGrid(sheetNames []string) *Grid {
	return &Grid{
		Cells:      map[string]*CellData{},
		SheetNames: sheetNames,
	}
}

// Add inserts a cell keyed by its address.
func (g *Grid) Add(c *CellData) {
	if _, ok := g.Cells[c.Address]; !ok {
		g.order = append(g.order, c.Address)
	}
	g.Cells[c.Address] = c
}

// Get returns the cell at address, or nil.
func (g *Grid) Get(address string) *CellData {
	return g.Cells[address]
}

// Remove deletes the cell at address, if present.
func (g *Grid) Remove(address string) {
	delete(g.Cells, address)
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.Cells)
}

// CellsInOrder returns the cells in insertion order. Removed cells are
// skipped, so repeated calls on the same grid yield identical slices.
func (g *Grid) CellsInOrder() []*CellData {
	cells := make([]*CellData, 0, len(g.Cells))
	for _, addr := range g.order {
		if c, ok := g.Cells[addr]; ok {
			cells = append(cells, c)
		}
	}
	return cells
}
