package ferminator

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/Recursing/Ferminator/pkg/ferminator/graph"
	"github.com/Recursing/Ferminator/pkg/ferminator/models"
	"github.com/Recursing/Ferminator/pkg/ferminator/parser"
)

// Result holds the artifacts of one conversion.
type Result struct {
	// Grid is the normalized cell grid the artifacts were derived from.
	Grid *models.Grid
	// Graph is the computation graph document.
	Graph *models.Graph
	// Diagram is the dependency diagram text, empty when not requested.
	Diagram string
}

// Convert reads a workbook file and produces the computation graph and,
// optionally, the dependency diagram text.
func Convert(path string, opts Options) (*Result, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	return ConvertWorkbook(f, opts)
}

// ConvertWorkbook converts an already-open workbook.
func ConvertWorkbook(f *excelize.File, opts Options) (*Result, error) {
	doc, err := parser.ReadDocument(f)
	if err != nil {
		return nil, NewConvertError("", "document", err)
	}

	grid := parser.BuildGrid(doc)
	result := &Result{
		Grid:  grid,
		Graph: graph.Build(grid),
	}
	if opts.ShouldIncludeDiagram() {
		result.Diagram = graph.Diagram(grid)
	}
	return result, nil
}
