package graph

import (
	"regexp"
	"strings"

	"github.com/Recursing/Ferminator/pkg/ferminator/models"
)

const maxLabelLength = 40

var (
	labelUnsafe = regexp.MustCompile(`[^0-9A-Za-z ,.:%/()+*=-]`)
	nodeUnsafe  = regexp.MustCompile(`\W`)
)

// Diagram derives the dependency edge list from the grid's rewritten
// formulas and emits it as line-oriented "graph LR" diagram text. An edge
// runs from each referenced cell to the formula that references it; a cell
// is referenced when its address appears immediately before a placeholder's
// closing brace. Every node is declared at most once; cells without a
// description participate as bare edge endpoints.
func Diagram(grid *models.Grid) string {
	cells := grid.CellsInOrder()

	var b strings.Builder
	b.WriteString("graph LR\n")

	declared := map[string]bool{}
	declare := func(c *models.CellData) {
		if declared[c.Address] {
			return
		}
		declared[c.Address] = true
		if c.Description == "" {
			return
		}
		b.WriteString(nodeID(c.Address) + "[" + nodeLabel(c.Description) + "]\n")
	}

	for _, cell := range cells {
		if cell.Formula == "" {
			continue
		}
		for _, other := range cells {
			if other.Address == cell.Address {
				continue
			}
			if !strings.Contains(cell.Formula, other.Address+"}") {
				continue
			}
			declare(other)
			declare(cell)
			b.WriteString(nodeID(other.Address) + " --> " + nodeID(cell.Address) + "\n")
		}
	}

	return b.String()
}

func nodeID(address string) string {
	return nodeUnsafe.ReplaceAllString(address, "_")
}

func nodeLabel(description string) string {
	safe := labelUnsafe.ReplaceAllString(description, "_")
	runes := []rune(safe)
	if len(runes) > maxLabelLength {
		return string(runes[:maxLabelLength]) + "..."
	}
	return safe
}
