// Package graph projects a grid into the computation graph and its
// dependency diagram.
package graph

import (
	"github.com/Recursing/Ferminator/pkg/ferminator/models"
)

const maxNameLength = 20

// Build creates one Metric and one Guesstimate per grid cell, in grid
// order. The projection is pure: the same grid always yields the same
// graph.
func Build(grid *models.Grid) *models.Graph {
	g := &models.Graph{
		Metrics:      []models.Metric{},
		Guesstimates: []models.Guesstimate{},
	}

	for _, cell := range grid.CellsInOrder() {
		name, description := splitName(cell)

		g.Metrics = append(g.Metrics, models.Metric{
			ID:         cell.Address,
			ReadableID: cell.Address,
			Name:       name,
			Location: models.Location{
				Row:    cell.RowNum - 1,
				Column: cell.ColNum - 1,
			},
		})

		guesstimateType := models.GuesstimatePoint
		expression := cell.Value
		if cell.Formula != "" {
			guesstimateType = models.GuesstimateFunction
			expression = cell.Formula
		}
		g.Guesstimates = append(g.Guesstimates, models.Guesstimate{
			Metric:          cell.Address,
			Expression:      expression,
			GuesstimateType: guesstimateType,
			Description:     description,
		})
	}

	return g
}

// splitName applies the name-truncation policy: a long description on a
// value-carrying cell moves in full to the guesstimate and the metric keeps
// a truncated name; a bare label cell keeps its description verbatim.
func splitName(cell *models.CellData) (name, description string) {
	runes := []rune(cell.Description)
	if len(runes) > maxNameLength && cell.Value != "" {
		return string(runes[:17]) + "...", cell.Description
	}
	return cell.Description, ""
}
