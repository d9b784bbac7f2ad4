// Package output serializes conversion artifacts.
package output

import (
	json "github.com/bytedance/sonic"

	"github.com/Recursing/Ferminator/pkg/ferminator/models"
)

// ToJSON serializes the computation graph as a {metrics, guesstimates}
// document, optionally pretty-printed.
func ToJSON(graph *models.Graph, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(graph, "", "  ")
	}
	return json.Marshal(graph)
}
