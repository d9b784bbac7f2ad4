package models

// Guesstimate node types.
const (
	GuesstimateFunction = "FUNCTION"
	GuesstimatePoint    = "POINT"
)

// Location is a 0-based grid position.
type Location struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// Metric is the identity/location half of a computation-graph node.
type Metric struct {
	// ID and ReadableID are both the cell address.
	ID         string   `json:"id"`
	ReadableID string   `json:"readableId"`
	Name       string   `json:"name"`
	Location   Location `json:"location"`
}

// Guesstimate is the expression half of a computation-graph node. There is
// exactly one Guesstimate per Metric, joined on the cell address.
type Guesstimate struct {
	Metric          string  `json:"metric"`
	Input           *string `json:"input"`
	Expression      string  `json:"expression"`
	GuesstimateType string  `json:"guesstimateType"`
	Description     string  `json:"description,omitempty"`
}

// Graph is the computation graph document sent to the modeling service.
type Graph struct {
	Metrics      []Metric      `json:"metrics"`
	Guesstimates []Guesstimate `json:"guesstimates"`
}
