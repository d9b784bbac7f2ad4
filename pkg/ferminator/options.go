// Package ferminator converts spreadsheet workbooks into computation
// graphs for a probabilistic-modeling service, plus a dependency diagram
// of the same graph.
package ferminator

// Options configures conversion behavior.
type Options struct {
	// IncludeDiagram specifies whether to also produce the dependency
	// diagram text. If nil, defaults to true.
	IncludeDiagram *bool
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldIncludeDiagram returns whether to produce the dependency diagram.
func (o Options) ShouldIncludeDiagram() bool {
	if o.IncludeDiagram != nil {
		return *o.IncludeDiagram
	}
	return true
}
