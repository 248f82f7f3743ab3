package searchql

import "github.com/zoobzio/searchql/internal/render"

// Renderer selects the SQL dialect a query renders to.
// Implementations describe how the dialect treats text patterns.
type Renderer interface {
	// Capabilities returns the dialect's string and pattern handling.
	Capabilities() render.Capabilities
}
