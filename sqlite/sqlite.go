// Package sqlite provides the SQLite dialect renderer for searchql.
package sqlite

import "github.com/zoobzio/searchql/internal/render"

// Renderer implements the SQLite dialect renderer.
type Renderer struct{}

// New creates a new SQLite renderer.
func New() *Renderer {
	return &Renderer{}
}

// Capabilities returns the string handling of SQLite. LIKE is already
// case-insensitive for ASCII, so no ILIKE rewrite is needed.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		Dialect:             "sqlite",
		CaseInsensitiveLike: false,
		BackslashEscapes:    false,
		LikeBracketClass:    false,
	}
}
