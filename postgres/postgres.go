// Package postgres provides the PostgreSQL dialect renderer for searchql.
package postgres

import "github.com/zoobzio/searchql/internal/render"

// Renderer implements the PostgreSQL dialect renderer.
type Renderer struct{}

// New creates a new PostgreSQL renderer.
func New() *Renderer {
	return &Renderer{}
}

// Capabilities returns the string handling of PostgreSQL. Pattern
// operators render as ILIKE so text search ignores case.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		Dialect:             "postgres",
		CaseInsensitiveLike: true,
		BackslashEscapes:    false,
		LikeBracketClass:    false,
	}
}
