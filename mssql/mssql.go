// Package mssql provides the SQL Server dialect renderer for searchql.
package mssql

import "github.com/zoobzio/searchql/internal/render"

// Renderer implements the SQL Server dialect renderer.
type Renderer struct{}

// New creates a new SQL Server renderer.
func New() *Renderer {
	return &Renderer{}
}

// Capabilities returns the string handling of SQL Server, where [ opens a
// character class in LIKE patterns.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		Dialect:             "mssql",
		CaseInsensitiveLike: false,
		BackslashEscapes:    false,
		LikeBracketClass:    true,
	}
}
