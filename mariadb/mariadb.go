// Package mariadb provides the MariaDB dialect renderer for searchql.
// It also serves MySQL, which shares its string literal rules.
package mariadb

import "github.com/zoobzio/searchql/internal/render"

// Renderer implements the MariaDB dialect renderer.
type Renderer struct{}

// New creates a new MariaDB renderer.
func New() *Renderer {
	return &Renderer{}
}

// Capabilities returns the string handling of MariaDB. Backslash escapes
// inside string literals unless NO_BACKSLASH_ESCAPES is set.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		Dialect:             "mariadb",
		CaseInsensitiveLike: false,
		BackslashEscapes:    true,
		LikeBracketClass:    false,
	}
}
