package searchql

import (
	"github.com/zoobzio/searchql/internal/render"
	"github.com/zoobzio/searchql/internal/types"
)

// Query is a parsed, normalized query tree bound to its catalog.
// Rendering does not modify the tree, so a Query can be rendered
// concurrently.
type Query struct {
	catalog *Catalog
	root    types.Node
}

// Root returns the tree root, or nil for an empty query.
func (q *Query) Root() Node {
	return q.root
}

// IsEmpty reports whether nothing survived parsing.
func (q *Query) IsEmpty() bool {
	return q.root == nil
}

// Equal reports whether two queries have structurally equal trees.
func (q *Query) Equal(o *Query) bool {
	if q == nil || o == nil {
		return q == o
	}
	return types.Equal(q.root, o.root)
}

// SQL renders the query as a WHERE predicate for the dialect. An empty
// query renders as "".
func (q *Query) SQL(r Renderer) string {
	caps := render.ANSI
	if r != nil {
		caps = r.Capabilities()
	}
	return render.SQL(q.root, q.catalog.registry, caps)
}

// String renders canonical user text that parses back to an equal query.
func (q *Query) String() string {
	return render.UserQuery(q.root)
}

// Markup renders the query as a request document.
func (q *Query) Markup() string {
	return render.Markup(q.root)
}

// Dump renders the tree's compact structural form.
func (q *Query) Dump() string {
	return types.Dump(q.root)
}
