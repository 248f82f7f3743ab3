package searchql

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/zoobzio/searchql/internal/parse"
	"github.com/zoobzio/searchql/internal/render"
	"github.com/zoobzio/searchql/internal/scan"
	"github.com/zoobzio/searchql/internal/types"
)

// Catalog holds the fields, orders and operator sets queries are parsed
// against. It is immutable once built and safe for concurrent use.
type Catalog struct {
	registry *types.Registry
	logger   *slog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger receiving debug records about dropped input.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New builds a catalog. Fields and orders are copied; a field without
// aliases is reachable by its lowercased name.
func New(fields []*Field, orders []*Order, opts ...Option) (*Catalog, error) {
	if len(fields) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[string]bool, len(fields))
	copies := make([]*Field, 0, len(fields))
	for _, f := range fields {
		if f == nil || strings.TrimSpace(f.Name) == "" {
			return nil, fmt.Errorf("field name cannot be empty")
		}
		key := strings.ToLower(f.Name)
		if seen[key] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateField, f.Name)
		}
		seen[key] = true

		for _, k := range f.Kinds {
			if !knownKind(k) {
				return nil, fmt.Errorf("field %s: %w: %d", f.Name, ErrUnknownKind, int(k))
			}
		}

		cp := *f
		cp.Aliases = append([]string(nil), f.Aliases...)
		cp.Kinds = append([]Kind(nil), f.Kinds...)
		if len(cp.Aliases) == 0 {
			cp.Aliases = []string{key}
		}
		copies = append(copies, &cp)
	}

	orderCopies := make([]*Order, 0, len(orders))
	for _, o := range orders {
		if o == nil || strings.TrimSpace(o.Name) == "" {
			return nil, fmt.Errorf("order name cannot be empty")
		}
		cp := *o
		cp.Aliases = append([]string(nil), o.Aliases...)
		if len(cp.Aliases) == 0 {
			cp.Aliases = []string{strings.ToLower(o.Name)}
		}
		orderCopies = append(orderCopies, &cp)
	}

	c := &Catalog{
		registry: types.NewRegistry(copies, orderCopies),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.logger.Debug("searchql catalog built",
		"fields", c.registry.Fields.Len(),
		"orders", c.registry.Orders.Len(),
		"defaults", len(c.registry.DefaultFields()),
	)
	return c, nil
}

func knownKind(k Kind) bool {
	for _, known := range types.Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Parse compiles user text into a query. It never fails; input that cannot
// be interpreted is dropped or searched as text.
func (c *Catalog) Parse(text string) *Query {
	p := parse.New(c.registry)
	if c.logger.Enabled(context.Background(), slog.LevelDebug) {
		p.OnDiagnostic(c.logDiagnostic)
	}
	return c.query(p.Parse(scan.NewString(text)))
}

// ParseWithDiagnostics parses like Parse and also reports every fragment
// that was dropped or reinterpreted.
func (c *Catalog) ParseWithDiagnostics(text string) (*Query, []Diagnostic) {
	var diags []Diagnostic
	p := parse.New(c.registry).OnDiagnostic(func(d Diagnostic) {
		c.logDiagnostic(d)
		diags = append(diags, d)
	})
	return c.query(p.Parse(scan.NewString(text))), diags
}

func (c *Catalog) logDiagnostic(d Diagnostic) {
	c.logger.Debug("searchql input dropped", "line", d.Line, "term", d.Term, "reason", d.Reason)
}

// ParseMarkup reads a query from a markup document. A document that does
// not describe a query yields an empty query.
func (c *Catalog) ParseMarkup(doc string) *Query {
	root, err := render.ParseMarkup(doc, c.registry)
	if err != nil {
		c.logger.Debug("searchql markup rejected", "error", err)
		return c.query(nil)
	}
	return c.query(root)
}

// FromTree wraps a hand-built tree in a query. The tree is trimmed and
// must not be modified afterwards.
func (c *Catalog) FromTree(n Node) *Query {
	if n == nil {
		return c.query(nil)
	}
	types.Detach(n)
	return c.query(types.Trim(n))
}

func (c *Catalog) query(root types.Node) *Query {
	return &Query{catalog: c, root: root}
}

// Fields returns the catalog's fields in registration order.
func (c *Catalog) Fields() []*Field {
	return c.registry.Fields.All()
}

// Field resolves a field by alias or name.
func (c *Catalog) Field(alias string) (*Field, bool) {
	if f, ok := c.registry.Fields.ByAlias(alias); ok {
		return f, true
	}
	return c.registry.Fields.Get(alias)
}

// DefaultFields returns the fields searched by terms that name no field.
func (c *Catalog) DefaultFields() []*Field {
	return c.registry.DefaultFields()
}

// Orders returns the catalog's sort orders in registration order.
func (c *Catalog) Orders() []*Order {
	return c.registry.Orders.All()
}

// Order resolves a sort order by alias or name.
func (c *Catalog) Order(alias string) (*Order, bool) {
	if o, ok := c.registry.Orders.ByAlias(alias); ok {
		return o, true
	}
	return c.registry.Orders.Get(alias)
}

// OrderBy renders the ORDER BY clause of a named sort order.
func (c *Catalog) OrderBy(alias string) (string, bool) {
	o, ok := c.Order(alias)
	if !ok {
		return "", false
	}
	sql := render.OrderBy(o)
	return sql, sql != ""
}

// Operators returns the operators valid for a value kind.
func (c *Catalog) Operators(kind Kind) []*Operator {
	set := c.registry.Operators(kind)
	if set == nil {
		return nil
	}
	return set.All()
}

// Operator resolves an operator of a kind by its name.
func (c *Catalog) Operator(kind Kind, name string) (*Operator, bool) {
	set := c.registry.Operators(kind)
	if set == nil {
		return nil, false
	}
	return set.Get(name)
}
