package searchql

import (
	"fmt"
	"strings"

	"github.com/zoobzio/dbml"
)

// DBMLOption adjusts how table columns become fields.
type DBMLOption func(*dbmlConfig)

type dbmlConfig struct {
	aliases  map[string][]string
	kinds    map[string][]Kind
	defaults map[string]bool
	skip     map[string]bool
	opts     []Option
}

// WithAliases sets the aliases of the field built from a column.
func WithAliases(column string, aliases ...string) DBMLOption {
	return func(c *dbmlConfig) { c.aliases[column] = aliases }
}

// WithKinds overrides the kinds inferred from a column's type.
func WithKinds(column string, kinds ...Kind) DBMLOption {
	return func(c *dbmlConfig) { c.kinds[column] = kinds }
}

// WithDefault marks columns searched by terms that name no field.
func WithDefault(columns ...string) DBMLOption {
	return func(c *dbmlConfig) {
		for _, col := range columns {
			c.defaults[col] = true
		}
	}
}

// WithoutColumns excludes columns from the catalog.
func WithoutColumns(columns ...string) DBMLOption {
	return func(c *dbmlConfig) {
		for _, col := range columns {
			c.skip[col] = true
		}
	}
}

// WithCatalogOptions passes options through to the catalog.
func WithCatalogOptions(opts ...Option) DBMLOption {
	return func(c *dbmlConfig) { c.opts = append(c.opts, opts...) }
}

// NewFromDBML builds a catalog from one table of a DBML project. Each
// column becomes a field named after it; column types pick the value kind.
func NewFromDBML(project *dbml.Project, table string, opts ...DBMLOption) (*Catalog, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	cfg := &dbmlConfig{
		aliases:  make(map[string][]string),
		kinds:    make(map[string][]Kind),
		defaults: make(map[string]bool),
		skip:     make(map[string]bool),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var target *dbml.Table
	for _, t := range project.Tables {
		if t.Name == table {
			target = t
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("table '%s' not found in schema", table)
	}

	var fields []*Field
	for _, col := range target.Columns {
		if cfg.skip[col.Name] {
			continue
		}

		kinds, ok := cfg.kinds[col.Name]
		if !ok {
			kind, searchable := kindForColumnType(col.Type)
			if !searchable {
				continue
			}
			kinds = []Kind{kind}
		}

		fields = append(fields, &Field{
			Name:    col.Name,
			Column:  col.Name,
			Aliases: cfg.aliases[col.Name],
			Default: cfg.defaults[col.Name],
			Kinds:   kinds,
		})
	}

	return New(fields, nil, cfg.opts...)
}

// kindForColumnType maps a SQL column type to a value kind. Types with no
// searchable kind report false.
func kindForColumnType(sqlType string) (Kind, bool) {
	t := strings.ToLower(strings.TrimSpace(sqlType))
	if i := strings.IndexByte(t, '('); i >= 0 {
		t = t[:i]
	}

	switch t {
	case "varchar", "char", "text", "string", "nvarchar", "nchar", "citext", "uuid", "character varying":
		return KindText, true
	case "int", "integer", "bigint", "smallint", "tinyint", "serial", "bigserial", "int2", "int4", "int8":
		return KindInteger, true
	case "timestamp", "timestamptz", "date", "datetime", "datetime2", "timestamp with time zone", "timestamp without time zone":
		return KindDate, true
	}
	return KindText, false
}
