package searchql

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zoobzio/searchql/internal/types"
)

// CatalogSchema describes a catalog in declarative form.
type CatalogSchema struct {
	Fields []FieldSchema `json:"fields" yaml:"fields"`
	Orders []OrderSchema `json:"orders,omitempty" yaml:"orders,omitempty"`
}

// FieldSchema describes a field in declarative form. Kinds are named
// text, int, date, fileSize or empty.
type FieldSchema struct {
	Name    string   `json:"name" yaml:"name"`
	Label   string   `json:"label,omitempty" yaml:"label,omitempty"`
	Column  string   `json:"column,omitempty" yaml:"column,omitempty"`
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Default bool     `json:"default,omitempty" yaml:"default,omitempty"`
	Kinds   []string `json:"kinds,omitempty" yaml:"kinds,omitempty"`
}

// OrderSchema describes a sort order in declarative form.
type OrderSchema struct {
	Name    string   `json:"name" yaml:"name"`
	Label   string   `json:"label,omitempty" yaml:"label,omitempty"`
	SQL     string   `json:"sql" yaml:"sql"`
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// Load reads a YAML catalog schema from a file.
func Load(path string, opts ...Option) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return LoadYAML(data, opts...)
}

// LoadYAML builds a catalog from a YAML schema.
func LoadYAML(data []byte, opts ...Option) (*Catalog, error) {
	var schema CatalogSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return BuildFromSchema(&schema, opts...)
}

// BuildFromSchema converts a CatalogSchema to a Catalog.
func BuildFromSchema(schema *CatalogSchema, opts ...Option) (*Catalog, error) {
	if schema == nil {
		return nil, ErrEmptyCatalog
	}

	fields := make([]*Field, 0, len(schema.Fields))
	for _, fs := range schema.Fields {
		kinds := make([]Kind, 0, len(fs.Kinds))
		for _, name := range fs.Kinds {
			k, err := types.ParseKind(name)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w: %q", fs.Name, ErrUnknownKind, name)
			}
			kinds = append(kinds, k)
		}
		fields = append(fields, &Field{
			Name:    fs.Name,
			Label:   fs.Label,
			Column:  fs.Column,
			Aliases: fs.Aliases,
			Default: fs.Default,
			Kinds:   kinds,
		})
	}

	orders := make([]*Order, 0, len(schema.Orders))
	for _, o := range schema.Orders {
		orders = append(orders, &Order{
			Name:    o.Name,
			Label:   o.Label,
			SQL:     o.SQL,
			Aliases: o.Aliases,
		})
	}

	return New(fields, orders, opts...)
}
