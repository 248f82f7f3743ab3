// Package searchql compiles user-typed search text into SQL predicates.
//
// A Catalog holds the searchable fields and sort orders a host exposes.
// Parsing never fails: text the parser cannot interpret is dropped or
// searched as plain text, and the result is a normalized tree that renders
// to a SQL WHERE fragment, canonical user text, or a markup document.
//
// # Basic Usage
//
//	catalog, err := searchql.New([]*searchql.Field{
//		{Name: "title", Column: "title", Aliases: []string{"title,t"}, Default: true},
//		{Name: "rating", Column: "rating", Aliases: []string{"rating"}, Kinds: []searchql.Kind{searchql.KindInteger}},
//	}, nil)
//	if err != nil {
//		return err
//	}
//
//	q := catalog.Parse("rating>=4 sunset or t:beach")
//	where := q.SQL(postgres.New())
//	// (((rating IS NOT NULL AND rating >= 4) AND ((title IS NOT NULL AND title ILIKE '%sunset%' ESCAPE '\'))) OR ...
//
// # Query Syntax
//
// Terms are separated by whitespace and combined with AND. "or", "OR", "|"
// and "," combine with OR; "-" or "NOT" negates the next term or group.
// Parentheses group. A term may start with a field alias and an operator,
// such as rating>=4, title:sun or tag! (tag is empty). Double quotes keep
// spaces and punctuation inside a term.
//
// AND and OR fold left to right: "a b or c" is (a AND b) OR c while
// "a or b c" is (a OR b) AND c.
//
// # Dialects
//
// Renderers for sqlite, postgres, mariadb and mssql live in sub-packages.
// They differ only in how text patterns are escaped and matched.
package searchql

import (
	"time"

	"github.com/zoobzio/searchql/internal/parse"
	"github.com/zoobzio/searchql/internal/render"
	"github.com/zoobzio/searchql/internal/types"
)

// Field is a named, aliasable search dimension.
type Field = types.Field

// Order is a named sort expression.
type Order = types.Order

// Kind identifies the type of a value.
type Kind = types.Kind

// Re-export value kinds for public API.
const (
	KindText     = types.KindText
	KindInteger  = types.KindInteger
	KindDate     = types.KindDate
	KindFileSize = types.KindFileSize
	KindEmpty    = types.KindEmpty
)

// Value is a typed query value.
type Value = types.Value

// Precision records how much of a date the user supplied.
type Precision = types.Precision

// Re-export date precisions for public API.
const (
	PrecisionSecond = types.PrecisionSecond
	PrecisionMinute = types.PrecisionMinute
	PrecisionDay    = types.PrecisionDay
	PrecisionMonth  = types.PrecisionMonth
	PrecisionYear   = types.PrecisionYear
)

// FileSizeFactor is the byte multiplier of a file size unit.
type FileSizeFactor = types.FileSizeFactor

// Re-export file size factors for public API.
const (
	FactorNone = types.FactorNone
	FactorKB   = types.FactorKB
	FactorMB   = types.FactorMB
	FactorGB   = types.FactorGB
	FactorTB   = types.FactorTB
	FactorPB   = types.FactorPB
)

// Node is a query tree node: *ListNode or *TermNode.
type Node = types.Node

// ListNode combines child nodes.
type ListNode = types.ListNode

// TermNode compares a field against a value.
type TermNode = types.TermNode

// Combinator represents how a list node combines its children.
type Combinator = types.Combinator

// Re-export combinators for public API.
const (
	And = types.And
	Or  = types.Or
	Not = types.Not
)

// Diagnostic describes input the parser dropped or reinterpreted.
type Diagnostic = parse.Diagnostic

// Capabilities describes a dialect's string and pattern handling.
type Capabilities = render.Capabilities

// MarkupError reports why a markup document was rejected.
type MarkupError = render.MarkupError

// TextValue returns a text value; the empty string is unset.
func TextValue(s string) Value { return types.TextValue(s) }

// IntegerValue returns an integer value.
func IntegerValue(n int64) Value { return types.IntegerValue(n) }

// DateValue returns a date value covering the window of its precision.
func DateValue(t time.Time, p Precision) Value { return types.DateValue(t, p) }

// FileSizeValue returns a file size value in bytes.
func FileSizeValue(bytes int64, factor FileSizeFactor) Value {
	return types.FileSizeValue(bytes, factor)
}

// EmptyValue returns the value matched by the empty operator.
func EmptyValue() Value { return types.EmptyValue() }

// ParseValue parses user-typed text as a value of the given kind. Failures
// yield an unset value.
func ParseValue(kind Kind, s string) Value { return types.ParseUserQuery(kind, s) }

// ParseKind resolves a kind from its name: text, int, date, fileSize or empty.
func ParseKind(name string) (Kind, error) { return types.ParseKind(name) }

// FormatFileSize renders a byte count with the largest fitting unit.
func FormatFileSize(bytes int64) string { return types.FormatFileSize(bytes, false) }
