// Package render converts query trees into SQL predicates, user text and
// markup documents, and parses markup back into trees.
package render

import (
	"strconv"
	"strings"
	"time"

	"github.com/zoobzio/searchql/internal/types"
)

// sqlDateLayout is the literal format dates take inside SQL.
const sqlDateLayout = "2006-01-02 15:04:05"

// SQL renders n as a boolean predicate fragment. It returns "" when nothing
// in the tree produces SQL.
func SQL(n types.Node, reg *types.Registry, caps Capabilities) string {
	if n == nil {
		return ""
	}

	switch node := n.(type) {
	case *types.ListNode:
		return listSQL(node, reg, caps)
	case *types.TermNode:
		return termSQL(node, reg, caps)
	}
	return ""
}

func listSQL(list *types.ListNode, reg *types.Registry, caps Capabilities) string {
	parts := make([]string, 0, list.Len())
	for _, child := range list.Children() {
		if s := SQL(child, reg, caps); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return ""
	}

	switch list.Combinator {
	case types.Not:
		return "NOT(" + strings.Join(parts, " AND ") + ")"
	case types.Or:
		return "(" + strings.Join(parts, " OR ") + ")"
	default:
		return "(" + strings.Join(parts, " AND ") + ")"
	}
}

// termSQL renders a term. Terms without a field search every default field
// able to hold the value.
func termSQL(term *types.TermNode, reg *types.Registry, caps Capabilities) string {
	op := term.Operator
	if op == nil {
		if term.Field != nil {
			return ""
		}
		op = reg.Contains()
	}

	if term.Field != nil {
		return FieldSQL(term.Field, op, term.Value, caps)
	}

	var parts []string
	for _, f := range reg.DefaultFields() {
		if !f.Accepts(term.Value.Kind()) {
			continue
		}
		if s := FieldSQL(f, op, term.Value, caps); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

// FieldSQL renders one column comparison. NULL columns never match a positive
// operator and always match a negating one.
func FieldSQL(f *types.Field, op *types.Operator, v types.Value, caps Capabilities) string {
	literal, ok := Literal(v, op, caps)
	if !ok && op.HasSlot() {
		return ""
	}

	frag := op.Format(literal)
	if caps.BackslashEscapes {
		frag = strings.ReplaceAll(frag, `\`, `\\`)
	}
	if caps.CaseInsensitiveLike && op.IsLike() {
		frag = strings.Replace(frag, "LIKE", "ILIKE", 1)
	}

	col := f.Column
	if col == "" {
		col = f.Name
	}

	switch {
	case !op.HasSlot():
		return "(" + col + " " + frag + ")"
	case op.Negating:
		return "(" + col + " IS NULL OR " + col + " " + frag + ")"
	default:
		return "(" + col + " IS NOT NULL AND " + col + " " + frag + ")"
	}
}

// Literal renders the value for the operator's {0} slot. Quotes belong to the
// operator template for text and to the literal for dates. It reports false
// for values that have no literal.
func Literal(v types.Value, op *types.Operator, caps Capabilities) (string, bool) {
	if v.IsEmpty() {
		return "", false
	}

	switch v.Kind() {
	case types.KindText:
		s := v.Text()
		if op != nil && op.IsLike() {
			s = EscapeLike(s, caps)
		}
		return strings.ReplaceAll(s, "'", "''"), true
	case types.KindInteger, types.KindFileSize:
		return strconv.FormatInt(v.Int(), 10), true
	case types.KindDate:
		lo, hi := v.Window()
		name := ""
		if op != nil {
			name = op.Name
		}
		switch name {
		case types.OpEquals, types.OpNotEqual:
			return quoteDate(lo) + " AND " + quoteDate(hi), true
		case types.OpGreaterThan, types.OpLessThanEquals:
			return quoteDate(hi), true
		default:
			return quoteDate(lo), true
		}
	default:
		return "", false
	}
}

// EscapeLike escapes LIKE wildcards with a backslash, the escape character
// every LIKE template declares.
func EscapeLike(s string, caps Capabilities) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\', '%', '_':
			sb.WriteByte('\\')
		case '[':
			if caps.LikeBracketClass {
				sb.WriteByte('\\')
			}
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func quoteDate(t time.Time) string {
	return "'" + t.Format(sqlDateLayout) + "'"
}

// OrderBy renders an ORDER BY clause for a named order.
func OrderBy(o *types.Order) string {
	if o == nil || strings.TrimSpace(o.SQL) == "" {
		return ""
	}
	return "ORDER BY " + o.SQL
}
