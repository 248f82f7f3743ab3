package render

import (
	"strings"

	"github.com/zoobzio/searchql/internal/scan"
	"github.com/zoobzio/searchql/internal/types"
)

// UserQuery renders n as text the parser accepts and parses back to an
// equal tree.
func UserQuery(n types.Node) string {
	if n == nil {
		return ""
	}

	switch node := n.(type) {
	case *types.ListNode:
		return listText(node)
	case *types.TermNode:
		return termText(node)
	}
	return ""
}

func listText(list *types.ListNode) string {
	parts := make([]string, 0, list.Len())
	for _, child := range list.Children() {
		if s := UserQuery(child); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return ""
	}

	if list.Combinator == types.Not {
		return "-" + strings.Join(parts, " ")
	}

	sep := " "
	if list.Combinator == types.Or {
		sep = " or "
	}
	s := strings.Join(parts, sep)
	if list.Parent() != nil && len(parts) > 1 {
		return "(" + s + ")"
	}
	return s
}

func termText(term *types.TermNode) string {
	value := term.Value.UserQuery()
	if term.Field == nil {
		if value == "" {
			return ""
		}
		return quote(value, true)
	}

	op := ""
	if term.Operator != nil {
		op = term.Operator.PrimaryAlias()
	}
	return term.Field.PrimaryAlias() + op + quote(value, false)
}

// quote wraps s in double quotes when the scanner would otherwise split it
// or read it as something other than a term. Bare terms also need quoting
// when they start with the negation character or spell a keyword.
func quote(s string, bare bool) string {
	needs := strings.ContainsFunc(s, scan.IsTerminator)
	if bare && !needs {
		needs = strings.HasPrefix(s, "-") || scan.IsKeyword(s)
	}
	if !needs {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, "") + `"`
}
