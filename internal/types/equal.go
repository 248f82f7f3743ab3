package types

import (
	"strconv"
	"strings"
)

// Equal reports whether two trees are structurally equal. Fields and
// operators compare by name.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case *ListNode:
		y, ok := b.(*ListNode)
		if !ok || x.Combinator != y.Combinator || len(x.children) != len(y.children) {
			return false
		}
		for i := range x.children {
			if !Equal(x.children[i], y.children[i]) {
				return false
			}
		}
		return true
	case *TermNode:
		y, ok := b.(*TermNode)
		if !ok {
			return false
		}
		return sameField(x.Field, y.Field) && sameOperator(x.Operator, y.Operator) && x.Value.Equal(y.Value)
	}
	return false
}

func sameField(a, b *Field) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Name == b.Name
}

func sameOperator(a, b *Operator) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Name == b.Name
}

// Dump renders a compact structural form such as And[contains("a"), rating.equals(4)].
func Dump(n Node) string {
	var sb strings.Builder
	dump(&sb, n)
	return sb.String()
}

func dump(sb *strings.Builder, n Node) {
	switch node := n.(type) {
	case nil:
		sb.WriteString("<nil>")
	case *ListNode:
		name := string(node.Combinator)
		if name != "" {
			name = strings.ToUpper(name[:1]) + name[1:]
		}
		sb.WriteString(name)
		sb.WriteByte('[')
		for i, child := range node.children {
			if i > 0 {
				sb.WriteString(", ")
			}
			dump(sb, child)
		}
		sb.WriteByte(']')
	case *TermNode:
		if node.Field != nil {
			sb.WriteString(node.Field.Name)
			sb.WriteByte('.')
		}
		if node.Operator != nil {
			sb.WriteString(node.Operator.Name)
		} else {
			sb.WriteString(OpContains)
		}
		sb.WriteByte('(')
		if node.Value.Kind() == KindText {
			sb.WriteString(strconv.Quote(node.Value.Text()))
		} else {
			sb.WriteString(node.Value.UserQuery())
		}
		sb.WriteByte(')')
	}
}
