package searchql

import "github.com/zoobzio/searchql/internal/types"

// NewList creates a list node adopting the given children.
func NewList(c Combinator, children ...Node) *ListNode {
	return types.NewList(c, children...)
}

// NewTerm creates a term node. A nil field searches every default field.
func NewTerm(field *Field, op *Operator, value Value) *TermNode {
	return types.NewTerm(field, op, value)
}

// Dump renders a compact structural form of a tree, such as
// Or[And[contains("a"), rating.equals(4)], contains("b")].
func Dump(n Node) string {
	return types.Dump(n)
}
