package types

// Trim normalizes a tree in post-order and returns the surviving root, or
// nil when nothing survives. Unset terms, field terms without an operator,
// NOT lists without exactly one child, and AND/OR lists with fewer than two
// children are removed; a degenerate list is replaced by its only child.
func Trim(n Node) Node {
	switch node := n.(type) {
	case *TermNode:
		return node.trim()
	case *ListNode:
		return node.trim()
	}
	return nil
}

func (t *TermNode) trim() Node {
	if t.Value.IsEmpty() || (t.Field != nil && t.Operator == nil) {
		Detach(t)
		return nil
	}
	return t
}

func (l *ListNode) trim() Node {
	for _, child := range l.Children() {
		Trim(child)
	}

	if l.Combinator == Not {
		if len(l.children) != 1 {
			Detach(l)
			return nil
		}
		return l
	}

	if len(l.children) > 1 {
		return l
	}

	var only Node
	if len(l.children) == 1 {
		only = l.children[0]
		l.Remove(only)
	}

	if p := l.parent; p != nil {
		if only != nil {
			p.Replace(l, only)
		} else {
			p.Remove(l)
		}
	}
	return only
}
