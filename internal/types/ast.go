package types

// Combinator represents how a list node combines its children.
type Combinator string

const (
	And Combinator = "and"
	Or  Combinator = "or"
	Not Combinator = "not"
)

// ParseCombinator resolves a combinator from its keyword.
func ParseCombinator(s string) (Combinator, bool) {
	switch Combinator(s) {
	case And, Or, Not:
		return Combinator(s), true
	}
	return "", false
}

// Node is implemented by *ListNode and *TermNode.
// The marker method prevents external types from implementing Node.
type Node interface {
	// Parent returns the list holding this node, or nil for a root.
	Parent() *ListNode
	setParent(p *ListNode)
	node()
}

// ListNode applies a combinator to an ordered list of owned children.
// The parent pointer is a back-reference only; ownership runs downward.
type ListNode struct {
	parent     *ListNode
	Combinator Combinator
	children   []Node
}

// TermNode is a leaf comparing a field against a value. A nil Field is a
// full-text term searched across every default field.
type TermNode struct {
	parent   *ListNode
	Field    *Field
	Operator *Operator
	Value    Value
}

func (*ListNode) node() {}
func (*TermNode) node() {}

// Parent returns the enclosing list.
func (l *ListNode) Parent() *ListNode { return l.parent }

// Parent returns the enclosing list.
func (t *TermNode) Parent() *ListNode { return t.parent }

func (l *ListNode) setParent(p *ListNode) { l.parent = p }
func (t *TermNode) setParent(p *ListNode) { t.parent = p }

// NewList creates a list node and adopts the given children.
func NewList(c Combinator, children ...Node) *ListNode {
	l := &ListNode{Combinator: c}
	for _, child := range children {
		l.Add(child)
	}
	return l
}

// NewTerm creates a detached term node.
func NewTerm(field *Field, op *Operator, value Value) *TermNode {
	return &TermNode{Field: field, Operator: op, Value: value}
}

// Len returns the number of children.
func (l *ListNode) Len() int { return len(l.children) }

// Child returns the i-th child.
func (l *ListNode) Child(i int) Node { return l.children[i] }

// Children returns a copy of the child list.
func (l *ListNode) Children() []Node {
	out := make([]Node, len(l.children))
	copy(out, l.children)
	return out
}

// IndexOf returns the position of child, or -1.
func (l *ListNode) IndexOf(child Node) int {
	for i, c := range l.children {
		if c == child {
			return i
		}
	}
	return -1
}

// Add appends a child, detaching it from any previous parent first.
func (l *ListNode) Add(child Node) {
	l.Insert(len(l.children), child)
}

// Insert places a child at position i, detaching it from any previous parent.
func (l *ListNode) Insert(i int, child Node) {
	Detach(child)
	if i > len(l.children) {
		i = len(l.children)
	}
	l.children = append(l.children, nil)
	copy(l.children[i+1:], l.children[i:])
	l.children[i] = child
	child.setParent(l)
}

// Remove drops a child and clears its parent. It reports whether the child
// was found.
func (l *ListNode) Remove(child Node) bool {
	i := l.IndexOf(child)
	if i < 0 {
		return false
	}
	l.children = append(l.children[:i], l.children[i+1:]...)
	child.setParent(nil)
	return true
}

// Replace swaps old for replacement at the same position.
func (l *ListNode) Replace(old, replacement Node) bool {
	i := l.IndexOf(old)
	if i < 0 {
		return false
	}
	Detach(replacement)
	// Detaching may have shifted old if replacement was an earlier sibling.
	i = l.IndexOf(old)
	l.children[i] = replacement
	old.setParent(nil)
	replacement.setParent(l)
	return true
}

// TakeChildren moves every child of l, in order, to the end of dst.
func (l *ListNode) TakeChildren(dst *ListNode) {
	moved := l.children
	l.children = nil
	for _, child := range moved {
		child.setParent(nil)
		dst.Add(child)
	}
}

// Detach removes n from its parent, if any.
func Detach(n Node) {
	if p := n.Parent(); p != nil {
		p.Remove(n)
	}
}
