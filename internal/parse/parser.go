// Package parse builds query trees from scanned tokens.
//
// The parser is a stack machine with a single cursor, the list node new
// children are added to. Consecutive terms get an implicit AND between them.
// AND and OR fold left to right: a combinator different from the cursor's
// lifts the cursor into a new list of that combinator, so
//
//	a b or c   =>  Or[And[a, b], c]
//	a or b c   =>  And[Or[a, b], c]
//
// NOT binds to the single node pushed after it and is closed before the next
// node or combinator. Lists opened by "(" are kept on a stack so ")" always
// leaves the innermost group, whatever lists the folding created inside it.
package parse

import (
	"fmt"

	"github.com/zoobzio/searchql/internal/scan"
	"github.com/zoobzio/searchql/internal/types"
)

// Diagnostic describes a fragment of input the parser dropped or
// reinterpreted. Parsing never fails; diagnostics are informational.
type Diagnostic struct {
	Term   string
	Reason string
	Line   int
}

// String formats the diagnostic for logs.
func (d Diagnostic) String() string {
	if d.Term == "" {
		return fmt.Sprintf("line %d: %s", d.Line, d.Reason)
	}
	return fmt.Sprintf("line %d: %q: %s", d.Line, d.Term, d.Reason)
}

// Parser consumes tokens and builds a tree. A Parser holds mutable cursor
// state; use one per parse.
type Parser struct {
	registry *types.Registry
	root     *types.ListNode
	current  *types.ListNode
	groups   []*types.ListNode
	report   func(Diagnostic)
	line     int
}

// New creates a parser reading the given registries.
func New(registry *types.Registry) *Parser {
	return &Parser{registry: registry}
}

// OnDiagnostic installs a callback receiving diagnostics. The default
// discards them.
func (p *Parser) OnDiagnostic(fn func(Diagnostic)) *Parser {
	p.report = fn
	return p
}

// Parse consumes every token from s and returns the trimmed tree, or nil
// when nothing survives.
func (p *Parser) Parse(s *scan.Scanner) types.Node {
	p.root = types.NewList(types.And)
	p.current = p.root
	p.groups = p.groups[:0]

	lastWasTerm := false
	for tok := range s.Tokens() {
		if tok.Kind == scan.Unknown {
			break
		}
		p.line = tok.Line
		if tok.Kind == scan.Term && lastWasTerm {
			p.apply(scan.Token{Kind: scan.And, Line: tok.Line})
		}
		p.apply(tok)
		lastWasTerm = tok.Kind == scan.Term
	}

	return types.Trim(p.root)
}

func (p *Parser) apply(tok scan.Token) {
	switch tok.Kind {
	case scan.OpenParen:
		group := types.NewList(types.And)
		p.push(group)
		p.groups = append(p.groups, group)
	case scan.CloseParen:
		p.closeGroup()
	case scan.Not:
		p.push(types.NewList(types.Not))
	case scan.And:
		p.fold(types.And)
	case scan.Or:
		p.fold(types.Or)
	case scan.Term:
		p.push(p.term(tok.Text))
	}
}

// push adds n under the cursor. Lists become the new cursor.
func (p *Parser) push(n types.Node) {
	p.closeNots()
	p.current.Add(n)
	if list, ok := n.(*types.ListNode); ok {
		p.current = list
	}
}

// closeNots moves the cursor out of every NOT that already holds its operand.
func (p *Parser) closeNots() {
	for p.current.Combinator == types.Not && p.current.Len() == 1 {
		parent := p.current.Parent()
		if parent == nil {
			return
		}
		p.current = parent
	}
}

// closeGroup moves the cursor to the parent of the innermost open group.
func (p *Parser) closeGroup() {
	n := len(p.groups)
	if n == 0 {
		p.diagnose("", "unmatched )")
		return
	}
	group := p.groups[n-1]
	p.groups = p.groups[:n-1]
	if parent := group.Parent(); parent != nil {
		p.current = parent
	}
}

// fold lifts the cursor into a list of the incoming combinator. A filled
// NOT is closed first, so "a or -b or c" stays one OR list.
func (p *Parser) fold(c types.Combinator) {
	p.closeNots()
	cur := p.current
	if cur.Combinator == c {
		return
	}

	parent := cur.Parent()
	at := -1
	if parent != nil {
		at = parent.IndexOf(cur)
		parent.Remove(cur)
	}

	list := types.NewList(c)
	if cur.Combinator == types.Not || cur.Len() > 1 {
		list.Add(cur)
	} else {
		cur.TakeChildren(list)
	}

	if parent != nil {
		parent.Insert(at, list)
	} else {
		p.root = list
	}
	// The new list takes the lifted group's place.
	if n := len(p.groups); n > 0 && p.groups[n-1] == cur {
		p.groups[n-1] = list
	}
	p.current = list
}

// term resolves a raw term. A matching field alias is tried with each of the
// field's kinds, taking the longest operator alias and parsing the rest as a
// value; the first non-empty value wins. Otherwise the whole text becomes a
// full-text contains term.
func (p *Parser) term(text string) *types.TermNode {
	if field, rest, ok := p.registry.Fields.Match(text); ok {
		kinds := field.Kinds
		if len(kinds) == 0 {
			kinds = []types.Kind{types.KindText}
		}

		for _, kind := range kinds {
			op, valueText, found := p.registry.Operators(kind).Match(rest)
			if !found {
				continue
			}
			if value := types.ParseUserQuery(kind, valueText); !value.IsEmpty() {
				return types.NewTerm(field, op, value)
			}
		}
		p.diagnose(text, fmt.Sprintf("no operator and value for field %q, searching as text", field.Name))
	}

	value := types.TextValue(text)
	if value.IsEmpty() {
		p.diagnose(text, "empty term dropped")
	}
	return types.NewTerm(nil, p.registry.Contains(), value)
}

func (p *Parser) diagnose(term, reason string) {
	if p.report != nil {
		p.report(Diagnostic{Line: p.line, Term: term, Reason: reason})
	}
}
