// Package scan converts raw query text into a token stream.
package scan

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"
	"unicode"
)

// Kind represents the type of a token.
type Kind int

const (
	// Unknown marks end of input. It is reported once per scanner.
	Unknown Kind = iota
	OpenParen
	CloseParen
	Not
	Or
	And
	Term
)

// String returns a readable token kind name.
func (k Kind) String() string {
	switch k {
	case Unknown:
		return "Unknown"
	case OpenParen:
		return "OpenParen"
	case CloseParen:
		return "CloseParen"
	case Not:
		return "Not"
	case Or:
		return "Or"
	case And:
		return "And"
	case Term:
		return "Term"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is a single lexical unit. Text is set for Term tokens only, with
// double quotes removed.
type Token struct {
	Text string
	Kind Kind
	Line int
}

// Scanner reads tokens from a character stream. A Scanner holds cursor
// state and must not be shared between goroutines.
type Scanner struct {
	in   io.RuneScanner
	line int
	done bool
}

// New creates a scanner over r.
func New(r io.Reader) *Scanner {
	rs, ok := r.(io.RuneScanner)
	if !ok {
		rs = bufio.NewReader(r)
	}
	return &Scanner{in: rs, line: 1}
}

// NewString creates a scanner over s.
func NewString(s string) *Scanner {
	return New(strings.NewReader(s))
}

// Line returns the current line, starting at 1.
func (s *Scanner) Line() int { return s.line }

// Next returns the next token. Once input is exhausted it returns Unknown.
func (s *Scanner) Next() Token {
	if s.done {
		return Token{Kind: Unknown, Line: s.line}
	}

	for {
		r, _, err := s.in.ReadRune()
		if err != nil {
			s.done = true
			return Token{Kind: Unknown, Line: s.line}
		}

		switch {
		case r == '\n':
			s.line++
		case unicode.IsSpace(r):
		case r == '(':
			return Token{Kind: OpenParen, Line: s.line}
		case r == ')':
			return Token{Kind: CloseParen, Line: s.line}
		case r == '-':
			return Token{Kind: Not, Line: s.line}
		case r == '|' || r == ',':
			return Token{Kind: Or, Line: s.line}
		default:
			_ = s.in.UnreadRune() //nolint:errcheck // a rune was just read
			return s.scanTerm()
		}
	}
}

// Tokens yields tokens lazily up to and including the Unknown sentinel.
func (s *Scanner) Tokens() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok := s.Next()
			if !yield(tok) || tok.Kind == Unknown {
				return
			}
		}
	}
}

// scanTerm accumulates a term until a termination character. Double quotes
// toggle a mode in which termination characters are ordinary text. Runes
// that cannot appear in an XML document are dropped.
func (s *Scanner) scanTerm() Token {
	line := s.line
	var sb strings.Builder
	quoted, sawQuote := false, false

	for {
		r, _, err := s.in.ReadRune()
		if err != nil {
			break
		}
		if r == '"' {
			quoted = !quoted
			sawQuote = true
			continue
		}
		if !quoted && IsTerminator(r) {
			_ = s.in.UnreadRune() //nolint:errcheck // a rune was just read
			break
		}
		if !isDocumentRune(r) {
			continue
		}
		if r == '\n' {
			s.line++
		}
		sb.WriteRune(r)
	}

	text := sb.String()
	if !sawQuote {
		switch text {
		case "or", "OR":
			return Token{Kind: Or, Line: line}
		case "NOT":
			return Token{Kind: Not, Line: line}
		case "AND":
			return Token{Kind: And, Line: line}
		}
	}
	return Token{Kind: Term, Text: text, Line: line}
}

// IsTerminator reports whether r ends an unquoted term.
func IsTerminator(r rune) bool {
	switch r {
	case '(', ')', '|', ',':
		return true
	}
	return unicode.IsSpace(r)
}

// isDocumentRune reports whether r is a legal XML character.
func isDocumentRune(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return true
	case r < 0x20:
		return false
	case r >= 0xD800 && r <= 0xDFFF:
		return false
	case r == 0xFFFE || r == 0xFFFF:
		return false
	}
	return r <= unicode.MaxRune
}

// IsKeyword reports whether an unquoted term would scan as a keyword.
func IsKeyword(text string) bool {
	switch text {
	case "or", "OR", "NOT", "AND":
		return true
	}
	return false
}
