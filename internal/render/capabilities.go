package render

// Capabilities describes the string and pattern handling of a dialect.
type Capabilities struct {
	Dialect             string // name used in logs and errors
	CaseInsensitiveLike bool   // ILIKE operator
	BackslashEscapes    bool   // backslash escapes inside string literals
	LikeBracketClass    bool   // [ opens a character class in LIKE patterns
}

// ANSI is the baseline: LIKE is case-sensitive per collation, backslash is a
// plain character, and brackets are literal.
var ANSI = Capabilities{Dialect: "ansi"}
