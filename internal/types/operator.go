package types

import "strings"

// Operator names. Names are stable: they appear as markup element names.
const (
	OpContains          = "contains"
	OpDoesNotContain    = "doesNotContain"
	OpEquals            = "equals"
	OpNotEqual          = "notEqual"
	OpStartsWith        = "startsWith"
	OpEndsWith          = "endsWith"
	OpLessThan          = "lessThan"
	OpLessThanEquals    = "lessThanEquals"
	OpGreaterThan       = "greaterThan"
	OpGreaterThanEquals = "greaterThanEquals"
	OpEmpty             = "empty"
)

// slot is replaced by the rendered value literal in an operator's SQL template.
const slot = "{0}"

// Operator represents a comparison relation valid for one value kind.
type Operator struct {
	Name  string
	Label string
	// SQL is appended after the column; it may contain {0} for the value literal.
	SQL      string
	Aliases  []string
	Negating bool
}

// GetName returns the operator name.
func (o *Operator) GetName() string { return o.Name }

// GetAliases returns the operator's input aliases.
func (o *Operator) GetAliases() []string { return o.Aliases }

// PrimaryAlias returns the alias used when rendering user text.
func (o *Operator) PrimaryAlias() string {
	if len(o.Aliases) == 0 {
		return ""
	}
	primary, _, _ := strings.Cut(o.Aliases[0], ",")
	return primary
}

// HasSlot reports whether the SQL template needs a value literal.
func (o *Operator) HasSlot() bool {
	return strings.Contains(o.SQL, slot)
}

// Format fills the SQL template with a rendered literal.
func (o *Operator) Format(literal string) string {
	return strings.ReplaceAll(o.SQL, slot, literal)
}

// IsLike reports whether the operator compiles to a LIKE pattern match.
func (o *Operator) IsLike() bool {
	switch o.Name {
	case OpContains, OpDoesNotContain, OpStartsWith, OpEndsWith:
		return true
	}
	return false
}

// OperatorSet resolves operator aliases for one value kind.
type OperatorSet = AliasedSet[*Operator]

// TextOperators builds the operator set for text values.
// Text literals are rendered already quoted.
func TextOperators() *OperatorSet {
	return NewAliasedSet(
		&Operator{Name: OpContains, Label: "contains", SQL: `LIKE '%{0}%' ESCAPE '\'`, Aliases: []string{":"}},
		&Operator{Name: OpDoesNotContain, Label: "doesn't contain", SQL: `NOT LIKE '%{0}%' ESCAPE '\'`, Aliases: []string{"!:", "!="}, Negating: true},
		&Operator{Name: OpEquals, Label: "is", SQL: "= '{0}'", Aliases: []string{"=="}},
		&Operator{Name: OpNotEqual, Label: "is not", SQL: "!= '{0}'", Aliases: []string{"!=="}, Negating: true},
		&Operator{Name: OpStartsWith, Label: "starts with", SQL: `LIKE '{0}%' ESCAPE '\'`, Aliases: []string{"="}},
		&Operator{Name: OpEndsWith, Label: "ends with", SQL: `LIKE '%{0}' ESCAPE '\'`, Aliases: []string{":="}},
	)
}

// NumericOperators builds the comparison set shared by integer, date and
// file size values. Colon-prefixed aliases accept forms like rating:>=4.
func NumericOperators() *OperatorSet {
	return NewAliasedSet(
		&Operator{Name: OpEquals, Label: "is", SQL: "= {0}", Aliases: []string{"=", ":", "=="}},
		&Operator{Name: OpNotEqual, Label: "is not", SQL: "!= {0}", Aliases: []string{"!=", "!:"}, Negating: true},
		&Operator{Name: OpLessThanEquals, Label: "at most", SQL: "<= {0}", Aliases: []string{"<=", ":<="}},
		&Operator{Name: OpGreaterThanEquals, Label: "at least", SQL: ">= {0}", Aliases: []string{">=", ":>="}},
		&Operator{Name: OpLessThan, Label: "less than", SQL: "< {0}", Aliases: []string{"<", ":<"}},
		&Operator{Name: OpGreaterThan, Label: "more than", SQL: "> {0}", Aliases: []string{">", ":>"}},
	)
}

// DateOperators builds the comparison set for dates. Equality compares
// against the precision window of the parsed date.
func DateOperators() *OperatorSet {
	return NewAliasedSet(
		&Operator{Name: OpEquals, Label: "is", SQL: "BETWEEN {0}", Aliases: []string{"=", ":", "=="}},
		&Operator{Name: OpNotEqual, Label: "is not", SQL: "NOT BETWEEN {0}", Aliases: []string{"!=", "!:"}, Negating: true},
		&Operator{Name: OpLessThanEquals, Label: "before or on", SQL: "<= {0}", Aliases: []string{"<=", ":<="}},
		&Operator{Name: OpGreaterThanEquals, Label: "on or after", SQL: ">= {0}", Aliases: []string{">=", ":>="}},
		&Operator{Name: OpLessThan, Label: "before", SQL: "< {0}", Aliases: []string{"<", ":<"}},
		&Operator{Name: OpGreaterThan, Label: "after", SQL: "> {0}", Aliases: []string{">", ":>"}},
	)
}

// EmptyOperators builds the single-operator set for the empty kind.
func EmptyOperators() *OperatorSet {
	return NewAliasedSet(
		&Operator{Name: OpEmpty, Label: "is empty", SQL: "IS NULL", Aliases: []string{"!", ":!"}},
	)
}
