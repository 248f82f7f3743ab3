package types

import "strings"

// Field is a named, aliasable search dimension supplied by the host.
// Fields are immutable once a catalog is built.
type Field struct {
	Name  string
	Label string
	// Column is the SQL expression the field compares against.
	Column  string
	Aliases []string
	// Default marks fields searched by terms that name no field.
	Default bool
	// Kinds lists candidate value kinds in the order the parser tries them.
	Kinds []Kind
}

// GetName returns the field name.
func (f *Field) GetName() string { return f.Name }

// GetAliases returns the field's input aliases.
func (f *Field) GetAliases() []string { return f.Aliases }

// PrimaryAlias returns the alias used when rendering user text.
func (f *Field) PrimaryAlias() string {
	for _, alias := range f.Aliases {
		first, _, _ := strings.Cut(alias, ",")
		if first != "" && !strings.Contains(first, " ") {
			return first
		}
	}
	return f.Name
}

// Kind returns the field's primary value kind.
func (f *Field) Kind() Kind {
	if len(f.Kinds) == 0 {
		return KindText
	}
	return f.Kinds[0]
}

// Accepts reports whether the field permits values of the kind.
func (f *Field) Accepts(kind Kind) bool {
	for _, k := range f.Kinds {
		if k == kind {
			return true
		}
	}
	return len(f.Kinds) == 0 && kind == KindText
}

// FieldSet resolves field aliases.
type FieldSet = AliasedSet[*Field]

// Order is a named sort expression supplied by the host.
type Order struct {
	Name    string
	Label   string
	SQL     string
	Aliases []string
}

// GetName returns the order name.
func (o *Order) GetName() string { return o.Name }

// GetAliases returns the order's input aliases.
func (o *Order) GetAliases() []string { return o.Aliases }

// OrderSet resolves order aliases.
type OrderSet = AliasedSet[*Order]
