package types

// Registry bundles the read-only registries consulted by parsing and
// rendering. It is built once and shared by concurrent callers.
type Registry struct {
	Fields    *FieldSet
	Orders    *OrderSet
	operators map[Kind]*OperatorSet
	contains  *Operator
}

// NewRegistry builds operator sets for every kind and indexes the host's
// fields and orders.
func NewRegistry(fields []*Field, orders []*Order) *Registry {
	r := &Registry{
		Fields:    NewAliasedSet(fields...),
		Orders:    NewAliasedSet(orders...),
		operators: make(map[Kind]*OperatorSet, len(Kinds)),
	}
	for _, k := range Kinds {
		r.operators[k] = k.Operators()
	}
	r.contains, _ = r.operators[KindText].Get(OpContains)
	return r
}

// Operators returns the operator set for a kind.
func (r *Registry) Operators(kind Kind) *OperatorSet {
	return r.operators[kind]
}

// Contains returns the implicit operator of full-text terms.
func (r *Registry) Contains() *Operator {
	return r.contains
}

// DefaultFields returns the fields searched by full-text terms.
func (r *Registry) DefaultFields() []*Field {
	var out []*Field
	for _, f := range r.Fields.All() {
		if f.Default {
			out = append(out, f)
		}
	}
	return out
}
