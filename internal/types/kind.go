package types

import "fmt"

// Kind identifies a value kind. The set is closed.
type Kind int

const (
	KindText Kind = iota
	KindInteger
	KindDate
	KindFileSize
	KindEmpty
)

// Kinds lists every value kind in declaration order.
var Kinds = []Kind{KindText, KindInteger, KindDate, KindFileSize, KindEmpty}

// String returns the kind's markup element name.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInteger:
		return "int"
	case KindDate:
		return "date"
	case KindFileSize:
		return "fileSize"
	case KindEmpty:
		return "empty"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind resolves a kind from its element name.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown value kind %q", name)
}

// Operators builds the operator set for the kind.
func (k Kind) Operators() *OperatorSet {
	switch k {
	case KindText:
		return TextOperators()
	case KindDate:
		return DateOperators()
	case KindInteger, KindFileSize:
		return NumericOperators()
	default:
		return EmptyOperators()
	}
}
