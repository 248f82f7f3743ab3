package searchql

import "github.com/zoobzio/searchql/internal/types"

// Operator is a comparison relation valid for one value kind.
type Operator = types.Operator

// Re-export operator names for public API.
const (
	OpContains          = types.OpContains
	OpDoesNotContain    = types.OpDoesNotContain
	OpEquals            = types.OpEquals
	OpNotEqual          = types.OpNotEqual
	OpStartsWith        = types.OpStartsWith
	OpEndsWith          = types.OpEndsWith
	OpLessThan          = types.OpLessThan
	OpLessThanEquals    = types.OpLessThanEquals
	OpGreaterThan       = types.OpGreaterThan
	OpGreaterThanEquals = types.OpGreaterThanEquals
	OpEmpty             = types.OpEmpty
)
