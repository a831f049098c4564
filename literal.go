package sudokugen

import "math"

// Literal is a signed, nonzero reference to a Variable: positive for the
// variable itself, negative for its negation. Literals are value types, the
// same way DIMACS represents them as signed integers.
type Literal struct {
	index int32
}

// LiteralFromIndex constructs a Literal from a signed, nonzero DIMACS-style
// index. It panics if index is zero or math.MinInt32, the one value whose
// negation can't be represented in int32.
func LiteralFromIndex(index int32) Literal {
	if index == 0 {
		panic("sudokugen: literal index must not be zero")
	}
	if index == math.MinInt32 {
		panic("sudokugen: literal index must not be math.MinInt32 (negation would overflow)")
	}
	return Literal{index: index}
}

// Index returns the literal's signed DIMACS index.
func (l Literal) Index() int32 {
	return l.index
}

// Negate returns the literal's negation.
func (l Literal) Negate() Literal {
	return Literal{index: -l.index}
}

// IsPositive reports whether l asserts its variable rather than its negation.
func (l Literal) IsPositive() bool {
	return l.index > 0
}

// Variable returns the Variable underlying l, discarding polarity.
func (l Literal) Variable() Variable {
	if l.index < 0 {
		return variableFromIndex(-l.index)
	}
	return variableFromIndex(l.index)
}
