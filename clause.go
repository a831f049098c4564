package sudokugen

// unitClause and binaryClause are stored unboxed (no backing slice header)
// so that the common cases need no extra heap allocation beyond the bucket
// slice itself.
type unitClause struct {
	a Literal
}

type binaryClause struct {
	a, b Literal
}

// Builder accumulates variables and clauses for a single CNF formula. It is
// append-only: clauses are never mutated or removed once added. Clauses are
// bucketed by width (unit, binary, wide) purely for compact storage and
// emission locality; semantically the partition is invisible to callers.
//
// The zero value is not usable; construct one with NewBuilder.
type Builder struct {
	highestIndex int32

	unit   []unitClause
	binary []binaryClause
	wide   [][]Literal
}

// NewBuilder returns an empty Builder with no variables or clauses.
func NewBuilder() *Builder {
	return &Builder{}
}

// NewVariable allocates and returns a fresh Variable. Allocation is
// monotonic: the returned variable's index is always one greater than the
// previous highest allocated index.
func (f *Builder) NewVariable() Variable {
	f.highestIndex++
	return variableFromIndex(f.highestIndex)
}

// AddClause appends a clause, dispatching by width to the appropriate
// bucket. literals must be non-empty; an empty clause is a caller bug (a
// contradiction that should never arise from a correct encoding) and this
// panics rather than silently accepting an unsatisfiable formula.
func (f *Builder) AddClause(literals []Literal) {
	switch len(literals) {
	case 0:
		panic("sudokugen: AddClause called with no literals")
	case 1:
		f.AddUnitClause(literals[0])
	case 2:
		f.AddBinaryClause(literals[0], literals[1])
	default:
		f.wide = append(f.wide, literals)
	}
}

// AddUnitClause appends a single-literal clause.
func (f *Builder) AddUnitClause(l Literal) {
	f.unit = append(f.unit, unitClause{a: l})
}

// AddBinaryClause appends a two-literal clause.
func (f *Builder) AddBinaryClause(a, b Literal) {
	f.binary = append(f.binary, binaryClause{a: a, b: b})
}

// VariableCount returns the number of variables allocated so far, which is
// also the highest variable index in use.
func (f *Builder) VariableCount() int {
	return int(f.highestIndex)
}

// ClauseCount returns the total number of clauses across all buckets.
func (f *Builder) ClauseCount() int {
	return len(f.unit) + len(f.binary) + len(f.wide)
}

// VisitClauses calls visit once per clause, in bucket order (unit, binary,
// wide) and append order within a bucket, the same order WriteDIMACS emits
// them in. The slice passed to visit is only valid for the duration of that
// call; in-process solver adapters that need to retain it must copy it.
func (f *Builder) VisitClauses(visit func(clause []Literal)) {
	for _, c := range f.unit {
		visit([]Literal{c.a})
	}
	for _, c := range f.binary {
		visit([]Literal{c.a, c.b})
	}
	for _, c := range f.wide {
		visit(c)
	}
}
