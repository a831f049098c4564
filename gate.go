package sudokugen

// The methods in this file add Tseitin-style clausal encodings of Boolean
// gates to a Builder. Each one constrains an *output* literal to equal a
// Boolean function of its inputs; none of them assert the output
// unilaterally. A caller that wants a gate's output to hold must add a unit
// clause on that literal separately.

// AddEquivalence constrains a and b to have the same truth value:
// (¬a ∨ b) ∧ (a ∨ ¬b).
func (f *Builder) AddEquivalence(a, b Literal) {
	f.AddBinaryClause(a.Negate(), b)
	f.AddBinaryClause(a, b.Negate())
}

// AddOr constrains output to equal the disjunction of inputs:
// out ↔ (i1 ∨ ... ∨ iN).
func (f *Builder) AddOr(output Literal, inputs []Literal) {
	wide := make([]Literal, 0, len(inputs)+1)
	wide = append(wide, output.Negate())
	for _, input := range inputs {
		f.AddBinaryClause(input.Negate(), output)
		wide = append(wide, input)
	}
	f.AddClause(wide)
}

// AddAnd constrains output to equal the conjunction of inputs:
// out ↔ (i1 ∧ ... ∧ iN).
func (f *Builder) AddAnd(output Literal, inputs []Literal) {
	wide := make([]Literal, 0, len(inputs)+1)
	for _, input := range inputs {
		f.AddBinaryClause(output.Negate(), input)
		wide = append(wide, input.Negate())
	}
	wide = append(wide, output)
	f.AddClause(wide)
}

// AddXor constrains output to equal the exclusive-or of a and b:
// out ↔ (a ⊕ b).
func (f *Builder) AddXor(output, a, b Literal) {
	f.AddClause([]Literal{a, b, output.Negate()})
	f.AddClause([]Literal{a, b.Negate(), output})
	f.AddClause([]Literal{a.Negate(), b, output})
	f.AddClause([]Literal{a.Negate(), b.Negate(), output.Negate()})
}
