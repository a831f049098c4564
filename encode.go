package sudokugen

import "io"

// Inferences selects which human-style inference rules the generated puzzle
// is allowed to require.
type Inferences struct {
	NakedSingle  bool
	HiddenSingle bool
}

// Parameters configures BuildFormula.
type Parameters struct {
	// Givens is the number of revealed clues the puzzle must have. Only its
	// low 7 bits are significant (range 0..82); see DESIGN.md for why this
	// truncation is kept rather than rejected.
	Givens int

	// InferenceLevels bounds how many rounds of inference the puzzle may
	// require to solve; it must be at least 1.
	InferenceLevels int

	AllowedInferences Inferences
}

// BuildFormula assembles the CNF formula for params, streams it to w in
// DIMACS form, and returns the map from named Sudoku propositions to the
// variables that represent them, so a caller can decode a solver's
// assignment back into a puzzle and its solution.
//
// Building the formula is a pure construction with no failure modes of its
// own beyond the programmer-contract panics documented on Parameters and
// below; only I/O failures while writing w are returned as errors.
func BuildFormula(w io.Writer, params Parameters) (map[VariableKind]Variable, error) {
	f := NewTaggedBuilder[VariableKind]()
	buildFormula(f, params)
	if err := f.WriteDIMACS(w); err != nil {
		return nil, err
	}
	return f.TaggedVariables(), nil
}

// BuildFormulaInto builds params' clauses into an already-constructed
// TaggedBuilder and returns the tag-to-variable map, the same one
// BuildFormula would return. It exists for callers (in-process solver
// adapters) that need direct access to the Builder rather than a DIMACS
// byte stream, so they aren't forced to round-trip the formula through
// ParseDIMACS just to get back what they already had.
func BuildFormulaInto(f *TaggedBuilder[VariableKind], params Parameters) map[VariableKind]Variable {
	buildFormula(f, params)
	return f.TaggedVariables()
}

func buildFormula(f *TaggedBuilder[VariableKind], params Parameters) {
	if params.InferenceLevels < 1 {
		panic("sudokugen: InferenceLevels must be at least 1")
	}

	placedLiteral := func(cell Cell, digit Digit) Literal {
		return f.GetVariable(Placed(cell.Row, cell.Col, digit)).Positive()
	}

	// (a) One digit per cell.
	for _, cell := range Cells() {
		literals := make([]Literal, 0, 9)
		for _, digit := range Digits() {
			literals = append(literals, placedLiteral(cell, digit))
		}
		f.AddAtMostOne(literals)
		f.AddClause(literals)
	}

	// (a) Each digit appears once in a row.
	for _, row := range Rows() {
		for _, digit := range Digits() {
			literals := make([]Literal, 0, 9)
			for _, col := range Cols() {
				literals = append(literals, placedLiteral(Cell{Row: row, Col: col}, digit))
			}
			f.AddAtMostOne(literals)
			f.AddClause(literals)
		}
	}

	// (a) Each digit appears once in a column.
	for _, col := range Cols() {
		for _, digit := range Digits() {
			literals := make([]Literal, 0, 9)
			for _, row := range Rows() {
				literals = append(literals, placedLiteral(Cell{Row: row, Col: col}, digit))
			}
			f.AddAtMostOne(literals)
			f.AddClause(literals)
		}
	}

	// (a) Each digit appears once in a box.
	for _, box := range Boxes() {
		for _, digit := range Digits() {
			literals := make([]Literal, 0, 9)
			for _, cell := range box.Cells() {
				literals = append(literals, placedLiteral(cell, digit))
			}
			f.AddAtMostOne(literals)
			f.AddClause(literals)
		}
	}

	// (b) Count the given digits.
	givenBits := make([]BitVector, 0, 81)
	for _, cell := range Cells() {
		givenLiteral := f.GetVariable(Given(cell.Row, cell.Col)).Positive()
		givenBits = append(givenBits, BitVectorFromLiteral(givenLiteral))
	}
	givenCount := f.AddBitVectorTree(givenBits)
	if givenCount.Len() != 7 {
		panic("sudokugen: unreachable: given-count bit vector over 81 cells must be exactly 7 bits wide")
	}
	for bit := 0; bit < 7; bit++ {
		literal := givenCount.Bits()[bit]
		if (params.Givens>>bit)&1 == 0 {
			literal = literal.Negate()
		}
		f.AddUnitClause(literal)
	}

	// (c) At level 0, the given placements are forced and nothing is eliminated.
	for _, cell := range Cells() {
		for _, digit := range Digits() {
			placed := placedLiteral(cell, digit)
			given := f.GetVariable(Given(cell.Row, cell.Col)).Positive()
			forced := f.GetVariable(Forced(cell.Row, cell.Col, digit, 0)).Positive()
			f.AddAnd(forced, []Literal{placed, given})

			eliminated := f.GetVariable(Eliminated(cell.Row, cell.Col, digit, 0)).Positive()
			f.AddUnitClause(eliminated.Negate())
		}
	}

	// (d) Model bounded iteration of forced and eliminated placements.
	for _, cell := range Cells() {
		for _, digit := range Digits() {
			for level := 1; level < params.InferenceLevels; level++ {
				prevLevel := level - 1

				var forcing, eliminating []Literal

				// Persistence: forced/eliminated propagate from the previous level.
				forcing = append(forcing, f.GetVariable(Forced(cell.Row, cell.Col, digit, prevLevel)).Positive())
				eliminating = append(eliminating, f.GetVariable(Eliminated(cell.Row, cell.Col, digit, prevLevel)).Positive())

				// RULE: NAKED SINGLE.
				//
				// This placement is forced if every other digit is eliminated
				// from its cell on the previous level.
				if params.AllowedInferences.NakedSingle {
					var literals []Literal
					for _, otherDigit := range Digits() {
						if digit != otherDigit {
							literals = append(literals, f.GetVariable(Eliminated(cell.Row, cell.Col, otherDigit, prevLevel)).Positive())
						}
					}
					justification := f.NewVariable().Positive()
					f.AddAnd(justification, literals)
					forcing = append(forcing, justification)
				}

				// RULE: HIDDEN SINGLE.
				//
				// This placement is forced if, within one of its houses, every
				// other placement for this digit is eliminated.
				if params.AllowedInferences.HiddenSingle {
					var rowLiterals []Literal
					for _, otherCol := range Cols() {
						if cell.Col != otherCol {
							rowLiterals = append(rowLiterals, f.GetVariable(Eliminated(cell.Row, otherCol, digit, prevLevel)).Positive())
						}
					}
					rowJustification := f.NewVariable().Positive()
					f.AddAnd(rowJustification, rowLiterals)
					forcing = append(forcing, rowJustification)

					var colLiterals []Literal
					for _, otherRow := range Rows() {
						if cell.Row != otherRow {
							colLiterals = append(colLiterals, f.GetVariable(Eliminated(otherRow, cell.Col, digit, prevLevel)).Positive())
						}
					}
					colJustification := f.NewVariable().Positive()
					f.AddAnd(colJustification, colLiterals)
					forcing = append(forcing, colJustification)

					var boxLiterals []Literal
					for _, otherCell := range cell.Box().Cells() {
						if cell != otherCell {
							boxLiterals = append(boxLiterals, f.GetVariable(Eliminated(otherCell.Row, otherCell.Col, digit, prevLevel)).Positive())
						}
					}
					boxJustification := f.NewVariable().Positive()
					f.AddAnd(boxJustification, boxLiterals)
					forcing = append(forcing, boxJustification)
				}

				// This placement is eliminated by any other forced placement in
				// its cell on the previous level.
				for _, otherDigit := range Digits() {
					if digit != otherDigit {
						eliminating = append(eliminating, f.GetVariable(Forced(cell.Row, cell.Col, otherDigit, prevLevel)).Positive())
					}
				}

				// This placement is eliminated by any other forced placement it
				// sees for the same digit on the previous level.
				for _, otherCell := range Cells() {
					if cell.SeesOther(otherCell) {
						eliminating = append(eliminating, f.GetVariable(Forced(otherCell.Row, otherCell.Col, digit, prevLevel)).Positive())
					}
				}

				forced := f.GetVariable(Forced(cell.Row, cell.Col, digit, level)).Positive()
				f.AddOr(forced, forcing)

				eliminated := f.GetVariable(Eliminated(cell.Row, cell.Col, digit, level)).Positive()
				f.AddOr(eliminated, eliminating)
			}
		}
	}

	// (e) The last iteration of forced and eliminated placements must match
	// the actual solution.
	lastLevel := params.InferenceLevels - 1
	for _, cell := range Cells() {
		for _, digit := range Digits() {
			forced := f.GetVariable(Forced(cell.Row, cell.Col, digit, lastLevel)).Positive()
			eliminated := f.GetVariable(Eliminated(cell.Row, cell.Col, digit, lastLevel)).Positive()
			placed := placedLiteral(cell, digit)
			f.AddEquivalence(forced, placed)
			f.AddEquivalence(eliminated, placed.Negate())
		}
	}
}
