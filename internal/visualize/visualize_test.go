package visualize

import (
	"strings"
	"testing"

	"github.com/mvanbem/sudoku-generator"
)

func TestWriteRendersOnlyGivens(t *testing.T) {
	vars := make(map[sudokugen.VariableKind]sudokugen.Variable)
	assignment := make(sudokugen.Assignment)

	nextIndex := int32(1)
	newVar := func() sudokugen.Variable {
		v := sudokugen.VariableFromIndex(nextIndex)
		nextIndex++
		return v
	}
	set := func(kind sudokugen.VariableKind, value bool) {
		v := newVar()
		vars[kind] = v
		assignment[v] = value
	}

	row, col := sudokugen.NewRow(1), sudokugen.NewCol(1)
	digit := sudokugen.NewDigit(5)
	set(sudokugen.Placed(row, col, digit), true)
	set(sudokugen.Given(row, col), true)

	// Every other cell: not given, and not placed with any digit (it's
	// fine for Placed/Given to simply be absent from vars; Write treats a
	// missing entry the same as assigned-false).

	var out strings.Builder
	if err := Write(&out, vars, assignment); err != nil {
		t.Fatal(err)
	}

	text := out.String()
	if !strings.Contains(text, "5") {
		t.Errorf("output does not contain the given digit 5:\n%s", text)
	}
	if strings.Count(text, "+-------+-------+-------+") != 4 {
		t.Errorf("expected 4 border lines, got:\n%s", text)
	}
}

func TestWriteSolvedRendersEveryPlacedCell(t *testing.T) {
	vars := make(map[sudokugen.VariableKind]sudokugen.Variable)
	assignment := make(sudokugen.Assignment)
	nextIndex := int32(1)
	for _, cell := range sudokugen.Cells() {
		digit := sudokugen.NewDigit(uint8(cell.Col.Index() + 1))
		v := sudokugen.VariableFromIndex(nextIndex)
		nextIndex++
		vars[sudokugen.Placed(cell.Row, cell.Col, digit)] = v
		assignment[v] = true
	}

	var out strings.Builder
	if err := WriteSolved(&out, vars, assignment); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), ".") {
		t.Errorf("WriteSolved left a cell blank:\n%s", out.String())
	}
}
