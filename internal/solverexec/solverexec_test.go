package solverexec

import (
	"strings"
	"testing"

	"github.com/mvanbem/sudoku-generator"
)

func TestParseOutputSatisfiable(t *testing.T) {
	in := `c some solver banner
s SATISFIABLE
v 1 -2 3 0
`
	solution, err := parseOutput(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if !solution.IsSatisfiable() {
		t.Fatal("expected SAT")
	}
	assignment := solution.Assignment()
	if !assignment[sudokugen.VariableFromIndex(1)] {
		t.Error("var 1 should be true")
	}
	if assignment[sudokugen.VariableFromIndex(2)] {
		t.Error("var 2 should be false")
	}
	if !assignment[sudokugen.VariableFromIndex(3)] {
		t.Error("var 3 should be true")
	}
}

func TestParseOutputUnsatisfiable(t *testing.T) {
	solution, err := parseOutput(strings.NewReader("s UNSATISFIABLE\n"))
	if err != nil {
		t.Fatal(err)
	}
	if solution.IsSatisfiable() {
		t.Fatal("expected UNSAT")
	}
}

func TestParseOutputMultiLineVariables(t *testing.T) {
	in := `s SATISFIABLE
v 1 2
v -3 0
`
	solution, err := parseOutput(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	assignment := solution.Assignment()
	if !assignment[sudokugen.VariableFromIndex(1)] || !assignment[sudokugen.VariableFromIndex(2)] {
		t.Error("vars 1 and 2 should be true")
	}
	if assignment[sudokugen.VariableFromIndex(3)] {
		t.Error("var 3 should be false")
	}
}

func TestParseOutputRejectsMultipleSolutionLines(t *testing.T) {
	in := "s SATISFIABLE\ns UNSATISFIABLE\n"
	if _, err := parseOutput(strings.NewReader(in)); err == nil {
		t.Fatal("expected an error for multiple solution lines")
	}
}

func TestParseOutputRejectsVariablesWithoutSolutionLine(t *testing.T) {
	if _, err := parseOutput(strings.NewReader("v 1 2 0\n")); err == nil {
		t.Fatal("expected an error for variable assignments before a solution line")
	}
}

func TestParseOutputRejectsNoSolutionLine(t *testing.T) {
	if _, err := parseOutput(strings.NewReader("c just a comment\n")); err == nil {
		t.Fatal("expected an error when no solution line appears")
	}
}
