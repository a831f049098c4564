// Package ginisolve solves a formula in-process using gini, a CDCL SAT
// solver library, instead of shelling out to an external binary. It trades
// the process-supervision complexity of internal/solverexec for a direct
// function call, at the cost of linking a solver into the generator binary.
package ginisolve

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/mvanbem/sudoku-generator"
)

// Solve loads f's clauses into a fresh gini instance and solves it.
func Solve(f *sudokugen.Builder) (sudokugen.Solution, error) {
	g := gini.New()

	// gini allocates its own literals; map our Variable indices to gini's
	// 1:1 by requesting g.Lit() once per variable, in order.
	lits := make([]z.Lit, f.VariableCount()+1) // 1-indexed, like our Variable
	for i := 1; i <= f.VariableCount(); i++ {
		lits[i] = g.Lit()
	}
	toGini := func(l sudokugen.Literal) z.Lit {
		gl := lits[l.Variable().Index()]
		if !l.IsPositive() {
			gl = gl.Not()
		}
		return gl
	}

	f.VisitClauses(func(clause []sudokugen.Literal) {
		for _, l := range clause {
			g.Add(toGini(l))
		}
		g.Add(0)
	})

	switch g.Solve() {
	case 1: // gini.Sat
		assignment := make(sudokugen.Assignment, f.VariableCount())
		for i := 1; i <= f.VariableCount(); i++ {
			v := sudokugen.VariableFromIndex(int32(i))
			assignment[v] = g.Value(lits[i])
		}
		return sudokugen.Satisfiable(assignment), nil
	case -1: // gini.Unsat
		return sudokugen.Unsatisfiable, nil
	default: // 0, gini.Unknown: shouldn't happen without a resource limit set
		return sudokugen.Solution{}, errUnknown
	}
}

var errUnknown = ginisolveError("gini returned an unknown result without a resource limit set")

type ginisolveError string

func (e ginisolveError) Error() string { return string(e) }
