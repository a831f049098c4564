package sudokugen

import "testing"

func TestAddAtMostOneAllowsAtMostOneTrue(t *testing.T) {
	n := 4
	for fixedTrue := -1; fixedTrue < n; fixedTrue++ {
		f := NewBuilder()
		lits := make([]Literal, n)
		for i := range lits {
			lits[i] = f.NewVariable().Positive()
		}
		f.AddAtMostOne(lits)
		for i, l := range lits {
			fixLiteral(f, l, i == fixedTrue)
		}
		_, sat := solveBuilder(t, f)
		if !sat {
			t.Fatalf("fixedTrue=%d: expected SAT (0 or 1 true literals is allowed), got UNSAT", fixedTrue)
		}
	}
}

func TestAddAtMostOneRejectsTwoTrue(t *testing.T) {
	f := NewBuilder()
	lits := make([]Literal, 4)
	for i := range lits {
		lits[i] = f.NewVariable().Positive()
	}
	f.AddAtMostOne(lits)
	fixLiteral(f, lits[0], true)
	fixLiteral(f, lits[1], true)

	if _, sat := solveBuilder(t, f); sat {
		t.Fatal("two literals fixed true under AddAtMostOne: expected UNSAT, got SAT")
	}
}
