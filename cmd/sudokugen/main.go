// Command sudokugen generates Sudoku puzzles by reduction to a SAT formula:
// it builds a formula whose satisfying assignments correspond to puzzles
// solvable within a chosen number of rounds of naked-single and
// hidden-single inference, hands that formula to a solver, and prints the
// resulting puzzle.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvanbem/sudoku-generator"
	"github.com/mvanbem/sudoku-generator/internal/ginisolve"
	"github.com/mvanbem/sudoku-generator/internal/solverexec"
	"github.com/mvanbem/sudoku-generator/internal/visualize"
)

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	givens          int
	inferenceLevels int
	nakedSingle     bool
	hiddenSingle    bool
	timeout         time.Duration
	printFormula    bool
	solverName      string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "sudokugen",
		Short: "Generate Sudoku puzzles by reduction to SAT",
		Long: `sudokugen generates Sudoku puzzles by encoding "this puzzle has exactly
these givens, and is solvable within N rounds of naked-single and
hidden-single inference" as a Boolean satisfiability problem, then handing
that formula to a SAT solver and printing whatever puzzle it finds.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.givens, "givens", 40, "require this many givens")
	flags.IntVar(&opts.inferenceLevels, "inference-levels", 25, "instantiate the inference circuit to this depth")
	flags.BoolVar(&opts.nakedSingle, "naked-single", true, "allow the puzzle to require naked-single inference")
	flags.BoolVar(&opts.hiddenSingle, "hidden-single", true, "allow the puzzle to require hidden-single inference")
	flags.DurationVar(&opts.timeout, "timeout", 0, "give up searching after this long; exec solvers only, gini ignores it (default unbounded)")
	flags.BoolVar(&opts.printFormula, "print-formula", false, "print the SAT formula in DIMACS form and exit")
	flags.StringVar(&opts.solverName, "solver", "gini", `which solver to use: "gini", or "exec:<path>" (default kissat on PATH)`)

	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	if opts.inferenceLevels < 1 {
		return fmt.Errorf("--inference-levels must be at least 1")
	}

	params := sudokugen.Parameters{
		Givens:          opts.givens,
		InferenceLevels: opts.inferenceLevels,
		AllowedInferences: sudokugen.Inferences{
			NakedSingle:  opts.nakedSingle,
			HiddenSingle: opts.hiddenSingle,
		},
	}

	if opts.printFormula {
		_, err := sudokugen.BuildFormula(cmd.OutOrStdout(), params)
		return err
	}

	ctx := context.Background()
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	f := sudokugen.NewTaggedBuilder[sudokugen.VariableKind]()
	vars, solution, err := solveParams(ctx, f, params, opts)
	if err != nil {
		return err
	}

	if !solution.IsSatisfiable() {
		fmt.Fprintln(cmd.OutOrStdout(), "UNSATISFIABLE")
		os.Exit(1)
	}

	return visualize.Write(cmd.OutOrStdout(), vars, solution.Assignment())
}

func solveParams(
	ctx context.Context,
	f *sudokugen.TaggedBuilder[sudokugen.VariableKind],
	params sudokugen.Parameters,
	opts options,
) (map[sudokugen.VariableKind]sudokugen.Variable, sudokugen.Solution, error) {
	vars := sudokugen.BuildFormulaInto(f, params)

	solution, err := solveWith(ctx, f.Builder, opts.solverName)
	if err != nil {
		return nil, sudokugen.Solution{}, err
	}
	return vars, solution, nil
}

func solveWith(ctx context.Context, f *sudokugen.Builder, solverName string) (sudokugen.Solution, error) {
	switch {
	case solverName == "gini":
		return ginisolve.Solve(f)

	case strings.HasPrefix(solverName, "exec:"):
		path := strings.TrimPrefix(solverName, "exec:")
		return solverexec.Solve(ctx, f, solverexec.Config{Path: path})

	case solverName == "exec":
		return solverexec.Solve(ctx, f, solverexec.Config{})

	default:
		return sudokugen.Solution{}, fmt.Errorf("unknown --solver %q", solverName)
	}
}
