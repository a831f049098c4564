// Package visualize renders a solved formula's assignment back into a
// Sudoku grid, decoding the Placed and Given propositions for each cell.
package visualize

import (
	"fmt"
	"io"
	"strings"

	"github.com/mvanbem/sudoku-generator"
)

const border = "+-------+-------+-------+"

// Write renders the puzzle's givens as an ASCII grid to w: one character per
// cell, blank where the cell is not a given. vars is the map BuildFormula
// returned; assignment is a satisfying solution for that same formula.
//
// Non-given cells are left blank even though the solution also places a
// digit there, matching a Sudoku puzzle's printed form (only the clues are
// shown) rather than the solved grid. Use WriteSolved to print every cell.
func Write(w io.Writer, vars map[sudokugen.VariableKind]sudokugen.Variable, assignment sudokugen.Assignment) error {
	return write(w, vars, assignment, false)
}

// WriteSolved renders every cell's placed digit, not just the givens.
func WriteSolved(w io.Writer, vars map[sudokugen.VariableKind]sudokugen.Variable, assignment sudokugen.Assignment) error {
	return write(w, vars, assignment, true)
}

func write(w io.Writer, vars map[sudokugen.VariableKind]sudokugen.Variable, assignment sudokugen.Assignment, showAll bool) error {
	digitAt := make(map[sudokugen.Cell]sudokugen.Digit, 81)
	givenAt := make(map[sudokugen.Cell]bool, 81)
	for _, cell := range sudokugen.Cells() {
		for _, digit := range sudokugen.Digits() {
			v, ok := vars[sudokugen.Placed(cell.Row, cell.Col, digit)]
			if ok && assignment[v] {
				digitAt[cell] = digit
			}
		}
		v, ok := vars[sudokugen.Given(cell.Row, cell.Col)]
		givenAt[cell] = ok && assignment[v]
	}

	for _, row := range sudokugen.Rows() {
		if row.Index()%3 == 0 {
			if _, err := fmt.Fprintln(w, border); err != nil {
				return err
			}
		}
		var line strings.Builder
		line.WriteString("| ")
		for _, col := range sudokugen.Cols() {
			if col.Index() > 0 {
				if col.Index()%3 == 0 {
					line.WriteString(" | ")
				} else {
					line.WriteString(" ")
				}
			}
			cell := sudokugen.Cell{Row: row, Col: col}
			if showAll || givenAt[cell] {
				if digit, ok := digitAt[cell]; ok {
					fmt.Fprintf(&line, "%d", digit)
				} else {
					line.WriteString(".")
				}
			} else {
				line.WriteString(" ")
			}
		}
		line.WriteString(" |")
		if _, err := fmt.Fprintln(w, line.String()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, border)
	return err
}
