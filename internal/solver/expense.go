package solver

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// expenseTarget is the sum the expense report entries must reach.
const expenseTarget = 2020

// expenseSolver finds the expense report entries summing to the target
// and reports their product. The triple variant searches three entries
// instead of two.
type expenseSolver struct {
	triple bool
}

func newExpenseSolver(params Params) (Solver, error) {
	s := &expenseSolver{}
	for key, value := range params {
		switch key {
		case "triple":
			v, err := parseBoolValue(key, value)
			if err != nil {
				return nil, err
			}
			s.triple = v
		default:
			return nil, unknownParam("expense", key)
		}
	}
	return s, nil
}

func (s *expenseSolver) Solve(r io.Reader, w io.Writer) error {
	var entries []int
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			return fmt.Errorf("parse expense entry at line %d: %w", line, err)
		}
		entries = append(entries, n)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var product int
	if s.triple {
		a, b, c, err := expenseTriple(entries)
		if err != nil {
			return err
		}
		product = a * b * c
	} else {
		a, b, err := expensePair(entries)
		if err != nil {
			return err
		}
		product = a * b
	}

	_, err := fmt.Fprintf(w, "Total is %d\n", product)
	return err
}

// expensePair returns the first two entries summing to the target,
// scanning pairs in input order. An entry may pair with itself.
func expensePair(entries []int) (int, int, error) {
	for i, a := range entries {
		for _, b := range entries[i:] {
			if a+b == expenseTarget {
				return a, b, nil
			}
		}
	}
	return 0, 0, fmt.Errorf("no two entries sum to %d", expenseTarget)
}

// expenseTriple returns the first three entries at distinct positions
// summing to the target.
func expenseTriple(entries []int) (int, int, int, error) {
	for i := range entries {
		for j := range entries {
			if j == i {
				continue
			}
			for k := range entries {
				if k == i || k == j {
					continue
				}
				if entries[i]+entries[j]+entries[k] == expenseTarget {
					return entries[i], entries[j], entries[k], nil
				}
			}
		}
	}
	return 0, 0, 0, fmt.Errorf("no three entries sum to %d", expenseTarget)
}
