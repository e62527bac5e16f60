package solver

import (
	"bytes"
	"strings"
	"testing"
)

const expenseInput = "1721\n979\n366\n299\n675\n1456\n"

func TestExpensePairReport(t *testing.T) {
	out := runSolver(t, "expense", nil, expenseInput)
	if out != "Total is 514579\n" {
		t.Fatalf("unexpected report: %q", out)
	}
}

func TestExpenseTripleReport(t *testing.T) {
	out := runSolver(t, "expense", Params{"triple": "true"}, expenseInput)
	if out != "Total is 241861950\n" {
		t.Fatalf("unexpected report: %q", out)
	}
}

func TestExpenseEntryMayPairWithItself(t *testing.T) {
	out := runSolver(t, "expense", nil, "1010\n500\n")
	if out != "Total is 1020100\n" {
		t.Fatalf("unexpected report: %q", out)
	}
}

func TestExpenseNoSolution(t *testing.T) {
	s, err := newExpenseSolver(nil)
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	var out bytes.Buffer
	err = s.Solve(strings.NewReader("1\n2\n3\n"), &out)
	if err == nil || !strings.Contains(err.Error(), "no two entries") {
		t.Fatalf("expected no-solution error, got %v", err)
	}
}

func TestExpenseRejectsJunkLines(t *testing.T) {
	s, err := newExpenseSolver(nil)
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	var out bytes.Buffer
	err = s.Solve(strings.NewReader("1721\ntwo\n299\n"), &out)
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected parse error naming line 2, got %v", err)
	}
}
