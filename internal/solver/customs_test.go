package solver

import "testing"

const customsInput = "abc\n\na\nb\nc\n\nab\nac\n\na\na\na\na\n\nb\n"

func TestCustomsAnyoneAnswered(t *testing.T) {
	out := runSolver(t, "customs", nil, customsInput)
	if out != "Total groups answers is 11\n" {
		t.Fatalf("unexpected report: %q", out)
	}
}

func TestCustomsEveryoneAnswered(t *testing.T) {
	out := runSolver(t, "customs", Params{"everyone": "true"}, customsInput)
	if out != "Total groups answers is 6\n" {
		t.Fatalf("unexpected report: %q", out)
	}
}

func TestCustomsConsecutiveBlankLines(t *testing.T) {
	out := runSolver(t, "customs", nil, "ab\n\n\nb\n")
	if out != "Total groups answers is 3\n" {
		t.Fatalf("unexpected report: %q", out)
	}
}

func TestCustomsDuplicateAnswersWithinOnePerson(t *testing.T) {
	out := runSolver(t, "customs", Params{"everyone": "true"}, "aab\nab\n")
	if out != "Total groups answers is 2\n" {
		t.Fatalf("unexpected report: %q", out)
	}
}

func TestCustomsEmptyInput(t *testing.T) {
	out := runSolver(t, "customs", nil, "")
	if out != "Total groups answers is 0\n" {
		t.Fatalf("unexpected report: %q", out)
	}
}
