package solver

import "testing"

const passwordInput = "1-3 a: abcde\n1-3 b: cdefg\n2-9 c: ccccccccc\n"

func TestPasswordsOccurrencePolicy(t *testing.T) {
	out := runSolver(t, "passwords", nil, passwordInput)
	if out != "Total of valid entries is 2\n" {
		t.Fatalf("unexpected report: %q", out)
	}
}

func TestPasswordsPositionalPolicy(t *testing.T) {
	out := runSolver(t, "passwords", Params{"positional": "true"}, passwordInput)
	if out != "Total of valid entries is 1\n" {
		t.Fatalf("unexpected report: %q", out)
	}
}

func TestPasswordsSkipMalformedRows(t *testing.T) {
	out := runSolver(t, "passwords", nil, passwordInput+"not a database row\n")
	if out != "Total of valid entries is 2\n" {
		t.Fatalf("unexpected report: %q", out)
	}
}

func TestPasswordsPositionBeyondPassword(t *testing.T) {
	out := runSolver(t, "passwords", Params{"positional": "true"}, "1-20 a: abc\n")
	if out != "Total of valid entries is 1\n" {
		t.Fatalf("unexpected report: %q", out)
	}
}

func TestParsePasswordEntry(t *testing.T) {
	entry, err := parsePasswordEntry("2-9 c: ccccccccc")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if entry.min != 2 || entry.max != 9 || entry.constraint != 'c' || entry.password != "ccccccccc" {
		t.Fatalf("unexpected entry %+v", entry)
	}

	bad := []string{
		"",
		"1-3 a abcde",
		"1-3: abcde",
		"x-3 a: abcde",
		"1-y a: abcde",
		"1-3 ab: abcde",
	}
	for _, line := range bad {
		if _, err := parsePasswordEntry(line); err == nil {
			t.Fatalf("expected parse error for %q", line)
		}
	}
}
