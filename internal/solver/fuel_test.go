package solver

import (
	"bytes"
	"strings"
	"testing"
)

func TestFuelFor(t *testing.T) {
	cases := []struct {
		mass int
		want int
	}{
		{mass: 12, want: 2},
		{mass: 14, want: 2},
		{mass: 1969, want: 654},
		{mass: 100756, want: 33583},
		{mass: 5, want: 0},
		{mass: 0, want: 0},
	}
	for _, tc := range cases {
		if got := fuelFor(tc.mass); got != tc.want {
			t.Fatalf("fuelFor(%d) = %d, want %d", tc.mass, got, tc.want)
		}
	}
}

func TestTieredFuelFor(t *testing.T) {
	cases := []struct {
		mass int
		want int
	}{
		{mass: 12, want: 2},
		{mass: 1969, want: 966},
		{mass: 100756, want: 50346},
	}
	for _, tc := range cases {
		if got := tieredFuelFor(tc.mass); got != tc.want {
			t.Fatalf("tieredFuelFor(%d) = %d, want %d", tc.mass, got, tc.want)
		}
	}
}

func TestFuelReport(t *testing.T) {
	input := "12\n14\n1969\n100756\n"

	out := runSolver(t, "fuel", nil, input)
	if out != "Total fuel requirement is 34241\n" {
		t.Fatalf("unexpected report: %q", out)
	}

	out = runSolver(t, "fuel", Params{"tiered": "true"}, input)
	if out != "Total fuel requirement is 51316\n" {
		t.Fatalf("unexpected tiered report: %q", out)
	}
}

func TestFuelRejectsJunkLines(t *testing.T) {
	s, err := newFuelSolver(nil)
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	var out bytes.Buffer
	err = s.Solve(strings.NewReader("12\nabc\n"), &out)
	if err == nil {
		t.Fatal("expected error for non-numeric mass")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected failing line in error, got %v", err)
	}
}

func TestFuelRejectsBadTieredValue(t *testing.T) {
	if _, err := newFuelSolver(Params{"tiered": "kinda"}); err == nil {
		t.Fatal("expected error for non-boolean tiered value")
	}
}
