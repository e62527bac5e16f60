package yard

import (
	"errors"
	"strings"
	"testing"
)

const exampleInput = `    [D]
[N] [C]
[Z] [M] [P]
 1   2   3

move 1 from 2 to 1
move 3 from 1 to 3
move 2 from 2 to 1
move 1 from 1 to 2
`

func TestLoadWorkedExample(t *testing.T) {
	y, moves, err := Load(strings.NewReader(exampleInput))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got := y.Size(); got != 3 {
		t.Fatalf("expected 3 stacks, got %d", got)
	}
	if got := y.Tops(); got != "NDP" {
		t.Fatalf("expected initial tops NDP, got %q", got)
	}
	if len(moves) != 4 {
		t.Fatalf("expected 4 moves, got %d", len(moves))
	}
	want := Move{Count: 3, From: 1, To: 3}
	if moves[1] != want {
		t.Fatalf("expected second move %+v, got %+v", want, moves[1])
	}
}

func TestLoadTrailingBlankColumn(t *testing.T) {
	input := "[A]     [B]\n 1   2   3 \n"
	y, _, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := y.Size(); got != 3 {
		t.Fatalf("expected 3 stacks, got %d", got)
	}
	if got := y.Tops(); got != "A_B" {
		t.Fatalf("expected A_B, got %q", got)
	}
}

func TestLoadRightTrimmedRows(t *testing.T) {
	input := "    [D]\n[N] [C]\n[Z] [M] [P]\n 1   2   3\n\nmove 1 from 3 to 1\n"
	y, moves, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := y.Tops(); got != "NDP" {
		t.Fatalf("expected NDP, got %q", got)
	}
	if len(moves) != 1 {
		t.Fatalf("expected 1 move, got %d", len(moves))
	}
}

func TestLoadRejectsMalformedMoves(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{name: "missing count", line: "move from 1 to 2"},
		{name: "non-numeric count", line: "move x from 1 to 2"},
		{name: "signed count", line: "move +3 from 1 to 2"},
		{name: "wrong keyword", line: "shift 1 from 1 to 2"},
		{name: "trailing junk", line: "move 1 from 1 to 2 fast"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := "[A] [B]\n 1   2 \n\n" + tc.line + "\n"
			_, _, err := Load(strings.NewReader(input))
			if err == nil {
				t.Fatalf("expected error for %q", tc.line)
			}
			if !IsCorruptedInput(err) {
				t.Fatalf("expected corrupted-input error, got %v", err)
			}
		})
	}
}

func TestLoadRejectsBadDiagramFields(t *testing.T) {
	cases := []struct {
		name string
		row  string
	}{
		{name: "lowercase label", row: "[a] [B]"},
		{name: "unterminated field", row: "[A  [B]"},
		{name: "stray character", row: "[A] x B]"},
		{name: "missing separator", row: "[A][B]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := tc.row + "\n 1   2 \n"
			_, _, err := Load(strings.NewReader(input))
			if err == nil {
				t.Fatalf("expected error for row %q", tc.row)
			}
			if !IsCorruptedInput(err) {
				t.Fatalf("expected corrupted-input error, got %v", err)
			}
		})
	}
}

func TestLoadReportsLineNumbers(t *testing.T) {
	input := "[A] [B]\n 1   2 \n\nmove 1 from 1 to 2\nmove oops\n"
	_, _, err := Load(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected error")
	}
	var corrupted *CorruptedInputError
	if !errors.As(err, &corrupted) {
		t.Fatalf("expected corrupted-input error, got %v", err)
	}
	if corrupted.Line != 5 {
		t.Fatalf("expected failure at line 5, got line %d", corrupted.Line)
	}
}

func TestLoadMissingLabelLine(t *testing.T) {
	input := "[A] [B]\n[C] [D]\n"
	_, _, err := Load(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsCorruptedInput(err) {
		t.Fatalf("expected corrupted-input error, got %v", err)
	}
	if !strings.Contains(err.Error(), "label line") {
		t.Fatalf("expected label-line complaint, got %v", err)
	}
}
