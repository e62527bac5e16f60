package yard

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Load reads a puzzle input: a crate diagram printed top to bottom,
// the column label line that closes it, then one move instruction per
// line. Blank lines between the two sections are skipped. The returned
// yard reproduces the diagram's stacking exactly.
func Load(r io.Reader) (*Yard, []Move, error) {
	y := &Yard{}
	var moves []Move

	scanner := bufio.NewScanner(r)
	line := 0
	inDiagram := true

	for scanner.Scan() {
		line++
		text := scanner.Text()

		if inDiagram {
			if isLabelLine(text) {
				inDiagram = false
				continue
			}
			if err := loadDiagramRow(y, text, line); err != nil {
				return nil, nil, err
			}
			continue
		}

		if strings.TrimSpace(text) == "" {
			continue
		}
		m, err := parseMove(text, line)
		if err != nil {
			return nil, nil, err
		}
		moves = append(moves, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("read input: %w", err)
	}
	if inDiagram {
		return nil, nil, &CorruptedInputError{Line: line, Reason: "diagram ended without a column label line"}
	}

	return y, moves, nil
}

// isLabelLine reports whether the row is the column label line, which
// carries a '1' where the first crate letter would sit.
func isLabelLine(text string) bool {
	return len(text) > 1 && text[1] == '1'
}

// loadDiagramRow splits one printed row into 4-character fields and
// inserts each field's crate at the bottom of its stack. The last
// field on a row has no trailing separator.
func loadDiagramRow(y *Yard, text string, line int) error {
	for i := 0; 4*i+1 < len(text); i++ {
		c, err := parseCrateField(text, 4*i, line)
		if err != nil {
			return err
		}
		y.InsertAt(i, c)
	}
	return nil
}

// parseCrateField reads the field starting at the given offset. A
// field is either "[X] " with an uppercase label or four spaces; the
// trailing separator may be missing at the end of the row.
func parseCrateField(text string, start, line int) (Crate, error) {
	field := text[start:min(start+4, len(text))]

	switch text[start] {
	case '[':
		if start+2 >= len(text) || text[start+2] != ']' {
			return Empty, &CorruptedInputError{Line: line, Reason: fmt.Sprintf("unterminated crate field %q", field)}
		}
		label := text[start+1]
		if label < 'A' || label > 'Z' {
			return Empty, &CorruptedInputError{Line: line, Reason: fmt.Sprintf("invalid crate label %q", string(label))}
		}
		if start+3 < len(text) && text[start+3] != ' ' {
			return Empty, &CorruptedInputError{Line: line, Reason: fmt.Sprintf("missing separator after crate field %q", field)}
		}
		return Crate(label), nil
	case ' ':
		for j := start + 1; j < min(start+4, len(text)); j++ {
			if text[j] != ' ' {
				return Empty, &CorruptedInputError{Line: line, Reason: fmt.Sprintf("unrecognized diagram field %q", field)}
			}
		}
		return Empty, nil
	default:
		return Empty, &CorruptedInputError{Line: line, Reason: fmt.Sprintf("unrecognized diagram field %q", field)}
	}
}

// parseMove parses one "move <count> from <src> to <dst>" line. All
// three numbers must be plain digit runs.
func parseMove(text string, line int) (Move, error) {
	fields := strings.Fields(text)
	if len(fields) != 6 || fields[0] != "move" || fields[2] != "from" || fields[4] != "to" {
		return Move{}, &CorruptedInputError{Line: line, Reason: fmt.Sprintf("malformed move instruction %q", text)}
	}

	var nums [3]int
	for i, f := range []string{fields[1], fields[3], fields[5]} {
		n, ok := parseCount(f)
		if !ok {
			return Move{}, &CorruptedInputError{Line: line, Reason: fmt.Sprintf("malformed move number %q", f)}
		}
		nums[i] = n
	}

	return Move{Count: nums[0], From: nums[1], To: nums[2]}, nil
}

// parseCount parses an unsigned decimal with no sign or whitespace.
func parseCount(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
