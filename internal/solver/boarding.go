package solver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// boardingSolver decodes binary space partitioning boarding passes,
// reports the highest seat ID, and locates the single unoccupied seat
// between the occupied ones.
type boardingSolver struct{}

func newBoardingSolver(params Params) (Solver, error) {
	for key := range params {
		return nil, unknownParam("boarding", key)
	}
	return &boardingSolver{}, nil
}

func (s *boardingSolver) Solve(r io.Reader, w io.Writer) error {
	var ids []int
	maxID := 0
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		id, err := decodeSeatID(strings.TrimSpace(scanner.Text()))
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		ids = append(ids, id)
		if id > maxID {
			maxID = id
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if len(ids) == 0 {
		return errors.New("no boarding passes in input")
	}

	if _, err := fmt.Fprintf(w, "Greater boarding pass ID is %d\n", maxID); err != nil {
		return err
	}

	seat, err := findFreeSeat(ids)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Your ID seat is %d\n", seat)
	return err
}

// decodeSeatID converts a 10-character code into row*8 + column. The
// first seven characters halve the row range (F keeps the front, B the
// back), the last three halve the column range (L left, R right).
func decodeSeatID(code string) (int, error) {
	if len(code) != 10 {
		return 0, fmt.Errorf("boarding pass code %q must be 10 characters long", code)
	}
	id := 0
	for i := 0; i < len(code); i++ {
		id <<= 1
		if i < 7 {
			switch code[i] {
			case 'B':
				id |= 1
			case 'F':
			default:
				return 0, fmt.Errorf("boarding pass code %q: row steps must be F or B", code)
			}
			continue
		}
		switch code[i] {
		case 'R':
			id |= 1
		case 'L':
		default:
			return 0, fmt.Errorf("boarding pass code %q: column steps must be L or R", code)
		}
	}
	return id, nil
}

// findFreeSeat returns the one missing ID in the occupied range: the
// first gap in the sorted sequence of seat IDs.
func findFreeSeat(ids []int) (int, error) {
	if len(ids) < 2 {
		return 0, errors.New("not enough boarding passes to locate a free seat")
	}
	sorted := make([]int, len(ids))
	copy(sorted, ids)
	sort.Ints(sorted)

	for i := 0; i+1 < len(sorted); i++ {
		if sorted[i+1]-sorted[i] != 1 {
			return sorted[i] + 1, nil
		}
	}
	return 0, errors.New("failed to find a free seat")
}
