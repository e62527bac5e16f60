package solver

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// haversacksSolver answers two containment questions about luggage
// rules: how many bag colors can hold the target bag somewhere inside,
// and how many individual bags the target bag holds in total.
type haversacksSolver struct {
	target bagColor
}

// bagColor identifies a bag by its tint and color, e.g. "shiny gold".
type bagColor struct {
	tint  string
	color string
}

func (b bagColor) String() string { return b.tint + " " + b.color + " bag" }

// bagContent is one contained-bag clause of a luggage rule.
type bagContent struct {
	bag   bagColor
	count int
}

func newHaversacksSolver(params Params) (Solver, error) {
	s := &haversacksSolver{target: bagColor{tint: "shiny", color: "gold"}}
	for key, value := range params {
		switch key {
		case "bag":
			target, err := parseBagColor(value)
			if err != nil {
				return nil, err
			}
			s.target = target
		default:
			return nil, unknownParam("haversacks", key)
		}
	}
	return s, nil
}

func (s *haversacksSolver) Solve(r io.Reader, w io.Writer) error {
	rules := make(map[bagColor][]bagContent)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		outer, contents, err := parseBagRule(text)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		rules[outer] = contents
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	wrappers := countWrappers(rules, s.target)
	if _, err := fmt.Fprintf(w, "There is %d different bags containing a %s\n", wrappers, s.target); err != nil {
		return err
	}

	nested, err := countNested(rules, s.target)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "There is %d bags in %s\n", nested, s.target)
	return err
}

func parseBagColor(s string) (bagColor, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return bagColor{}, fmt.Errorf("bag %q must be a tint and a color, e.g. %q", s, "shiny gold")
	}
	return bagColor{tint: fields[0], color: fields[1]}, nil
}

// parseBagRule parses one rule line such as
// "light red bags contain 1 bright white bag, 2 muted yellow bags.".
func parseBagRule(line string) (bagColor, []bagContent, error) {
	head, tail, ok := strings.Cut(line, " bags contain ")
	if !ok {
		return bagColor{}, nil, fmt.Errorf("missing %q in rule %q", " bags contain ", line)
	}
	outer, err := parseBagColor(head)
	if err != nil {
		return bagColor{}, nil, err
	}

	var contents []bagContent
	for _, clause := range strings.Split(tail, ", ") {
		if strings.HasPrefix(clause, "no ") {
			break
		}
		fields := strings.Fields(clause)
		if len(fields) < 3 {
			return bagColor{}, nil, fmt.Errorf("malformed containment clause %q", clause)
		}
		count, err := strconv.Atoi(fields[0])
		if err != nil {
			return bagColor{}, nil, fmt.Errorf("parse quantity in clause %q: %w", clause, err)
		}
		contents = append(contents, bagContent{
			bag:   bagColor{tint: fields[1], color: fields[2]},
			count: count,
		})
	}
	return outer, contents, nil
}

// countWrappers returns how many distinct bag colors hold the target
// directly or through intermediate bags.
func countWrappers(rules map[bagColor][]bagContent, target bagColor) int {
	wrappers := make(map[bagColor]struct{})
	queue := []bagColor{target}
	for len(queue) > 0 {
		inner := queue[0]
		queue = queue[1:]
		for outer, contents := range rules {
			if _, known := wrappers[outer]; known {
				continue
			}
			for _, c := range contents {
				if c.bag == inner {
					wrappers[outer] = struct{}{}
					queue = append(queue, outer)
					break
				}
			}
		}
	}
	return len(wrappers)
}

// countNested returns how many individual bags the target transitively
// holds. Every bag reached must have a rule of its own.
func countNested(rules map[bagColor][]bagContent, target bagColor) (int, error) {
	type pending struct {
		bag  bagColor
		mult int
	}
	total := 0
	stack := []pending{{bag: target, mult: 1}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		contents, ok := rules[p.bag]
		if !ok {
			return 0, fmt.Errorf("no luggage rule for %s", p.bag)
		}
		for _, c := range contents {
			n := p.mult * c.count
			total += n
			stack = append(stack, pending{bag: c.bag, mult: n})
		}
	}
	return total, nil
}
