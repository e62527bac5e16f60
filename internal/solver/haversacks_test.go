package solver

import (
	"bytes"
	"strings"
	"testing"
)

const luggageRules = `light red bags contain 1 bright white bag, 2 muted yellow bags.
dark orange bags contain 3 bright white bags, 4 muted yellow bags.
bright white bags contain 1 shiny gold bag.
muted yellow bags contain 2 shiny gold bags, 9 faded blue bags.
shiny gold bags contain 1 dark olive bag, 2 vibrant plum bags.
dark olive bags contain 3 faded blue bags, 4 dotted black bags.
vibrant plum bags contain 5 faded blue bags, 6 dotted black bags.
faded blue bags contain no other bags.
dotted black bags contain no other bags.
`

const nestedLuggageRules = `shiny gold bags contain 2 dark red bags.
dark red bags contain 2 dark orange bags.
dark orange bags contain 2 dark yellow bags.
dark yellow bags contain 2 dark green bags.
dark green bags contain 2 dark blue bags.
dark blue bags contain 2 dark violet bags.
dark violet bags contain no other bags.
`

func TestHaversacksReport(t *testing.T) {
	out := runSolver(t, "haversacks", nil, luggageRules)
	want := "There is 4 different bags containing a shiny gold bag\nThere is 32 bags in shiny gold bag\n"
	if out != want {
		t.Fatalf("unexpected report: %q", out)
	}
}

func TestHaversacksDeeplyNestedRules(t *testing.T) {
	out := runSolver(t, "haversacks", nil, nestedLuggageRules)
	want := "There is 0 different bags containing a shiny gold bag\nThere is 126 bags in shiny gold bag\n"
	if out != want {
		t.Fatalf("unexpected report: %q", out)
	}
}

func TestHaversacksCustomTargetBag(t *testing.T) {
	out := runSolver(t, "haversacks", Params{"bag": "bright white"}, luggageRules)
	want := "There is 2 different bags containing a bright white bag\nThere is 33 bags in bright white bag\n"
	if out != want {
		t.Fatalf("unexpected report: %q", out)
	}
}

func TestHaversacksRejectsBadTargetBag(t *testing.T) {
	if _, err := newHaversacksSolver(Params{"bag": "gold"}); err == nil {
		t.Fatal("expected error for a one-word bag")
	}
}

func TestParseBagRule(t *testing.T) {
	outer, contents, err := parseBagRule("light red bags contain 1 bright white bag, 2 muted yellow bags.")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if outer != (bagColor{tint: "light", color: "red"}) {
		t.Fatalf("unexpected outer bag %+v", outer)
	}
	if len(contents) != 2 {
		t.Fatalf("expected 2 clauses, got %d", len(contents))
	}
	if contents[0].count != 1 || contents[0].bag != (bagColor{tint: "bright", color: "white"}) {
		t.Fatalf("unexpected first clause %+v", contents[0])
	}

	outer, contents, err = parseBagRule("faded blue bags contain no other bags.")
	if err != nil {
		t.Fatalf("parse terminal rule: %v", err)
	}
	if outer != (bagColor{tint: "faded", color: "blue"}) || len(contents) != 0 {
		t.Fatalf("expected empty contents for terminal rule, got %+v", contents)
	}

	if _, _, err := parseBagRule("this is not a luggage rule"); err == nil {
		t.Fatal("expected error for malformed rule")
	}
}

func TestHaversacksMissingRule(t *testing.T) {
	s, err := newHaversacksSolver(nil)
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	var out bytes.Buffer
	err = s.Solve(strings.NewReader("shiny gold bags contain 1 elusive teal bag.\n"), &out)
	if err == nil || !strings.Contains(err.Error(), "no luggage rule") {
		t.Fatalf("expected missing-rule error, got %v", err)
	}
}
