// Package dice parses the NdM[+/-K] damage notation used by weapon and spell
// records and rolls it for authors checking their numbers.
package dice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-content/internal/errors"
)

var (
	// Prefix match: anything after the expression is ignored when computing ranges
	rangeNotationRegex = regexp.MustCompile(`^(\d+)d(\d+)([+-]\d+)?`)

	// Full match used when actually rolling
	rollNotationRegex = regexp.MustCompile(`^(\d+)d(\d+)([+-]\d+)?$`)
)

// Range is the lowest and highest total an expression can produce
type Range struct {
	Min int
	Max int
}

// Times scales both ends of the range by n, for attacks that hit n times
func (r Range) Times(n int) Range {
	return Range{Min: r.Min * n, Max: r.Max * n}
}

// IsZero reports whether the range is the "no damage" sentinel
func (r Range) IsZero() bool {
	return r.Min == 0 && r.Max == 0
}

// String renders the range as "min-max"
func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// Notation is a parsed dice expression
type Notation struct {
	Count    int
	Faces    int
	Modifier int
}

// Range returns the damage range assuming every die rolls 1 for the minimum.
// The minimum is not floored at zero.
func (n Notation) Range() Range {
	return Range{
		Min: n.Count + n.Modifier,
		Max: n.Count*n.Faces + n.Modifier,
	}
}

// String renders the notation back in NdM[+/-K] form
func (n Notation) String() string {
	if n.Modifier == 0 {
		return fmt.Sprintf("%dd%d", n.Count, n.Faces)
	}
	return fmt.Sprintf("%dd%d%+d", n.Count, n.Faces, n.Modifier)
}

// Parse returns the damage range of expr. Empty, blank or unparseable input
// yields the zero Range rather than an error.
func Parse(expr string) Range {
	n, ok := parse(rangeNotationRegex, expr)
	if !ok {
		return Range{}
	}
	return n.Range()
}

// ParseNotation parses a complete expression with nothing trailing it
func ParseNotation(expr string) (Notation, error) {
	n, ok := parse(rollNotationRegex, expr)
	if !ok {
		return Notation{}, errors.InvalidArgumentf("invalid dice notation: %q (expected format: NdM, NdM+K or NdM-K)", expr)
	}
	if n.Count <= 0 || n.Faces <= 0 {
		return Notation{}, errors.InvalidArgumentf("dice count and size must be positive: %q", expr)
	}
	return n, nil
}

func parse(re *regexp.Regexp, expr string) (Notation, bool) {
	matches := re.FindStringSubmatch(strings.TrimSpace(expr))
	if matches == nil {
		return Notation{}, false
	}

	count, err := strconv.Atoi(matches[1])
	if err != nil {
		return Notation{}, false
	}
	faces, err := strconv.Atoi(matches[2])
	if err != nil {
		return Notation{}, false
	}

	var modifier int
	if matches[3] != "" {
		modifier, err = strconv.Atoi(matches[3])
		if err != nil {
			return Notation{}, false
		}
	}

	return Notation{Count: count, Faces: faces, Modifier: modifier}, true
}

// Result is one evaluated roll
type Result struct {
	Notation Notation
	Dice     []int
	Total    int
}

// String renders the roll as "2d6+1 [3 5] = 9"
func (r Result) String() string {
	return fmt.Sprintf("%s %v = %d", r.Notation, r.Dice, r.Total)
}

// Roll evaluates expr with roller. A nil roller uses the toolkit default.
func Roll(roller toolkitdice.Roller, expr string) (*Result, error) {
	n, err := ParseNotation(expr)
	if err != nil {
		return nil, err
	}

	if roller == nil {
		roller = toolkitdice.DefaultRoller
	}

	rolled, err := roller.RollN(n.Count, n.Faces)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s", n)
	}

	total := n.Modifier
	for _, d := range rolled {
		total += d
	}

	return &Result{Notation: n, Dice: rolled, Total: total}, nil
}
