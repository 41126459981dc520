package tooltip

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-content/internal/dice"
	"github.com/KirkDiggler/rpg-content/internal/entities"
	"github.com/KirkDiggler/rpg-content/internal/errors"
	"github.com/KirkDiggler/rpg-content/internal/repositories/properties"
)

// lineBuilder collects tooltip blocks. Every block is followed by one blank
// separator, and the last separator is dropped by lines.
type lineBuilder struct {
	out []string
}

// block appends the non-empty lines as one block
func (b *lineBuilder) block(lines ...string) {
	added := false
	for _, line := range lines {
		if line == "" {
			continue
		}
		b.out = append(b.out, line)
		added = true
	}
	if added {
		b.out = append(b.out, "")
	}
}

func (b *lineBuilder) lines() []string {
	if n := len(b.out); n > 0 && b.out[n-1] == "" {
		b.out = b.out[:n-1]
	}
	if b.out == nil {
		return []string{}
	}
	return b.out
}

// sentence renders " <lead> m1 and m2." or "" when there are no modifiers
func sentence(lead string, modifiers []string) string {
	if len(modifiers) == 0 {
		return ""
	}
	return " " + lead + " " + strings.Join(modifiers, " and ") + "."
}

func conditionPhrase(name string) string {
	return fmt.Sprintf("a chance to inflict the %s condition", name)
}

// critPhrase renders a crit modifier such as "+10" or "10", with the
// versatile value in parentheses when it differs
func critPhrase(crit, versatile string) (string, bool) {
	value := normalizeCrit(crit)
	if value == "" {
		value = "0"
	}
	alt := normalizeCrit(versatile)

	switch {
	case alt != "" && alt != value:
		return fmt.Sprintf("a %s%% (%s%%) critical chance", signed(value), signed(alt)), true
	case value != "0":
		return fmt.Sprintf("a %s%% critical chance", signed(value)), true
	default:
		return "", false
	}
}

func normalizeCrit(crit string) string {
	return strings.TrimLeft(strings.TrimSpace(crit), "+")
}

func signed(value string) string {
	if strings.HasPrefix(value, "-") {
		return value
	}
	return "+" + value
}

// bonusPhrase renders "+N label", or "+N (+M) label" when the versatile
// value is set and differs
func bonusPhrase(value, versatile float64, label string) (string, bool) {
	switch {
	case versatile != 0 && versatile != value:
		return fmt.Sprintf("%s (%s) %s", signedNumber(value), signedNumber(versatile), label), true
	case value != 0:
		return fmt.Sprintf("%s %s", signedNumber(value), label), true
	default:
		return "", false
	}
}

func signedNumber(f float64) string {
	return signed(entities.FormatNumber(f))
}

// rangeText renders "min-max" scaled by times, with the alternate range in
// parentheses when alt is set and its scaled range differs
func rangeText(expr string, times int, altExpr string, altTimes int) string {
	r := dice.Parse(expr).Times(times)
	text := r.String()
	if altExpr == "" || altExpr == expr {
		return text
	}
	alt := dice.Parse(altExpr).Times(altTimes)
	if alt != r {
		text += fmt.Sprintf(" (%s)", alt)
	}
	return text
}

// damagePhrase renders "<range> + 5 * <stat> bonus <type> damage"
func damagePhrase(rangeText, stat, damageType string) string {
	return fmt.Sprintf("%s + 5 * %s bonus %s damage", rangeText, stat, damageType)
}

// percent is the share of weight in total, rounded half to even
func percent(weight, total float64) int {
	if total <= 0 {
		return 0
	}
	return int(math.RoundToEven(100 * weight / total))
}

// propertyBlurbs resolves each distinct name, in sorted order, to a
// "<Name>: <text>" line. Names that cannot be found or have nothing to show
// are left out.
func propertyBlurbs(ctx context.Context, repo properties.Repository, names ...string) ([]string, error) {
	distinct := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name != "" {
			distinct[name] = struct{}{}
		}
	}
	sorted := make([]string, 0, len(distinct))
	for name := range distinct {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	var lines []string
	for _, name := range sorted {
		out, err := repo.FindByName(ctx, properties.FindByNameInput{Name: name})
		if err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			return nil, errors.Wrapf(err, "failed to resolve property %q", name)
		}
		text, ok := out.Property.Blurb()
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", name, text))
	}

	return lines, nil
}
