package match

import (
	"fmt"
	"strings"
)

// Variant describes the rule-set selection for a match.
type Variant int

const (
	// VariantUnspecified represents an invalid variant value.
	VariantUnspecified Variant = iota
	// VariantStandard indicates the regular Yatzy rule set.
	VariantStandard
	// VariantForced indicates the forced category-fill order rule set.
	VariantForced
	// VariantMaxi indicates the six-dice rule set with carried rerolls.
	VariantMaxi
)

// Rules carries the rule-set flags a match is constructed with.
// Yahtzee selects the Yahtzee scorecard instead of Yatzy; it cannot be
// combined with the Forced or Maxi alternate rule sets.
type Rules struct {
	Yahtzee bool
	Forced  bool
	Maxi    bool
}

// Variant derives the variant from the rule flags. Maxi takes precedence:
// a Maxi match keeps forced scoring inside the engine, but plays six dice.
func (r Rules) Variant() Variant {
	switch {
	case r.Maxi:
		return VariantMaxi
	case r.Forced:
		return VariantForced
	default:
		return VariantStandard
	}
}

// DiceCount returns the number of dice played under these rules.
func (r Rules) DiceCount() int {
	if r.Maxi {
		return 6
	}
	return 5
}

// validate reports whether the flag combination is constructible.
func (r Rules) validate() error {
	if (r.Maxi || r.Forced) && r.Yahtzee {
		return ErrRulesIncompatible
	}
	return nil
}

func (v Variant) String() string {
	switch v {
	case VariantStandard:
		return "STANDARD"
	case VariantForced:
		return "FORCED"
	case VariantMaxi:
		return "MAXI"
	default:
		return "UNSPECIFIED"
	}
}

// VariantFromLabel parses a string label into a Variant. It trims
// whitespace and matches case-insensitively. Both short ("MAXI") and
// prefixed ("VARIANT_MAXI") forms are accepted.
func VariantFromLabel(value string) (Variant, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return VariantUnspecified, fmt.Errorf("variant is required")
	}
	upper := strings.ToUpper(trimmed)
	switch upper {
	case "STANDARD", "VARIANT_STANDARD":
		return VariantStandard, nil
	case "FORCED", "VARIANT_FORCED":
		return VariantForced, nil
	case "MAXI", "VARIANT_MAXI":
		return VariantMaxi, nil
	default:
		return VariantUnspecified, fmt.Errorf("unknown variant: %s", trimmed)
	}
}
