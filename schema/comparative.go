package schema

import (
	"errors"
	"fmt"
)

// Comparative describes how two values of the same metric relate across
// two profiling runs.
type Comparative string

// All comparative modes supported.
const (
	RatioComparative Comparative = "ratio" // target / base, reported as a multiplier
	DiffComparative  Comparative = "diff"  // target - base, reported as a plain number
	NoneComparative  Comparative = "none"  // no comparison attempted
)

var (
	// ErrInvalidComparative indicates a comparative tag that matches no
	// known variant.
	ErrInvalidComparative = errors.New("invalid comparative mode")

	// ErrZeroDenominator indicates a ratio comparison against a zero base
	// value.
	ErrZeroDenominator = errors.New("ratio comparison with zero base value")
)

// ParseComparative validates a raw comparative tag. The empty string maps
// to NoneComparative, since upstream pipelines leave the tag unset for
// metrics that cannot be compared.
func ParseComparative(raw string) (Comparative, error) {
	switch c := Comparative(raw); c {
	case RatioComparative, DiffComparative, NoneComparative:
		return c, nil
	case "":
		return NoneComparative, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidComparative, raw)
	}
}

// Compare applies mode to the values of one metric taken from a base and a
// target run. The boolean reports whether a comparison was produced; it is
// false for NoneComparative. Pure function of its inputs.
func Compare(mode Comparative, base, target float64) (float64, bool, error) {
	validated, err := ParseComparative(string(mode))
	if err != nil {
		return 0, false, err
	}
	switch validated {
	case RatioComparative:
		if base == 0 {
			return 0, false, ErrZeroDenominator
		}
		return target / base, true, nil
	case DiffComparative:
		return target - base, true, nil
	default:
		return 0, false, nil
	}
}
