package contract

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Color variables for console output.
var (
	BetterColor = color.New(color.FgGreen, color.Bold) // the target run costs less than the base
	WorseColor  = color.New(color.FgRed, color.Bold)   // the target run costs more than the base
	TokenColor  = color.New(color.FgYellow)            // non-numeric cells such as <NotComputed>
)

// GetColorEnhancement colors an enhancement cell for console output.
// Multipliers are read cost-oriented: below 1.0 means the target run
// shrank the metric. Non-numeric cells get the token color. The INF
// token must be caught before ParseFloat, which accepts it as infinity.
func GetColorEnhancement(cell string) string {
	numeric := strings.TrimSuffix(cell, "x")
	value, err := strconv.ParseFloat(numeric, 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return TokenColor.Sprint(cell)
	}

	switch {
	case value < 1.0:
		return BetterColor.Sprint(cell)
	case value > 1.0:
		return WorseColor.Sprint(cell)
	default:
		return cell
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// TruncateLabel truncates a metric label to a maximum width with an
// ellipsis suffix. Requires maxWidth > 3 so there is room for both the
// "..." and at least one character of content.
func TruncateLabel(label string, maxWidth int) string {
	runes := []rune(label)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return label
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
