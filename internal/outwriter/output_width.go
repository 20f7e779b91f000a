package outwriter

import (
	"os"

	"github.com/modelprof/modelprof/internal/contract"
	"golang.org/x/term"
)

// getMaxTableLabelWidth calculates the maximum width for metric labels in
// grid output based on terminal width and table configuration.
func getMaxTableLabelWidth(cfg *contract.Config, comparison bool) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for fixed columns with table formatting
	baseWidth := 30 // Value + Units columns with borders/padding
	if comparison {
		baseWidth += 40 // Enhancement + second value column with formatting
	}

	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable label width
		return 15
	}
	if available > 60 {
		// Maximum label width to prevent overly long labels
		return 60
	}
	return available
}
