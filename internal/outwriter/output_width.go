package outwriter

import (
	"os"

	"github.com/rushiraj-gohil/bizdash/internal/contract"
	"golang.org/x/term"
)

// GetMaxCustomerIDWidth calculates the maximum width for customer IDs in the
// support table based on terminal width. Customer IDs in the cleaned dataset
// are usually short, but upstream sources sometimes carry UUIDs or emails.
func GetMaxCustomerIDWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the four count columns plus borders and padding
	available := termWidth - 50
	if available < 12 {
		// Minimum reasonable ID width
		return 12
	}
	if available > 40 {
		// Maximum ID width to keep the table compact
		return 40
	}
	return available
}

// truncateID shortens an identifier to maxWidth runes with an ellipsis.
func truncateID(id string, maxWidth int) string {
	if len(id) <= maxWidth {
		return id
	}
	if maxWidth <= 1 {
		return id[:maxWidth]
	}
	return id[:maxWidth-1] + "…"
}
