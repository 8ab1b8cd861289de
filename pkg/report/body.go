// Package report renders and delivers the interesting results of a run: a
// CSV file on disk, a plain-text email, and a JSON webhook message.
package report

import (
	"fmt"
	"strings"
	"time"

	"hunter/pkg/domain"
)

// BuildBody renders the human-readable report shared by the email and
// webhook notifiers. At most maxGroups groups are listed; the rest are
// summarized by a trailing count. maxGroups <= 0 means unlimited.
func BuildBody(summary domain.Summary, groups []domain.Group, maxGroups int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Domain hunt %s\n", summary.RunID)
	fmt.Fprintf(&b, "Checked %d domains in %s: %d available, %d possibly available, %d registered.\n",
		summary.Checked, summary.Duration.Round(time.Millisecond), summary.Available, summary.Possible, summary.Registered)

	if len(groups) == 0 {
		b.WriteString("\nNothing interesting this time.\n")

		return b.String()
	}

	fmt.Fprintf(&b, "\n%d interesting base names:\n", len(groups))

	shown := groups
	if maxGroups > 0 && len(shown) > maxGroups {
		shown = shown[:maxGroups]
	}
	for _, group := range shown {
		fmt.Fprintf(&b, "\n%s\n", group.Base)
		for _, result := range group.Results {
			fmt.Fprintf(&b, "  %-30s %s\n", result.Domain, result.Status)
		}
	}
	if rest := len(groups) - len(shown); rest > 0 {
		fmt.Fprintf(&b, "\n... and %d more base names, see the CSV report.\n", rest)
	}

	return b.String()
}
