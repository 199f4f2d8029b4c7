package insights

import (
	"fmt"
	"strings"
)

// FormatDigest renders the report as a chat-friendly title and body for the
// notifiers.
func FormatDigest(r Report) (title, body string) {
	title = fmt.Sprintf("Daypack digest — %s", r.GeneratedAt)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Streak: %d day(s) | Consistency: %.0f%% | Tasks done (30d): %.0f%%\n",
		r.Streak, r.ConsistencyPercent, r.TaskCompletionRate)
	fmt.Fprintf(&sb, "Ideas executed: %.0f%% | Overdue: %d | Pending decisions: %d\n",
		r.IdeaExecutionRate, r.OverdueTasks, r.PendingGates)
	if len(r.Wins) > 0 {
		sb.WriteString("\nWins:\n")
		for _, w := range r.Wins {
			fmt.Fprintf(&sb, "  + %s\n", w)
		}
	}
	if len(r.Gaps) > 0 {
		sb.WriteString("\nGaps:\n")
		for _, g := range r.Gaps {
			fmt.Fprintf(&sb, "  - %s\n", g)
		}
	}
	return title, strings.TrimRight(sb.String(), "\n")
}
