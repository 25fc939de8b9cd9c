package summary

import (
	"fmt"
	"strings"
	"time"

	"github.com/just-nibble/standup-service/internal/domain"
)

// FallbackDaily produces a deterministic daily summary when the generation
// agent is unavailable or fails. It lists each commit's first message line
// verbatim, grouped by repository.
func FallbackDaily(commits []domain.RepoCommits, date time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Daily Report - %s\n\n", date.Format("2006-01-02"))

	if len(commits) == 0 {
		b.WriteString("No commits recorded for this day.\n")
		return strings.TrimSpace(b.String())
	}

	for _, repo := range commits {
		fmt.Fprintf(&b, "**%s:**\n", repo.RepoName)
		for _, c := range repo.Commits {
			fmt.Fprintf(&b, "- %s\n", FirstLine(c.Message))
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

// FallbackWeekly produces a deterministic weekly summary. Daily report
// contents take precedence over the commit listing; with neither, an
// explicit no-activity line is emitted.
func FallbackWeekly(dailys []string, commits []domain.RepoCommits, weekStart, weekEnd time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Weekly Report - %s to %s\n\n",
		weekStart.Format("2006-01-02"), weekEnd.Format("2006-01-02"))

	switch {
	case len(dailys) > 0:
		b.WriteString("## Summary from Daily Reports\n\n")
		for i, d := range dailys {
			fmt.Fprintf(&b, "### Day %d\n%s\n\n", i+1, d)
		}
	case len(commits) > 0:
		b.WriteString("## Summary from Commits\n\n")
		for _, repo := range commits {
			fmt.Fprintf(&b, "**%s:**\n", repo.RepoName)
			for _, c := range repo.Commits {
				fmt.Fprintf(&b, "- %s\n", FirstLine(c.Message))
			}
			b.WriteString("\n")
		}
	default:
		b.WriteString("No activity recorded for this week.\n")
	}
	return strings.TrimSpace(b.String())
}
