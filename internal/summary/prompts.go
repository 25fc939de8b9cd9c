package summary

import (
	"fmt"
	"strings"

	"github.com/just-nibble/standup-service/internal/domain"
)

const (
	dailyNoActivityPrompt = `No commits found for this day. Generate a brief message indicating no activity.`

	weeklyNoActivityPrompt = `No daily reports or commits are available for this week. Generate a message indicating that no activity was recorded.`

	dailyInstructions = `Analyze the following GitHub commits and generate a summary for a daily standup.

The format must be:
- Grouped by repository/project
- In English
- Concise bullet points describing what was done (a professional interpretation, not the literal commit message)
- At most 2-3 bullets per repo
- Use past-tense verbs (implemented, fixed, updated, etc.)
- If there are many commits of the same kind, group them into a single bullet

COMMITS:
%s

Generate the daily:`

	weeklyFromDailysInstructions = `Generate a weekly summary based on these daily reports:

%s

The summary must:
- Group work by project/main theme
- Highlight the most important achievements of the week
- Mention areas of work (features, bugfixes, refactoring, etc.)
- Be concise but complete (at most 10-15 bullets total)
- In English
- Use professional language suitable for a spoken presentation`

	weeklyFromCommitsInstructions = `Analyze the following GitHub commits and generate a complete weekly summary.

The format must be:
- Grouped by project/main theme
- Highlight the most important achievements
- Mention areas of work (features, bugfixes, refactoring, etc.)
- At most 10-15 bullets total
- In English
- Use professional language suitable for a spoken presentation

COMMITS OF THE WEEK:
%s

Generate the weekly:`
)

// BuildDailyPrompt renders the instruction text for a daily summary. An
// empty commit set yields a canned no-activity instruction.
func BuildDailyPrompt(commits []domain.RepoCommits) string {
	if len(commits) == 0 {
		return dailyNoActivityPrompt
	}
	return fmt.Sprintf(dailyInstructions, renderCommits(commits))
}

// BuildWeeklyPrompt renders the instruction text for a weekly summary.
// When daily summaries exist they take precedence and commits are ignored;
// otherwise the commit listing is used, and with neither a canned
// no-activity instruction is returned.
func BuildWeeklyPrompt(dailys []string, commits []domain.RepoCommits) string {
	if len(dailys) > 0 {
		var b strings.Builder
		for i, d := range dailys {
			if i > 0 {
				b.WriteString("\n\n")
			}
			fmt.Fprintf(&b, "### Day %d\n%s", i+1, d)
		}
		return fmt.Sprintf(weeklyFromDailysInstructions, b.String())
	}

	if len(commits) == 0 {
		return weeklyNoActivityPrompt
	}
	return fmt.Sprintf(weeklyFromCommitsInstructions, renderCommits(commits))
}

// renderCommits renders the shared grouped listing: a heading per
// repository, then short SHA and first message line per commit.
func renderCommits(commits []domain.RepoCommits) string {
	var b strings.Builder
	for _, repo := range commits {
		fmt.Fprintf(&b, "\n## %s\n", repo.RepoName)
		for _, c := range repo.Commits {
			fmt.Fprintf(&b, "- %s: %s\n", ShortSHA(c.SHA), FirstLine(c.Message))
		}
	}
	return b.String()
}
