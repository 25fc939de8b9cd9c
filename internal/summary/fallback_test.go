package summary

import (
	"testing"
	"time"

	"github.com/just-nibble/standup-service/internal/domain"
	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestFallbackDaily_Empty(t *testing.T) {
	got := FallbackDaily(nil, date("2025-03-10"))

	assert.NotEmpty(t, got)
	assert.Contains(t, got, "2025-03-10")
	assert.Contains(t, got, "No commits")
}

func TestFallbackDaily_ListsFirstLinesVerbatim(t *testing.T) {
	commits := []domain.RepoCommits{
		{
			RepoName: "api",
			Commits: []domain.Commit{
				{SHA: "aaaaaaa1111111", Message: "fix bug\nbody detail"},
				{SHA: "bbbbbbb2222222", Message: "add metrics"},
			},
		},
	}

	got := FallbackDaily(commits, date("2025-03-10"))

	assert.Contains(t, got, "Daily Report - 2025-03-10")
	assert.Contains(t, got, "**api:**")
	assert.Contains(t, got, "- fix bug")
	assert.Contains(t, got, "- add metrics")
	assert.NotContains(t, got, "body detail")
}

func TestFallbackWeekly_PrefersDailys(t *testing.T) {
	commits := []domain.RepoCommits{
		{RepoName: "api", Commits: []domain.Commit{{SHA: "ccccccc3333333", Message: "hidden"}}},
	}

	got := FallbackWeekly([]string{"did things"}, commits, date("2025-03-10"), date("2025-03-16"))

	assert.Contains(t, got, "Weekly Report - 2025-03-10 to 2025-03-16")
	assert.Contains(t, got, "### Day 1\ndid things")
	assert.NotContains(t, got, "hidden")
}

func TestFallbackWeekly_CommitsWhenNoDailys(t *testing.T) {
	commits := []domain.RepoCommits{
		{RepoName: "api", Commits: []domain.Commit{{SHA: "ddddddd4444444", Message: "ship release"}}},
	}

	got := FallbackWeekly(nil, commits, date("2025-03-10"), date("2025-03-16"))

	assert.Contains(t, got, "Summary from Commits")
	assert.Contains(t, got, "**api:**")
	assert.Contains(t, got, "- ship release")
}

func TestFallbackWeekly_NoActivity(t *testing.T) {
	got := FallbackWeekly(nil, nil, date("2025-03-10"), date("2025-03-16"))

	assert.NotEmpty(t, got)
	assert.Contains(t, got, "No activity recorded for this week.")
}
