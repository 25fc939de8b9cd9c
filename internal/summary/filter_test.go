package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMergeCommit(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    bool
	}{
		{"pull request merge", "Merge pull request #42 from org/feature", true},
		{"branch merge", "Merge branch 'main' into develop", true},
		{"case insensitive", "MERGE PULL REQUEST #1 from org/fix", true},
		{"regular commit", "fix: handle empty response body", false},
		{"merge word mid-message", "fix conflict after merge branch rebase", false},
		{"empty message", "", false},
		{"structural merge with rewritten message", "combine release branches", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMergeCommit(tt.message))
		})
	}
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "fix bug", FirstLine("fix bug\nlonger body\nmore detail"))
	assert.Equal(t, "single line", FirstLine("single line"))
	assert.Equal(t, "", FirstLine(""))
}

func TestShortSHA(t *testing.T) {
	assert.Equal(t, "abcdef1", ShortSHA("abcdef1234567"))
	assert.Equal(t, "abc", ShortSHA("abc"))
}
