package summary

import "strings"

// Merge commit message prefixes as produced by GitHub pull-request merges
// and plain branch merges. This is a message heuristic, not a parent-count
// check: a structural merge with a rewritten message will slip through.
var mergePrefixes = []string{
	"merge pull request",
	"merge branch",
}

// IsMergeCommit reports whether a commit message identifies a merge commit,
// matching the known prefixes case-insensitively.
func IsMergeCommit(message string) bool {
	lower := strings.ToLower(message)
	for _, prefix := range mergePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// FirstLine returns the first line of a commit message, the part used in
// prompts and fallback summaries.
func FirstLine(message string) string {
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		return message[:i]
	}
	return message
}

// ShortSHA returns the 7-character abbreviation of a commit SHA.
func ShortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}
