package chat

import (
	"regexp"
	"strings"
)

var (
	dueTodayPattern = regexp.MustCompile(`\b(due\s+)?today\b`)
	labelPattern    = regexp.MustCompile(`\b(?:labeled?|tagged?|with\s+label)\s+["']?(\w+)["']?`)
)

// BuildFilter derives retrieval constraints from a query. Pure function
// over strings; both rules apply independently and a missing match
// leaves that filter field unset.
func BuildFilter(text string) Filter {
	normalized := strings.ToLower(text)

	var f Filter
	if dueTodayPattern.MatchString(normalized) {
		f.DueDate = "today"
	}
	if m := labelPattern.FindStringSubmatch(normalized); m != nil {
		f.Label = m[1]
	}
	return f
}
