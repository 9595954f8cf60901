package router

import "regexp"

// rule is one classification pattern. A rule matches when pattern matches
// and exclude (if set) does not. The exclude field stands in for negative
// lookahead, which RE2 does not support.
type rule struct {
	pattern *regexp.Regexp
	exclude *regexp.Regexp
}

// Precedence between tiers is load-bearing: conversation rules run first,
// then create rules, then retrieve rules, then the default. Create runs
// before retrieve so "add buy milk to my list" is not misread as a query.
var (
	conversationRules = []rule{
		{pattern: regexp.MustCompile(`^(hi|hello|hey|greetings)[\s!?.]*$`)},
		{pattern: regexp.MustCompile(`^(good morning|good afternoon|good evening)[\s!?.]*$`)},
		{pattern: regexp.MustCompile(`\b(what can you do|how do you work|help me|show me how)\b`)},
		{pattern: regexp.MustCompile(`\b(who are you|what are you)\b`)},
	}

	createRules = []rule{
		{pattern: regexp.MustCompile(`^(add|create|new|make|remind me to|i need to|todo:)`)},
		{pattern: regexp.MustCompile(`\b(add|create|remind me)\b.*\b(task|todo|to-do|list)\b`)},
	}

	// Ordered most specific first to avoid false matches.
	retrieveRules = []rule{
		{pattern: regexp.MustCompile(`^what'?s? on my`)},
		{pattern: regexp.MustCompile(`^do i have (any )?task`)},
		{pattern: regexp.MustCompile(`\bmy (tasks|todo|to-do|to do|list)\b`)},
		// "my task" but not the statement "my task is ..."
		{
			pattern: regexp.MustCompile(`\bmy task\b`),
			exclude: regexp.MustCompile(`\bmy task is\b`),
		},
		{pattern: regexp.MustCompile(`\b(what|show|list|display|get|find|see|view|check)\b.*\b(task|todo|to-do|to do)`)},
		{pattern: regexp.MustCompile(`\b(task|todo|to-do|to do).*\b(what|show|list|display|do i have)`)},
		{pattern: regexp.MustCompile(`\b(what|show|list|display|get|view|check)\b.*\b(list|todo list|to-do list)`)},
		{pattern: regexp.MustCompile(`\bon my (list|todo|to-do|tasks?)`)},
		{pattern: regexp.MustCompile(`^(my tasks|show tasks|list tasks|check tasks|view tasks)`)},
		{pattern: regexp.MustCompile(`^(show|check|view) (my )?(task|todo|to-do|list)`)},
		{pattern: regexp.MustCompile(`\b(due today|due tomorrow|overdue)\b`)},
		{pattern: regexp.MustCompile(`\b(tasks? (with|labeled|tagged))\b`)},
	}
)
