package router

import "strings"

// Classify maps raw user input to a Mode. It is a total function over
// strings: it never fails and never calls external services, so it can
// run before any LLM invocation and keep casual conversation from
// turning into task creation.
func Classify(text string) Mode {
	if strings.TrimSpace(text) == "" {
		return ModeConversation
	}

	normalized := strings.ToLower(strings.TrimSpace(text))

	if matchAny(conversationRules, normalized) {
		return ModeConversation
	}

	if matchAny(createRules, normalized) {
		return ModeCreate
	}

	if matchAny(retrieveRules, normalized) {
		return ModeRetrieve
	}

	// Ambiguous input is treated as a task description.
	return ModeCreate
}

func matchAny(rules []rule, text string) bool {
	for _, r := range rules {
		if !r.pattern.MatchString(text) {
			continue
		}
		if r.exclude != nil && r.exclude.MatchString(text) {
			continue
		}
		return true
	}
	return false
}
