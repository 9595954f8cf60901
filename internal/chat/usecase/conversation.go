package usecase

import (
	"regexp"
	"strings"
)

// Template-based replies keep the conversation branch fast and
// deterministic; no LLM call happens here.
var (
	greetingPattern   = regexp.MustCompile(`^(hi|hello|hey|greetings)[\s!?.]*$`)
	timeOfDayPattern  = regexp.MustCompile(`^(good morning|good afternoon|good evening)[\s!?.]*$`)
	capabilityPattern = regexp.MustCompile(`\b(what can you do|how do you work|help)\b`)
	identityPattern   = regexp.MustCompile(`\b(who are you|what are you)\b`)
)

const (
	greetingReply = "👋 Hello! I'm your DarkWave Task Manager assistant.\n\n" +
		"I can help you:\n" +
		"- **Create tasks**: Just describe what you need to do\n" +
		"- **View tasks**: Ask \"what tasks do I have?\" or \"show tasks due today\"\n" +
		"- **Organize**: I'll auto-label tasks and set priorities\n\n" +
		"What would you like to do?"

	timeOfDayReply = "Good day! 🌟 Ready to tackle your tasks?\n\n" +
		"Tell me what you need to get done, or ask to see your current tasks."

	capabilityReply = "**I'm here to make task management effortless!** ✨\n\n" +
		"**Create Tasks**\n" +
		"Just tell me what you need to do:\n" +
		"- \"Buy groceries tomorrow\"\n" +
		"- \"Call dentist at 2pm\"\n" +
		"- \"Review project proposal\"\n\n" +
		"**View Tasks**\n" +
		"Ask me to show your tasks:\n" +
		"- \"What tasks do I have?\"\n" +
		"- \"Show tasks due today\"\n" +
		"- \"List tasks labeled work\"\n\n" +
		"I'll automatically infer priorities, due dates, and labels to keep you organized!"

	identityReply = "I'm **DarkWave Task Manager** 🌙, your AI-powered task assistant!\n\n" +
		"I understand your natural language and create perfectly organized tasks in Todoist.\n\n" +
		"Just tell me what you need to do, and I'll handle the rest."

	fallbackReply = "I'm not sure I understand. 🤔\n\n" +
		"I can help you **create tasks** or **view your existing tasks**.\n\n" +
		"Try:\n" +
		"- Describing a task: \"Finish report by Friday\"\n" +
		"- Asking about tasks: \"What tasks do I have?\""
)

// conversationReply picks a canned response using finer-grained pattern
// matches than the classifier tiers.
func conversationReply(text string) string {
	normalized := strings.ToLower(strings.TrimSpace(text))

	switch {
	case greetingPattern.MatchString(normalized):
		return greetingReply
	case timeOfDayPattern.MatchString(normalized):
		return timeOfDayReply
	case capabilityPattern.MatchString(normalized):
		return capabilityReply
	case identityPattern.MatchString(normalized):
		return identityReply
	default:
		return fallbackReply
	}
}
