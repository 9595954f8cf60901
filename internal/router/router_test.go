package router

import "testing"

func TestClassify_Conversation(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "whitespace only", input: "   \t\n  "},
		{name: "hi", input: "hi"},
		{name: "hello with punctuation", input: "Hello!"},
		{name: "hey", input: "hey"},
		{name: "greetings", input: "Greetings"},
		{name: "good morning", input: "Good morning"},
		{name: "good evening with punctuation", input: "good evening!?"},
		{name: "capability question", input: "What can you do?"},
		{name: "how it works", input: "how do you work"},
		{name: "help request", input: "Can you help me please"},
		{name: "identity question", input: "who are you"},
		{name: "what are you", input: "So what are you exactly?"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.input); got != ModeConversation {
				t.Errorf("Classify(%q) = %v, want %v", tc.input, got, ModeConversation)
			}
		})
	}
}

func TestClassify_Create(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "leading add", input: "add buy groceries"},
		{name: "leading create", input: "Create a report for Monday"},
		{name: "leading remind me to", input: "remind me to call mom"},
		{name: "leading i need to", input: "I need to finish the deck"},
		{name: "todo prefix", input: "todo: water the plants"},
		{name: "add with list word", input: "Add buy milk to my list"},
		{name: "create with task word", input: "please create a task for the review"},
		{name: "my task is statement", input: "My task is to finish the report"},
		{name: "ambiguous single word", input: "meeting"},
		{name: "unrecognized text", input: "random text"},
		{name: "plain description", input: "buy groceries tomorrow"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.input); got != ModeCreate {
				t.Errorf("Classify(%q) = %v, want %v", tc.input, got, ModeCreate)
			}
		})
	}
}

func TestClassify_Retrieve(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "whats on my", input: "What's on my plate today?"},
		{name: "do i have tasks", input: "do I have any tasks?"},
		{name: "possessive my tasks", input: "my tasks"},
		{name: "possessive my todo", input: "what about my todo"},
		{name: "my task without is", input: "my task"},
		{name: "what tasks question", input: "what tasks do I have?"},
		{name: "show todo list", input: "show my todo list"},
		{name: "check to-do", input: "check my to-do"},
		{name: "view tasks imperative", input: "view tasks"},
		{name: "list tasks imperative", input: "list tasks"},
		{name: "due today", input: "anything due today?"},
		{name: "overdue", input: "which ones are overdue"},
		{name: "labeled query", input: "tasks labeled work"},
		{name: "tagged query", input: "tasks tagged urgent"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.input); got != ModeRetrieve {
				t.Errorf("Classify(%q) = %v, want %v", tc.input, got, ModeRetrieve)
			}
		})
	}
}

// Create precedence over retrieve is absolute: a creation imperative wins
// even when the text also mentions tasks or lists.
func TestClassify_CreateBeatsRetrieve(t *testing.T) {
	tests := []string{
		"Add buy milk to my list",
		"add a task for tomorrow",
		"remind me to check my tasks later",
		"create a todo for the trip",
	}

	for _, input := range tests {
		if got := Classify(input); got != ModeCreate {
			t.Errorf("Classify(%q) = %v, want %v", input, got, ModeCreate)
		}
	}
}
