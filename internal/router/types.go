package router

// Mode is the classified intent category of one user input.
type Mode string

const (
	// ModeConversation covers greetings and meta questions, no task operations
	ModeConversation Mode = "conversation"
	// ModeCreate creates a new task from a natural language description
	ModeCreate Mode = "create"
	// ModeRetrieve queries and displays existing tasks
	ModeRetrieve Mode = "retrieve"
)
