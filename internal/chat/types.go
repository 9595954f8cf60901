package chat

import (
	"fmt"

	"darkwave-task-manager/internal/model"
	"darkwave-task-manager/internal/router"
)

// ProcessInput is the input for processing one user message.
type ProcessInput struct {
	Text    string   // Raw user message
	History []string // Prior messages in this chat, oldest first (display only)
}

// ProcessOutput is the result of processing one user message.
type ProcessOutput struct {
	Mode  router.Mode // Branch the message was routed to
	Reply string      // Markdown reply for the presentation layer

	// CreatedTask is set when Mode is ModeCreate and creation succeeded.
	CreatedTask *model.Task

	// Tasks holds the listing when Mode is ModeRetrieve.
	Tasks []model.Task
}

// Filter holds derived query constraints for listing tasks. Both fields
// are independently optional; empty means no filter on that dimension.
type Filter struct {
	DueDate string // "today" when a due-today token was detected
	Label   string // Label name captured from the query
}

// Description returns the human-readable filter description used in
// listing headers ("due today", "labeled 'work'"). Display only.
func (f Filter) Description() string {
	if f.Label != "" {
		return fmt.Sprintf("labeled '%s'", f.Label)
	}
	if f.DueDate != "" {
		return "due " + f.DueDate
	}
	return ""
}
