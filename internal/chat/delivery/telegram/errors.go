package telegram

import (
	"errors"
	"fmt"

	"darkwave-task-manager/internal/extract"
	"darkwave-task-manager/internal/task/repository"
)

// userMessage maps a processing error to a distinct, user-actionable
// reply. Collaborator failures are never collapsed into one generic
// message; only truly unexpected errors hide their detail.
func userMessage(err error) string {
	var extErr *extract.ExtractionError
	if errors.As(err, &extErr) {
		return "🤔 I couldn't turn that into a task.\n\n" +
			"Please try rephrasing your request or provide more specific details."
	}

	switch {
	case errors.Is(err, repository.ErrAuthentication):
		return "🔑 **Authentication Error**\n\n" +
			"Invalid Todoist API token. Please check the TODOIST_API_TOKEN configuration."

	case errors.Is(err, repository.ErrValidation):
		return fmt.Sprintf("⚠️ **Todoist Error**\n\nInvalid task data: %v", err)

	case errors.Is(err, repository.ErrRateLimit):
		return "⚠️ **Todoist Error**\n\n" +
			"Todoist API rate limit exceeded. Please wait a moment before trying again."

	case errors.Is(err, repository.ErrNotFound):
		return "⚠️ **Todoist Error**\n\n" +
			"Resource not found. The requested item may have been deleted."

	case errors.Is(err, repository.ErrTimeout):
		return "⚠️ **Todoist Error**\n\n" +
			"Request to Todoist API timed out. Please try again."

	case errors.Is(err, repository.ErrConnection):
		return "⚠️ **Todoist Error**\n\n" +
			"Unable to connect to Todoist API. Check your internet connection."

	case errors.Is(err, repository.ErrService):
		return "⚠️ **Todoist Error**\n\n" +
			"Todoist API error. Please try again later."

	default:
		return "❌ **Unexpected Error**\n\n" +
			"Something went wrong while processing your request. Please try again."
	}
}
