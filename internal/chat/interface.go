package chat

import (
	"context"

	"darkwave-task-manager/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Process routes one user message through mode classification and
	// executes exactly one branch: conversational reply, task listing,
	// or task creation.
	Process(ctx context.Context, sc model.Scope, input ProcessInput) (ProcessOutput, error)
}
