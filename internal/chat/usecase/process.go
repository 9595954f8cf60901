package usecase

import (
	"context"
	"fmt"

	"darkwave-task-manager/internal/chat"
	"darkwave-task-manager/internal/model"
	"darkwave-task-manager/internal/router"
	"darkwave-task-manager/internal/task/repository"
)

// Process routes one message through the classifier and executes the
// selected branch. Collaborator errors pass through unmodified so the
// delivery layer can map each to a distinct user message.
func (uc *implUseCase) Process(ctx context.Context, sc model.Scope, input chat.ProcessInput) (chat.ProcessOutput, error) {
	mode := router.Classify(input.Text)
	uc.l.Infof(ctx, "chat.Process: request_id=%s mode=%s preview=%q",
		sc.RequestID, mode, preview(input.Text))

	switch mode {
	case router.ModeConversation:
		return chat.ProcessOutput{
			Mode:  mode,
			Reply: conversationReply(input.Text),
		}, nil

	case router.ModeRetrieve:
		return uc.processRetrieve(ctx, sc, input.Text)

	default:
		return uc.processCreate(ctx, sc, input.Text)
	}
}

func (uc *implUseCase) processRetrieve(ctx context.Context, sc model.Scope, text string) (chat.ProcessOutput, error) {
	filter := chat.BuildFilter(text)

	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		DueDate: filter.DueDate,
		Label:   filter.Label,
	})
	if err != nil {
		uc.l.Errorf(ctx, "chat.Process: request_id=%s listing failed: %v", sc.RequestID, err)
		return chat.ProcessOutput{Mode: router.ModeRetrieve}, err
	}

	uc.l.Infof(ctx, "chat.Process: request_id=%s retrieved %d tasks due_date=%q label=%q",
		sc.RequestID, len(tasks), filter.DueDate, filter.Label)

	return chat.ProcessOutput{
		Mode:  router.ModeRetrieve,
		Reply: renderTaskList(tasks, filter.Description()),
		Tasks: tasks,
	}, nil
}

func (uc *implUseCase) processCreate(ctx context.Context, sc model.Scope, text string) (chat.ProcessOutput, error) {
	record, err := uc.extractor.Extract(ctx, text)
	if err != nil {
		uc.l.Errorf(ctx, "chat.Process: request_id=%s extraction failed: %v", sc.RequestID, err)
		return chat.ProcessOutput{Mode: router.ModeCreate}, err
	}

	created, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		Content:     record.Content,
		Description: record.Description,
		Priority:    record.Priority,
		DueString:   record.DueString,
		Labels:      record.Labels,
		ProjectID:   record.ProjectID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "chat.Process: request_id=%s creation failed: %v", sc.RequestID, err)
		return chat.ProcessOutput{Mode: router.ModeCreate}, err
	}

	uc.l.Infof(ctx, "chat.Process: request_id=%s task created id=%s", sc.RequestID, created.ID)

	return chat.ProcessOutput{
		Mode:        router.ModeCreate,
		Reply:       renderCreationConfirmation(record, created),
		CreatedTask: &created,
	}, nil
}

// preview truncates a message for logging.
func preview(text string) string {
	const max = 50
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return fmt.Sprintf("%s...", string(runes[:max]))
}
