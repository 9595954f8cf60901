package usecase

import (
	"darkwave-task-manager/internal/chat"
	"darkwave-task-manager/internal/extract"
	"darkwave-task-manager/internal/task/repository"
	pkgLog "darkwave-task-manager/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	extractor extract.Extractor
	repo      repository.TodoistRepository
}

// New creates a new chat UseCase instance.
func New(l pkgLog.Logger, extractor extract.Extractor, repo repository.TodoistRepository) chat.UseCase {
	return &implUseCase{
		l:         l,
		extractor: extractor,
		repo:      repo,
	}
}
