package todoist

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"darkwave-task-manager/internal/model"
	"darkwave-task-manager/internal/task/repository"
	pkgLog "darkwave-task-manager/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a new Todoist repository.
func New(client *Client, l pkgLog.Logger) repository.TodoistRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	req := createTaskRequest{
		Content:     opt.Content,
		Description: opt.Description,
		Priority:    opt.Priority,
		DueString:   opt.DueString,
		Labels:      opt.Labels,
		ProjectID:   opt.ProjectID,
	}

	var created apiTask
	if err := r.client.doJSON(ctx, http.MethodPost, "/tasks", nil, req, &created); err != nil {
		r.l.Errorf(ctx, "todoist repository: failed to create task: %v", err)
		return model.Task{}, err
	}

	r.l.Infof(ctx, "todoist repository: task created id=%s content=%q", created.ID, created.Content)
	return r.apiToTask(&created), nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	query := url.Values{}
	if opt.ProjectID != "" {
		query.Set("project_id", opt.ProjectID)
	}
	if opt.Label != "" {
		query.Set("label", opt.Label)
	}
	if filter := dueDateFilter(opt.DueDate); filter != "" {
		query.Set("filter", filter)
	}

	var tasks []apiTask
	if err := r.client.doJSON(ctx, http.MethodGet, "/tasks", query, nil, &tasks); err != nil {
		r.l.Errorf(ctx, "todoist repository: failed to list tasks: %v", err)
		return nil, err
	}

	r.l.Infof(ctx, "todoist repository: retrieved %d tasks", len(tasks))

	out := make([]model.Task, 0, len(tasks))
	for i := range tasks {
		out = append(out, r.apiToTask(&tasks[i]))
	}
	return out, nil
}

// dueDateFilter converts the convenience due date token into a Todoist
// filter query. "today" and "tomorrow" are passed as keywords; anything
// else is assumed to be an ISO date.
func dueDateFilter(dueDate string) string {
	switch strings.ToLower(dueDate) {
	case "":
		return ""
	case "today":
		return "today"
	case "tomorrow":
		return "tomorrow"
	default:
		return dueDate
	}
}

// apiToTask converts a Todoist API task object to the internal model.Task.
func (r *implRepository) apiToTask(t *apiTask) model.Task {
	due := ""
	if t.Due != nil {
		// Prefer the plain date; fall back to the combined datetime.
		due = t.Due.Date
		if due == "" {
			due = t.Due.Datetime
		}
	}

	return model.Task{
		ID:          t.ID,
		Content:     t.Content,
		Description: t.Description,
		Priority:    t.Priority,
		Due:         due,
		Labels:      t.Labels,
		URL:         BuildTaskURL(t.URL, t.ID),
		ProjectID:   t.ProjectID,
	}
}

// ---- Request/Response types scoped to this package ----

// createTaskRequest is the body for POST /tasks.
type createTaskRequest struct {
	Content     string   `json:"content"`
	Description string   `json:"description,omitempty"`
	Priority    int      `json:"priority,omitempty"`
	DueString   string   `json:"due_string,omitempty"`
	Labels      []string `json:"labels,omitempty"`
	ProjectID   string   `json:"project_id,omitempty"`
}

// apiTask is the Todoist API task object.
type apiTask struct {
	ID          string   `json:"id"`
	Content     string   `json:"content"`
	Description string   `json:"description"`
	Priority    int      `json:"priority"`
	ProjectID   string   `json:"project_id"`
	Labels      []string `json:"labels"`
	URL         string   `json:"url"`
	Due         *apiDue  `json:"due"`
}

// apiDue is the due date object attached to a task.
type apiDue struct {
	Date     string `json:"date"`
	Datetime string `json:"datetime"`
	String   string `json:"string"`
}
