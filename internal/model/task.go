package model

// Task represents a task stored in Todoist.
type Task struct {
	ID          string   // Todoist task ID
	Content     string   // Task title
	Description string   // Optional free-text details
	Priority    int      // 1 (lowest) to 4 (highest)
	Due         string   // Human-readable due date (date portion only)
	Labels      []string // Label names attached to the task
	URL         string   // Deep link to the task in the Todoist web app
	ProjectID   string   // Project the task belongs to
}
