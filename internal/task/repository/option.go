package repository

// CreateTaskOptions holds the parameters for creating a task in Todoist.
type CreateTaskOptions struct {
	Content     string   // Task title (required)
	Description string   // Optional free-text details
	Priority    int      // 1 (lowest) to 4 (urgent)
	DueString   string   // Natural language due date, parsed by Todoist
	Labels      []string // Label names
	ProjectID   string   // Destination project (optional)
}

// ListTasksOptions holds the parameters for listing tasks from Todoist.
// All filters are optional and combine independently.
type ListTasksOptions struct {
	ProjectID string // Filter by project ID
	Label     string // Filter by label name
	DueDate   string // "today", "tomorrow", or an ISO date (YYYY-MM-DD)
}
