package extract

// TaskRecord is the structured result of extraction. Field names match
// the Todoist API v2 task creation schema so the record can be submitted
// without translation.
type TaskRecord struct {
	// Content is the task title, concise and actionable. Required.
	Content string `json:"content"`

	// Description holds extra context, only when the input supplies details.
	Description string `json:"description"`

	// Priority is 1 (lowest) to 4 (urgent). Defaults to 3.
	Priority int `json:"priority"`

	// DueString is a natural language due date ("tomorrow", "next Monday").
	// Never normalized to a calendar date here; Todoist parses it.
	DueString string `json:"due_string,omitempty"`

	// Labels categorize the task (e.g. ["work", "urgent", "calls"]).
	Labels []string `json:"labels"`

	// ProjectID is the destination project, when the input names one.
	ProjectID string `json:"project_id,omitempty"`
}
