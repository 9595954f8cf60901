package todoist

import "fmt"

// taskURLTemplate builds a deep link when the API response omits the
// canonical url field.
const taskURLTemplate = "https://app.todoist.com/app/task/%s"

// BuildTaskURL returns the canonical task link. The url field from the
// API response wins; otherwise a link is constructed from the task ID.
// Returns empty when neither is available.
func BuildTaskURL(apiURL, taskID string) string {
	if apiURL != "" {
		return apiURL
	}
	if taskID == "" {
		return ""
	}
	return fmt.Sprintf(taskURLTemplate, taskID)
}
