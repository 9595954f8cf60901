package usecase

import (
	"fmt"
	"strings"

	"darkwave-task-manager/internal/extract"
	"darkwave-task-manager/internal/model"
)

// renderTaskList formats a task listing as markdown. filterDesc is the
// human-readable filter description ("due today", "labeled 'work'") and
// may be empty.
func renderTaskList(tasks []model.Task, filterDesc string) string {
	if len(tasks) == 0 {
		var sb strings.Builder
		sb.WriteString("You don't have any active tasks right now. ✨\n\n")
		if filterDesc != "" {
			sb.WriteString(fmt.Sprintf("No tasks found %s.\n\n", filterDesc))
		}
		sb.WriteString("Try creating a task like:\n")
		sb.WriteString("- \"Buy groceries tomorrow\"\n")
		sb.WriteString("- \"Call dentist at 2pm\"\n")
		sb.WriteString("- \"Review project proposal\"")
		return sb.String()
	}

	count := len(tasks)
	itemWord := "items"
	if count == 1 {
		itemWord = "item"
	}

	var sb strings.Builder
	if filterDesc != "" {
		sb.WriteString(fmt.Sprintf("### Tasks %s (%d %s)\n\n", filterDesc, count, itemWord))
	} else {
		sb.WriteString(fmt.Sprintf("### Your Tasks (%d %s)\n\n", count, itemWord))
	}

	lines := make([]string, 0, count)
	for _, t := range tasks {
		lines = append(lines, "- "+renderTaskLine(t))
	}
	sb.WriteString(strings.Join(lines, "\n"))

	return sb.String()
}

// renderTaskLine builds one listing bullet: bold title, optional date
// marker, optional italic labels, optional deep link.
func renderTaskLine(t model.Task) string {
	content := t.Content
	if content == "" {
		content = "Untitled task"
	}

	parts := []string{fmt.Sprintf("**%s**", content)}

	if t.Due != "" {
		parts = append(parts, fmt.Sprintf("📅 %s", dateOnly(t.Due)))
	}

	if len(t.Labels) > 0 {
		italics := make([]string, 0, len(t.Labels))
		for _, label := range t.Labels {
			italics = append(italics, fmt.Sprintf("_%s_", label))
		}
		parts = append(parts, strings.Join(italics, ", "))
	}

	line := strings.Join(parts, " · ")

	if t.URL != "" {
		line += fmt.Sprintf(" · [View in Todoist](%s)", t.URL)
	}

	return line
}

// dateOnly strips the time-of-day component from a combined date-time.
func dateOnly(due string) string {
	if idx := strings.Index(due, "T"); idx >= 0 {
		return due[:idx]
	}
	return due
}

// priorityBadges maps task priority to a display badge.
var priorityBadges = map[int]string{
	4: "🔴 Urgent",
	2: "🟡 High",
	3: "🟢 Medium",
	1: "⚪ Low",
}

// renderCreationConfirmation formats the extraction preview and the
// creation confirmation for a newly created task.
func renderCreationConfirmation(record *extract.TaskRecord, created model.Task) string {
	var sb strings.Builder

	sb.WriteString("### 📋 Task Preview\n\n")
	sb.WriteString(fmt.Sprintf("**Title:** %s\n", record.Content))
	if record.Description != "" {
		sb.WriteString(fmt.Sprintf("**Description:** %s\n", record.Description))
	}

	badge, ok := priorityBadges[record.Priority]
	if !ok {
		badge = "Unknown"
	}
	sb.WriteString(fmt.Sprintf("**Priority:** %s\n", badge))

	if record.DueString != "" {
		sb.WriteString(fmt.Sprintf("**Due:** %s\n", record.DueString))
	}
	if len(record.Labels) > 0 {
		sb.WriteString(fmt.Sprintf("**Labels:** %s\n", strings.Join(record.Labels, ", ")))
	}

	sb.WriteString("\n✅ **Task created successfully!**\n\n")
	sb.WriteString(fmt.Sprintf("Task ID: `%s`\n\n", created.ID))

	if created.URL != "" {
		sb.WriteString(fmt.Sprintf("[View in Todoist](%s)", created.URL))
	} else {
		sb.WriteString("_Note: Unable to generate Todoist link_")
	}

	return sb.String()
}
