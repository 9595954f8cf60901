package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"darkwave-task-manager/pkg/llmprovider"
)

// rawRecord mirrors TaskRecord but keeps priority as a pointer so an
// absent field can be told apart from an explicit zero, and carries the
// error slot the prompt's guardrail uses.
type rawRecord struct {
	Content     string   `json:"content"`
	Description string   `json:"description"`
	Priority    *int     `json:"priority"`
	DueString   string   `json:"due_string"`
	Labels      []string `json:"labels"`
	ProjectID   string   `json:"project_id"`
	Error       string   `json:"error"`
}

// Extract sends the input through the LLM and validates the response
// into a TaskRecord. Any structural or range violation is a terminal
// ExtractionError for this request; no retry happens here.
func (e *implExtractor) Extract(ctx context.Context, text string) (*TaskRecord, error) {
	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: systemPrompt}},
		},
		Messages: []llmprovider.Message{
			{
				Role:  "user",
				Parts: []llmprovider.Part{{Text: text}},
			},
		},
		Temperature: e.temperature,
		MaxTokens:   e.maxTokens,
	}

	e.l.Debugf(ctx, "extract.Extract: invoking LLM for input %q", text)

	resp, err := e.llm.GenerateContent(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("extract.Extract: LLM call failed: %w", err)
	}

	raw := resp.Text()
	record, err := parseRecord(raw)
	if err != nil {
		e.l.Warnf(ctx, "extract.Extract: parsing failed for input %q: %v", text, err)
		return nil, err
	}

	e.l.Infof(ctx, "extract.Extract: parsed task content=%q priority=%d due=%q labels=%v",
		record.Content, record.Priority, record.DueString, record.Labels)

	return record, nil
}

// parseRecord validates raw service output against the TaskRecord schema.
// Required fields are never defaulted; optional ones are.
func parseRecord(raw string) (*TaskRecord, error) {
	cleaned := stripCodeFences(raw)

	var rec rawRecord
	if err := json.Unmarshal([]byte(cleaned), &rec); err != nil {
		return nil, &ExtractionError{Raw: raw, Err: fmt.Errorf("malformed JSON: %w", err)}
	}

	if rec.Error != "" {
		return nil, &ExtractionError{Raw: raw, Err: ErrServiceRefused}
	}

	if strings.TrimSpace(rec.Content) == "" {
		return nil, &ExtractionError{Raw: raw, Err: ErrMissingContent}
	}

	priority := 3
	if rec.Priority != nil {
		priority = *rec.Priority
	}
	if priority < 1 || priority > 4 {
		return nil, &ExtractionError{Raw: raw, Err: ErrInvalidPriority}
	}

	labels := rec.Labels
	if labels == nil {
		labels = []string{}
	}

	return &TaskRecord{
		Content:     rec.Content,
		Description: rec.Description,
		Priority:    priority,
		DueString:   rec.DueString,
		Labels:      labels,
		ProjectID:   rec.ProjectID,
	}, nil
}

// stripCodeFences removes a surrounding markdown code fence, which some
// models wrap JSON output in despite instructions.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
