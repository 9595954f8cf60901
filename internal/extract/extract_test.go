package extract

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"darkwave-task-manager/pkg/llmprovider"
)

func TestParseRecord_RoundTrip(t *testing.T) {
	raw := `{
		"content": "Finish project report",
		"description": "Complete and submit quarterly project report",
		"priority": 4,
		"due_string": "Friday",
		"labels": ["work", "urgent", "reports"],
		"project_id": "2203306141"
	}`

	rec, err := parseRecord(raw)
	if err != nil {
		t.Fatalf("parseRecord() error = %v", err)
	}

	want := &TaskRecord{
		Content:     "Finish project report",
		Description: "Complete and submit quarterly project report",
		Priority:    4,
		DueString:   "Friday",
		Labels:      []string{"work", "urgent", "reports"},
		ProjectID:   "2203306141",
	}

	if !reflect.DeepEqual(rec, want) {
		t.Errorf("parseRecord() = %+v, want %+v", rec, want)
	}
}

func TestParseRecord_MinimalDefaults(t *testing.T) {
	rec, err := parseRecord(`{"content": "Buy groceries"}`)
	if err != nil {
		t.Fatalf("parseRecord() error = %v", err)
	}

	if rec.Content != "Buy groceries" {
		t.Errorf("Content = %q, want %q", rec.Content, "Buy groceries")
	}
	if rec.Description != "" {
		t.Errorf("Description = %q, want empty", rec.Description)
	}
	if rec.Priority != 3 {
		t.Errorf("Priority = %d, want default 3", rec.Priority)
	}
	if rec.DueString != "" {
		t.Errorf("DueString = %q, want empty", rec.DueString)
	}
	if rec.Labels == nil || len(rec.Labels) != 0 {
		t.Errorf("Labels = %v, want empty non-nil slice", rec.Labels)
	}
}

func TestParseRecord_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{
			name:    "missing content",
			raw:     `{"priority": 3, "labels": ["work"]}`,
			wantErr: ErrMissingContent,
		},
		{
			name:    "whitespace content",
			raw:     `{"content": "   "}`,
			wantErr: ErrMissingContent,
		},
		{
			name:    "priority too high",
			raw:     `{"content": "Buy milk", "priority": 5}`,
			wantErr: ErrInvalidPriority,
		},
		{
			name:    "priority too low",
			raw:     `{"content": "Buy milk", "priority": 0}`,
			wantErr: ErrInvalidPriority,
		},
		{
			name:    "guardrail error response",
			raw:     `{"error": "not a task"}`,
			wantErr: ErrServiceRefused,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseRecord(tc.raw)
			if err == nil {
				t.Fatal("parseRecord() expected error, got nil")
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("parseRecord() error = %v, want %v", err, tc.wantErr)
			}

			var extErr *ExtractionError
			if !errors.As(err, &extErr) {
				t.Fatalf("parseRecord() error type = %T, want *ExtractionError", err)
			}
			if extErr.Raw != tc.raw {
				t.Errorf("ExtractionError.Raw = %q, want raw output attached", extErr.Raw)
			}
		})
	}
}

func TestParseRecord_MalformedJSON(t *testing.T) {
	_, err := parseRecord("sure, here is your task: Buy milk")
	if err == nil {
		t.Fatal("parseRecord() expected error for non-JSON output")
	}

	var extErr *ExtractionError
	if !errors.As(err, &extErr) {
		t.Fatalf("parseRecord() error type = %T, want *ExtractionError", err)
	}
}

func TestParseRecord_CodeFencedOutput(t *testing.T) {
	raw := "```json\n{\"content\": \"Call dentist\", \"priority\": 3}\n```"

	rec, err := parseRecord(raw)
	if err != nil {
		t.Fatalf("parseRecord() error = %v", err)
	}
	if rec.Content != "Call dentist" {
		t.Errorf("Content = %q, want %q", rec.Content, "Call dentist")
	}
}

// stubProvider returns a fixed response text for Extract round-trip tests.
type stubProvider struct {
	text string
}

func (s *stubProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	return &llmprovider.Response{
		Content: llmprovider.Message{
			Role:  "assistant",
			Parts: []llmprovider.Part{{Text: s.text}},
		},
		ProviderName: "stub",
		ModelName:    "stub-model",
		Usage:        &llmprovider.Usage{},
	}, nil
}

func (s *stubProvider) Name() string  { return "stub" }
func (s *stubProvider) Model() string { return "stub-model" }

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Info(ctx context.Context, arg ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Error(ctx context.Context, arg ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func TestExtract_EndToEnd(t *testing.T) {
	provider := &stubProvider{
		text: `{"content": "Call mom", "priority": 3, "due_string": "tomorrow", "labels": ["calls", "personal"]}`,
	}

	manager := llmprovider.NewManager(
		[]llmprovider.Provider{provider},
		&llmprovider.Config{RetryAttempts: 1},
		nopLogger{},
	)

	extractor := New(nopLogger{}, manager)

	rec, err := extractor.Extract(context.Background(), "remind me to call mom tomorrow")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if rec.Content != "Call mom" {
		t.Errorf("Content = %q, want %q", rec.Content, "Call mom")
	}
	if rec.DueString != "tomorrow" {
		t.Errorf("DueString = %q, want %q", rec.DueString, "tomorrow")
	}
}
