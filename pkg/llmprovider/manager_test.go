package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	failTimes  int
	response   *Response
	callCount  int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.shouldFail {
		return nil, errors.New("mock provider error")
	}
	if m.failTimes > 0 && m.callCount <= m.failTimes {
		return nil, errors.New("transient mock error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoCount int
	warnCount int
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    { m.infoCount++ }
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  { m.infoCount++ }
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    { m.warnCount++ }
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  { m.warnCount++ }
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                  {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {
}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

func newTestResponse(provider, model, text string) *Response {
	return &Response{
		Content: Message{
			Role:  "assistant",
			Parts: []Part{{Text: text}},
		},
		ProviderName: provider,
		ModelName:    model,
		Usage: &Usage{
			InputTokens:  100,
			OutputTokens: 50,
			TotalTokens:  150,
		},
	}
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{
		name:     "primary",
		model:    "primary-model",
		response: newTestResponse("primary", "primary-model", "Hello from primary"),
	}

	logger := &mockLogger{}
	config := &Config{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      10 * time.Millisecond,
	}

	manager := NewManager([]Provider{primary}, config, logger)

	req := &Request{
		Messages: []Message{
			{Role: "user", Parts: []Part{{Text: "Hello"}}},
		},
	}

	resp, err := manager.GenerateContent(context.Background(), req)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "primary" {
		t.Errorf("Expected provider name 'primary', got: %s", resp.ProviderName)
	}
	if resp.Text() != "Hello from primary" {
		t.Errorf("Unexpected response text: %s", resp.Text())
	}
	if primary.callCount != 1 {
		t.Errorf("Expected 1 call to primary, got: %d", primary.callCount)
	}
}

func TestGenerateContent_FallbackToSecondaryProvider(t *testing.T) {
	primary := &mockProvider{
		name:       "primary",
		model:      "primary-model",
		shouldFail: true,
	}
	secondary := &mockProvider{
		name:     "secondary",
		model:    "secondary-model",
		response: newTestResponse("secondary", "secondary-model", "Hello from secondary"),
	}

	logger := &mockLogger{}
	config := &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      time.Millisecond,
	}

	manager := NewManager([]Provider{primary, secondary}, config, logger)

	resp, err := manager.GenerateContent(context.Background(), &Request{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("Expected provider name 'secondary', got: %s", resp.ProviderName)
	}
	if primary.callCount != 2 {
		t.Errorf("Expected 2 calls to primary (retries), got: %d", primary.callCount)
	}
	if logger.warnCount == 0 {
		t.Error("Expected a warn log for the failed provider")
	}
}

func TestGenerateContent_RetryThenSucceed(t *testing.T) {
	flaky := &mockProvider{
		name:      "flaky",
		model:     "flaky-model",
		failTimes: 2,
		response:  newTestResponse("flaky", "flaky-model", "Recovered"),
	}

	logger := &mockLogger{}
	config := &Config{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      time.Millisecond,
	}

	manager := NewManager([]Provider{flaky}, config, logger)

	resp, err := manager.GenerateContent(context.Background(), &Request{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.Text() != "Recovered" {
		t.Errorf("Unexpected response text: %s", resp.Text())
	}
	if flaky.callCount != 3 {
		t.Errorf("Expected 3 calls (2 failures + 1 success), got: %d", flaky.callCount)
	}
}

func TestGenerateContent_AllProvidersFail(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m1", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "m2", shouldFail: true}

	logger := &mockLogger{}
	config := &Config{
		FallbackEnabled: true,
		RetryAttempts:   1,
		RetryDelay:      time.Millisecond,
	}

	manager := NewManager([]Provider{primary, secondary}, config, logger)

	_, err := manager.GenerateContent(context.Background(), &Request{})
	if err == nil {
		t.Fatal("Expected error when all providers fail")
	}
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Errorf("Expected ErrAllProvidersFailed, got: %v", err)
	}
	if primary.callCount != 1 || secondary.callCount != 1 {
		t.Errorf("Expected 1 call each, got: primary=%d secondary=%d",
			primary.callCount, secondary.callCount)
	}
}

func TestGenerateContent_FallbackDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m1", shouldFail: true}
	secondary := &mockProvider{
		name:     "secondary",
		model:    "m2",
		response: newTestResponse("secondary", "m2", "Should not reach"),
	}

	logger := &mockLogger{}
	config := &Config{
		FallbackEnabled: false,
		RetryAttempts:   1,
		RetryDelay:      time.Millisecond,
	}

	manager := NewManager([]Provider{primary, secondary}, config, logger)

	_, err := manager.GenerateContent(context.Background(), &Request{})
	if err == nil {
		t.Fatal("Expected error when fallback is disabled and primary fails")
	}
	if secondary.callCount != 0 {
		t.Errorf("Expected secondary to never be called, got: %d calls", secondary.callCount)
	}
}

func TestGenerateContent_NoProviders(t *testing.T) {
	manager := NewManager(nil, &Config{}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), &Request{})
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got: %v", err)
	}
}

func TestGenerateContent_GlobalTimeout(t *testing.T) {
	slow := &mockProvider{name: "slow", model: "m1", shouldFail: true}

	logger := &mockLogger{}
	config := &Config{
		FallbackEnabled: true,
		RetryAttempts:   5,
		RetryDelay:      50 * time.Millisecond,
		MaxTotalTimeout: 20 * time.Millisecond,
	}

	manager := NewManager([]Provider{slow}, config, logger)

	start := time.Now()
	_, err := manager.GenerateContent(context.Background(), &Request{})
	if err == nil {
		t.Fatal("Expected error from global timeout")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Expected early exit from global timeout, took: %v", elapsed)
	}
}
