package todoist

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"darkwave-task-manager/internal/task/repository"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, func()) {
	t.Helper()
	ts := httptest.NewServer(handler)
	client := NewClient(ts.URL, "test-token")
	client.retryDelay = time.Millisecond
	return client, ts.Close
}

func TestClient_AuthHeaderAndDecode(t *testing.T) {
	client, closeFn := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization header = %q, want bearer token", got)
		}
		json.NewEncoder(w).Encode(apiTask{ID: "1", Content: "Buy milk"})
	}))
	defer closeFn()

	var task apiTask
	err := client.doJSON(context.Background(), http.MethodGet, "/tasks", nil, nil, &task)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.ID != "1" || task.Content != "Buy milk" {
		t.Errorf("unexpected task: %+v", task)
	}
}

func TestClient_RetryThenSucceed(t *testing.T) {
	var calls int32
	client, closeFn := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(apiTask{ID: "1"})
	}))
	defer closeFn()

	var task apiTask
	err := client.doJSON(context.Background(), http.MethodGet, "/tasks", nil, nil, &task)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("expected 3 calls (2 failures + 1 success), got %d", got)
	}
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: repository.ErrAuthentication},
		{name: "forbidden", status: http.StatusForbidden, wantErr: repository.ErrAuthentication},
		{name: "bad request", status: http.StatusBadRequest, body: `{"error": "content is required"}`, wantErr: repository.ErrValidation},
		{name: "not found", status: http.StatusNotFound, wantErr: repository.ErrNotFound},
		{name: "rate limited after retries", status: http.StatusTooManyRequests, wantErr: repository.ErrRateLimit},
		{name: "server error after retries", status: http.StatusInternalServerError, wantErr: repository.ErrService},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client, closeFn := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				if tc.body != "" {
					w.Write([]byte(tc.body))
				}
			}))
			defer closeFn()

			err := client.doJSON(context.Background(), http.MethodGet, "/tasks", nil, nil, nil)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("doJSON() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestClient_ConnectionError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "test-token")
	client.retryDelay = time.Millisecond

	err := client.doJSON(context.Background(), http.MethodGet, "/tasks", nil, nil, nil)
	if !errors.Is(err, repository.ErrConnection) {
		t.Errorf("doJSON() error = %v, want %v", err, repository.ErrConnection)
	}
}
