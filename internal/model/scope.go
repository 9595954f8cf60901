package model

import "github.com/google/uuid"

// Scope carries per-request identity through the processing pipeline.
type Scope struct {
	RequestID string
	UserID    int64
	Username  string
	ChatID    int64
}

// NewScope creates a Scope with a fresh request ID.
func NewScope(userID int64, username string, chatID int64) Scope {
	return Scope{
		RequestID: uuid.NewString(),
		UserID:    userID,
		Username:  username,
		ChatID:    chatID,
	}
}
