package telegram

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// historyStore keeps the recent messages of each chat. Entries expire
// after an hour of inactivity; history is display context only, so
// losing it is harmless.
type historyStore struct {
	entries *expirable.LRU[int64, []string]
	size    int
}

func newHistoryStore(size int) *historyStore {
	return &historyStore{
		entries: expirable.NewLRU[int64, []string](
			1000,
			nil,
			time.Hour,
		),
		size: size,
	}
}

// Get returns the chat's recent messages, oldest first.
func (h *historyStore) Get(chatID int64) []string {
	msgs, _ := h.entries.Get(chatID)
	return msgs
}

// Append records a message, dropping the oldest when over capacity.
func (h *historyStore) Append(chatID int64, text string) {
	msgs, _ := h.entries.Get(chatID)
	msgs = append(msgs, text)
	if len(msgs) > h.size {
		msgs = msgs[len(msgs)-h.size:]
	}
	h.entries.Add(chatID, msgs)
}
