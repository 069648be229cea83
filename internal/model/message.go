package model

import "time"

// Message is a category-targeted broadcast. Rows are immutable once created
// and are hard-deleted once older than the retention window; the delete runs
// lazily as a side effect of reads, so expired rows may linger between reads.
type Message struct {
	ID        string    `json:"id"`
	Category  Category  `json:"category"`
	Body      string    `json:"message"`
	CreatedAt time.Time `json:"timestamp"`
}

// MessageStats aggregates the currently visible (non-expired) messages.
type MessageStats struct {
	TotalMessages int              `json:"totalMessages"`
	CategoryCount map[Category]int `json:"categoryCount"`
	Messages      []Message        `json:"messages"`
}
