package models

import "time"

// Chat message roles.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "model"
)

// ChatSource is a citation attached to an assistant reply.
type ChatSource struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// ChatMessage is one turn in a learner's study-buddy transcript. Transcripts
// are session-scoped and never part of durable learner state.
type ChatMessage struct {
	ID        string       `json:"id"`
	Role      string       `json:"role"`
	Text      string       `json:"text"`
	Timestamp time.Time    `json:"timestamp"`
	Sources   []ChatSource `json:"sources,omitempty"`
}
