package ai

import "context"

// Turn roles understood by the assistant transport.
const (
	TurnRoleUser      = "user"
	TurnRoleAssistant = "assistant"
)

// Turn is one prior exchange in the conversation.
type Turn struct {
	Role string
	Text string
}

// Source is a citation attached to a reply.
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// Reply is the assistant's answer to the latest user turn.
type Reply struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources,omitempty"`
}

// Assistant describes a conversational model capable of answering learner
// questions. Implementations return an error on transport failure; callers
// are expected to degrade to a fallback reply rather than surface it.
type Assistant interface {
	Reply(ctx context.Context, turns []Turn) (Reply, error)
}
