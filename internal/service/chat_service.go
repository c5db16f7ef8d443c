package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/arkan-dev/eduverse-api/internal/models"
	"github.com/arkan-dev/eduverse-api/internal/repository"
	"github.com/arkan-dev/eduverse-api/pkg/ai"
)

// Fallback replies keep the conversation alive when the assistant is
// unavailable or fails mid-request.
const (
	chatUnavailableReply = "I'm having trouble connecting to my knowledge base right now. Please try again later."
	chatErrorReply       = "Sorry, I encountered an error processing your request."
)

// ChatService runs the study-buddy conversation: it sanitises learner input,
// maintains the session transcript and degrades to a fallback reply whenever
// the assistant fails.
type ChatService interface {
	Send(ctx context.Context, learnerKey, message string) (models.ChatMessage, error)
	History(ctx context.Context, learnerKey string) ([]models.ChatMessage, error)
	ClearHistory(ctx context.Context, learnerKey string) error
}

type chatService struct {
	repo      repository.ChatRepository
	assistant ai.Assistant
	sanitizer *bluemonday.Policy
	timeout   time.Duration
	logger    zerolog.Logger
	now       func() time.Time
}

// NewChatService builds the chat orchestrator. assistant may be nil, in which
// case every turn answers with the unavailable fallback.
func NewChatService(repo repository.ChatRepository, assistant ai.Assistant, timeout time.Duration, logger zerolog.Logger) ChatService {
	return &chatService{
		repo:      repo,
		assistant: assistant,
		sanitizer: bluemonday.StrictPolicy(),
		timeout:   timeout,
		logger:    logger.With().Str("component", "chat_service").Logger(),
		now:       time.Now,
	}
}

// Send appends the learner's turn to the transcript, asks the assistant with
// the full history as context and appends the reply. Assistant failures never
// propagate; the learner always receives a message.
func (s *chatService) Send(ctx context.Context, learnerKey, message string) (models.ChatMessage, error) {
	text := strings.TrimSpace(s.sanitizer.Sanitize(message))

	userTurn := models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      models.ChatRoleUser,
		Text:      text,
		Timestamp: s.now(),
	}
	if err := s.repo.Append(ctx, learnerKey, userTurn); err != nil {
		return models.ChatMessage{}, err
	}

	history, err := s.repo.History(ctx, learnerKey)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to load transcript, answering without context")
		history = []models.ChatMessage{userTurn}
	}

	reply := s.ask(ctx, history)

	assistantTurn := models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      models.ChatRoleAssistant,
		Text:      reply.Text,
		Timestamp: s.now(),
	}
	for _, source := range reply.Sources {
		assistantTurn.Sources = append(assistantTurn.Sources, models.ChatSource{Title: source.Title, URI: source.URI})
	}

	if err := s.repo.Append(ctx, learnerKey, assistantTurn); err != nil {
		return models.ChatMessage{}, err
	}

	return assistantTurn, nil
}

func (s *chatService) History(ctx context.Context, learnerKey string) ([]models.ChatMessage, error) {
	return s.repo.History(ctx, learnerKey)
}

func (s *chatService) ClearHistory(ctx context.Context, learnerKey string) error {
	return s.repo.Clear(ctx, learnerKey)
}

func (s *chatService) ask(ctx context.Context, history []models.ChatMessage) ai.Reply {
	if s.assistant == nil {
		return ai.Reply{Text: chatUnavailableReply}
	}

	turns := make([]ai.Turn, 0, len(history))
	for _, message := range history {
		role := ai.TurnRoleUser
		if message.Role == models.ChatRoleAssistant {
			role = ai.TurnRoleAssistant
		}
		turns = append(turns, ai.Turn{Role: role, Text: message.Text})
	}

	askCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := s.assistant.Reply(askCtx, turns)
	if err != nil {
		s.logger.Error().Err(err).Msg("assistant reply failed")
		return ai.Reply{Text: chatErrorReply}
	}

	return reply
}
