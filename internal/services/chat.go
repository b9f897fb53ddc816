package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"bpo-website/internal/models"
)

// Sampling parameters shared by every completion provider.
const (
	ChatTemperature = 0.7
	ChatMaxTokens   = 500
	MaxChatHistory  = 20
)

const SystemPrompt = `You are the virtual assistant for Meridian BPO, a business process outsourcing company offering customer experience outsourcing, medical billing and coding, medical imaging support and back-office operations, plus a professional training academy.

Answer questions about services, industries served, delivery locations, training programs and careers. Keep answers short, friendly and factual. Do not invent prices or contractual commitments; offer to connect the visitor with the sales team instead. When the visitor is a prospective client, ask about their industry, team size, timeline and the best way to reach them.`

// Completer produces the assistant's next message for a conversation.
type Completer interface {
	Complete(ctx context.Context, system string, history []models.ChatMessage) (string, error)
}

type ChatService struct {
	completer Completer
	alerts    AlertPublisher
	log       *zap.Logger
	now       func() time.Time
}

// NewChatService accepts a nil completer; Reply then fails with
// ErrNotConfigured.
func NewChatService(c Completer, alerts AlertPublisher, log *zap.Logger) *ChatService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ChatService{completer: c, alerts: alerts, log: log, now: time.Now}
}

func (s *ChatService) Reply(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	if err := validateConversation(req.Messages); err != nil {
		return nil, err
	}
	if s.completer == nil {
		return nil, ErrNotConfigured
	}

	history := req.Messages
	if len(history) > MaxChatHistory {
		history = history[len(history)-MaxChatHistory:]
	}

	reply, err := s.completer.Complete(ctx, SystemPrompt, history)
	if err == nil && strings.TrimSpace(reply) == "" {
		err = errors.New("empty completion")
	}
	if err != nil {
		s.log.Error("chat completion failed", zap.Error(err))
		return nil, &UpstreamError{Step: "completion", Err: err}
	}

	lead := QualifyLead(userTranscript(req.Messages))
	if lead.Qualified && s.alerts != nil {
		s.alerts.PublishLeadAlert(ctx, models.LeadAlert{
			Type:      "chat_qualified",
			Score:     lead.Score,
			Signals:   lead.Signals,
			CreatedAt: s.now().UTC(),
		})
	}

	return &models.ChatResponse{
		Message: models.ChatMessage{
			Role:      "assistant",
			Content:   strings.TrimSpace(reply),
			Timestamp: s.now().UTC(),
		},
		Lead: lead,
	}, nil
}

func validateConversation(messages []models.ChatMessage) error {
	if len(messages) == 0 {
		return &ValidationError{Fields: map[string]string{"messages": "messages is required"}}
	}
	for _, m := range messages {
		if m.Role != "user" && m.Role != "assistant" {
			return &ValidationError{Fields: map[string]string{"messages": "role must be user or assistant"}}
		}
	}
	last := messages[len(messages)-1]
	if last.Role != "user" || strings.TrimSpace(last.Content) == "" {
		return &ValidationError{Fields: map[string]string{"messages": "last message must be a non-empty user message"}}
	}
	return nil
}
