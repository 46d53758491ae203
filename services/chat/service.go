package chat

import (
	"context"
	"strings"
	"time"

	leadRepo "framelight/database/repository/lead"
	messageRepo "framelight/database/repository/message"
	"framelight/models"
	ai "framelight/services/intelligence"

	"go.uber.org/zap"
)

// defaultReplyTimeout bounds the assistant responder call so a hung upstream
// fails the request instead of blocking it indefinitely.
const defaultReplyTimeout = 30 * time.Second

// LeadNotifier is told when a turn created or enriched a lead, so the studio
// can follow up. Delivery is best effort and must not fail the chat turn.
type LeadNotifier interface {
	LeadCaptured(ctx context.Context, lead models.Lead, event models.LeadEvent)
}

// ChatService is the conversation orchestrator: it owns one inbound turn from
// validation through persistence, assistant reply, lead extraction, and lead
// merge.
type ChatService interface {
	HandleTurn(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
	History(ctx context.Context, sessionID string) ([]models.Message, error)
}

// DefaultChatService implements ChatService.
type DefaultChatService struct {
	Messages     messageRepo.MessageRepository
	Leads        leadRepo.LeadRepository
	Responder    ai.Responder
	Extractor    *LeadExtractor
	Notifier     LeadNotifier
	Logger       *zap.Logger
	ReplyTimeout time.Duration
}

func (s *DefaultChatService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}

// HandleTurn runs one conversational turn:
//
//	validate -> append user message -> load history -> responder ->
//	append reply -> extract lead fields -> merge into lead store
//
// The steps are deliberately not wrapped in a cross-store transaction.
// A responder failure leaves the user message persisted, and a failure after
// the reply leaves the lead merge undone; both are recovered naturally
// because the next turn re-reads full history and re-derives the extraction.
func (s *DefaultChatService) HandleTurn(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	sessionID := strings.TrimSpace(req.SessionID)
	message := strings.TrimSpace(req.Message)
	if sessionID == "" {
		return nil, NewValidationError("session_id is required")
	}
	if message == "" {
		return nil, NewValidationError("message is required")
	}

	if _, err := s.Messages.Append(ctx, sessionID, models.RoleUser, message); err != nil {
		return nil, &StorageError{Op: "append user message", Err: err}
	}

	history, err := s.Messages.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, &StorageError{Op: "load history", Err: err}
	}

	timeout := s.ReplyTimeout
	if timeout <= 0 {
		timeout = defaultReplyTimeout
	}
	replyCtx, cancel := context.WithTimeout(ctx, timeout)
	reply, err := s.Responder.Reply(replyCtx, history)
	cancel()
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}

	replyMsg, err := s.Messages.Append(ctx, sessionID, models.RoleAssistant, reply)
	if err != nil {
		return nil, &StorageError{Op: "append assistant reply", Err: err}
	}
	history = append(history, *replyMsg)

	fields := s.Extractor.Extract(history)
	lead, event, err := s.Leads.Upsert(ctx, sessionID, fields)
	if err != nil {
		return nil, &StorageError{Op: "merge lead", Err: err}
	}

	if event != models.LeadUnchanged {
		s.logger().Info("lead captured",
			zap.String("sessionID", sessionID),
			zap.String("event", string(event)),
		)
		if s.Notifier != nil && lead != nil {
			s.Notifier.LeadCaptured(ctx, *lead, event)
		}
	}

	return &models.ChatResponse{Response: reply, LeadEvent: event}, nil
}

// History returns the session's conversation, oldest first. Unknown sessions
// yield an empty slice.
func (s *DefaultChatService) History(ctx context.Context, sessionID string) ([]models.Message, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, NewValidationError("session_id is required")
	}
	history, err := s.Messages.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, &StorageError{Op: "load history", Err: err}
	}
	return history, nil
}
