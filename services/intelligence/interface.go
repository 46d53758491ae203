package ai

import (
	"context"

	"framelight/models"
)

// Responder produces the next assistant utterance from the conversation so
// far. The history arrives oldest first and ends with the visitor's latest
// message. Implementations are expected to respect ctx deadlines; the chat
// service bounds every call.
type Responder interface {
	Reply(ctx context.Context, history []models.Message) (string, error)
}
