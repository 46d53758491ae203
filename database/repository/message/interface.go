package messageRepo

import (
	"context"

	"framelight/models"
)

// MessageRepository is the append-only conversation log. History is immutable
// by contract: there are no update or delete operations, which lets the chat
// orchestrator and the lead extractor treat it as a reliable audit trail.
type MessageRepository interface {
	// Append writes one message and returns it with id and timestamp set.
	Append(ctx context.Context, sessionID, role, content string) (*models.Message, error)
	// ListBySession returns all messages for the session, oldest first.
	// An unknown session yields an empty slice, not an error.
	ListBySession(ctx context.Context, sessionID string) ([]models.Message, error)
}
