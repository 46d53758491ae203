package models

import "time"

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry in a session's conversation log. Messages are
// append-only and never mutated or deleted once written.
type Message struct {
	ID        string    `bson:"id" json:"-"`
	SessionID string    `bson:"session_id" json:"-"`
	Role      string    `bson:"role" json:"role"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
