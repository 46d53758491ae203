package models

// LeadNotification is the queued payload for notifying the studio that a
// lead was captured or enriched during a conversation.
type LeadNotification struct {
	SessionID string    `json:"session_id"`
	Event     LeadEvent `json:"event"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	ShootType string    `json:"shoot_type,omitempty"`
	Notes     string    `json:"notes,omitempty"`
}
