package models

import "time"

// LeadEvent is the outcome of merging newly captured fields into the lead
// record for one turn.
type LeadEvent string

const (
	LeadCreated   LeadEvent = "created"
	LeadUpdated   LeadEvent = "updated"
	LeadUnchanged LeadEvent = "unchanged"
)

// Lead statuses.
const (
	LeadStatusNew     = "new"
	LeadStatusUpdated = "updated"
)

// Lead is a visitor's captured contact/interest record. At most one lead
// exists per session; fields are filled incrementally as the conversation
// reveals them.
type Lead struct {
	SessionID string    `bson:"session_id" json:"session_id"`
	Name      string    `bson:"name,omitempty" json:"name,omitempty"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	ShootType string    `bson:"shoot_type,omitempty" json:"shoot_type,omitempty"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// LeadFields is a partial lead: the subset of fields one turn (or one manual
// form submission) yielded. Empty values mean "nothing learned", never
// "erase what is stored".
type LeadFields struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	ShootType string `json:"shoot_type"`
	Notes     string `json:"notes"`
}

// IsEmpty reports whether no field carries a value.
func (f LeadFields) IsEmpty() bool {
	return f.Name == "" && f.Email == "" && f.Phone == "" && f.ShootType == "" && f.Notes == ""
}
