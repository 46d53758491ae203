package leadRepo

import (
	"context"

	"framelight/models"
)

// LeadRepository stores at most one lead record per session.
type LeadRepository interface {
	// FindBySession returns the lead for the session, or nil when none exists.
	FindBySession(ctx context.Context, sessionID string) (*models.Lead, error)
	// Upsert atomically merges the supplied partial fields into the session's
	// lead, creating it when at least one field is non-empty and no lead
	// exists yet. A stored value is only replaced by a differing non-empty
	// value; empty inputs never erase anything. The returned event reports
	// whether the merge created, updated, or left the record untouched.
	Upsert(ctx context.Context, sessionID string, fields models.LeadFields) (*models.Lead, models.LeadEvent, error)
	// List returns all captured leads, newest first.
	List(ctx context.Context) ([]models.Lead, error)
}
