package chat

import (
	"regexp"
	"strings"

	"framelight/models"
)

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneRe = regexp.MustCompile(`\+?\d[\d\s().\-]{5,}\d`)
	nameRe  = regexp.MustCompile(`(?:(?i:my name is|my name's|i am|i'm|this is|call me)\s+)([A-Z][a-zA-Z'\-]+(?:\s+[A-Z][a-zA-Z'\-]+){0,2})`)
)

// shootTypeKeywords maps conversational mentions to canonical shoot types.
var shootTypeKeywords = []struct {
	keyword string
	shoot   string
}{
	{"wedding", "wedding"},
	{"engagement", "engagement"},
	{"maternity", "maternity"},
	{"newborn", "newborn"},
	{"headshot", "headshot"},
	{"portrait", "portrait"},
	{"family", "family"},
	{"corporate", "corporate"},
	{"graduation", "graduation"},
	{"birthday", "birthday"},
	{"product", "product"},
	{"event", "event"},
}

// LeadExtractor pulls contact and intent fields out of free-form
// conversational text. It is heuristic by design: pattern matching keeps it
// deterministic and it can never fabricate a value the visitor did not type.
type LeadExtractor struct{}

func NewLeadExtractor() *LeadExtractor {
	return &LeadExtractor{}
}

// Extract scans the visitor's side of the conversation, oldest first, with
// later mentions taking precedence. Re-scanning full history every turn is
// what makes a failed lead merge recoverable: the next turn re-derives the
// same fields and retries. Returns all-empty fields when there is no signal.
func (e *LeadExtractor) Extract(history []models.Message) models.LeadFields {
	var fields models.LeadFields

	for _, msg := range history {
		if msg.Role != models.RoleUser {
			continue
		}

		if email := emailRe.FindString(msg.Content); email != "" {
			fields.Email = NormalizeEmail(email)
		}

		// Strip email addresses before the phone scan so an address's digits
		// are never mistaken for a phone number.
		withoutEmails := emailRe.ReplaceAllString(msg.Content, " ")
		if raw := phoneRe.FindString(withoutEmails); raw != "" {
			if phone := NormalizePhone(raw); phone != "" {
				fields.Phone = phone
			}
		}

		if m := nameRe.FindStringSubmatch(msg.Content); m != nil {
			fields.Name = strings.TrimSpace(m[1])
		}

		lower := strings.ToLower(msg.Content)
		for _, st := range shootTypeKeywords {
			if strings.Contains(lower, st.keyword) {
				fields.ShootType = st.shoot
				break
			}
		}
	}

	return fields
}

// NormalizeEmail lower-cases and trims an email so the lead store's
// equality-based merge check is meaningful.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePhone reduces a phone number to digits, preserving a leading +.
// Anything with fewer than 7 or more than 15 digits is rejected as noise.
func NormalizePhone(raw string) string {
	raw = strings.TrimSpace(raw)
	var sb strings.Builder
	for i, r := range raw {
		if r == '+' && i == 0 {
			sb.WriteRune(r)
			continue
		}
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	digits := strings.TrimPrefix(sb.String(), "+")
	if len(digits) < 7 || len(digits) > 15 {
		return ""
	}
	return sb.String()
}
