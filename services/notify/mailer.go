package notify

import (
	"fmt"
	"strings"

	"framelight/models"

	"github.com/resendlabs/resend-go"
)

// Mailer delivers lead notifications to the studio inbox via Resend.
type Mailer struct {
	resend      *resend.Client
	fromEmail   string
	fromName    string
	notifyEmail string
}

func NewMailer(apiKey, fromEmail, fromName, notifyEmail string) (*Mailer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend API key is required")
	}
	if notifyEmail == "" {
		return nil, fmt.Errorf("studio notify email is required")
	}

	return &Mailer{
		resend:      resend.NewClient(apiKey),
		fromEmail:   fromEmail,
		fromName:    fromName,
		notifyEmail: notifyEmail,
	}, nil
}

// SendLeadCaptured emails the studio about a new or enriched lead.
func (m *Mailer) SendLeadCaptured(n models.LeadNotification) error {
	subject := "New lead from the website chat"
	if n.Event == models.LeadUpdated {
		subject = "Lead updated from the website chat"
	}

	request := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", m.fromName, m.fromEmail),
		To:      []string{m.notifyEmail},
		Subject: subject,
		Html:    leadEmailHTML(n),
	}

	if _, err := m.resend.Emails.Send(request); err != nil {
		return fmt.Errorf("failed to send lead notification email: %w", err)
	}
	return nil
}

func leadEmailHTML(n models.LeadNotification) string {
	var sb strings.Builder
	sb.WriteString("<h2>Website chat lead</h2><ul>")
	row := func(label, value string) {
		if value != "" {
			sb.WriteString(fmt.Sprintf("<li><strong>%s:</strong> %s</li>", label, value))
		}
	}
	row("Name", n.Name)
	row("Email", n.Email)
	row("Phone", n.Phone)
	row("Shoot type", n.ShootType)
	row("Notes", n.Notes)
	row("Session", n.SessionID)
	sb.WriteString("</ul><p>Follow up within 24 hours.</p>")
	return sb.String()
}
