package ai

import (
	"strings"

	"framelight/models"
)

// studioPersona frames every Gemini call. The assistant talks about the
// studio's actual services and steers toward collecting booking details
// without being pushy.
const studioPersona = `You are the friendly assistant of a photography studio.
You help visitors explore the portfolio, explain services and packages
(weddings, portraits, events, family sessions, packages starting at $599),
and discuss their photography needs. Keep replies warm and concise. When it
feels natural, ask for the visitor's name, email, phone number, or the kind
of shoot they want, so the studio can follow up. Never invent prices or
availability beyond what is listed here.`

// buildPrompt renders the persona plus the conversation transcript into a
// single text prompt, ending where the model should continue.
func buildPrompt(history []models.Message) string {
	var sb strings.Builder
	sb.WriteString(studioPersona)
	sb.WriteString("\n\nConversation so far:\n")
	for _, msg := range history {
		switch msg.Role {
		case models.RoleAssistant:
			sb.WriteString("Assistant: ")
		default:
			sb.WriteString("Visitor: ")
		}
		sb.WriteString(msg.Content)
		sb.WriteString("\n")
	}
	sb.WriteString("Assistant:")
	return sb.String()
}
