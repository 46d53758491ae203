package ai

import (
	"strings"
	"testing"

	"framelight/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptTranscript(t *testing.T) {
	prompt := buildPrompt([]models.Message{
		{Role: models.RoleUser, Content: "Do you shoot weddings?"},
		{Role: models.RoleAssistant, Content: "We do! Tell me about yours."},
		{Role: models.RoleUser, Content: "It's in June."},
	})

	assert.Contains(t, prompt, "Visitor: Do you shoot weddings?")
	assert.Contains(t, prompt, "Assistant: We do! Tell me about yours.")
	assert.True(t, strings.HasSuffix(prompt, "Assistant:"))

	// History order is preserved.
	first := strings.Index(prompt, "Do you shoot weddings?")
	last := strings.Index(prompt, "It's in June.")
	assert.Less(t, first, last)
}
