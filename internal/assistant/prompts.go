package assistant

import (
	"strings"

	"github.com/DataAlgoDev/Qbit-AI-Enterprise-App/models"
)

// BuildChatPrompt assembles the inference prompt for one chat turn: system
// framing, the user's question verbatim, the retrieved document contents (in
// match order, omitted entirely when there are none), and the answer-style
// instructions.
func BuildChatPrompt(query string, matches []models.ScoredMatch) string {
	var b strings.Builder
	b.WriteString("You are a helpful AI assistant for Qbit company employees. Answer questions concisely and directly.\n\n")
	b.WriteString("User Question: ")
	b.WriteString(query)
	b.WriteString("\n")

	if len(matches) > 0 {
		b.WriteString("\nRelevant company information:\n")
		for _, m := range matches {
			b.WriteString("- ")
			b.WriteString(m.Document.Content)
			b.WriteString("\n")
		}
	}

	b.WriteString("\nInstructions:\n")
	b.WriteString("- Give direct, specific answers\n")
	b.WriteString("- Keep responses under 2-3 sentences when possible\n")
	b.WriteString("- Lead with the key information (numbers, dates, etc.)\n")
	b.WriteString("- Be friendly but brief\n")
	b.WriteString("\nResponse:")
	return b.String()
}

// BuildNewsletterPrompt asks the model for a two-line Title/Description entry.
// The length constraints are stated in the prompt itself; the parser assumes
// the model roughly follows them but nothing downstream enforces them.
func BuildNewsletterPrompt(topic string) string {
	var b strings.Builder
	b.WriteString("Create a newsletter entry about: ")
	b.WriteString(topic)
	b.WriteString("\n\nSTRICT FORMAT - respond with EXACTLY this format:\n")
	b.WriteString("Title: [write your engaging title here - max 8 words]\n")
	b.WriteString("Description: [write your description here - max 120 characters]\n")
	b.WriteString("\nRequirements:\n")
	b.WriteString("- Make title engaging and specific to recent trends\n")
	b.WriteString("- Keep description under 120 characters\n")
	b.WriteString("- Focus on practical applications and latest developments\n")
	b.WriteString("\nTopic: ")
	b.WriteString(topic)
	return b.String()
}
