package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const assistSystemPrompt = "You are the help voice of UncleFries, a WhatsApp food-ordering bot. " +
	"The user sent something the bot does not understand. In one short friendly message, " +
	"remind them of the commands: 'menu' to browse, 'cart' to view the order, 'checkout' to pay, " +
	"'cancel' to start over. Do not invent menu items or prices."

// Assistant optionally phrases the help fallback with an LLM. It never
// changes conversation state; any failure falls back to the static reply.
type Assistant struct {
	client *openai.Client
	model  string
}

func NewAssistant(apiKey, model string) *Assistant {
	if apiKey == "" {
		return nil
	}
	return &Assistant{client: openai.NewClient(apiKey), model: model}
}

// HelpReply produces a help message tailored to what the user said.
func (a *Assistant) HelpReply(ctx context.Context, message string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Temperature: 0.4,
		MaxTokens:   120,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: assistSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
