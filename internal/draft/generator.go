// Package draft produces AI-written reply drafts from email content.
package draft

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

const promptTemplate = `You are a professional email assistant.
Read the email below and write a polite, clear, and concise reply.

Email content:
%s`

// Generator drafts replies through the OpenAI chat completions API.
type Generator struct {
	apiKey string
	model  shared.ChatModel
}

// NewGenerator creates a draft generator. An empty API key is tolerated;
// generation then degrades to a placeholder instead of failing.
func NewGenerator(apiKey string) *Generator {
	return &Generator{
		apiKey: apiKey,
		model:  shared.ChatModelGPT4o,
	}
}

// Generate returns a reply draft for the given email text. It is total:
// a missing API key, empty content, or API failure each yield an explanatory
// placeholder the user can replace, never an error.
func (g *Generator) Generate(ctx context.Context, emailText string) string {
	if g.apiKey == "" {
		return "(OpenAI API key missing. Set OPENAI_API_KEY in the environment or env file.)"
	}
	if strings.TrimSpace(emailText) == "" {
		return "(No content to generate reply from.)"
	}

	client := openai.NewClient(option.WithAPIKey(g.apiKey))

	completion, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(fmt.Sprintf(promptTemplate, emailText)),
		},
		Model:       g.model,
		Temperature: openai.Float(0.3),
	})
	if err != nil {
		return fmt.Sprintf("(Draft generation error: %v)", err)
	}
	if len(completion.Choices) == 0 {
		return "(Draft generation error: empty response.)"
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content)
}
