package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type openAIClient struct {
	client   openai.Client
	settings Settings
}

func newOpenAI(s Settings) *openAIClient {
	return &openAIClient{
		client:   openai.NewClient(option.WithAPIKey(s.APIKey)),
		settings: s,
	}
}

func (c *openAIClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.settings.Model),
		MaxTokens:   openai.Int(int64(c.settings.MaxTokens)),
		Temperature: openai.Float(c.settings.Temperature),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: %w", ErrEmptyCompletion)
	}
	return resp.Choices[0].Message.Content, nil
}
