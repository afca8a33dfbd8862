package azureopenai

import (
	"context"
	"errors"
	"strings"

	"careerhub/services/upstream"

	openai "github.com/sashabaranov/go-openai"
)

// Client sends chat completions to an Azure OpenAI deployment
type Client struct {
	client     *openai.Client
	deployment string
}

// New builds a client for endpoint (https://<resource>.openai.azure.com). A nil
// *Client is returned when the key or endpoint is missing.
func New(endpoint, apiKey, deployment, apiVersion string) *Client {
	if endpoint == "" || apiKey == "" {
		return nil
	}

	cfg := openai.DefaultAzureConfig(apiKey, strings.TrimRight(endpoint, "/"))
	if apiVersion != "" {
		cfg.APIVersion = apiVersion
	}
	cfg.AzureModelMapperFunc = func(string) string {
		return deployment
	}

	return &Client{
		client:     openai.NewClientWithConfig(cfg),
		deployment: deployment,
	}
}

// Message is one turn of a conversation
type Message struct {
	Role    string `json:"role"` // user or assistant
	Content string `json:"content"`
}

// Chat sends a system prompt, prior turns and the user's message and returns the reply
func (c *Client) Chat(ctx context.Context, system string, history []Message, user string) (string, error) {
	if c == nil {
		return "", upstream.ErrNotConfigured
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: system})
	}
	for _, m := range history {
		role := openai.ChatMessageRoleUser
		if m.Role == "assistant" {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: user})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.deployment,
		Messages:    messages,
		Temperature: 0.3,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", &upstream.Error{Service: "azureopenai", Method: "POST", URL: "chat/completions", StatusCode: apiErr.HTTPStatusCode, Body: apiErr.Message}
		}
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("azureopenai: empty completion")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
