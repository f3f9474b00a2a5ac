package translator

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/valpere/tagasalin/internal/postprocess"
)

// OpenAIService translates through the OpenAI chat-completions API.
type OpenAIService struct {
	apiKey  string
	baseURL string
	client  *openai.Client
}

// NewOpenAIService creates the service. baseURL may be empty to use the
// public API endpoint; it is overridable for tests and proxies.
func NewOpenAIService(apiKey, baseURL string) *OpenAIService {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIService{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  openai.NewClientWithConfig(cfg),
	}
}

func (s *OpenAIService) Name() string {
	return "openai"
}

func (s *OpenAIService) Translate(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	if s.apiKey == "" {
		result.Error = "OpenAI API key required"
		return result, fmt.Errorf("OpenAI API key required")
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = DefaultTemperature
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: applyContext(req.SystemInstruction, req.PreviousContext),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: UserPrompt(req.Text),
			},
		},
	})
	if err != nil {
		result.Error = fmt.Sprintf("OpenAI API error: %v", err)
		return result, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		result.Error = "empty response from API"
		return result, fmt.Errorf("empty response from API")
	}

	result.TranslatedText = postprocess.Clean(strings.TrimSpace(resp.Choices[0].Message.Content))
	result.Metadata = map[string]string{
		"model":             model,
		"prompt_tokens":     fmt.Sprintf("%d", resp.Usage.PromptTokens),
		"completion_tokens": fmt.Sprintf("%d", resp.Usage.CompletionTokens),
	}

	return result, nil
}

func (s *OpenAIService) IsAvailable(ctx context.Context) error {
	if s.apiKey == "" {
		return fmt.Errorf("OpenAI API key not configured")
	}
	return nil
}
