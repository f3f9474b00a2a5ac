package translator

import (
	"context"
	"time"
)

// ServiceConfig carries per-call settings shared by all translation services.
type ServiceConfig struct {
	APIKey      string        `mapstructure:"api_key" json:"api_key"`
	Model       string        `mapstructure:"model" json:"model"`
	BaseURL     string        `mapstructure:"base_url" json:"base_url"`
	Timeout     time.Duration `mapstructure:"timeout" json:"timeout"`
	Temperature float32       `mapstructure:"temperature" json:"temperature"`
}

// TranslateRequest is one chunk of English text together with the system
// instruction produced by BuildSystemInstruction. PreviousContext optionally
// carries the tail of the preceding translated chunk for continuity.
type TranslateRequest struct {
	Text              string `json:"text"`
	SystemInstruction string `json:"system_instruction"`
	PreviousContext   string `json:"previous_context,omitempty"`
}

// ServiceResult is the verbatim oracle output plus call bookkeeping.
type ServiceResult struct {
	ServiceName    string            `json:"service_name"`
	TranslatedText string            `json:"translated_text"`
	Metadata       map[string]string `json:"metadata"`
	Latency        time.Duration     `json:"latency"`
	Error          string            `json:"error,omitempty"`
}

// TranslationService is the remote translation oracle. Transport and oracle
// errors are returned as-is; no service retries internally.
type TranslationService interface {
	Name() string
	Translate(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (*ServiceResult, error)
	IsAvailable(ctx context.Context) error
}
