package translator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// chatResponse builds the minimal chat-completions body both backends return.
func chatResponse(content string) map[string]interface{} {
	return map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
		"usage": map[string]int{"prompt_tokens": 42, "completion_tokens": 17},
	}
}

func TestOpenAIService_Name(t *testing.T) {
	svc := NewOpenAIService("key", "")
	if svc.Name() != "openai" {
		t.Errorf("expected 'openai', got %q", svc.Name())
	}
}

func TestOpenAIService_Translate_NoAPIKey(t *testing.T) {
	svc := NewOpenAIService("", "")

	result, err := svc.Translate(context.Background(), ServiceConfig{}, TranslateRequest{Text: "Hello"})
	if err == nil {
		t.Error("expected error when no API key")
	}
	if result == nil {
		t.Fatal("expected non-nil result")
	}
	if result.Error == "" {
		t.Error("expected error message in result")
	}
}

func TestOpenAIService_Translate_Success(t *testing.T) {
	var gotBody struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatResponse("  Kumusta, mundo!  "))
	}))
	defer srv.Close()

	svc := NewOpenAIService("test-key", srv.URL+"/v1")
	result, err := svc.Translate(context.Background(), ServiceConfig{Model: "gpt-4.1-mini"}, TranslateRequest{
		Text:              "Hello, world!",
		SystemInstruction: BuildSystemInstruction(false, nil),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TranslatedText != "Kumusta, mundo!" {
		t.Errorf("expected trimmed translation, got %q", result.TranslatedText)
	}
	if gotBody.Model != "gpt-4.1-mini" {
		t.Errorf("expected model to pass through, got %q", gotBody.Model)
	}
	if len(gotBody.Messages) != 2 {
		t.Fatalf("expected system+user messages, got %d", len(gotBody.Messages))
	}
	if gotBody.Messages[0].Role != "system" {
		t.Errorf("first message should be the system instruction, got role %q", gotBody.Messages[0].Role)
	}
	if result.Metadata["prompt_tokens"] != "42" {
		t.Errorf("expected prompt token metadata, got %q", result.Metadata["prompt_tokens"])
	}
	if result.Latency <= 0 {
		t.Error("expected latency to be recorded")
	}
}

func TestOpenAIService_Translate_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	svc := NewOpenAIService("test-key", srv.URL+"/v1")
	result, err := svc.Translate(context.Background(), ServiceConfig{}, TranslateRequest{Text: "Hello"})
	if err == nil {
		t.Error("expected error on HTTP failure")
	}
	if result.Error == "" {
		t.Error("expected error message recorded in result")
	}
	if result.TranslatedText != "" {
		t.Error("expected no translation on failure")
	}
}

func TestOpenAIService_Translate_StripsLLMArtifacts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatResponse("<think>pag-iisip</think>\"Kumusta mundo.\""))
	}))
	defer srv.Close()

	svc := NewOpenAIService("test-key", srv.URL+"/v1")
	result, err := svc.Translate(context.Background(), ServiceConfig{}, TranslateRequest{Text: "Hello world."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TranslatedText != "Kumusta mundo." {
		t.Errorf("expected cleaned translation, got %q", result.TranslatedText)
	}
}

func TestOpenAIService_IsAvailable(t *testing.T) {
	if err := NewOpenAIService("", "").IsAvailable(context.Background()); err == nil {
		t.Error("expected error without API key")
	}
	if err := NewOpenAIService("key", "").IsAvailable(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestOpenRouterService_Name(t *testing.T) {
	svc := NewOpenRouterService("key", "")
	if svc.Name() != "openrouter" {
		t.Errorf("expected 'openrouter', got %q", svc.Name())
	}
}

func TestOpenRouterService_Translate_NoAPIKey(t *testing.T) {
	svc := NewOpenRouterService("", "")

	result, err := svc.Translate(context.Background(), ServiceConfig{}, TranslateRequest{Text: "Hello"})
	if err == nil {
		t.Error("expected error when no API key")
	}
	if result.Error == "" {
		t.Error("expected error message in result")
	}
}

func TestOpenRouterService_Translate_Success(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatResponse("Magandang umaga."))
	}))
	defer srv.Close()

	svc := NewOpenRouterService("or-key", srv.URL)
	result, err := svc.Translate(context.Background(), ServiceConfig{}, TranslateRequest{
		Text:              "Good morning.",
		SystemInstruction: BuildSystemInstruction(true, nil),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TranslatedText != "Magandang umaga." {
		t.Errorf("unexpected translation: %q", result.TranslatedText)
	}
	if gotAuth != "Bearer or-key" {
		t.Errorf("expected bearer auth header, got %q", gotAuth)
	}
	if result.Metadata["model"] != DefaultOpenRouterModel {
		t.Errorf("expected default model in metadata, got %q", result.Metadata["model"])
	}
}

func TestOpenRouterService_Translate_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := NewOpenRouterService("or-key", srv.URL)
	result, err := svc.Translate(context.Background(), ServiceConfig{}, TranslateRequest{Text: "Hello"})
	if err == nil {
		t.Error("expected error on non-200 status")
	}
	if result.Error == "" {
		t.Error("expected error message in result")
	}
}
