package models

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sashabaranov/go-openai"
)

// chatPrefixes select the models usable for chat completions.
var chatPrefixes = []string{"gpt-", "chatgpt-", "o1", "o3", "o4"}

// excluded marks chat-prefixed models that do not take text prompts.
var excluded = []string{"tts", "audio", "realtime", "transcribe", "image", "search"}

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister. An empty baseURL uses the public
// OpenAI endpoint.
func NewLister(apiKey, baseURL string) *Lister {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClientWithConfig(config),
	}
}

// ChatModels returns the sorted IDs of the chat-capable models.
func (l *Lister) ChatModels(ctx context.Context) ([]string, error) {
	if l.apiKey == "" {
		return nil, errors.WithHint(
			errors.New("OpenAI API key not found"),
			"set OPENAI_API_KEY or nlp.openai_key in .banglahindi.yaml")
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list models")
	}

	var chatModels []string
	for _, model := range models.Models {
		if isChatModel(model.ID) {
			chatModels = append(chatModels, model.ID)
		}
	}
	sort.Strings(chatModels)
	return chatModels, nil
}

// ListAvailableModels prints the chat models to w and marks current.
func (l *Lister) ListAvailableModels(ctx context.Context, w io.Writer, current string) error {
	chatModels, err := l.ChatModels(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Chat models usable for nlp.model:")
	if len(chatModels) == 0 {
		fmt.Fprintln(w, "  No chat models found")
		return nil
	}

	for _, model := range chatModels {
		marker := " "
		if model == current {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s\n", marker, model)
	}
	return nil
}

func isChatModel(id string) bool {
	hasPrefix := false
	for _, p := range chatPrefixes {
		if strings.HasPrefix(id, p) {
			hasPrefix = true
			break
		}
	}
	if !hasPrefix {
		return false
	}
	for _, e := range excluded {
		if strings.Contains(id, e) {
			return false
		}
	}
	return true
}
