// Package ai splits free-form activity drafts into structured plan fields
// using an OpenAI-compatible chat model.
package ai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

// DefaultSystemPrompt instructs the model to split a collective-activity
// draft into the six fixed subfields and answer with bare JSON.
const DefaultSystemPrompt = "你是幼儿园教案助理。请将用户提供的集体活动原稿拆分为固定字段：" +
	"活动主题、活动目标、活动准备、活动重点、活动难点、活动过程。" +
	"请只输出 JSON 对象,不要包含多余文字或 Markdown。" +
	"输出示例:" +
	`{"活动主题":"...","活动目标":"...","活动准备":"...","活动重点":"...","活动难点":"...","活动过程":"..."}`

// SplitFields lists the subfield names the model is asked to produce.
var SplitFields = []string{"活动主题", "活动目标", "活动准备", "活动重点", "活动难点", "活动过程"}

const requestTimeout = 60 * time.Second

// Config holds the client settings for the splitter.
type Config struct {
	APIKey  string
	BaseURL string // optional OpenAI-compatible endpoint
	Model   string // defaults to DefaultModel
}

// Splitter calls a chat model to break activity drafts into plan subfields.
type Splitter struct {
	client openai.Client
	model  string
}

// NewSplitter builds a Splitter from cfg.
func NewSplitter(cfg Config) (*Splitter, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("AI API key not configured")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(&http.Client{Timeout: requestTimeout}),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Splitter{
		client: openai.NewClient(opts...),
		model:  model,
	}, nil
}

// Model returns the configured model name.
func (s *Splitter) Model() string {
	return s.model
}

// Split sends draft to the model and returns the extracted subfield map.
// systemPrompt overrides DefaultSystemPrompt when non-empty; callers that
// want per-request prompt variants pass it explicitly rather than mutating
// shared state.
func (s *Splitter) Split(ctx context.Context, draft, systemPrompt string) (map[string]string, error) {
	if strings.TrimSpace(draft) == "" {
		return nil, fmt.Errorf("draft text is empty")
	}
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}

	var content string
	err := retry.Do(
		func() error {
			resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
				Model: openai.ChatModel(s.model),
				Messages: []openai.ChatCompletionMessageParamUnion{
					openai.SystemMessage(systemPrompt),
					openai.UserMessage(draft),
				},
				Temperature: openai.Float(0.2),
			})
			if err != nil {
				return err
			}
			if len(resp.Choices) == 0 {
				return fmt.Errorf("no choices in response")
			}
			content = resp.Choices[0].Message.Content
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(1*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}

	fields, err := ParseSplitResponse(content)
	if err != nil {
		return nil, err
	}
	return fields, nil
}
