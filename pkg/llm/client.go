// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package llm

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

const (
	// DefaultModel is the model every migration request is sent to.
	DefaultModel = "gpt-4o-mini"
	// DefaultTimeout bounds a single completion call.
	DefaultTimeout = 5 * time.Minute
	// APIKeyEnv holds the API key when none is passed explicitly.
	APIKeyEnv = "OPENAI_API_KEY"
)

var (
	// ErrUpstream wraps every failure of the completion API.
	ErrUpstream = errors.Base("completion API error")
	// ErrMissingAPIKey is returned by New when no API key is configured.
	ErrMissingAPIKey = errors.Base("missing API key")
)

// 🔌 Migrator rewrites the content of one file.
type Migrator interface {
	// Migrate returns the rewritten content, or "" when the model returned nothing.
	Migrate(ctx context.Context, content string) (string, error)
}

// 🔧 Option configures a Client.
type Option func(*options)

type options struct {
	apiKey     string
	baseURL    string
	model      string
	timeout    time.Duration
	httpClient *http.Client
}

// WithAPIKey sets the API key instead of reading OPENAI_API_KEY.
func WithAPIKey(key string) Option {
	return func(o *options) { o.apiKey = key }
}

// WithBaseURL points the client at an OpenAI-compatible endpoint.
func WithBaseURL(url string) Option {
	return func(o *options) { o.baseURL = url }
}

// WithModel overrides DefaultModel.
func WithModel(model string) Option {
	return func(o *options) { o.model = model }
}

// WithTimeout overrides DefaultTimeout. Zero disables the per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// 🤖 Client sends migration requests to a chat-completion endpoint.
type Client struct {
	api     openai.Client
	prompt  string
	model   string
	timeout time.Duration
}

var _ Migrator = (*Client)(nil)

// 🏭 New creates a client that sends prompt as the system message of every request.
func New(prompt string, opts ...Option) (*Client, error) {
	o := options{
		model:   DefaultModel,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.apiKey == "" {
		o.apiKey = os.Getenv(APIKeyEnv)
	}
	if o.apiKey == "" {
		return nil, errors.Errorf("%w: set %s in the environment or in a .env file", ErrMissingAPIKey, APIKeyEnv)
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(o.apiKey),
		option.WithMaxRetries(0),
	}
	if o.baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(o.baseURL))
	}
	if o.httpClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(o.httpClient))
	}

	return &Client{
		api:     openai.NewClient(reqOpts...),
		prompt:  prompt,
		model:   o.model,
		timeout: o.timeout,
	}, nil
}

// Model returns the model identifier requests are sent to.
func (c *Client) Model() string {
	return c.model
}

// 📝 Migrate sends content to the model and returns the first choice's text.
func (c *Client) Migrate(ctx context.Context, content string) (string, error) {
	logger := zerolog.Ctx(ctx)

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	completion, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		Messages:    BuildMessages(c.prompt, content),
		Temperature: openai.Float(0),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			logger.Debug().Int("status", apiErr.StatusCode).Str("model", c.model).Msg("completion request rejected")
		}
		return "", errors.Errorf("%w: %s", ErrUpstream, err)
	}

	if len(completion.Choices) == 0 {
		return "", errors.Errorf("%w: response has no choices", ErrUpstream)
	}

	logger.Debug().
		Str("model", completion.Model).
		Int64("prompt_tokens", completion.Usage.PromptTokens).
		Int64("completion_tokens", completion.Usage.CompletionTokens).
		Dur("duration", time.Since(start)).
		Msg("completion received")

	return completion.Choices[0].Message.Content, nil
}
