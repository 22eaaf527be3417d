package workersai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yanqian/docbridge/internal/domain/translation"
)

const defaultBaseURL = "https://api.cloudflare.com/client/v4"

// Config identifies the account and models used for inference.
type Config struct {
	AccountID          string
	APIToken           string
	BaseURL            string
	SummarizationModel string
	TranslationModel   string
	Timeout            time.Duration
}

// Client runs Workers AI models over the Cloudflare REST API.
type Client struct {
	cfg        Config
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a Workers AI client.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.AccountID) == "" {
		return nil, errors.New("workers ai account id cannot be empty")
	}
	if strings.TrimSpace(cfg.APIToken) == "" {
		return nil, errors.New("workers ai api token cannot be empty")
	}
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		cfg:        cfg,
		baseURL:    strings.TrimRight(base, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Summarize runs the summarization model and decodes its summary field.
func (c *Client) Summarize(ctx context.Context, in translation.SummarizeInput) (translation.SummaryResult, error) {
	raw, err := c.run(ctx, c.cfg.SummarizationModel, in)
	if err != nil {
		return translation.SummaryResult{}, err
	}
	var out translation.SummaryResult
	if err := json.Unmarshal(raw, &out); err != nil {
		return translation.SummaryResult{}, fmt.Errorf("decode summarization result: %w", err)
	}
	return out, nil
}

// Translate runs the translation model and returns its result untouched.
func (c *Client) Translate(ctx context.Context, in translation.TranslateInput) (translation.Result, error) {
	return c.run(ctx, c.cfg.TranslationModel, in)
}

type envelope struct {
	Result   json.RawMessage `json:"result"`
	Success  bool            `json:"success"`
	Errors   []apiMessage    `json:"errors"`
	Messages []apiMessage    `json:"messages"`
}

type apiMessage struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (c *Client) run(ctx context.Context, model string, input any) (json.RawMessage, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("encode workers ai input: %w", err)
	}
	endpoint := fmt.Sprintf("%s/accounts/%s/ai/run/%s", c.baseURL, c.cfg.AccountID, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build workers ai request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("workers ai request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read workers ai response: %w", err)
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("workers ai error: model=%s status=%d body=%s", model, resp.StatusCode, truncate(body, 4<<10))
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode workers ai response: %w", err)
	}
	if !env.Success {
		return nil, fmt.Errorf("workers ai error: model=%s %s", model, joinMessages(env.Errors))
	}
	if len(env.Result) == 0 || string(env.Result) == "null" {
		return nil, fmt.Errorf("workers ai error: model=%s returned no result", model)
	}
	return env.Result, nil
}

func joinMessages(msgs []apiMessage) string {
	if len(msgs) == 0 {
		return "unknown error"
	}
	parts := make([]string, 0, len(msgs))
	for _, m := range msgs {
		parts = append(parts, fmt.Sprintf("%d: %s", m.Code, m.Message))
	}
	return strings.Join(parts, "; ")
}

func truncate(body []byte, limit int) string {
	if len(body) > limit {
		body = body[:limit]
	}
	return string(body)
}

var (
	_ translation.Summarizer = (*Client)(nil)
	_ translation.Translator = (*Client)(nil)
)
