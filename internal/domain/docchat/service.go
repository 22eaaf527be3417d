package docchat

import (
	"context"
	"log/slog"
	"strings"

	"github.com/yanqian/docbridge/internal/infra/llm/chatgpt"
	apperrors "github.com/yanqian/docbridge/pkg/errors"
)

// Service answers questions about a caller supplied document.
type Service interface {
	Ask(ctx context.Context, req Request) (Response, error)
}

// ChatClient is the completion call the service depends on; *chatgpt.Client satisfies it.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error)
}

// TokenCounter estimates prompt size; a nil counter disables the estimate.
type TokenCounter interface {
	Count(texts ...string) int
}

type service struct {
	cfg     Config
	client  ChatClient
	counter TokenCounter
	logger  *slog.Logger
}

// NewService wires up the document chat domain.
func NewService(cfg Config, client ChatClient, counter TokenCounter, logger *slog.Logger) Service {
	return &service{
		cfg:     cfg,
		client:  client,
		counter: counter,
		logger:  logger.With("component", "docchat.service"),
	}
}

func (s *service) Ask(ctx context.Context, req Request) (Response, error) {
	messages := s.buildMessages(req)
	if s.counter != nil {
		s.logger.Debug("chat prompt prepared", "prompt_tokens", s.counter.Count(messages[0].Content, messages[1].Content))
	}

	resp, err := s.client.CreateChatCompletion(ctx, chatgpt.ChatCompletionRequest{
		Model:       s.cfg.Model,
		Messages:    messages,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return Response{}, apperrors.Wrap(apperrors.CodeLLMError, "chatgpt request failed", err)
	}
	if len(resp.Choices) == 0 {
		return Response{}, apperrors.Wrap(apperrors.CodeLLMError, "chatgpt returned no choices", nil)
	}
	if resp.Usage != nil && !resp.Usage.IsZero() {
		s.logger.Info("chat completion usage", resp.Usage.LogAttrs()...)
	}

	return Response{Message: resp.Choices[0].Message.Content}, nil
}

// buildMessages embeds the document and question verbatim.
func (s *service) buildMessages(req Request) []chatgpt.Message {
	system := strings.TrimSpace(s.cfg.SystemPrompt) + " " + req.DocumentData
	return []chatgpt.Message{
		{Role: chatgpt.RoleSystem, Content: system},
		{Role: chatgpt.RoleUser, Content: s.cfg.QuestionPrefix + req.Question},
	}
}
