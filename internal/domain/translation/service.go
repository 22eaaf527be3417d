package translation

import (
	"context"
	"log/slog"
	"strings"

	apperrors "github.com/yanqian/docbridge/pkg/errors"
)

// Service summarizes a document and translates the summary.
type Service interface {
	TranslateDocument(ctx context.Context, req Request) (Result, error)
}

// Summarizer reduces text to a synopsis bounded by MaxLength.
type Summarizer interface {
	Summarize(ctx context.Context, in SummarizeInput) (SummaryResult, error)
}

// Translator converts text between languages and returns the provider's raw JSON.
type Translator interface {
	Translate(ctx context.Context, in TranslateInput) (Result, error)
}

type service struct {
	cfg        Config
	summarizer Summarizer
	translator Translator
	logger     *slog.Logger
}

// NewService is a wire provider for the translation domain.
func NewService(cfg Config, summarizer Summarizer, translator Translator, logger *slog.Logger) Service {
	return &service{
		cfg:        cfg,
		summarizer: summarizer,
		translator: translator,
		logger:     logger.With("component", "translation.service"),
	}
}

// TranslateDocument runs both provider calls strictly in order; either failure aborts the request.
func (s *service) TranslateDocument(ctx context.Context, req Request) (Result, error) {
	summary, err := s.summarizer.Summarize(ctx, SummarizeInput{
		InputText: req.DocumentData,
		MaxLength: s.cfg.SummaryMaxLength,
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeProviderError, "summarization failed", err)
	}
	if strings.TrimSpace(summary.Summary) == "" {
		return nil, apperrors.Wrap(apperrors.CodeProviderError, "summarization returned no summary", nil)
	}
	s.logger.Debug("document summarized", "input_len", len(req.DocumentData), "summary_len", len(summary.Summary))

	translated, err := s.translator.Translate(ctx, TranslateInput{
		Text:       summary.Summary,
		SourceLang: s.cfg.SourceLang,
		TargetLang: req.TargetLang,
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeProviderError, "translation failed", err)
	}
	if len(translated) == 0 {
		return nil, apperrors.Wrap(apperrors.CodeProviderError, "translation returned an empty payload", nil)
	}
	s.logger.Debug("summary translated", "target_lang", req.TargetLang)

	return translated, nil
}
