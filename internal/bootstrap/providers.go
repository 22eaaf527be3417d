package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/wire"

	"github.com/yanqian/docbridge/internal/domain/docchat"
	"github.com/yanqian/docbridge/internal/domain/translation"
	"github.com/yanqian/docbridge/internal/infra/config"
	"github.com/yanqian/docbridge/internal/infra/googletranslate"
	"github.com/yanqian/docbridge/internal/infra/llm/chatgpt"
	"github.com/yanqian/docbridge/internal/infra/secrets"
	"github.com/yanqian/docbridge/internal/infra/workersai"
	httpiface "github.com/yanqian/docbridge/internal/interface/http"
	"github.com/yanqian/docbridge/pkg/logger"
	"github.com/yanqian/docbridge/pkg/metrics"
)

// ProviderSet builds everything up to the gin engine and the *http.Server wrapping it.
var ProviderSet = wire.NewSet(
	config.Load,
	ProvideLogger,
	ProvideTranslationConfig,
	ProvideChatConfig,
	ProvideWorkersAIClient,
	ProvideTranslator,
	ProvideChatGPTClient,
	ProvideTokenCounter,
	translation.NewService,
	docchat.NewService,
	wire.Bind(new(translation.Summarizer), new(*workersai.Client)),
	wire.Bind(new(docchat.ChatClient), new(*chatgpt.Client)),
	httpiface.NewHandler,
	httpiface.NewEngine,
	httpiface.NewRouter,
)

// ProvideLogger builds the process logger from the log section.
func ProvideLogger(cfg *config.Config) *slog.Logger {
	return logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
}

// ProvideTranslationConfig narrows the config to what the translation service reads.
func ProvideTranslationConfig(cfg *config.Config) translation.Config {
	return translation.Config{
		SummaryMaxLength: cfg.Translation.SummaryMaxLength,
		SourceLang:       cfg.Translation.SourceLang,
	}
}

// ProvideChatConfig narrows the config to the chat model and prompt settings.
func ProvideChatConfig(cfg *config.Config) docchat.Config {
	return docchat.Config{
		Model:          cfg.LLM.Model,
		Temperature:    cfg.LLM.Temperature,
		SystemPrompt:   cfg.Chat.SystemPrompt,
		QuestionPrefix: cfg.Chat.QuestionPrefix,
	}
}

// ProvideWorkersAIClient builds the Workers AI client used for summaries and, by default, translation.
func ProvideWorkersAIClient(cfg *config.Config) (*workersai.Client, error) {
	return workersai.NewClient(workersai.Config{
		AccountID:          cfg.WorkersAI.AccountID,
		APIToken:           cfg.WorkersAI.APIToken,
		BaseURL:            cfg.WorkersAI.BaseURL,
		SummarizationModel: cfg.WorkersAI.SummarizationModel,
		TranslationModel:   cfg.WorkersAI.TranslationModel,
		Timeout:            cfg.WorkersAI.Timeout,
	})
}

// ProvideTranslator picks the translation backend. Summaries always come from Workers AI.
func ProvideTranslator(cfg *config.Config, workers *workersai.Client, logger *slog.Logger) (translation.Translator, func(), error) {
	if cfg.Translation.Provider != config.TranslationProviderGoogle {
		logger.Info("translation backend selected", "provider", config.TranslationProviderWorkersAI, "model", cfg.WorkersAI.TranslationModel)
		return workers, func() {}, nil
	}
	client, err := googletranslate.NewClient(context.Background(), cfg.Google.CredentialsFile)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("translation backend selected", "provider", config.TranslationProviderGoogle)
	cleanup := func() {
		if err := client.Close(); err != nil {
			logger.Warn("google translate client close failed", "error", err)
		}
	}
	return client, cleanup, nil
}

// ProvideChatGPTClient builds the chat client, reading the key from Secrets Manager when config has none.
func ProvideChatGPTClient(cfg *config.Config) (*chatgpt.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	apiKey, err := secrets.ResolveAPIKey(ctx, cfg.LLM.APIKey, cfg.Secrets.LLMAPIKeySecretID, secrets.NewAWSGetter)
	if err != nil {
		return nil, err
	}
	return chatgpt.NewClient(apiKey, cfg.LLM.BaseURL, cfg.LLM.Timeout)
}

// ProvideTokenCounter degrades to no estimate when the BPE ranks cannot be loaded.
func ProvideTokenCounter(cfg *config.Config, logger *slog.Logger) docchat.TokenCounter {
	counter, err := metrics.NewTokenCounter(cfg.LLM.Model)
	if err != nil {
		logger.Warn("token counter unavailable, prompt sizes will not be logged", "error", err)
		return nil
	}
	return counter
}
