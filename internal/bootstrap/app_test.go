package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/docbridge/internal/infra/config"
)

func TestAppRunShutsDownOnCancel(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	server := &http.Server{
		Addr: addr,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	}
	cfg := &config.Config{HTTP: config.HTTPConfig{Address: addr}}
	app := NewApp(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(shutdownGrace):
		t.Fatal("app did not stop")
	}
}

func TestAppRunReportsListenError(t *testing.T) {
	server := &http.Server{Addr: "bad-address"}
	cfg := &config.Config{HTTP: config.HTTPConfig{Address: "bad-address"}}
	app := NewApp(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), server)

	err := app.Run(context.Background())
	require.ErrorContains(t, err, "serve http on bad-address")
}

func TestProvideTranslatorDefaultsToWorkersAI(t *testing.T) {
	cfg := &config.Config{
		Translation: config.TranslationConfig{Provider: config.TranslationProviderWorkersAI},
		WorkersAI:   config.WorkersAIConfig{AccountID: "acct", APIToken: "token", TranslationModel: "@cf/meta/m2m100-1.2b", SummarizationModel: "@cf/facebook/bart-large-cnn"},
	}
	workers, err := ProvideWorkersAIClient(cfg)
	require.NoError(t, err)

	translator, cleanup, err := ProvideTranslator(cfg, workers, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	require.NotNil(t, cleanup)
	cleanup()
	require.Same(t, workers, translator)
}

func TestProvideConfigs(t *testing.T) {
	cfg := &config.Config{
		LLM:         config.LLMConfig{Model: "gpt-test", Temperature: 0.5},
		Chat:        config.ChatConfig{SystemPrompt: "about", QuestionPrefix: "Q: "},
		Translation: config.TranslationConfig{SummaryMaxLength: 1000, SourceLang: "english"},
	}

	chatCfg := ProvideChatConfig(cfg)
	require.Equal(t, "gpt-test", chatCfg.Model)
	require.Equal(t, "Q: ", chatCfg.QuestionPrefix)

	trCfg := ProvideTranslationConfig(cfg)
	require.Equal(t, 1000, trCfg.SummaryMaxLength)
	require.Equal(t, "english", trCfg.SourceLang)
}

func TestProvideChatGPTClientRequiresKey(t *testing.T) {
	_, err := ProvideChatGPTClient(&config.Config{})
	require.EqualError(t, err, "chatgpt api key cannot be empty")
}
