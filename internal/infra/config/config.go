package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Translation backends accepted by translation.provider.
const (
	TranslationProviderWorkersAI = "workersai"
	TranslationProviderGoogle    = "google"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Log         LogConfig         `yaml:"log"`
	LLM         LLMConfig         `yaml:"llm"`
	Chat        ChatConfig        `yaml:"chat"`
	Translation TranslationConfig `yaml:"translation"`
	WorkersAI   WorkersAIConfig   `yaml:"workersAi"`
	Google      GoogleConfig      `yaml:"google"`
	Secrets     SecretsConfig     `yaml:"secrets"`
}

// HTTPConfig controls server level behavior. A zero WriteTimeout leaves provider calls unbounded.
type HTTPConfig struct {
	Address      string        `yaml:"address"`
	ReadTimeout  time.Duration `yaml:"readTimeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`
}

// LogConfig selects the slog level and encoding.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// LLMConfig contains ChatGPT/OpenAI settings.
type LLMConfig struct {
	APIKey      string        `yaml:"apiKey"`
	BaseURL     string        `yaml:"baseUrl"`
	Model       string        `yaml:"model"`
	Temperature float32       `yaml:"temperature"`
	Timeout     time.Duration `yaml:"timeout"`
}

// ChatConfig shapes the document chat prompt.
type ChatConfig struct {
	SystemPrompt   string `yaml:"systemPrompt"`
	QuestionPrefix string `yaml:"questionPrefix"`
}

// TranslationConfig drives the summarize-then-translate pipeline.
type TranslationConfig struct {
	Provider         string `yaml:"provider"`
	SummaryMaxLength int    `yaml:"summaryMaxLength"`
	SourceLang       string `yaml:"sourceLang"`
}

// WorkersAIConfig points at the Cloudflare Workers AI REST API.
type WorkersAIConfig struct {
	AccountID          string        `yaml:"accountId"`
	APIToken           string        `yaml:"apiToken"`
	BaseURL            string        `yaml:"baseUrl"`
	SummarizationModel string        `yaml:"summarizationModel"`
	TranslationModel   string        `yaml:"translationModel"`
	Timeout            time.Duration `yaml:"timeout"`
}

// GoogleConfig configures the optional Cloud Translation backend.
type GoogleConfig struct {
	CredentialsFile string `yaml:"credentialsFile"`
}

// SecretsConfig names secrets resolved from AWS Secrets Manager at startup.
type SecretsConfig struct {
	LLMAPIKeySecretID string `yaml:"llmApiKeySecretId"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	// OPEN_AI_KEY is the binding name used by existing deployments.
	if v := os.Getenv("OPEN_AI_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.LLM.Temperature = float32(parsed)
		}
	}
	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.LLM.Timeout = parsed
		}
	}
	if v := os.Getenv("CHAT_SYSTEM_PROMPT"); v != "" {
		cfg.Chat.SystemPrompt = v
	}
	if v := os.Getenv("TRANSLATION_PROVIDER"); v != "" {
		cfg.Translation.Provider = strings.ToLower(v)
	}
	if v := os.Getenv("TRANSLATION_SUMMARY_MAX_LENGTH"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Translation.SummaryMaxLength = parsed
		}
	}
	if v := os.Getenv("TRANSLATION_SOURCE_LANG"); v != "" {
		cfg.Translation.SourceLang = v
	}
	if v := os.Getenv("CLOUDFLARE_ACCOUNT_ID"); v != "" {
		cfg.WorkersAI.AccountID = v
	}
	if v := os.Getenv("CLOUDFLARE_API_TOKEN"); v != "" {
		cfg.WorkersAI.APIToken = v
	}
	if v := os.Getenv("WORKERS_AI_BASE_URL"); v != "" {
		cfg.WorkersAI.BaseURL = v
	}
	if v := os.Getenv("WORKERS_AI_SUMMARIZATION_MODEL"); v != "" {
		cfg.WorkersAI.SummarizationModel = v
	}
	if v := os.Getenv("WORKERS_AI_TRANSLATION_MODEL"); v != "" {
		cfg.WorkersAI.TranslationModel = v
	}
	if v := os.Getenv("WORKERS_AI_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.WorkersAI.Timeout = parsed
		}
	}
	if v := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); v != "" {
		cfg.Google.CredentialsFile = v
	}
	if v := os.Getenv("LLM_API_KEY_SECRET_ID"); v != "" {
		cfg.Secrets.LLMAPIKeySecretID = v
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:     ":8080",
			ReadTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		LLM: LLMConfig{
			Model:       "gpt-4o-mini",
			Temperature: 0.5,
		},
		Chat: ChatConfig{
			SystemPrompt:   "You are a helpful assistant answering questions about a document the user has shared. Base every answer on the document and say so when it does not contain the answer. The questions are about",
			QuestionPrefix: "My question is: ",
		},
		Translation: TranslationConfig{
			Provider:         TranslationProviderWorkersAI,
			SummaryMaxLength: 1000,
			SourceLang:       "english",
		},
		WorkersAI: WorkersAIConfig{
			BaseURL:            "https://api.cloudflare.com/client/v4",
			SummarizationModel: "@cf/facebook/bart-large-cnn",
			TranslationModel:   "@cf/meta/m2m100-1.2b",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.ReadTimeout < 0 || c.HTTP.WriteTimeout < 0 {
		return errors.New("http timeouts cannot be negative")
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		return errors.New("llm.model cannot be empty")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return errors.New("llm.temperature must be between 0 and 2")
	}
	if strings.TrimSpace(c.Chat.SystemPrompt) == "" {
		return errors.New("chat.systemPrompt cannot be empty")
	}
	if c.Translation.SummaryMaxLength <= 0 {
		return errors.New("translation.summaryMaxLength must be positive")
	}
	if strings.TrimSpace(c.Translation.SourceLang) == "" {
		return errors.New("translation.sourceLang cannot be empty")
	}
	switch c.Translation.Provider {
	case TranslationProviderWorkersAI, TranslationProviderGoogle:
	default:
		return fmt.Errorf("translation.provider %q is not supported", c.Translation.Provider)
	}
	if strings.TrimSpace(c.WorkersAI.SummarizationModel) == "" {
		return errors.New("workersAi.summarizationModel cannot be empty")
	}
	if c.Translation.Provider == TranslationProviderWorkersAI && strings.TrimSpace(c.WorkersAI.TranslationModel) == "" {
		return errors.New("workersAi.translationModel cannot be empty")
	}
	return nil
}
