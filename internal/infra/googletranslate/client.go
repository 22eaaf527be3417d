package googletranslate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"strings"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"

	"github.com/yanqian/docbridge/internal/domain/translation"
)

// languageNames resolves the plain-English names some callers send instead of BCP 47 tags.
var languageNames = map[string]language.Tag{
	"arabic":     language.Arabic,
	"chinese":    language.Chinese,
	"dutch":      language.Dutch,
	"english":    language.English,
	"french":     language.French,
	"german":     language.German,
	"hindi":      language.Hindi,
	"italian":    language.Italian,
	"japanese":   language.Japanese,
	"korean":     language.Korean,
	"portuguese": language.Portuguese,
	"russian":    language.Russian,
	"spanish":    language.Spanish,
	"ukrainian":  language.Ukrainian,
}

type textTranslator interface {
	Translate(ctx context.Context, inputs []string, target language.Tag, opts *translate.Options) ([]translate.Translation, error)
}

// Client translates summaries through Google Cloud Translation.
type Client struct {
	api    textTranslator
	closer func() error
}

// NewClient opens a Cloud Translation client. An empty credentialsFile uses application default credentials.
func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	opts := []option.ClientOption{}
	if strings.TrimSpace(credentialsFile) != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	api, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create google translate client: %w", err)
	}
	return &Client{api: api, closer: api.Close}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}

type result struct {
	TranslatedText string `json:"translated_text"`
}

// Translate returns {"translated_text": ...}, the same shape Workers AI produces.
func (c *Client) Translate(ctx context.Context, in translation.TranslateInput) (translation.Result, error) {
	target, ok := resolveTag(in.TargetLang)
	if !ok {
		return nil, fmt.Errorf("invalid target language %q", in.TargetLang)
	}

	var opts *translate.Options
	if source, ok := resolveTag(in.SourceLang); ok {
		opts = &translate.Options{Source: source, Format: translate.Text}
	} else {
		opts = &translate.Options{Format: translate.Text}
	}

	translations, err := c.api.Translate(ctx, []string{in.Text}, target, opts)
	if err != nil {
		return nil, fmt.Errorf("google translate failed: %w", err)
	}
	if len(translations) == 0 {
		return nil, errors.New("google translate returned no translation")
	}

	payload, err := json.Marshal(result{TranslatedText: html.UnescapeString(translations[0].Text)})
	if err != nil {
		return nil, fmt.Errorf("encode translation result: %w", err)
	}
	return payload, nil
}

func resolveTag(value string) (language.Tag, bool) {
	clean := strings.ToLower(strings.TrimSpace(value))
	if clean == "" || clean == "auto" {
		return language.Und, false
	}
	if tag, ok := languageNames[clean]; ok {
		return tag, true
	}
	tag, err := language.Parse(clean)
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

var _ translation.Translator = (*Client)(nil)
