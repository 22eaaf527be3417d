package workersai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/docbridge/internal/domain/translation"
)

type capturedRequest struct {
	Path string
	Auth string
	Body map[string]any
}

func newTestServer(t *testing.T, status int, body string, captured *[]capturedRequest) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var decoded map[string]any
		_ = json.Unmarshal(raw, &decoded)
		*captured = append(*captured, capturedRequest{
			Path: r.URL.Path,
			Auth: r.Header.Get("Authorization"),
			Body: decoded,
		})
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient(Config{
		AccountID:          "acct",
		APIToken:           "cf-token",
		BaseURL:            baseURL,
		SummarizationModel: "@cf/facebook/bart-large-cnn",
		TranslationModel:   "@cf/meta/m2m100-1.2b",
	})
	require.NoError(t, err)
	return client
}

func TestSummarize(t *testing.T) {
	var captured []capturedRequest
	server := newTestServer(t, http.StatusOK, `{"result":{"summary":"A short synopsis."},"success":true,"errors":[],"messages":[]}`, &captured)

	got, err := newTestClient(t, server.URL).Summarize(context.Background(), translation.SummarizeInput{InputText: "Long report text...", MaxLength: 1000})
	require.NoError(t, err)
	require.Equal(t, "A short synopsis.", got.Summary)

	require.Len(t, captured, 1)
	require.Equal(t, "/accounts/acct/ai/run/@cf/facebook/bart-large-cnn", captured[0].Path)
	require.Equal(t, "Bearer cf-token", captured[0].Auth)
	require.Equal(t, map[string]any{"input_text": "Long report text...", "max_length": float64(1000)}, captured[0].Body)
}

func TestTranslatePassesResultThrough(t *testing.T) {
	var captured []capturedRequest
	server := newTestServer(t, http.StatusOK, `{"result":{"translated_text":"Un court résumé."},"success":true}`, &captured)

	got, err := newTestClient(t, server.URL+"/").Translate(context.Background(), translation.TranslateInput{Text: "A short synopsis.", SourceLang: "english", TargetLang: "fr"})
	require.NoError(t, err)
	require.JSONEq(t, `{"translated_text":"Un court résumé."}`, string(got))

	require.Equal(t, "/accounts/acct/ai/run/@cf/meta/m2m100-1.2b", captured[0].Path)
	require.Equal(t, map[string]any{"text": "A short synopsis.", "source_lang": "english", "target_lang": "fr"}, captured[0].Body)
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{
			name:    "http status",
			status:  http.StatusBadGateway,
			body:    `upstream down`,
			wantErr: "status=502 body=upstream down",
		},
		{
			name:    "unsuccessful envelope",
			status:  http.StatusOK,
			body:    `{"result":null,"success":false,"errors":[{"code":5007,"message":"No such model"}]}`,
			wantErr: "5007: No such model",
		},
		{
			name:    "missing result",
			status:  http.StatusOK,
			body:    `{"success":true}`,
			wantErr: "returned no result",
		},
		{
			name:    "malformed body",
			status:  http.StatusOK,
			body:    `<html>`,
			wantErr: "decode workers ai response",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var captured []capturedRequest
			server := newTestServer(t, tt.status, tt.body, &captured)

			_, err := newTestClient(t, server.URL).Translate(context.Background(), translation.TranslateInput{Text: "x", TargetLang: "de"})
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestSummarizeUnexpectedShape(t *testing.T) {
	var captured []capturedRequest
	server := newTestServer(t, http.StatusOK, `{"result":{"summary":42},"success":true}`, &captured)

	_, err := newTestClient(t, server.URL).Summarize(context.Background(), translation.SummarizeInput{InputText: "x", MaxLength: 10})
	require.ErrorContains(t, err, "decode summarization result")
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient(Config{APIToken: "t"})
	require.EqualError(t, err, "workers ai account id cannot be empty")

	_, err = NewClient(Config{AccountID: "a"})
	require.EqualError(t, err, "workers ai api token cannot be empty")

	client, err := NewClient(Config{AccountID: "a", APIToken: "t"})
	require.NoError(t, err)
	require.Equal(t, defaultBaseURL, client.baseURL)
}
