package secrets

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/require"
)

type stubGetter struct {
	value string
	err   error
	asked []string
}

func (s *stubGetter) GetSecretValue(_ context.Context, params *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	s.asked = append(s.asked, aws.ToString(params.SecretId))
	if s.err != nil {
		return nil, s.err
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(s.value)}, nil
}

func factoryFor(getter SecretGetter) GetterFactory {
	return func(context.Context) (SecretGetter, error) { return getter, nil }
}

func TestResolveAPIKeyPrefersConfiguredKey(t *testing.T) {
	getter := &stubGetter{value: "from-secret"}
	key, err := ResolveAPIKey(context.Background(), "sk-configured", "openai-api-key", factoryFor(getter))
	require.NoError(t, err)
	require.Equal(t, "sk-configured", key)
	require.Empty(t, getter.asked)
}

func TestResolveAPIKeyFromSecret(t *testing.T) {
	getter := &stubGetter{value: " sk-secret\n"}
	key, err := ResolveAPIKey(context.Background(), "", "openai-api-key", factoryFor(getter))
	require.NoError(t, err)
	require.Equal(t, "sk-secret", key)
	require.Equal(t, []string{"openai-api-key"}, getter.asked)
}

func TestResolveAPIKeyNothingConfigured(t *testing.T) {
	key, err := ResolveAPIKey(context.Background(), "", "", func(context.Context) (SecretGetter, error) {
		t.Fatal("factory must not be called")
		return nil, nil
	})
	require.NoError(t, err)
	require.Empty(t, key)
}

func TestResolveAPIKeyErrors(t *testing.T) {
	_, err := ResolveAPIKey(context.Background(), "", "id", factoryFor(&stubGetter{err: errors.New("access denied")}))
	require.EqualError(t, err, "get secret id: access denied")

	_, err = ResolveAPIKey(context.Background(), "", "id", factoryFor(&stubGetter{value: "  "}))
	require.EqualError(t, err, "secret id has no string value")

	_, err = ResolveAPIKey(context.Background(), "", "id", func(context.Context) (SecretGetter, error) {
		return nil, errors.New("no credentials")
	})
	require.EqualError(t, err, "no credentials")
}
