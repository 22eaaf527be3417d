package secrets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// SecretGetter is the subset of the Secrets Manager API used here.
type SecretGetter interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// GetterFactory builds a SecretGetter lazily so AWS credentials are only loaded when needed.
type GetterFactory func(ctx context.Context) (SecretGetter, error)

// NewAWSGetter loads the default AWS configuration chain.
func NewAWSGetter(ctx context.Context) (SecretGetter, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return secretsmanager.NewFromConfig(awsCfg), nil
}

// ResolveAPIKey returns apiKey when set, otherwise the string value of secretID.
// Both empty yields an empty key and no error; the chat client rejects it later.
func ResolveAPIKey(ctx context.Context, apiKey, secretID string, factory GetterFactory) (string, error) {
	if strings.TrimSpace(apiKey) != "" {
		return apiKey, nil
	}
	if strings.TrimSpace(secretID) == "" {
		return "", nil
	}
	if factory == nil {
		factory = NewAWSGetter
	}
	getter, err := factory(ctx)
	if err != nil {
		return "", err
	}
	out, err := getter.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		return "", fmt.Errorf("get secret %s: %w", secretID, err)
	}
	value := strings.TrimSpace(aws.ToString(out.SecretString))
	if value == "" {
		return "", errors.New("secret " + secretID + " has no string value")
	}
	return value, nil
}
