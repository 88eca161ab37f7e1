// Package secrets loads credentials from the environment or AWS Secrets Manager.
package secrets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/jordanlanch/calltracker/pkg/logger"
)

// ErrNotFound is returned when a secret does not exist in the backend
var ErrNotFound = errors.New("secret not found")

// Manager defines the interface for secrets management
type Manager interface {
	// GetSecret retrieves a secret by key
	GetSecret(ctx context.Context, key string) (string, error)
}

// Config holds secrets manager configuration
type Config struct {
	Backend       string // "env" or "aws-secrets-manager"
	AWSRegion     string
	Prefix        string // prepended to every key looked up in AWS
	CacheDuration time.Duration
}

// NewManager creates a new secrets manager based on configuration
func NewManager(cfg Config, log logger.Logger) (Manager, error) {
	switch cfg.Backend {
	case "aws-secrets-manager", "aws":
		sess, err := session.NewSession(&aws.Config{
			Region: aws.String(cfg.AWSRegion),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create AWS session: %w", err)
		}
		log.Info("using AWS Secrets Manager", "region", cfg.AWSRegion, "prefix", cfg.Prefix)
		return NewAWSSecretsManager(secretsmanager.New(sess), cfg), nil
	case "env", "environment", "":
		return EnvironmentManager{}, nil
	default:
		return nil, fmt.Errorf("unsupported secrets backend: %s", cfg.Backend)
	}
}

// EnvironmentManager reads secrets from environment variables
type EnvironmentManager struct{}

// GetSecret implements Manager
func (EnvironmentManager) GetSecret(ctx context.Context, key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return value, nil
}

// SecretsAPI is the part of the Secrets Manager client we call
type SecretsAPI interface {
	GetSecretValueWithContext(ctx aws.Context, input *secretsmanager.GetSecretValueInput, opts ...request.Option) (*secretsmanager.GetSecretValueOutput, error)
}

// AWSSecretsManager loads secrets from AWS Secrets Manager
type AWSSecretsManager struct {
	client SecretsAPI
	config Config

	mu    sync.RWMutex
	cache map[string]cachedSecret
}

type cachedSecret struct {
	value     string
	expiresAt time.Time
}

// NewAWSSecretsManager wraps a Secrets Manager client with a per-key cache
func NewAWSSecretsManager(client SecretsAPI, cfg Config) *AWSSecretsManager {
	return &AWSSecretsManager{
		client: client,
		config: cfg,
		cache:  make(map[string]cachedSecret),
	}
}

// GetSecret retrieves Prefix+key from AWS Secrets Manager
func (m *AWSSecretsManager) GetSecret(ctx context.Context, key string) (string, error) {
	if value, ok := m.cached(key); ok {
		return value, nil
	}

	id := m.config.Prefix + key
	result, err := m.client.GetSecretValueWithContext(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(id),
	})
	if err != nil {
		var aerr awserr.Error
		if errors.As(err, &aerr) && aerr.Code() == secretsmanager.ErrCodeResourceNotFoundException {
			return "", fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return "", fmt.Errorf("failed to get secret %s: %w", id, err)
	}
	if result.SecretString == nil {
		return "", fmt.Errorf("secret %s has no string value", id)
	}

	m.store(key, *result.SecretString)
	return *result.SecretString, nil
}

func (m *AWSSecretsManager) cached(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.cache[key]
	if !ok || time.Now().After(c.expiresAt) {
		return "", false
	}
	return c.value, true
}

func (m *AWSSecretsManager) store(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cache[key] = cachedSecret{
		value:     value,
		expiresAt: time.Now().Add(m.config.CacheDuration),
	}
}
