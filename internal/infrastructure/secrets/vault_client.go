// Package secrets integrates HashiCorp Vault for runtime credential loading.
package secrets

import (
	"context"
	"fmt"

	vault "github.com/hashicorp/vault/api"

	"github.com/Facely1er/vendor-soluce-portal-sub001/internal/config"
	"github.com/Facely1er/vendor-soluce-portal-sub001/pkg/logger"
)

// VaultClient reads secrets from a KVv2 mount. Token auth only; the token
// is expected to come from the platform's secret injection.
type VaultClient struct {
	client    *vault.Client
	mountPath string
	log       logger.Logger
}

// NewVaultClient creates and configures a Vault client.
func NewVaultClient(cfg *config.VaultConfig, log logger.Logger) (*VaultClient, error) {
	vaultConfig := vault.DefaultConfig()
	vaultConfig.Address = cfg.Address

	client, err := vault.NewClient(vaultConfig)
	if err != nil {
		return nil, err
	}
	client.SetToken(cfg.Token)

	return &VaultClient{
		client:    client,
		mountPath: cfg.MountPath,
		log:       log.WithComponent("vault"),
	}, nil
}

// GetString reads one string field from the secret at secretPath.
func (v *VaultClient) GetString(ctx context.Context, secretPath, field string) (string, error) {
	secret, err := v.client.KVv2(v.mountPath).Get(ctx, secretPath)
	if err != nil {
		return "", fmt.Errorf("vault read %s: %w", secretPath, err)
	}
	if secret == nil || secret.Data == nil {
		return "", fmt.Errorf("vault secret %s not found", secretPath)
	}
	value, ok := secret.Data[field].(string)
	if !ok {
		return "", fmt.Errorf("vault secret %s has no string field %q", secretPath, field)
	}
	return value, nil
}

// LoadDatabasePassword overwrites the database password in cfg from Vault
// when Vault integration is enabled. With Vault disabled the config value
// stands.
func LoadDatabasePassword(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	if !cfg.Vault.Enabled {
		return nil
	}

	client, err := NewVaultClient(&cfg.Vault, log)
	if err != nil {
		return err
	}
	password, err := client.GetString(ctx, cfg.Vault.SecretKey, "password")
	if err != nil {
		return err
	}

	cfg.Database.Password = password
	log.Info(ctx, "database password loaded from vault", logger.Fields{
		"secret": cfg.Vault.SecretKey,
	})
	return nil
}
