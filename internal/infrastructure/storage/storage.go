// Package storage guarda as imagens enviadas em um bucket GCS ou em disco local.
package storage

import (
	"context"
	"fmt"
	"path"
	"strings"

	domainerrors "github.com/rafabene/threaddate-backend/internal/domain/errors"
	"github.com/rafabene/threaddate-backend/internal/domain/ports"
	"github.com/rafabene/threaddate-backend/internal/infrastructure/config"
)

// New cria o ObjectStorage configurado
func New(ctx context.Context, cfg *config.StorageConfig, logger ports.Logger) (ports.ObjectStorage, error) {
	switch strings.ToLower(cfg.Driver) {
	case "gcs":
		return NewGCSStorage(ctx, cfg.Bucket, cfg.PublicBaseURL, logger)
	case "local":
		return NewLocalStorage(cfg.LocalDir, cfg.PublicBaseURL)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// CleanKey valida uma chave de objeto: relativa, sem "..", sem barras duplicadas
func CleanKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, `\`) {
		return "", domainerrors.ErrInvalidStorageKey
	}

	cleaned := path.Clean(key)
	if cleaned != key || cleaned == "." || strings.HasPrefix(cleaned, "..") {
		return "", domainerrors.ErrInvalidStorageKey
	}

	return cleaned, nil
}

func publicURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + key
}
