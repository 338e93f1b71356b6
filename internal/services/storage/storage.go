package storage

import (
	"Listline/internal/config"
	"context"
	"fmt"
	"io"
	"path"
	"strings"
)

var ErrInvalidKey = fmt.Errorf("invalid storage key")

//go:generate mockgen -destination=./mocks/store.go -package=mocks Listline/internal/services/storage Store
type Store interface {
	// Put stores the content under key and returns its public url.
	Put(ctx context.Context, key string, contentType string, content io.Reader, size int64) (string, error)
	Delete(ctx context.Context, key string) error
}

func NewStore(ctx context.Context, c config.StorageConfig) (Store, error) {
	switch c.Mode {
	case config.StorageModeDirectory:
		return NewDirectoryStore(c.Directory.Path, c.PublicBaseUrl), nil

	case config.StorageModeS3:
		return NewS3Store(ctx, c)

	default:
		return nil, fmt.Errorf("unsupported storage mode: %s", c.Mode)
	}
}

// CleanKey normalizes a slash separated key and rejects keys that escape the store root.
func CleanKey(key string) (string, error) {
	trimmed := strings.Trim(key, "/")
	if trimmed == "" {
		return "", ErrInvalidKey
	}

	for _, segment := range strings.Split(trimmed, "/") {
		if segment == ".." {
			return "", ErrInvalidKey
		}
	}

	cleaned := path.Clean(trimmed)
	if cleaned == "." {
		return "", ErrInvalidKey
	}

	return cleaned, nil
}

func publicUrl(baseUrl string, key string) string {
	return baseUrl + "/" + key
}
