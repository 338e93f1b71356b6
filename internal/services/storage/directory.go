package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type directoryStore struct {
	root    string
	baseUrl string
}

func NewDirectoryStore(root string, publicBaseUrl string) Store {
	return &directoryStore{
		root:    root,
		baseUrl: publicBaseUrl,
	}
}

func (d *directoryStore) Put(_ context.Context, key string, _ string, content io.Reader, _ int64) (string, error) {
	cleaned, err := CleanKey(key)
	if err != nil {
		return "", err
	}

	target := filepath.Join(d.root, filepath.FromSlash(cleaned))
	err = os.MkdirAll(filepath.Dir(target), 0o755)
	if err != nil {
		return "", fmt.Errorf("creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	_, err = io.Copy(tmp, content)
	if err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("writing file: %w", err)
	}

	err = tmp.Close()
	if err != nil {
		return "", fmt.Errorf("closing file: %w", err)
	}

	err = os.Rename(tmp.Name(), target)
	if err != nil {
		return "", fmt.Errorf("moving file into place: %w", err)
	}

	return publicUrl(d.baseUrl, cleaned), nil
}

func (d *directoryStore) Delete(_ context.Context, key string) error {
	cleaned, err := CleanKey(key)
	if err != nil {
		return err
	}

	err = os.Remove(filepath.Join(d.root, filepath.FromSlash(cleaned)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting file: %w", err)
	}

	return nil
}
