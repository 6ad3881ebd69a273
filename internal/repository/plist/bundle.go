package plist

import (
	"context"
	"errors"
	"os"

	"github.com/RMahshie/eqpresets/internal/repository"
)

// FileBundle is a bundle shipped as a local read-only file
type FileBundle struct {
	Path string
}

// Open reads the bundle file
func (b FileBundle) Open(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if b.Path == "" {
		return nil, repository.ErrBundleNotFound
	}
	data, err := os.ReadFile(b.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, repository.ErrBundleNotFound
	}
	return data, err
}

// Describe returns the bundle path
func (b FileBundle) Describe() string {
	return b.Path
}
