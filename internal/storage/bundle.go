package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/RMahshie/eqpresets/internal/repository"
)

// S3Bundle is a default preset bundle kept in object storage
type S3Bundle struct {
	Service S3Service
	Key     string
}

// Open downloads the bundle object
func (b S3Bundle) Open(ctx context.Context) ([]byte, error) {
	data, err := b.Service.DownloadFile(ctx, b.Key)
	if errors.Is(err, ErrObjectNotFound) {
		return nil, repository.ErrBundleNotFound
	}
	return data, err
}

// Describe returns the object key of the bundle
func (b S3Bundle) Describe() string {
	return fmt.Sprintf("s3://%s", b.Key)
}
