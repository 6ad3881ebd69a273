package storage

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// PresetBackup uploads copies of the preset file to object storage
type PresetBackup struct {
	service S3Service
	prefix  string
	now     func() time.Time
}

// NewPresetBackup creates a backup writer storing objects under prefix
func NewPresetBackup(service S3Service, prefix string) *PresetBackup {
	return &PresetBackup{service: service, prefix: prefix, now: time.Now}
}

// Store uploads data and returns its object key and a download URL
func (b *PresetBackup) Store(ctx context.Context, data []byte) (string, string, error) {
	key := path.Join(b.prefix, fmt.Sprintf("equalizer-presets-%s-%s.plist",
		b.now().UTC().Format("20060102T150405Z"), uuid.NewString()[:8]))

	if err := b.service.UploadFile(ctx, key, data, ContentTypePlist); err != nil {
		return "", "", err
	}

	url, err := b.service.GenerateDownloadURL(ctx, key)
	if err != nil {
		return "", "", err
	}

	log.Info().Str("key", key).Int("bytes", len(data)).Msg("Preset backup stored")
	return key, url, nil
}
