package storage

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/RMahshie/eqpresets/internal/repository"
)

// MockS3Service implements S3Service for testing
type MockS3Service struct {
	mock.Mock
}

func (m *MockS3Service) GenerateDownloadURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockS3Service) DownloadFile(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *MockS3Service) UploadFile(ctx context.Context, key string, data []byte, contentType string) error {
	args := m.Called(ctx, key, data, contentType)
	return args.Error(0)
}

func (m *MockS3Service) DeleteFile(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func TestNewS3Service_RequiresBucket(t *testing.T) {
	_, err := NewS3Service(S3Config{})
	assert.Error(t, err)
}

func TestS3Service_ValidateContentType(t *testing.T) {
	s := &s3Service{}
	assert.NoError(t, s.validateContentType(ContentTypePlist))
	assert.NoError(t, s.validateContentType("application/octet-stream"))
	assert.Error(t, s.validateContentType("audio/wav"))
}

func TestS3Bundle_Open(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		err     error
		wantErr error
	}{
		{name: "found", data: []byte("bplist00")},
		{name: "missing", err: fmt.Errorf("defaults.plist: %w", ErrObjectNotFound), wantErr: repository.ErrBundleNotFound},
		{name: "network failure", err: assert.AnError, wantErr: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockS3Service{}
			svc.On("DownloadFile", mock.Anything, "defaults.plist").Return(tt.data, tt.err)

			data, err := S3Bundle{Service: svc, Key: "defaults.plist"}.Open(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.data, data)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestPresetBackup_Store(t *testing.T) {
	svc := &MockS3Service{}
	data := []byte("bplist00")
	svc.On("UploadFile", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "backups/equalizer-presets-20261016T120000Z-") && strings.HasSuffix(key, ".plist")
	}), data, ContentTypePlist).Return(nil)
	svc.On("GenerateDownloadURL", mock.Anything, mock.AnythingOfType("string")).Return("https://example.com/backup", nil)

	backup := NewPresetBackup(svc, "backups")
	backup.now = func() time.Time { return time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC) }

	key, url, err := backup.Store(context.Background(), data)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "backups/"))
	assert.Equal(t, "https://example.com/backup", url)
	svc.AssertExpectations(t)
}

func TestPresetBackup_UploadFailure(t *testing.T) {
	svc := &MockS3Service{}
	svc.On("UploadFile", mock.Anything, mock.Anything, mock.Anything, ContentTypePlist).Return(assert.AnError)

	_, _, err := NewPresetBackup(svc, "").Store(context.Background(), []byte("x"))
	assert.ErrorIs(t, err, assert.AnError)
	svc.AssertNotCalled(t, "GenerateDownloadURL", mock.Anything, mock.Anything)
}
