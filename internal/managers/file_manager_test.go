package managers

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudnest/cloudnest/internal/store"
	"github.com/cloudnest/cloudnest/pkg/domain"
)

func newTestFileManager(t *testing.T) (*FileManager, *store.Store) {
	t.Helper()

	s := store.NewSeeded()
	m := NewFileManager(FileManagerDependencies{
		Store:       s,
		ShareOrigin: "https://cloudnest.test",
		// Zero delays keep the tests instant.
	})
	return m, s
}

func TestUpload(t *testing.T) {
	m, s := newTestFileManager(t)

	var reported []int
	file, err := m.Upload(context.Background(), domain.UploadParams{
		Request: domain.UploadRequest{
			Name:        "a.txt",
			ContentType: "text/plain",
			SizeBytes:   2097152,
		},
		Progress: func(percent int) { reported = append(reported, percent) },
	})
	require.NoError(t, err)

	assert.Equal(t, "a.txt", file.Name)
	assert.Equal(t, domain.FileTypeText, file.Type)
	assert.Equal(t, "2.00 MB", file.Size)
	assert.Equal(t, domain.Today(), file.Modified)

	files := s.Files()
	require.Len(t, files, 9)
	assert.Equal(t, file.ID, files[0].ID, "upload should land at the head")

	require.NotEmpty(t, reported)
	assert.Equal(t, 100, reported[len(reported)-1], "progress must finish at 100")
	for i := 1; i < len(reported); i++ {
		assert.GreaterOrEqual(t, reported[i], reported[i-1], "progress must be monotonic")
	}
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	m, s := newTestFileManager(t)

	_, err := m.Upload(context.Background(), domain.UploadParams{
		Request: domain.UploadRequest{
			Name:        "clip.mp4",
			ContentType: "video/mp4",
			SizeBytes:   1024,
		},
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
	assert.Len(t, s.Files(), 8, "rejected upload must not touch the store")
}

func TestDeleteMovesToTrash(t *testing.T) {
	m, s := newTestFileManager(t)

	require.NoError(t, m.Delete(context.Background(), 1))

	assert.Len(t, s.Files(), 7)
	trash := s.Trash()
	require.Len(t, trash, 4)
	assert.Equal(t, int64(1), trash[len(trash)-1].ID)
	assert.Equal(t, domain.Today(), trash[len(trash)-1].DeletedAt)

	err := m.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRestore(t *testing.T) {
	m, s := newTestFileManager(t)

	file, err := m.Restore(context.Background(), 201)
	require.NoError(t, err)
	assert.Equal(t, domain.Today(), file.Modified)

	files := s.Files()
	assert.Equal(t, int64(201), files[0].ID)
	assert.Len(t, s.Trash(), 2)
}

func TestPermanentDeleteRequiresConfirmation(t *testing.T) {
	m, s := newTestFileManager(t)

	err := m.PermanentDelete(context.Background(), domain.PermanentDeleteParams{TrashID: 201})
	assert.ErrorIs(t, err, domain.ErrConfirmationRequired)
	assert.Len(t, s.Trash(), 3, "unconfirmed delete must be a no-op")

	err = m.PermanentDelete(context.Background(), domain.PermanentDeleteParams{TrashID: 201, Confirmed: true})
	require.NoError(t, err)
	assert.Len(t, s.Trash(), 2)
}

func TestEmptyTrash(t *testing.T) {
	m, s := newTestFileManager(t)

	err := m.EmptyTrash(context.Background(), domain.EmptyTrashParams{})
	assert.ErrorIs(t, err, domain.ErrConfirmationRequired)
	assert.Len(t, s.Trash(), 3)

	err = m.EmptyTrash(context.Background(), domain.EmptyTrashParams{Confirmed: true})
	require.NoError(t, err)
	assert.Empty(t, s.Trash())
}

func TestShare(t *testing.T) {
	m, _ := newTestFileManager(t)

	result, err := m.Share(context.Background(), domain.ShareParams{
		FileID:     1,
		Email:      "alice@example.com",
		Permission: domain.PermissionViewer,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.FileID)
	assert.True(t, strings.HasPrefix(result.ShareLink, "https://cloudnest.test/share/1-"),
		"unexpected link %q", result.ShareLink)
}

func TestShareLinksAreUnique(t *testing.T) {
	m, _ := newTestFileManager(t)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		result, err := m.Share(context.Background(), domain.ShareParams{
			FileID:     1,
			Email:      "alice@example.com",
			Permission: domain.PermissionEditor,
		})
		require.NoError(t, err)
		assert.False(t, seen[result.ShareLink], "duplicate link %q", result.ShareLink)
		seen[result.ShareLink] = true
	}
}

func TestShareValidation(t *testing.T) {
	m, _ := newTestFileManager(t)

	tests := []struct {
		name     string
		params   domain.ShareParams
		expected error
	}{
		{
			name:     "malformed email",
			params:   domain.ShareParams{FileID: 1, Email: "not-an-email", Permission: domain.PermissionViewer},
			expected: domain.ErrInvalidRecipient,
		},
		{
			name:     "email with spaces",
			params:   domain.ShareParams{FileID: 1, Email: "a b@example.com", Permission: domain.PermissionViewer},
			expected: domain.ErrInvalidRecipient,
		},
		{
			name:     "unknown permission",
			params:   domain.ShareParams{FileID: 1, Email: "alice@example.com", Permission: "owner"},
			expected: domain.ErrInvalidPermission,
		},
		{
			name:     "missing file",
			params:   domain.ShareParams{FileID: 999, Email: "alice@example.com", Permission: domain.PermissionViewer},
			expected: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Share(context.Background(), tt.params)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestSend(t *testing.T) {
	m, _ := newTestFileManager(t)

	tests := []struct {
		name     string
		params   domain.SendParams
		expected error
	}{
		{
			name:   "valid email",
			params: domain.SendParams{FileID: 1, Method: domain.SendByEmail, Recipient: "bob@example.com"},
		},
		{
			name:   "valid username",
			params: domain.SendParams{FileID: 1, Method: domain.SendByUsername, Recipient: "bob_42"},
		},
		{
			name:     "bad email",
			params:   domain.SendParams{FileID: 1, Method: domain.SendByEmail, Recipient: "bob"},
			expected: domain.ErrInvalidRecipient,
		},
		{
			name:     "username too short",
			params:   domain.SendParams{FileID: 1, Method: domain.SendByUsername, Recipient: "ab"},
			expected: domain.ErrInvalidRecipient,
		},
		{
			name:     "username with illegal characters",
			params:   domain.SendParams{FileID: 1, Method: domain.SendByUsername, Recipient: "bob!"},
			expected: domain.ErrInvalidRecipient,
		},
		{
			name:     "unknown method",
			params:   domain.SendParams{FileID: 1, Method: "carrier-pigeon", Recipient: "bob"},
			expected: domain.ErrInvalidRecipient,
		},
		{
			name:     "missing file",
			params:   domain.SendParams{FileID: 999, Method: domain.SendByEmail, Recipient: "bob@example.com"},
			expected: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := m.Send(context.Background(), tt.params)
			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}

func TestCancelledContextStopsLatency(t *testing.T) {
	s := store.NewSeeded()
	m := NewFileManager(FileManagerDependencies{
		Store:   s,
		Latency: 10 * time.Second, // must never elapse
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Delete(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, s.Files(), 8, "cancelled operation must not mutate the store")
}
