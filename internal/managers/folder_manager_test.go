package managers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudnest/cloudnest/internal/store"
	"github.com/cloudnest/cloudnest/pkg/domain"
)

func newTestFolderManager(t *testing.T) (*FolderManager, *store.Store) {
	t.Helper()

	s := store.NewSeeded()
	return NewFolderManager(FolderManagerDependencies{Store: s}), s
}

func TestCreateFolder(t *testing.T) {
	m, s := newTestFolderManager(t)

	folder, err := m.Create(context.Background(), "Reports")
	require.NoError(t, err)

	assert.Equal(t, "Reports", folder.Name)
	assert.Equal(t, 0, folder.ItemCount)
	assert.Equal(t, domain.Today(), folder.Modified)
	assert.GreaterOrEqual(t, folder.ID, int64(1000), "generated ids start above the seeded range")

	assert.Len(t, s.Folders(), 5)
}

func TestCreateFoldersDistinctIDs(t *testing.T) {
	m, _ := newTestFolderManager(t)

	first, err := m.Create(context.Background(), "One")
	require.NoError(t, err)
	second, err := m.Create(context.Background(), "Two")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestRenameFolderManager(t *testing.T) {
	m, s := newTestFolderManager(t)

	folder, err := m.Rename(context.Background(), 102, "Pictures")
	require.NoError(t, err)
	assert.Equal(t, "Pictures", folder.Name)
	assert.Equal(t, domain.Today(), folder.Modified)

	stored, err := s.Folder(102)
	require.NoError(t, err)
	assert.Equal(t, "Pictures", stored.Name)

	_, err = m.Rename(context.Background(), 999, "Ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteFolderManager(t *testing.T) {
	m, s := newTestFolderManager(t)

	require.NoError(t, m.Delete(context.Background(), 103))
	assert.Len(t, s.Folders(), 3)

	err := m.Delete(context.Background(), 103)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
