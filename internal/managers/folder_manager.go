package managers

import (
	"context"
	"time"

	"github.com/cloudnest/cloudnest/internal/store"
	"github.com/cloudnest/cloudnest/pkg/domain"

	"github.com/rs/zerolog/log"
)

type FolderManager struct {
	store   *store.Store
	latency time.Duration
}

type FolderManagerDependencies struct {
	Store   *store.Store
	Latency time.Duration
}

func NewFolderManager(deps FolderManagerDependencies) *FolderManager {
	return &FolderManager{
		store:   deps.Store,
		latency: deps.Latency,
	}
}

func (m *FolderManager) Folders(ctx context.Context) ([]domain.Folder, error) {
	return m.store.Folders(), nil
}

func (m *FolderManager) Create(ctx context.Context, name string) (domain.Folder, error) {
	if err := simulateLatency(ctx, m.latency); err != nil {
		return domain.Folder{}, err
	}

	folder := domain.Folder{
		ID:        m.store.NextID(),
		Name:      name,
		ItemCount: 0,
		Modified:  domain.Today(),
	}

	if err := m.store.AddFolder(folder); err != nil {
		return domain.Folder{}, err
	}

	log.Info().Int64("folder_id", folder.ID).Str("name", name).Msg("Created folder")
	return folder, nil
}

func (m *FolderManager) Rename(ctx context.Context, folderID int64, newName string) (domain.Folder, error) {
	if err := simulateLatency(ctx, m.latency); err != nil {
		return domain.Folder{}, err
	}

	folder, err := m.store.RenameFolder(folderID, newName, domain.Today())
	if err != nil {
		return domain.Folder{}, err
	}

	log.Info().Int64("folder_id", folderID).Str("name", newName).Msg("Renamed folder")
	return folder, nil
}

func (m *FolderManager) Delete(ctx context.Context, folderID int64) error {
	if err := simulateLatency(ctx, m.latency); err != nil {
		return err
	}

	if err := m.store.RemoveFolder(folderID); err != nil {
		return err
	}

	log.Info().Int64("folder_id", folderID).Msg("Deleted folder")
	return nil
}
