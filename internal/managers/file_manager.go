package managers

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/cloudnest/cloudnest/internal/store"
	"github.com/cloudnest/cloudnest/pkg/domain"

	"github.com/rs/zerolog/log"
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

// FileManager implements every file and trash mutation. Operations
// simulate latency and then apply a single store update; apart from
// validation and confirmation gates they cannot fail.
type FileManager struct {
	store        *store.Store
	shareOrigin  string
	latency      time.Duration
	progressTick time.Duration
	sendDelay    time.Duration

	linkMu     sync.Mutex
	lastLinkMS int64
}

type FileManagerDependencies struct {
	Store        *store.Store
	ShareOrigin  string
	Latency      time.Duration
	ProgressTick time.Duration
	SendDelay    time.Duration
}

func NewFileManager(deps FileManagerDependencies) *FileManager {
	return &FileManager{
		store:        deps.Store,
		shareOrigin:  deps.ShareOrigin,
		latency:      deps.Latency,
		progressTick: deps.ProgressTick,
		sendDelay:    deps.SendDelay,
	}
}

func (m *FileManager) Files(ctx context.Context) ([]domain.File, error) {
	return m.store.Files(), nil
}

func (m *FileManager) Trash(ctx context.Context) ([]domain.TrashItem, error) {
	return m.store.Trash(), nil
}

// Upload validates the MIME type, walks progress from 0 to 100 in
// randomized increments, then inserts the new File at the head of the
// collection.
func (m *FileManager) Upload(ctx context.Context, params domain.UploadParams) (domain.File, error) {
	req := params.Request

	if !domain.AcceptedContentType(req.ContentType) {
		log.Debug().
			Str("name", req.Name).
			Str("content_type", req.ContentType).
			Msg("Dropping upload with unsupported type")
		return domain.File{}, domain.ErrUnsupportedType
	}

	progress := 0.0
	for progress < 100 {
		if err := simulateLatency(ctx, m.progressTick); err != nil {
			return domain.File{}, err
		}

		progress += rand.Float64() * 15
		if progress > 100 {
			progress = 100
		}
		if params.Progress != nil {
			params.Progress(int(progress))
		}
	}

	file := domain.File{
		ID:       m.store.NextID(),
		Name:     req.Name,
		Type:     domain.FileTypeFromContentType(req.ContentType),
		Size:     domain.FormatSize(req.SizeBytes),
		Modified: domain.Today(),
		Folder:   req.Folder,
	}

	if err := m.store.AddFile(file); err != nil {
		return domain.File{}, fmt.Errorf("failed to add uploaded file: %w", err)
	}

	log.Info().Int64("file_id", file.ID).Str("name", file.Name).Msg("File uploaded")
	return file, nil
}

// Delete soft-deletes: the file moves into trash in one exclusive step.
func (m *FileManager) Delete(ctx context.Context, fileID int64) error {
	if err := simulateLatency(ctx, m.latency); err != nil {
		return err
	}

	if _, err := m.store.MoveFileToTrash(fileID, domain.Today()); err != nil {
		return err
	}

	log.Info().Int64("file_id", fileID).Msg("Moved file to trash")
	return nil
}

// Restore moves a trash item back to the head of the live files with a
// fresh modified date.
func (m *FileManager) Restore(ctx context.Context, trashID int64) (domain.File, error) {
	if err := simulateLatency(ctx, m.latency); err != nil {
		return domain.File{}, err
	}

	file, err := m.store.RestoreFromTrash(trashID, domain.Today())
	if err != nil {
		return domain.File{}, err
	}

	log.Info().Int64("file_id", file.ID).Msg("Restored file from trash")
	return file, nil
}

// PermanentDelete is the terminal state for an id. Without explicit
// confirmation it is a no-op.
func (m *FileManager) PermanentDelete(ctx context.Context, params domain.PermanentDeleteParams) error {
	if !params.Confirmed {
		return domain.ErrConfirmationRequired
	}

	if err := simulateLatency(ctx, m.latency); err != nil {
		return err
	}

	if err := m.store.RemoveTrashItem(params.TrashID); err != nil {
		return err
	}

	log.Info().Int64("trash_id", params.TrashID).Msg("Permanently deleted trash item")
	return nil
}

// EmptyTrash clears the whole trash collection, all or nothing.
func (m *FileManager) EmptyTrash(ctx context.Context, params domain.EmptyTrashParams) error {
	if !params.Confirmed {
		return domain.ErrConfirmationRequired
	}

	if err := simulateLatency(ctx, m.latency); err != nil {
		return err
	}

	m.store.ClearTrash()
	log.Info().Msg("Emptied trash")
	return nil
}

// Share issues a link of the form {origin}/share/{id}-{base36 ms}.
// The millisecond stamp is monotonic per manager, so two shares in the
// same tick still get distinct links.
func (m *FileManager) Share(ctx context.Context, params domain.ShareParams) (domain.ShareResult, error) {
	if !emailPattern.MatchString(params.Email) {
		return domain.ShareResult{}, domain.ErrInvalidRecipient
	}
	if !params.Permission.Valid() {
		return domain.ShareResult{}, domain.ErrInvalidPermission
	}

	if _, err := m.store.File(params.FileID); err != nil {
		return domain.ShareResult{}, err
	}

	if err := simulateLatency(ctx, m.latency); err != nil {
		return domain.ShareResult{}, err
	}

	link := fmt.Sprintf("%s/share/%d-%s", m.shareOrigin, params.FileID, strconv.FormatInt(m.shareStamp(), 36))

	log.Info().
		Int64("file_id", params.FileID).
		Str("permission", string(params.Permission)).
		Msg("Generated share link")

	return domain.ShareResult{FileID: params.FileID, ShareLink: link}, nil
}

func (m *FileManager) shareStamp() int64 {
	m.linkMu.Lock()
	defer m.linkMu.Unlock()

	now := time.Now().UnixMilli()
	if now <= m.lastLinkMS {
		now = m.lastLinkMS + 1
	}
	m.lastLinkMS = now
	return now
}

// Send delivers a file to a recipient by email or username. Only the
// recipient validation can fail; delivery itself is a simulated delay.
func (m *FileManager) Send(ctx context.Context, params domain.SendParams) error {
	switch params.Method {
	case domain.SendByEmail:
		if !emailPattern.MatchString(params.Recipient) {
			return domain.ErrInvalidRecipient
		}
	case domain.SendByUsername:
		if len(params.Recipient) < 3 || !usernamePattern.MatchString(params.Recipient) {
			return domain.ErrInvalidRecipient
		}
	default:
		return domain.ErrInvalidRecipient
	}

	if _, err := m.store.File(params.FileID); err != nil {
		return err
	}

	if err := simulateLatency(ctx, m.sendDelay); err != nil {
		return err
	}

	log.Info().
		Int64("file_id", params.FileID).
		Str("method", string(params.Method)).
		Msg("Sent file")
	return nil
}
