package cloudnest

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cloudnest/cloudnest/pkg/domain"

	"github.com/rs/zerolog/log"
)

// ResultSource tags where a resolver result came from, so callers can
// tell live data from the canned demo payloads.
type ResultSource string

const (
	SourceLive     ResultSource = "live"
	SourceFallback ResultSource = "fallback"
)

type FilesResult struct {
	Files  []domain.File
	Source ResultSource
}

type FoldersResult struct {
	Folders []domain.Folder
	Source  ResultSource
}

type TrashResult struct {
	Items  []domain.TrashItem
	Source ResultSource
}

type MutationResult struct {
	Success bool
	Source  ResultSource
}

type ShareLinkResult struct {
	ShareLink string
	Source    ResultSource
}

type AuthResult struct {
	User   domain.User
	Token  string
	Source ResultSource
}

// Resolver wraps the client with the demo's optimistic-fallback
// policy: any transport failure resolves to a canned payload instead
// of an error. This is the only place that contract lives — callers
// that want genuine error propagation use the Client directly.
type Resolver struct {
	client      ClientInterface
	shareOrigin string
}

type ResolverDependencies struct {
	Client      ClientInterface
	ShareOrigin string
}

func NewResolver(deps ResolverDependencies) *Resolver {
	shareOrigin := deps.ShareOrigin
	if shareOrigin == "" {
		shareOrigin = "https://cloudnest.app"
	}

	return &Resolver{
		client:      deps.Client,
		shareOrigin: shareOrigin,
	}
}

func (r *Resolver) Files(ctx context.Context) FilesResult {
	files, err := r.client.GetFiles(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("Files request failed, serving fallback data")
		return FilesResult{Files: fallbackFiles(), Source: SourceFallback}
	}
	return FilesResult{Files: files, Source: SourceLive}
}

func (r *Resolver) Folders(ctx context.Context) FoldersResult {
	folders, err := r.client.GetFolders(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("Folders request failed, serving fallback data")
		return FoldersResult{Folders: fallbackFolders(), Source: SourceFallback}
	}
	return FoldersResult{Folders: folders, Source: SourceLive}
}

func (r *Resolver) Trash(ctx context.Context) TrashResult {
	items, err := r.client.GetTrash(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("Trash request failed, serving fallback data")
		return TrashResult{Items: fallbackTrash(), Source: SourceFallback}
	}
	return TrashResult{Items: items, Source: SourceLive}
}

func (r *Resolver) DeleteFile(ctx context.Context, fileID int64) MutationResult {
	if err := r.client.DeleteFile(ctx, fileID); err != nil {
		log.Debug().Err(err).Int64("file_id", fileID).Msg("Delete request failed, reporting success anyway")
		return MutationResult{Success: true, Source: SourceFallback}
	}
	return MutationResult{Success: true, Source: SourceLive}
}

func (r *Resolver) RestoreFile(ctx context.Context, fileID int64) MutationResult {
	if _, err := r.client.RestoreFile(ctx, fileID); err != nil {
		log.Debug().Err(err).Int64("file_id", fileID).Msg("Restore request failed, reporting success anyway")
		return MutationResult{Success: true, Source: SourceFallback}
	}
	return MutationResult{Success: true, Source: SourceLive}
}

func (r *Resolver) PermanentDelete(ctx context.Context, trashID int64, confirmed bool) MutationResult {
	if err := r.client.PermanentDelete(ctx, trashID, confirmed); err != nil {
		log.Debug().Err(err).Int64("trash_id", trashID).Msg("Permanent delete request failed, reporting success anyway")
		return MutationResult{Success: true, Source: SourceFallback}
	}
	return MutationResult{Success: true, Source: SourceLive}
}

// ShareFile falls back to fabricating a link locally, the same
// {origin}/share/{id}-{base36 ms} shape the backend would return.
func (r *Resolver) ShareFile(ctx context.Context, fileID int64, email string, permission domain.SharePermission) ShareLinkResult {
	resp, err := r.client.ShareFile(ctx, fileID, &ShareFileRequest{Email: email, Permission: permission})
	if err != nil {
		log.Debug().Err(err).Int64("file_id", fileID).Msg("Share request failed, fabricating link")
		link := fmt.Sprintf("%s/share/%d-%s", r.shareOrigin, fileID, strconv.FormatInt(time.Now().UnixMilli(), 36))
		return ShareLinkResult{ShareLink: link, Source: SourceFallback}
	}
	return ShareLinkResult{ShareLink: resp.ShareLink, Source: SourceLive}
}

func (r *Resolver) Login(ctx context.Context, email, password string) AuthResult {
	resp, err := r.client.Login(ctx, email, password)
	if err != nil {
		log.Debug().Err(err).Msg("Login request failed, simulating success")
		return AuthResult{User: domain.User{Email: email}, Token: "fake-token-123", Source: SourceFallback}
	}
	return AuthResult{User: resp.User, Token: resp.Token, Source: SourceLive}
}

func (r *Resolver) Signup(ctx context.Context, email, password string) AuthResult {
	resp, err := r.client.Signup(ctx, email, password)
	if err != nil {
		log.Debug().Err(err).Msg("Signup request failed, simulating success")
		return AuthResult{User: domain.User{Email: email}, Token: "fake-token-123", Source: SourceFallback}
	}
	return AuthResult{User: resp.User, Token: resp.Token, Source: SourceLive}
}

// The canned payloads, mirroring the demo seed catalog.
func fallbackFiles() []domain.File {
	return []domain.File{
		{ID: 1, Name: "Project Proposal.pdf", Type: domain.FileTypePDF, Size: "2.4 MB", Modified: "2024-01-15", Folder: "Documents"},
		{ID: 2, Name: "Budget Report.xlsx", Type: domain.FileTypeSpreadsheet, Size: "1.8 MB", Modified: "2024-01-14", Folder: "Documents"},
		{ID: 3, Name: "Team Photo.jpg", Type: domain.FileTypeImage, Size: "4.2 MB", Modified: "2024-01-13", Folder: "Images"},
		{ID: 4, Name: "Meeting Notes.txt", Type: domain.FileTypeText, Size: "24 KB", Modified: "2024-01-12", Folder: "Documents"},
		{ID: 5, Name: "Presentation.pptx", Type: domain.FileTypePresentation, Size: "5.6 MB", Modified: "2024-01-11", Folder: "Documents"},
		{ID: 6, Name: "Logo Design.png", Type: domain.FileTypeImage, Size: "856 KB", Modified: "2024-01-10", Folder: "Images"},
		{ID: 7, Name: "Contract.pdf", Type: domain.FileTypePDF, Size: "1.2 MB", Modified: "2024-01-09", Folder: "Documents"},
		{ID: 8, Name: "Vacation Photos.zip", Type: domain.FileTypeArchive, Size: "45 MB", Modified: "2024-01-08", Folder: "Archives"},
	}
}

func fallbackFolders() []domain.Folder {
	return []domain.Folder{
		{ID: 101, Name: "Documents", ItemCount: 12, Modified: "2024-01-15"},
		{ID: 102, Name: "Images", ItemCount: 8, Modified: "2024-01-13"},
		{ID: 103, Name: "Archives", ItemCount: 3, Modified: "2024-01-08"},
		{ID: 104, Name: "Projects", ItemCount: 5, Modified: "2024-01-07"},
	}
}

func fallbackTrash() []domain.TrashItem {
	return []domain.TrashItem{
		{File: domain.File{ID: 201, Name: "Old Report.pdf", Type: domain.FileTypePDF, Size: "1.1 MB"}, DeletedAt: "2024-01-14"},
		{File: domain.File{ID: 202, Name: "Unused Image.jpg", Type: domain.FileTypeImage, Size: "2.3 MB"}, DeletedAt: "2024-01-12"},
		{File: domain.File{ID: 203, Name: "Draft.txt", Type: domain.FileTypeText, Size: "15 KB"}, DeletedAt: "2024-01-10"},
	}
}
