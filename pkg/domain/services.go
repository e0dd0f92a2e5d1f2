package domain

import "context"

// FileService covers every mutation of the file and trash collections.
// Implementations simulate latency but, apart from the listed
// validation and confirmation errors, cannot fail: the demo has no
// failure state to surface.
type FileService interface {
	Files(ctx context.Context) ([]File, error)
	Trash(ctx context.Context) ([]TrashItem, error)

	Upload(ctx context.Context, params UploadParams) (File, error)
	Delete(ctx context.Context, fileID int64) error
	Restore(ctx context.Context, trashID int64) (File, error)
	PermanentDelete(ctx context.Context, params PermanentDeleteParams) error
	EmptyTrash(ctx context.Context, params EmptyTrashParams) error
	Share(ctx context.Context, params ShareParams) (ShareResult, error)
	Send(ctx context.Context, params SendParams) error
}

type UploadParams struct {
	Request  UploadRequest
	Progress func(percent int) // optional, reported 0..100
}

type PermanentDeleteParams struct {
	TrashID   int64
	Confirmed bool
}

type EmptyTrashParams struct {
	Confirmed bool
}

type ShareParams struct {
	FileID     int64
	Email      string
	Permission SharePermission
}

type SendParams struct {
	FileID    int64
	Method    SendMethod
	Recipient string
}

type FolderService interface {
	Folders(ctx context.Context) ([]Folder, error)
	Create(ctx context.Context, name string) (Folder, error)
	Rename(ctx context.Context, folderID int64, newName string) (Folder, error)
	Delete(ctx context.Context, folderID int64) error
}

// SessionService owns the single current-user record. Current reads it
// synchronously; Logout destroys it.
type SessionService interface {
	Login(ctx context.Context, email, password string) (Session, error)
	Signup(ctx context.Context, email, password string) (Session, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (Session, error)
	Validate(ctx context.Context, token string) (Session, error)
}

type BillingService interface {
	Plans(ctx context.Context) ([]Plan, error)
	Checkout(ctx context.Context, params CheckoutParams) (Receipt, error)
}

type CheckoutParams struct {
	PlanID string
	Email  string
}

// ActivityService exposes the realtime simulation to the dashboard
// widgets.
type ActivityService interface {
	Recent(ctx context.Context) ([]Event, error)
	Presence(ctx context.Context) ([]string, error)
}
