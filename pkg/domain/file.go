package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the display format used for Modified and DeletedAt stamps.
const DateLayout = "2006-01-02"

type FileType string

const (
	FileTypePDF          FileType = "pdf"
	FileTypeImage        FileType = "image"
	FileTypeSpreadsheet  FileType = "spreadsheet"
	FileTypePresentation FileType = "presentation"
	FileTypeArchive      FileType = "archive"
	FileTypeText         FileType = "text"
	FileTypeOther        FileType = "other"
)

// File is a live entry in the workspace. Size and Modified are display
// strings, matching what the dashboard renders directly.
type File struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Type     FileType `json:"type"`
	Size     string   `json:"size"`
	Modified string   `json:"modified"`
	Folder   string   `json:"folder,omitempty"`
}

// TrashItem is a soft-deleted File. An id lives in Files or in Trash,
// never both.
type TrashItem struct {
	File
	DeletedAt string `json:"deletedAt"`
}

// acceptedContentTypes are the MIME prefixes the upload surface accepts.
// Anything else is dropped before it reaches the store.
var acceptedContentTypes = []string{"image/", "application/pdf", "text/"}

func AcceptedContentType(contentType string) bool {
	for _, prefix := range acceptedContentTypes {
		if strings.HasPrefix(contentType, prefix) {
			return true
		}
	}
	return false
}

// FileTypeFromContentType maps an upload MIME type onto the display enum.
func FileTypeFromContentType(contentType string) FileType {
	switch {
	case contentType == "application/pdf":
		return FileTypePDF
	case strings.HasPrefix(contentType, "image/"):
		return FileTypeImage
	case strings.HasPrefix(contentType, "text/"):
		return FileTypeText
	default:
		return FileTypeOther
	}
}

// FormatSize renders a byte count the way upload does: megabytes with
// two decimals.
func FormatSize(sizeBytes int64) string {
	return fmt.Sprintf("%.2f MB", float64(sizeBytes)/1024/1024)
}

// Today returns the current date in display format.
func Today() string {
	return time.Now().Format(DateLayout)
}

type SharePermission string

const (
	PermissionViewer SharePermission = "viewer"
	PermissionEditor SharePermission = "editor"
)

func (p SharePermission) Valid() bool {
	return p == PermissionViewer || p == PermissionEditor
}

// ShareResult is returned by a successful share operation.
type ShareResult struct {
	FileID    int64  `json:"fileId"`
	ShareLink string `json:"shareLink"`
}

type SendMethod string

const (
	SendByEmail    SendMethod = "email"
	SendByUsername SendMethod = "username"
)

// UploadRequest describes an incoming file before validation.
type UploadRequest struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	SizeBytes   int64  `json:"sizeBytes"`
	Folder      string `json:"folder,omitempty"`
}
