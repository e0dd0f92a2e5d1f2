package store

import "github.com/cloudnest/cloudnest/pkg/domain"

// The demo catalog every fresh session starts from. These are also the
// canned payloads the transport fallback serves, so the values must
// stay in sync with pkg/clients/cloudnest.
var seedFiles = []domain.File{
	{ID: 1, Name: "Project Proposal.pdf", Type: domain.FileTypePDF, Size: "2.4 MB", Modified: "2024-01-15", Folder: "Documents"},
	{ID: 2, Name: "Budget Report.xlsx", Type: domain.FileTypeSpreadsheet, Size: "1.8 MB", Modified: "2024-01-14", Folder: "Documents"},
	{ID: 3, Name: "Team Photo.jpg", Type: domain.FileTypeImage, Size: "4.2 MB", Modified: "2024-01-13", Folder: "Images"},
	{ID: 4, Name: "Meeting Notes.txt", Type: domain.FileTypeText, Size: "24 KB", Modified: "2024-01-12", Folder: "Documents"},
	{ID: 5, Name: "Presentation.pptx", Type: domain.FileTypePresentation, Size: "5.6 MB", Modified: "2024-01-11", Folder: "Documents"},
	{ID: 6, Name: "Logo Design.png", Type: domain.FileTypeImage, Size: "856 KB", Modified: "2024-01-10", Folder: "Images"},
	{ID: 7, Name: "Contract.pdf", Type: domain.FileTypePDF, Size: "1.2 MB", Modified: "2024-01-09", Folder: "Documents"},
	{ID: 8, Name: "Vacation Photos.zip", Type: domain.FileTypeArchive, Size: "45 MB", Modified: "2024-01-08", Folder: "Archives"},
}

var seedFolders = []domain.Folder{
	{ID: 101, Name: "Documents", ItemCount: 12, Modified: "2024-01-15"},
	{ID: 102, Name: "Images", ItemCount: 8, Modified: "2024-01-13"},
	{ID: 103, Name: "Archives", ItemCount: 3, Modified: "2024-01-08"},
	{ID: 104, Name: "Projects", ItemCount: 5, Modified: "2024-01-07"},
}

var seedTrash = []domain.TrashItem{
	{File: domain.File{ID: 201, Name: "Old Report.pdf", Type: domain.FileTypePDF, Size: "1.1 MB"}, DeletedAt: "2024-01-14"},
	{File: domain.File{ID: 202, Name: "Unused Image.jpg", Type: domain.FileTypeImage, Size: "2.3 MB"}, DeletedAt: "2024-01-12"},
	{File: domain.File{ID: 203, Name: "Draft.txt", Type: domain.FileTypeText, Size: "15 KB"}, DeletedAt: "2024-01-10"},
}

// SeedFiles returns a copy of the demo file catalog.
func SeedFiles() []domain.File {
	return append([]domain.File(nil), seedFiles...)
}

func SeedFolders() []domain.Folder {
	return append([]domain.Folder(nil), seedFolders...)
}

func SeedTrash() []domain.TrashItem {
	return append([]domain.TrashItem(nil), seedTrash...)
}
