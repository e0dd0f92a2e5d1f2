package domain

import (
	"testing"
)

func testFiles() []File {
	return []File{
		{ID: 1, Name: "Project Proposal.pdf", Type: FileTypePDF},
		{ID: 2, Name: "Budget Report.xlsx", Type: FileTypeSpreadsheet},
		{ID: 3, Name: "Team Photo.jpg", Type: FileTypeImage},
		{ID: 4, Name: "Meeting Notes.txt", Type: FileTypeText},
	}
}

func TestFilterFiles(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected []int64
	}{
		{
			name:     "empty query matches everything",
			query:    "",
			expected: []int64{1, 2, 3, 4},
		},
		{
			name:     "case insensitive substring",
			query:    "REPORT",
			expected: []int64{2},
		},
		{
			name:     "partial word",
			query:    "pro",
			expected: []int64{1},
		},
		{
			name:     "extension matches too",
			query:    ".pdf",
			expected: []int64{1},
		},
		{
			name:     "no matches",
			query:    "nonexistent",
			expected: []int64{},
		},
		{
			name:     "type field is not searched",
			query:    "spreadsheet",
			expected: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FilterFiles(testFiles(), tt.query)
			if len(result) != len(tt.expected) {
				t.Fatalf("FilterFiles() returned %d files, expected %d", len(result), len(tt.expected))
			}
			for i, file := range result {
				if file.ID != tt.expected[i] {
					t.Errorf("FilterFiles()[%d].ID = %d, expected %d", i, file.ID, tt.expected[i])
				}
			}
		})
	}
}

func TestFilterFilesEmptyQueryReturnsInput(t *testing.T) {
	files := testFiles()

	result := FilterFiles(files, "")
	if len(result) != len(files) {
		t.Fatalf("expected identical result for empty query")
	}
	// Identity, not a copy: no filtering was applied.
	if &result[0] != &files[0] {
		t.Errorf("FilterFiles(files, \"\") should return the input slice unchanged")
	}
}

func TestFilterFilesIdempotent(t *testing.T) {
	once := FilterFiles(testFiles(), "photo")
	twice := FilterFiles(once, "photo")

	if len(once) != len(twice) {
		t.Fatalf("filtering twice changed the result: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Errorf("filtering twice changed element %d", i)
		}
	}
}

func TestFilterFolders(t *testing.T) {
	folders := []Folder{
		{ID: 101, Name: "Documents"},
		{ID: 102, Name: "Images"},
		{ID: 103, Name: "Archives"},
	}

	result := FilterFolders(folders, "im")
	if len(result) != 1 {
		t.Fatalf("FilterFolders() returned %d folders, expected 1", len(result))
	}
	if result[0].Name != "Images" {
		t.Errorf("FilterFolders() matched %q, expected Images", result[0].Name)
	}

	all := FilterFolders(folders, "")
	if len(all) != 3 {
		t.Errorf("empty query should return all folders, got %d", len(all))
	}
}
