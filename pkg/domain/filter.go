package domain

import "strings"

// FilterFiles returns the files whose name contains query,
// case-insensitively. An empty query applies no filtering and returns
// the input slice itself.
func FilterFiles(files []File, query string) []File {
	if query == "" {
		return files
	}

	lowerQuery := strings.ToLower(query)

	matched := make([]File, 0, len(files))
	for _, file := range files {
		if strings.Contains(strings.ToLower(file.Name), lowerQuery) {
			matched = append(matched, file)
		}
	}

	return matched
}

// FilterFolders applies the same name-only match to folders.
func FilterFolders(folders []Folder, query string) []Folder {
	if query == "" {
		return folders
	}

	lowerQuery := strings.ToLower(query)

	matched := make([]Folder, 0, len(folders))
	for _, folder := range folders {
		if strings.Contains(strings.ToLower(folder.Name), lowerQuery) {
			matched = append(matched, folder)
		}
	}

	return matched
}
