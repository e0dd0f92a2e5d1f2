package domain

// Folder is a named grouping shown on the dashboard. ItemCount is
// advisory display metadata and is not reconciled against the files
// that name this folder.
type Folder struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ItemCount int    `json:"itemCount"`
	Modified  string `json:"modified"`
}
