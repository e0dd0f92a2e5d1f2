package store

import (
	"sync"

	"github.com/cloudnest/cloudnest/pkg/domain"
)

// Store holds the session's canonical collections. All mutations go
// through its single mutex, so concurrent callers see last-write-wins
// ordering instead of lost updates. Snapshot getters return copies;
// callers never hold references into the live slices.
type Store struct {
	mu      sync.RWMutex
	files   []domain.File
	folders []domain.Folder
	trash   []domain.TrashItem
	nextID  int64
}

func New() *Store {
	return &Store{
		// Seeded entities occupy the low id ranges; generated ids
		// start well above them.
		nextID: 1000,
	}
}

// NewSeeded returns a store preloaded with the demo catalog.
func NewSeeded() *Store {
	s := New()
	s.Seed()
	return s
}

// Seed replaces all collections with the demo catalog.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.files = append([]domain.File(nil), seedFiles...)
	s.folders = append([]domain.Folder(nil), seedFolders...)
	s.trash = append([]domain.TrashItem(nil), seedTrash...)
}

// NextID hands out a fresh unique entity id.
func (s *Store) NextID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	return id
}

func (s *Store) Files() []domain.File {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.File(nil), s.files...)
}

func (s *Store) Folders() []domain.Folder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.Folder(nil), s.folders...)
}

func (s *Store) Trash() []domain.TrashItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.TrashItem(nil), s.trash...)
}

// AddFile inserts at the head: newest uploads display first.
func (s *Store) AddFile(file domain.File) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fileIndex(file.ID) >= 0 || s.trashIndex(file.ID) >= 0 {
		return domain.ErrDuplicateID
	}

	s.files = append([]domain.File{file}, s.files...)
	return nil
}

func (s *Store) File(id int64) (domain.File, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.fileIndex(id); i >= 0 {
		return s.files[i], nil
	}
	return domain.File{}, domain.ErrNotFound
}

func (s *Store) RemoveFile(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.fileIndex(id)
	if i < 0 {
		return domain.ErrNotFound
	}

	s.files = append(s.files[:i], s.files[i+1:]...)
	return nil
}

// MoveFileToTrash soft-deletes: the File leaves the live collection and
// becomes a TrashItem in the same motion, so an id is never in both.
func (s *Store) MoveFileToTrash(id int64, deletedAt string) (domain.TrashItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.fileIndex(id)
	if i < 0 {
		return domain.TrashItem{}, domain.ErrNotFound
	}

	item := domain.TrashItem{File: s.files[i], DeletedAt: deletedAt}
	s.files = append(s.files[:i], s.files[i+1:]...)
	s.trash = append(s.trash, item)
	return item, nil
}

// RestoreFromTrash is the inverse move: the item re-enters the live
// collection at the head with the given modified date.
func (s *Store) RestoreFromTrash(id int64, modified string) (domain.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.trashIndex(id)
	if i < 0 {
		return domain.File{}, domain.ErrNotFound
	}

	file := s.trash[i].File
	file.Modified = modified
	s.trash = append(s.trash[:i], s.trash[i+1:]...)
	s.files = append([]domain.File{file}, s.files...)
	return file, nil
}

func (s *Store) RemoveTrashItem(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.trashIndex(id)
	if i < 0 {
		return domain.ErrNotFound
	}

	s.trash = append(s.trash[:i], s.trash[i+1:]...)
	return nil
}

func (s *Store) ClearTrash() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trash = nil
}

func (s *Store) AddFolder(folder domain.Folder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.folderIndex(folder.ID) >= 0 {
		return domain.ErrDuplicateID
	}

	s.folders = append(s.folders, folder)
	return nil
}

func (s *Store) Folder(id int64) (domain.Folder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.folderIndex(id); i >= 0 {
		return s.folders[i], nil
	}
	return domain.Folder{}, domain.ErrNotFound
}

// RenameFolder is the only partial field patch the store supports.
func (s *Store) RenameFolder(id int64, newName string, modified string) (domain.Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.folderIndex(id)
	if i < 0 {
		return domain.Folder{}, domain.ErrNotFound
	}

	s.folders[i].Name = newName
	s.folders[i].Modified = modified
	return s.folders[i], nil
}

func (s *Store) RemoveFolder(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.folderIndex(id)
	if i < 0 {
		return domain.ErrNotFound
	}

	s.folders = append(s.folders[:i], s.folders[i+1:]...)
	return nil
}

// ReplaceAll swaps in whole collections, used when hydrating from a
// backend response.
func (s *Store) ReplaceAll(files []domain.File, folders []domain.Folder, trash []domain.TrashItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.files = append([]domain.File(nil), files...)
	s.folders = append([]domain.Folder(nil), folders...)
	s.trash = append([]domain.TrashItem(nil), trash...)
}

func (s *Store) fileIndex(id int64) int {
	for i, f := range s.files {
		if f.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) folderIndex(id int64) int {
	for i, f := range s.folders {
		if f.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) trashIndex(id int64) int {
	for i, t := range s.trash {
		if t.ID == id {
			return i
		}
	}
	return -1
}
