package store

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/duartefn/escala/internal/models"
	"github.com/duartefn/escala/internal/shared"
)

// FileStore persists the snapshot as one JSON file, overwritten on each save.
type FileStore struct {
	path     string
	defaults models.Settings
	logger   *log.Logger
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a FileStore writing to the given path. The defaults
// seed the settings when nothing is persisted yet.
func NewFileStore(path string, defaults models.Settings, logger *log.Logger) *FileStore {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &FileStore{path: path, defaults: defaults, logger: logger}
}

// Load reads the stored snapshot. A missing or unreadable file and a corrupt
// payload all fall back to the seed state: startup never fails on bad storage.
func (s *FileStore) Load() (models.AppState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to load state, starting from seed", "path", s.path, "err", err)
		}
		return SeedWith(s.defaults), nil
	}

	state, err := Decode(data)
	if err != nil {
		s.logger.Warn("stored state is corrupt, starting from seed", "path", s.path, "err", err)
		return SeedWith(s.defaults), nil
	}

	return state, nil
}

// Save writes the snapshot to disk, replacing the previous file via rename so
// a failed write never truncates the last good snapshot.
func (s *FileStore) Save(state models.AppState) error {
	data, err := Encode(state)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStorageWrite, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStorageWrite, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStorageWrite, err)
	}

	return nil
}
