package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/duartefn/escala/internal/models"
	"github.com/duartefn/escala/internal/shared"
)

// HistoryStore persists snapshots in SQLite, one row per save, so earlier
// saves can be listed and restored. The newest row is the current state.
type HistoryStore struct {
	db       *sql.DB
	defaults models.Settings
	logger   *log.Logger
}

var _ Store = (*HistoryStore)(nil)

// SnapshotInfo describes one stored snapshot row.
type SnapshotInfo struct {
	Version   int       `json:"version"`
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Schedules int       `json:"schedules"`
	Speakers  int       `json:"speakers"`
}

// NewHistoryStore creates a HistoryStore over an open database connection.
// The caller is expected to have run migrations (see [shared.RunMigrations]).
// The defaults seed the settings when the history is empty.
func NewHistoryStore(db *sql.DB, defaults models.Settings, logger *log.Logger) *HistoryStore {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &HistoryStore{db: db, defaults: defaults, logger: logger}
}

// Load returns the most recently saved snapshot, or the seed state when the
// history is empty or the stored payload cannot be decoded.
func (s *HistoryStore) Load() (models.AppState, error) {
	var payload string
	err := s.db.QueryRow("SELECT payload FROM snapshots ORDER BY version DESC LIMIT 1").Scan(&payload)
	if err == sql.ErrNoRows {
		return SeedWith(s.defaults), nil
	}
	if err != nil {
		s.logger.Warn("failed to load latest snapshot, starting from seed", "err", err)
		return SeedWith(s.defaults), nil
	}

	state, err := Decode([]byte(payload))
	if err != nil {
		s.logger.Warn("latest snapshot is corrupt, starting from seed", "err", err)
		return SeedWith(s.defaults), nil
	}

	return state, nil
}

// Save appends the snapshot as a new history row.
func (s *HistoryStore) Save(state models.AppState) error {
	data, err := Encode(state)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStorageWrite, err)
	}

	_, err = s.db.Exec(
		"INSERT INTO snapshots (id, payload) VALUES (?, ?)",
		shared.GenerateID(), string(data),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStorageWrite, err)
	}

	return nil
}

// History lists stored snapshots, newest first.
func (s *HistoryStore) History() ([]SnapshotInfo, error) {
	rows, err := s.db.Query("SELECT version, id, payload, created_at FROM snapshots ORDER BY version DESC")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrStorageRead, err)
	}
	defer rows.Close()

	var infos []SnapshotInfo
	for rows.Next() {
		var (
			info    SnapshotInfo
			payload string
		)
		if err := rows.Scan(&info.Version, &info.ID, &payload, &info.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrStorageRead, err)
		}
		if state, err := Decode([]byte(payload)); err == nil {
			info.Schedules = len(state.Schedules)
			info.Speakers = len(state.Speakers)
		}
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrStorageRead, err)
	}

	return infos, nil
}

// Restore loads the snapshot stored at version and re-appends it as the
// newest row, making it the current state without rewriting history.
func (s *HistoryStore) Restore(version int) (models.AppState, error) {
	var payload string
	err := s.db.QueryRow("SELECT payload FROM snapshots WHERE version = ?", version).Scan(&payload)
	if err == sql.ErrNoRows {
		return models.AppState{}, fmt.Errorf("%w: version %d", shared.ErrNoSnapshots, version)
	}
	if err != nil {
		return models.AppState{}, fmt.Errorf("%w: %v", shared.ErrStorageRead, err)
	}

	state, err := Decode([]byte(payload))
	if err != nil {
		return models.AppState{}, err
	}

	if err := s.Save(state); err != nil {
		return models.AppState{}, err
	}

	return state, nil
}
