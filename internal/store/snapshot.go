package store

import (
	"encoding/json"
	"fmt"

	"github.com/duartefn/escala/internal/models"
	"github.com/duartefn/escala/internal/shared"
)

// snapshot is the serialized boundary shape. Pointer fields distinguish a
// missing key from an empty collection: import rejects payloads that omit
// speakers or schedules entirely but accepts empty arrays.
type snapshot struct {
	Speakers  *[]models.Speaker  `json:"speakers"`
	Schedules *[]models.Schedule `json:"schedules"`
	Outlines  []models.Outline   `json:"outlines,omitempty"`
	Songs     []models.Song      `json:"songs,omitempty"`
	Settings  *models.Settings   `json:"settings,omitempty"`
}

// Seed returns the state used when nothing is persisted yet: empty speaker
// and schedule collections, the embedded catalog, and default settings.
func Seed() models.AppState {
	return SeedWith(models.Settings{})
}

// SeedWith is Seed with configured settings overriding the built-in defaults.
// Zero-valued fields keep the defaults, so a partial [defaults] config section
// only overrides what it names.
func SeedWith(defaults models.Settings) models.AppState {
	settings := models.DefaultSettings()
	if defaults.ConflictDays > 0 {
		settings.ConflictDays = defaults.ConflictDays
	}
	if defaults.ThemeMode != "" {
		settings.ThemeMode = defaults.ThemeMode
	}

	return models.ApplyCatalog(models.AppState{
		Speakers:  []models.Speaker{},
		Schedules: []models.Schedule{},
		Settings:  settings,
	})
}

// Encode serializes a state snapshot to the boundary JSON shape. The catalog
// collections are written too so an exported file round-trips verbatim with
// backups made by the original application.
func Encode(state models.AppState) ([]byte, error) {
	snap := snapshot{
		Speakers:  &state.Speakers,
		Schedules: &state.Schedules,
		Outlines:  state.Outlines,
		Songs:     state.Songs,
		Settings:  &state.Settings,
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return data, nil
}

// Decode parses boundary JSON into a state snapshot.
//
// Payloads missing the speakers or schedules keys are rejected with
// [shared.ErrInvalidImport] and the caller's current state stays untouched.
// Persisted outlines/songs are discarded in favor of the embedded catalog,
// and absent settings fall back to defaults (legacy backups predate them).
func Decode(data []byte) (models.AppState, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return models.AppState{}, fmt.Errorf("%w: %v", shared.ErrInvalidImport, err)
	}

	if snap.Speakers == nil || snap.Schedules == nil {
		return models.AppState{}, shared.ErrInvalidImport
	}

	state := models.AppState{
		Speakers:  *snap.Speakers,
		Schedules: *snap.Schedules,
		Settings:  models.DefaultSettings(),
	}
	if state.Speakers == nil {
		state.Speakers = []models.Speaker{}
	}
	if state.Schedules == nil {
		state.Schedules = []models.Schedule{}
	}
	if snap.Settings != nil {
		if snap.Settings.ConflictDays > 0 {
			state.Settings.ConflictDays = snap.Settings.ConflictDays
		}
		if snap.Settings.ThemeMode != "" {
			state.Settings.ThemeMode = snap.Settings.ThemeMode
		}
	}

	return models.ApplyCatalog(state), nil
}

// Store is the persistence contract used by the CLI: load the last committed
// snapshot (or the seed state) and save a replacement after each mutation.
type Store interface {
	Load() (models.AppState, error)
	Save(models.AppState) error
}
