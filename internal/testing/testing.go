// package testing contains shared testing utilities
package testing

import (
	"errors"
	"time"

	"github.com/duartefn/escala/internal/models"
)

// Fixed reference dates used across tests. Jan 6 2024 is a Saturday.
var (
	Saturday = models.NewDate(2024, time.January, 6)
	Sunday   = models.NewDate(2024, time.January, 7)
	Monday   = models.NewDate(2024, time.January, 8)
)

// NewState builds a state snapshot with the embedded catalog and default
// settings, ready for engine calls.
func NewState(speakers []models.Speaker, schedules []models.Schedule) models.AppState {
	return models.ApplyCatalog(models.AppState{
		Speakers:  speakers,
		Schedules: schedules,
		Settings:  models.DefaultSettings(),
	})
}

// Speaker builds an active speaker record.
func Speaker(id, name, congregation string) models.Speaker {
	return models.Speaker{ID: id, Name: name, Congregation: congregation}
}

// Schedule builds a schedule record.
func Schedule(id string, date models.Date, speakerID string, outline int) models.Schedule {
	return models.Schedule{ID: id, Date: date, SpeakerID: speakerID, OutlineNumber: outline}
}

// MemoryStore is a test double for [store.Store] keeping the snapshot in memory.
type MemoryStore struct {
	State   models.AppState
	Saves   int
	LoadErr error
	SaveErr error
}

func (m *MemoryStore) Load() (models.AppState, error) {
	if m.LoadErr != nil {
		return models.AppState{}, m.LoadErr
	}
	return m.State, nil
}

func (m *MemoryStore) Save(state models.AppState) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.State = state
	m.Saves++
	return nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}
