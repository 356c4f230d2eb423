package scheduler

import (
	"fmt"
	"strings"

	"github.com/duartefn/escala/internal/models"
	"github.com/duartefn/escala/internal/shared"
)

// CreateResult reports the side effects of a committed create submission:
// the inserted schedule, the resolved speaker (IsNew marks one minted by this
// submission rather than reused), and the advisory conflict report.
type CreateResult struct {
	Schedule  models.Schedule
	Speaker   models.Speaker
	IsNew     bool
	Conflicts Conflicts
}

// CreateSchedule validates a submission and, when every check passes, commits
// it: the speaker is resolved (possibly created), a schedule with a fresh ID
// is appended, and the replacement snapshot is returned. On any validation
// failure the original snapshot is returned untouched alongside a
// [*ValidationError] listing every failure in order.
//
// Conflicts are computed against the submission date and reported in the
// result; they warn but never reject.
func CreateSchedule(state models.AppState, input ScheduleInput, today models.Date) (models.AppState, CreateResult, error) {
	date, failures := validateSchedule(state, input)
	if len(failures) > 0 {
		return state, CreateResult{}, &ValidationError{Messages: failures}
	}

	speakerID, created := ResolveSpeaker(state.Speakers, input.SpeakerName, input.Congregation, input.Phone)

	speakers := state.Speakers
	result := CreateResult{IsNew: created != nil}
	if created != nil {
		speakers = append(append([]models.Speaker(nil), state.Speakers...), *created)
		result.Speaker = *created
	} else if sp, ok := state.SpeakerByID(speakerID); ok {
		result.Speaker = sp
	}

	schedule := models.Schedule{
		ID:            shared.GenerateID(),
		Date:          date,
		SpeakerID:     speakerID,
		OutlineNumber: input.OutlineNumber,
		Notes:         strings.TrimSpace(input.Notes),
		Song:          strings.TrimSpace(input.Song),
	}

	result.Schedule = schedule
	result.Conflicts = DetectConflicts(state.Schedules, input.OutlineNumber, date, today, state.Settings.ConflictDays)

	state.Speakers = speakers
	state.Schedules = append(append([]models.Schedule(nil), state.Schedules...), schedule)
	return state, result, nil
}

// SchedulePatch is a partial field set for an update. Nil fields are left
// unchanged.
type SchedulePatch struct {
	Date          *models.Date
	SpeakerID     *string
	OutlineNumber *int
	Notes         *string
	Song          *string
}

// UpdateSchedule merges a partial field set into an existing schedule.
//
// Unlike create, updates intentionally skip the weekend and date-uniqueness
// checks; re-validating is the caller's responsibility. This asymmetry
// mirrors the original edit behavior and is kept for compatibility.
func UpdateSchedule(state models.AppState, id string, patch SchedulePatch) (models.AppState, error) {
	schedules := append([]models.Schedule(nil), state.Schedules...)
	for i, sch := range schedules {
		if sch.ID != id {
			continue
		}
		if patch.Date != nil {
			sch.Date = *patch.Date
		}
		if patch.SpeakerID != nil {
			sch.SpeakerID = *patch.SpeakerID
		}
		if patch.OutlineNumber != nil {
			sch.OutlineNumber = *patch.OutlineNumber
		}
		if patch.Notes != nil {
			sch.Notes = *patch.Notes
		}
		if patch.Song != nil {
			sch.Song = *patch.Song
		}
		schedules[i] = sch
		state.Schedules = schedules
		return state, nil
	}
	return state, fmt.Errorf("%w: %s", shared.ErrScheduleNotFound, id)
}

// DeleteSchedule physically removes one schedule by ID.
func DeleteSchedule(state models.AppState, id string) (models.AppState, error) {
	if _, ok := state.ScheduleByID(id); !ok {
		return state, fmt.Errorf("%w: %s", shared.ErrScheduleNotFound, id)
	}
	state.Schedules = removeSchedules(state.Schedules, map[string]bool{id: true})
	return state, nil
}

// BulkDeleteSchedules removes every schedule whose ID is in ids, in one pass.
// An empty set is a no-op, duplicate IDs are idempotent, and unknown IDs are
// skipped silently. The number of removed schedules is returned.
func BulkDeleteSchedules(state models.AppState, ids []string) (models.AppState, int) {
	if len(ids) == 0 {
		return state, 0
	}

	toDelete := make(map[string]bool, len(ids))
	for _, id := range ids {
		toDelete[id] = true
	}

	before := len(state.Schedules)
	state.Schedules = removeSchedules(state.Schedules, toDelete)
	return state, before - len(state.Schedules)
}

func removeSchedules(schedules []models.Schedule, toDelete map[string]bool) []models.Schedule {
	kept := make([]models.Schedule, 0, len(schedules))
	for _, sch := range schedules {
		if !toDelete[sch.ID] {
			kept = append(kept, sch)
		}
	}
	return kept
}

// AddSpeaker registers a speaker explicitly, without a schedule.
func AddSpeaker(state models.AppState, rawName, rawCongregation, rawPhone string) (models.AppState, models.Speaker) {
	speaker := models.Speaker{
		ID:           shared.GenerateID(),
		Name:         strings.TrimSpace(rawName),
		Congregation: strings.TrimSpace(rawCongregation),
		Phone:        strings.TrimSpace(rawPhone),
	}
	state.Speakers = append(append([]models.Speaker(nil), state.Speakers...), speaker)
	return state, speaker
}

// SpeakerPatch is a partial field set for a speaker edit.
type SpeakerPatch struct {
	Name         *string
	Congregation *string
	Phone        *string
}

// UpdateSpeaker merges a partial field set into an existing speaker record.
func UpdateSpeaker(state models.AppState, id string, patch SpeakerPatch) (models.AppState, error) {
	speakers := append([]models.Speaker(nil), state.Speakers...)
	for i, sp := range speakers {
		if sp.ID != id {
			continue
		}
		if patch.Name != nil {
			sp.Name = strings.TrimSpace(*patch.Name)
		}
		if patch.Congregation != nil {
			sp.Congregation = strings.TrimSpace(*patch.Congregation)
		}
		if patch.Phone != nil {
			sp.Phone = strings.TrimSpace(*patch.Phone)
		}
		speakers[i] = sp
		state.Speakers = speakers
		return state, nil
	}
	return state, fmt.Errorf("%w: %s", shared.ErrSpeakerNotFound, id)
}

// DeleteSpeaker soft-deletes a speaker. Schedules referencing the speaker
// are left untouched and keep resolving the flagged record.
func DeleteSpeaker(state models.AppState, id string) (models.AppState, error) {
	speakers := append([]models.Speaker(nil), state.Speakers...)
	for i, sp := range speakers {
		if sp.ID != id {
			continue
		}
		speakers[i].IsDeleted = true
		state.Speakers = speakers
		return state, nil
	}
	return state, fmt.Errorf("%w: %s", shared.ErrSpeakerNotFound, id)
}

// SettingsPatch is a partial update of the process-wide settings.
type SettingsPatch struct {
	ConflictDays *int
	ThemeMode    *string
}

// UpdateSettings merges a settings patch into the snapshot.
func UpdateSettings(state models.AppState, patch SettingsPatch) models.AppState {
	if patch.ConflictDays != nil && *patch.ConflictDays > 0 {
		state.Settings.ConflictDays = *patch.ConflictDays
	}
	if patch.ThemeMode != nil && *patch.ThemeMode != "" {
		state.Settings.ThemeMode = *patch.ThemeMode
	}
	return state
}
