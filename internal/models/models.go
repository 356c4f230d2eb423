package models

import "strings"

// Speaker is a visiting speaker record.
//
// Speakers are never physically removed: deletion flips IsDeleted so that
// historical schedules keep resolving the speaker's data. Only non-deleted
// speakers participate in name resolution and listings.
type Speaker struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Congregation string `json:"congregation"`
	Phone        string `json:"phone,omitempty"`
	IsDeleted    bool   `json:"isDeleted"`
}

// NameMatches reports whether the speaker's trimmed name equals the given
// name, compared case-insensitively.
func (s Speaker) NameMatches(name string) bool {
	return strings.EqualFold(strings.TrimSpace(s.Name), strings.TrimSpace(name))
}

// Outline is a numbered talk outline from the fixed catalog.
// Number is positive, unique and acts as the primary key.
type Outline struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
}

// Song is a numbered song from the fixed catalog.
type Song struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
}

// Schedule is one calendar assignment of a speaker to an outline.
//
// At most one schedule may exist per calendar date across the whole
// collection. Schedules reference their speaker by ID only and are removed
// physically, never soft-deleted.
type Schedule struct {
	ID            string `json:"id"`
	Date          Date   `json:"date"`
	SpeakerID     string `json:"speakerId"`
	OutlineNumber int    `json:"outlineNumber"`
	Notes         string `json:"notes,omitempty"`
	Song          string `json:"song,omitempty"`
}

// Settings holds the single process-wide preferences instance.
type Settings struct {
	ConflictDays int    `json:"themeConflictDays"`
	ThemeMode    string `json:"themeMode"`
}

// DefaultSettings returns the seed preferences used when no persisted
// settings exist.
func DefaultSettings() Settings {
	return Settings{ConflictDays: 180, ThemeMode: "dark"}
}

// AppState is the aggregate root owning every collection plus the settings
// instance. Engine operations treat a state value as an immutable snapshot
// and return a replacement rather than mutating in place.
type AppState struct {
	Speakers  []Speaker  `json:"speakers"`
	Schedules []Schedule `json:"schedules"`
	Outlines  []Outline  `json:"outlines"`
	Songs     []Song     `json:"songs"`
	Settings  Settings   `json:"settings"`
}

// SpeakerByID returns the speaker with the given ID, deleted or not.
// Historical schedules must resolve soft-deleted speakers.
func (s AppState) SpeakerByID(id string) (Speaker, bool) {
	for _, sp := range s.Speakers {
		if sp.ID == id {
			return sp, true
		}
	}
	return Speaker{}, false
}

// ActiveSpeakers returns the non-deleted speakers.
func (s AppState) ActiveSpeakers() []Speaker {
	var active []Speaker
	for _, sp := range s.Speakers {
		if !sp.IsDeleted {
			active = append(active, sp)
		}
	}
	return active
}

// ScheduleByID returns the schedule with the given ID.
func (s AppState) ScheduleByID(id string) (Schedule, bool) {
	for _, sch := range s.Schedules {
		if sch.ID == id {
			return sch, true
		}
	}
	return Schedule{}, false
}

// ScheduleOnDate returns the schedule occupying the given date, if any.
func (s AppState) ScheduleOnDate(date Date) (Schedule, bool) {
	for _, sch := range s.Schedules {
		if sch.Date.Equal(date) {
			return sch, true
		}
	}
	return Schedule{}, false
}

// OutlineByNumber returns the catalog outline with the given number.
func (s AppState) OutlineByNumber(number int) (Outline, bool) {
	for _, o := range s.Outlines {
		if o.Number == number {
			return o, true
		}
	}
	return Outline{}, false
}
