package scheduler

import (
	"strings"

	"github.com/duartefn/escala/internal/models"
	"github.com/duartefn/escala/internal/shared"
)

// ResolveSpeaker maps a free-text name to an existing or newly minted speaker.
//
// Matching is case-insensitive equality of trimmed names against non-deleted
// speakers only. On a match the existing record wins: its ID is returned and
// the congregation/phone inputs are ignored. Otherwise a new speaker is
// synthesized with a fresh ID and returned for the caller to append; absence
// of a match is the create path, not a failure.
func ResolveSpeaker(speakers []models.Speaker, rawName, rawCongregation, rawPhone string) (string, *models.Speaker) {
	name := strings.TrimSpace(rawName)

	for _, sp := range speakers {
		if sp.IsDeleted {
			continue
		}
		if sp.NameMatches(name) {
			return sp.ID, nil
		}
	}

	created := models.Speaker{
		ID:           shared.GenerateID(),
		Name:         name,
		Congregation: strings.TrimSpace(rawCongregation),
		Phone:        strings.TrimSpace(rawPhone),
		IsDeleted:    false,
	}
	return created.ID, &created
}
