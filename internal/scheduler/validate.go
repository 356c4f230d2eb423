package scheduler

import (
	"strings"

	"github.com/duartefn/escala/internal/models"
)

// Validation failure messages, in the wording shown to the user.
const (
	msgMissingDate      = "Selecione uma data válida (Sábado ou Domingo)."
	msgNotWeekend       = "Data inválida. Apenas Sábados e Domingos."
	msgMissingSpeaker   = "Digite o nome do orador."
	msgMissingCongr     = "Digite a congregação."
	msgMissingOutline   = "Selecione um esboço."
	msgDateAlreadyTaken = "Já existe um discurso agendado para esta data."
)

// ValidationError carries the ordered list of user-facing failure reasons
// for a rejected submission. It is recoverable: no state change occurred.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, " ")
}

// ScheduleInput is the raw, un-trimmed form input for a create submission.
// Date carries the "YYYY-MM-DD" text as typed or picked; OutlineNumber uses
// zero as the unselected sentinel. Numeric and date parsing happen once at
// this boundary and are never re-done downstream.
type ScheduleInput struct {
	Date          string
	SpeakerName   string
	Congregation  string
	Phone         string
	OutlineNumber int
	Notes         string
	Song          string
}

// validateSchedule runs every structural check and collects all failures
// rather than short-circuiting on the first. The parsed date is returned for
// the commit path; it is the zero Date when absent or unparsable.
func validateSchedule(state models.AppState, input ScheduleInput) (models.Date, []string) {
	var failures []string

	date, parseErr := models.Date{}, error(nil)
	if strings.TrimSpace(input.Date) == "" {
		failures = append(failures, msgMissingDate)
	} else {
		date, parseErr = models.ParseDate(input.Date)
		if parseErr != nil {
			failures = append(failures, msgMissingDate)
		} else if !date.IsWeekend() {
			failures = append(failures, msgNotWeekend)
		}
	}

	if strings.TrimSpace(input.SpeakerName) == "" {
		failures = append(failures, msgMissingSpeaker)
	}
	if strings.TrimSpace(input.Congregation) == "" {
		failures = append(failures, msgMissingCongr)
	}
	if input.OutlineNumber <= 0 {
		failures = append(failures, msgMissingOutline)
	}

	// Uniqueness holds across the whole collection, regardless of speaker.
	if !date.IsZero() {
		if _, taken := state.ScheduleOnDate(date); taken {
			failures = append(failures, msgDateAlreadyTaken)
		}
	}

	return date, failures
}
