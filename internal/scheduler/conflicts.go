package scheduler

import (
	"fmt"
	"strings"

	"github.com/duartefn/escala/internal/models"
)

// Conflicts is the advisory result of an outline-reuse check.
//
// Past holds conflicting dates strictly before "today", Future holds today
// and later (including the reference date itself when it coincides with a
// conflict). Both lists are sorted ascending. A conflict never blocks a save;
// it is surfaced to the user as a warning.
type Conflicts struct {
	Past   []models.Date
	Future []models.Date
}

// Empty reports whether no conflicting dates were found.
func (c Conflicts) Empty() bool {
	return len(c.Past) == 0 && len(c.Future) == 0
}

// Messages renders the user-facing warning lines for a non-empty result.
func (c Conflicts) Messages() []string {
	var msgs []string

	if len(c.Future) > 0 {
		msgs = append(msgs, fmt.Sprintf(
			"ESBOÇO JÁ AGENDADO DENTRO DO LIMITE CONFIGURADO PARA A DATA %s",
			joinDisplayDates(c.Future)))
	}

	if len(c.Past) > 0 {
		label := "ESBOÇO FEITO NA DATA"
		if len(c.Past) > 1 {
			label = "ESBOÇO FEITO NAS DATAS"
		}
		msgs = append(msgs, fmt.Sprintf("%s %s", label, joinDisplayDates(c.Past)))
	}

	return msgs
}

func joinDisplayDates(dates []models.Date) string {
	parts := make([]string, len(dates))
	for i, d := range dates {
		parts[i] = d.Display()
	}
	return strings.Join(parts, ", ")
}

// DetectConflicts finds schedules reusing an outline within the window.
//
// A schedule of the same outline conflicts iff the absolute day distance to
// referenceDate is strictly less than windowDays: schedules exactly
// windowDays apart do NOT conflict. The distance is symmetric, so the result
// is the same whichever side is treated as the reference. An unset (zero or
// negative) outline number yields an empty result.
func DetectConflicts(schedules []models.Schedule, outlineNumber int, referenceDate, today models.Date, windowDays int) Conflicts {
	var result Conflicts
	if outlineNumber <= 0 {
		return result
	}

	for _, sch := range schedules {
		if sch.OutlineNumber != outlineNumber {
			continue
		}

		diff := referenceDate.DaysBetween(sch.Date)
		if diff < 0 {
			diff = -diff
		}
		if diff >= windowDays {
			continue
		}

		if sch.Date.Before(today) {
			result.Past = append(result.Past, sch.Date)
		} else {
			result.Future = append(result.Future, sch.Date)
		}
	}

	models.SortDates(result.Past)
	models.SortDates(result.Future)
	return result
}
