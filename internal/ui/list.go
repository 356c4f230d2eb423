package ui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/list"
	"github.com/duartefn/escala/internal/models"
)

var _ list.Item = scheduleItem{}

// scheduleItem wraps [models.Schedule] with resolved speaker and outline data
// to implement [list.Item].
type scheduleItem struct {
	schedule models.Schedule
	speaker  models.Speaker
	outline  string
}

func (i scheduleItem) FilterValue() string { return i.speaker.Name }
func (i scheduleItem) Title() string {
	return fmt.Sprintf("%s — %s", i.schedule.Date.Display(), i.speaker.Name)
}
func (i scheduleItem) Description() string {
	desc := i.outline
	if i.speaker.Congregation != "" {
		desc = fmt.Sprintf("%s • %s", i.speaker.Congregation, desc)
	}
	return desc
}

// buildItems joins every schedule with its speaker and outline, sorted by
// date. Soft-deleted speakers still resolve.
func buildItems(state models.AppState) []list.Item {
	schedules := append([]models.Schedule(nil), state.Schedules...)
	sortByDate(schedules)

	items := make([]list.Item, 0, len(schedules))
	for _, sch := range schedules {
		item := scheduleItem{schedule: sch, outline: fmt.Sprintf("esboço %d", sch.OutlineNumber)}
		if sp, ok := state.SpeakerByID(sch.SpeakerID); ok {
			item.speaker = sp
		} else {
			item.speaker = models.Speaker{Name: "Desconhecido"}
		}
		if o, ok := state.OutlineByNumber(sch.OutlineNumber); ok {
			item.outline = fmt.Sprintf("%d. %s", o.Number, o.Title)
		}
		items = append(items, item)
	}
	return items
}

func sortByDate(schedules []models.Schedule) {
	sort.Slice(schedules, func(i, j int) bool {
		return schedules[i].Date.Before(schedules[j].Date)
	})
}
