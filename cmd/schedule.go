package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/duartefn/escala/internal/models"
	"github.com/duartefn/escala/internal/scheduler"
	"github.com/urfave/cli/v3"
)

// ScheduleAdd validates a submission and commits it on success.
//
// Conflicts inside the configured window are printed as warnings but never
// block the save; a rejected submission surfaces every failure at once.
func (r *Runner) ScheduleAdd(ctx context.Context, cmd *cli.Command) error {
	input := scheduler.ScheduleInput{
		Date:          cmd.String("date"),
		SpeakerName:   cmd.String("speaker"),
		Congregation:  cmd.String("congregation"),
		Phone:         cmd.String("phone"),
		OutlineNumber: cmd.Int("outline"),
		Notes:         cmd.String("notes"),
		Song:          cmd.String("song"),
	}

	state, err := r.loadState()
	if err != nil {
		return err
	}

	newState, result, err := scheduler.CreateSchedule(state, input, r.today)
	if err != nil {
		return err
	}

	r.saveState(newState)

	if !result.Conflicts.Empty() {
		r.writePlain("⚠ Conflito detectado\n")
		for _, msg := range result.Conflicts.Messages() {
			r.writePlain("  %s\n", msg)
		}
	}

	if result.IsNew {
		r.writePlainln("✓ Orador cadastrado: %s (%s)", result.Speaker.Name, result.Speaker.Congregation)
	}
	r.writePlainln("✓ Agendamento realizado: %s — %s (esboço %d)",
		result.Schedule.Date.Display(), result.Speaker.Name, result.Schedule.OutlineNumber)
	r.writePlain("  id: %s\n", result.Schedule.ID)

	return nil
}

// ScheduleList prints all schedules sorted by date.
func (r *Runner) ScheduleList(ctx context.Context, cmd *cli.Command) error {
	state, err := r.loadState()
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(state.Schedules, cmd.Bool("pretty"))
	}

	r.writePlainHeader("Escala de Discursos")
	if len(state.Schedules) == 0 {
		r.writePlain("Nenhum agendamento.\n")
		return nil
	}

	schedules := append([]models.Schedule(nil), state.Schedules...)
	sortSchedulesByDate(schedules)

	for _, sch := range schedules {
		name, congregation := "?", ""
		if sp, ok := state.SpeakerByID(sch.SpeakerID); ok {
			name, congregation = sp.Name, sp.Congregation
		}
		outline := fmt.Sprintf("esboço %d", sch.OutlineNumber)
		if o, ok := state.OutlineByNumber(sch.OutlineNumber); ok {
			outline = fmt.Sprintf("%d. %s", o.Number, o.Title)
		}
		r.writePlain("%s  %-24s %-18s %s\n", sch.Date.Display(), name, congregation, outline)
		r.writePlain("            id: %s\n", sch.ID)
	}

	return nil
}

// ScheduleEdit merges the provided fields into an existing schedule.
// Edits intentionally skip weekend and uniqueness re-validation.
func (r *Runner) ScheduleEdit(ctx context.Context, cmd *cli.Command) error {
	state, err := r.loadState()
	if err != nil {
		return err
	}

	var patch scheduler.SchedulePatch
	if raw := cmd.String("date"); raw != "" {
		date, err := models.ParseDate(raw)
		if err != nil {
			return err
		}
		patch.Date = &date
	}
	if cmd.IsSet("outline") {
		outline := cmd.Int("outline")
		patch.OutlineNumber = &outline
	}
	if cmd.IsSet("notes") {
		notes := cmd.String("notes")
		patch.Notes = &notes
	}
	if cmd.IsSet("song") {
		song := cmd.String("song")
		patch.Song = &song
	}

	newState, err := scheduler.UpdateSchedule(state, cmd.String("id"), patch)
	if err != nil {
		return err
	}

	r.saveState(newState)
	r.writePlainln("✓ Agendamento atualizado.")
	return nil
}

// ScheduleDelete removes one schedule by ID.
func (r *Runner) ScheduleDelete(ctx context.Context, cmd *cli.Command) error {
	state, err := r.loadState()
	if err != nil {
		return err
	}

	newState, err := scheduler.DeleteSchedule(state, cmd.String("id"))
	if err != nil {
		return err
	}

	r.saveState(newState)
	r.writePlainln("✓ Agendamento excluído.")
	return nil
}

// ScheduleBulkDelete removes a set of schedules in one pass. An empty or
// fully-unknown set is a no-op, not an error.
func (r *Runner) ScheduleBulkDelete(ctx context.Context, cmd *cli.Command) error {
	state, err := r.loadState()
	if err != nil {
		return err
	}

	newState, removed := scheduler.BulkDeleteSchedules(state, cmd.StringSlice("id"))
	if removed > 0 {
		r.saveState(newState)
	}

	r.writePlainln("✓ %d agendamentos excluídos.", removed)
	return nil
}

func sortSchedulesByDate(schedules []models.Schedule) {
	sort.Slice(schedules, func(i, j int) bool {
		return schedules[i].Date.Before(schedules[j].Date)
	})
}
