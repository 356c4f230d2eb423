package main

import (
	"context"

	"github.com/duartefn/escala/internal/scheduler"
	"github.com/urfave/cli/v3"
)

// SpeakerAdd registers a speaker explicitly.
func (r *Runner) SpeakerAdd(ctx context.Context, cmd *cli.Command) error {
	state, err := r.loadState()
	if err != nil {
		return err
	}

	newState, speaker := scheduler.AddSpeaker(state,
		cmd.String("name"), cmd.String("congregation"), cmd.String("phone"))

	r.saveState(newState)
	r.writePlainln("✓ Orador cadastrado com sucesso!")
	r.writePlain("  id: %s\n", speaker.ID)
	return nil
}

// SpeakerList prints speakers; soft-deleted ones only with --all.
func (r *Runner) SpeakerList(ctx context.Context, cmd *cli.Command) error {
	state, err := r.loadState()
	if err != nil {
		return err
	}

	speakers := state.Speakers
	if !cmd.Bool("all") {
		speakers = state.ActiveSpeakers()
	}

	if cmd.Bool("json") {
		return r.writeJSON(speakers, cmd.Bool("pretty"))
	}

	r.writePlainHeader("Oradores")
	if len(speakers) == 0 {
		r.writePlain("Nenhum orador cadastrado.\n")
		return nil
	}

	for _, sp := range speakers {
		marker := ""
		if sp.IsDeleted {
			marker = " (removido)"
		}
		r.writePlain("%-24s %-18s %s%s\n", sp.Name, sp.Congregation, sp.Phone, marker)
		r.writePlain("  id: %s\n", sp.ID)
	}

	return nil
}

// SpeakerEdit merges the provided fields into an existing speaker.
func (r *Runner) SpeakerEdit(ctx context.Context, cmd *cli.Command) error {
	state, err := r.loadState()
	if err != nil {
		return err
	}

	var patch scheduler.SpeakerPatch
	if cmd.IsSet("name") {
		name := cmd.String("name")
		patch.Name = &name
	}
	if cmd.IsSet("congregation") {
		congregation := cmd.String("congregation")
		patch.Congregation = &congregation
	}
	if cmd.IsSet("phone") {
		phone := cmd.String("phone")
		patch.Phone = &phone
	}

	newState, err := scheduler.UpdateSpeaker(state, cmd.String("id"), patch)
	if err != nil {
		return err
	}

	r.saveState(newState)
	r.writePlainln("✓ Dados do orador atualizados.")
	return nil
}

// SpeakerDelete soft-deletes a speaker; schedules referencing the speaker
// keep resolving the flagged record.
func (r *Runner) SpeakerDelete(ctx context.Context, cmd *cli.Command) error {
	state, err := r.loadState()
	if err != nil {
		return err
	}

	newState, err := scheduler.DeleteSpeaker(state, cmd.String("id"))
	if err != nil {
		return err
	}

	r.saveState(newState)
	r.writePlainln("✓ Orador removido. O histórico de discursos foi mantido.")
	return nil
}
