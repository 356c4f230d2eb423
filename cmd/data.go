package main

import (
	"context"
	"fmt"
	"os"

	"github.com/duartefn/escala/internal/formatter"
	"github.com/duartefn/escala/internal/models"
	"github.com/duartefn/escala/internal/scheduler"
	"github.com/duartefn/escala/internal/shared"
	"github.com/duartefn/escala/internal/store"
	"github.com/urfave/cli/v3"
)

// DataExport writes the rota to a file in the requested format.
// The json format is the verbatim backup shape accepted by DataImport.
func (r *Runner) DataExport(ctx context.Context, cmd *cli.Command) error {
	state, err := r.loadState()
	if err != nil {
		return err
	}

	format := cmd.String("format")
	path := cmd.String("output")

	if format == "json" {
		if path == "" {
			path = "backup_discursos.json"
		}
		data, err := store.Encode(state)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("%w: %v", shared.ErrStorageWrite, err)
		}
		r.writePlainln("✓ Dados exportados para %s", path)
		return nil
	}

	written, err := formatter.WriteExport(state, format, path)
	if err != nil {
		return err
	}

	r.writePlainln("✓ Escala exportada para %s", written)
	return nil
}

// DataImport replaces all data with a JSON backup. Invalid payloads leave
// the current state untouched.
func (r *Runner) DataImport(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	if path == "" {
		return fmt.Errorf("%w: path to the backup file", shared.ErrMissingArgument)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStorageRead, err)
	}

	state, err := store.Decode(data)
	if err != nil {
		return err
	}

	r.saveState(state)
	r.writePlainln("✓ Dados importados com sucesso!")
	r.writePlain("  oradores: %d, agendamentos: %d\n", len(state.Speakers), len(state.Schedules))
	return nil
}

// CatalogOutlines lists the canonical outline catalog.
func (r *Runner) CatalogOutlines(ctx context.Context, cmd *cli.Command) error {
	outlines := models.CatalogOutlines()

	if cmd.Bool("json") {
		return r.writeJSON(outlines, true)
	}

	r.writePlainHeader("Esboços")
	for _, o := range outlines {
		r.writePlain("%3d. %s\n", o.Number, o.Title)
	}
	return nil
}

// CatalogSongs lists the canonical song catalog.
func (r *Runner) CatalogSongs(ctx context.Context, cmd *cli.Command) error {
	songs := models.CatalogSongs()

	if cmd.Bool("json") {
		return r.writeJSON(songs, true)
	}

	r.writePlainHeader("Cânticos")
	for _, s := range songs {
		r.writePlain("%3d. %s\n", s.Number, s.Title)
	}
	return nil
}

// ConflictsCheck runs the conflict detector for an outline and date without
// creating anything.
func (r *Runner) ConflictsCheck(ctx context.Context, cmd *cli.Command) error {
	state, err := r.loadState()
	if err != nil {
		return err
	}

	if _, ok := state.OutlineByNumber(cmd.Int("outline")); !ok {
		return fmt.Errorf("%w: %d", shared.ErrOutlineNotFound, cmd.Int("outline"))
	}

	reference := r.today
	if raw := cmd.String("date"); raw != "" {
		if reference, err = models.ParseDate(raw); err != nil {
			return err
		}
	}

	conflicts := scheduler.DetectConflicts(state.Schedules, cmd.Int("outline"),
		reference, r.today, state.Settings.ConflictDays)

	if conflicts.Empty() {
		r.writePlainln("✓ Nenhum conflito para o esboço %d em %s.", cmd.Int("outline"), reference.Display())
		return nil
	}

	r.writePlainln("⚠ Conflito detectado")
	for _, msg := range conflicts.Messages() {
		r.writePlain("  %s\n", msg)
	}
	return nil
}

// SettingsShow prints the current settings.
func (r *Runner) SettingsShow(ctx context.Context, cmd *cli.Command) error {
	state, err := r.loadState()
	if err != nil {
		return err
	}
	return r.writeJSON(state.Settings, true)
}

// SettingsSet updates settings from flags.
func (r *Runner) SettingsSet(ctx context.Context, cmd *cli.Command) error {
	state, err := r.loadState()
	if err != nil {
		return err
	}

	var patch scheduler.SettingsPatch
	if cmd.IsSet("conflict-days") {
		days := cmd.Int("conflict-days")
		if days <= 0 {
			return fmt.Errorf("%w: conflict-days must be positive", shared.ErrInvalidFlag)
		}
		patch.ConflictDays = &days
	}
	if cmd.IsSet("theme") {
		theme := cmd.String("theme")
		if theme != "light" && theme != "dark" {
			return fmt.Errorf("%w: theme must be light or dark", shared.ErrInvalidFlag)
		}
		patch.ThemeMode = &theme
	}

	newState := scheduler.UpdateSettings(state, patch)
	r.saveState(newState)
	r.writePlainln("✓ Configurações salvas.")
	return nil
}

// HistoryList prints the sqlite backend's snapshot history.
func (r *Runner) HistoryList(ctx context.Context, cmd *cli.Command) error {
	if r.history == nil {
		return fmt.Errorf("%w: history requires the sqlite backend", shared.ErrInvalidConfig)
	}

	infos, err := r.history.History()
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(infos, true)
	}

	r.writePlainHeader("Histórico de snapshots")
	if len(infos) == 0 {
		r.writePlain("Nenhum snapshot salvo.\n")
		return nil
	}
	for _, info := range infos {
		r.writePlain("v%-4d %s  agendamentos: %d, oradores: %d\n",
			info.Version, info.CreatedAt.Format("2006-01-02 15:04:05"), info.Schedules, info.Speakers)
	}
	return nil
}

// HistoryRestore makes an earlier snapshot the current state.
func (r *Runner) HistoryRestore(ctx context.Context, cmd *cli.Command) error {
	if r.history == nil {
		return fmt.Errorf("%w: history requires the sqlite backend", shared.ErrInvalidConfig)
	}

	state, err := r.history.Restore(cmd.Int("version"))
	if err != nil {
		return err
	}

	r.writePlainln("✓ Snapshot v%d restaurado.", cmd.Int("version"))
	r.writePlain("  oradores: %d, agendamentos: %d\n", len(state.Speakers), len(state.Schedules))
	return nil
}

// SetupConfig writes the example configuration file.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}
	r.writePlainln("✓ Config criada em %s", path)
	return nil
}

// SetupDatabase opens the configured sqlite database and runs migrations.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	db, err := shared.NewDatabase(r.config.Storage.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := shared.RunMigrations(db); err != nil {
		return err
	}

	r.writePlainln("✓ Banco de dados pronto em %s", r.config.Storage.DatabasePath)
	return nil
}
