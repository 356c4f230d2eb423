package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/duartefn/escala/internal/models"
	"github.com/duartefn/escala/internal/shared"
	"github.com/duartefn/escala/internal/store"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config  *shared.Config
	store   store.Store
	history *store.HistoryStore
	db      *sql.DB
	logger  *log.Logger
	output  io.Writer
	today   models.Date
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Store  store.Store
	Logger *log.Logger
	Output io.Writer
	Today  models.Date
}

// NewRunner creates a new Runner with the provided configuration.
// When no Store is injected, the configured backend ("file" or "sqlite") is
// opened; the sqlite backend also exposes snapshot history commands.
func NewRunner(opts RunnerOpts) (*Runner, error) {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Today.IsZero() {
		opts.Today = models.DateOf(time.Now())
	}

	r := &Runner{
		config: opts.Config,
		store:  opts.Store,
		logger: opts.Logger,
		output: opts.Output,
		today:  opts.Today,
	}

	if r.store == nil {
		defaults := models.Settings{
			ConflictDays: opts.Config.Defaults.ConflictDays,
			ThemeMode:    opts.Config.Defaults.ThemeMode,
		}

		switch opts.Config.Storage.Backend {
		case "sqlite":
			db, err := shared.NewDatabase(opts.Config.Storage.DatabasePath)
			if err != nil {
				return nil, err
			}
			shared.ConfigureDatabase(db, opts.Config.Storage.MaxOpenConns, opts.Config.Storage.MaxIdleConns)
			if err := shared.RunMigrations(db); err != nil {
				db.Close()
				return nil, err
			}
			history := store.NewHistoryStore(db, defaults, opts.Logger)
			r.db = db
			r.history = history
			r.store = history
		default:
			r.store = store.NewFileStore(opts.Config.Storage.Path, defaults, opts.Logger)
		}
	}

	return r, nil
}

// Close releases the database connection held by the sqlite backend.
func (r *Runner) Close() {
	if r.db != nil {
		r.db.Close()
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		scheduleCommand, speakerCommand, catalogCommand, conflictsCommand,
		settingsCommand, dataCommand, historyCommand, setupCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// loadState reads the current snapshot from the configured store.
func (r *Runner) loadState() (models.AppState, error) {
	return r.store.Load()
}

// saveState persists a committed snapshot. Write failures are logged and
// otherwise ignored: the session keeps its in-memory state and the user is
// expected to export manually if the disk stays unwritable.
func (r *Runner) saveState(state models.AppState) {
	if err := r.store.Save(state); err != nil {
		r.logger.Warn("failed to persist state, changes kept in memory only", "err", err)
	}
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
