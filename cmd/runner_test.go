package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/duartefn/escala/internal/models"
	"github.com/duartefn/escala/internal/scheduler"
	"github.com/duartefn/escala/internal/shared"
	"github.com/duartefn/escala/internal/store"
	tu "github.com/duartefn/escala/internal/testing"
	"github.com/urfave/cli/v3"
)

func newTestRunner(t *testing.T, state models.AppState) (*Runner, *tu.MemoryStore, *bytes.Buffer) {
	t.Helper()

	memory := &tu.MemoryStore{State: state}
	output := &bytes.Buffer{}
	runner, err := NewRunner(RunnerOpts{
		Store:  memory,
		Logger: shared.NewLogger(&bytes.Buffer{}),
		Output: output,
		Today:  tu.Monday,
	})
	if err != nil {
		t.Fatalf("failed to create runner: %v", err)
	}
	return runner, memory, output
}

func runCommand(t *testing.T, runner *Runner, args ...string) error {
	t.Helper()
	app := &cli.Command{Name: "escala", Commands: runner.register()}
	return app.Run(context.Background(), append([]string{"escala"}, args...))
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			memory := &tu.MemoryStore{}

			runner, err := NewRunner(RunnerOpts{
				Config: config,
				Store:  memory,
				Logger: logger,
				Output: output,
				Today:  tu.Monday,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.store != store.Store(memory) {
				t.Error("expected store to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if !runner.today.Equal(tu.Monday) {
				t.Error("expected today to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner, err := NewRunner(RunnerOpts{Store: &tu.MemoryStore{}})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner, err := NewRunner(RunnerOpts{Store: &tu.MemoryStore{}})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("with zero today uses current date", func(t *testing.T) {
			runner, err := NewRunner(RunnerOpts{Store: &tu.MemoryStore{}})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if runner.today.IsZero() {
				t.Error("expected today to default to the current date")
			}
		})

		t.Run("file backend by default", func(t *testing.T) {
			config := shared.DefaultConfig()
			config.Storage.Path = filepath.Join(t.TempDir(), "escala.json")

			runner, err := NewRunner(RunnerOpts{Config: config, Output: &bytes.Buffer{}})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			defer runner.Close()

			if runner.store == nil {
				t.Error("expected a store to be opened")
			}
			if runner.history != nil {
				t.Error("file backend must not expose history")
			}
		})

		t.Run("config defaults seed the settings", func(t *testing.T) {
			config := shared.DefaultConfig()
			config.Storage.Path = filepath.Join(t.TempDir(), "escala.json")
			config.Defaults.ConflictDays = 90
			config.Defaults.ThemeMode = "light"

			output := &bytes.Buffer{}
			runner, err := NewRunner(RunnerOpts{Config: config, Output: output, Today: tu.Monday})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			defer runner.Close()

			if err := runCommand(t, runner, "settings", "show"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			out := output.String()
			if !strings.Contains(out, `"themeConflictDays": 90`) || !strings.Contains(out, `"themeMode": "light"`) {
				t.Errorf("settings = %s, want configured defaults applied", out)
			}
		})

		t.Run("sqlite backend exposes history", func(t *testing.T) {
			config := shared.DefaultConfig()
			config.Storage.Backend = "sqlite"
			config.Storage.DatabasePath = filepath.Join(t.TempDir(), "escala.db")
			config.Storage.MaxOpenConns = 1
			config.Storage.MaxIdleConns = 1

			runner, err := NewRunner(RunnerOpts{Config: config, Output: &bytes.Buffer{}})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			defer runner.Close()

			if runner.history == nil {
				t.Error("sqlite backend must expose history")
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes formatted JSON successfully", func(t *testing.T) {
			runner, _, output := newTestRunner(t, store.Seed())

			if err := runner.writeJSON(map[string]string{"key": "value"}, true); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if !strings.Contains(result, `"key": "value"`) {
				t.Errorf("expected formatted JSON, got %s", result)
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("expected output to end with newline")
			}
		})

		t.Run("writes compact JSON successfully", func(t *testing.T) {
			runner, _, output := newTestRunner(t, store.Seed())

			if err := runner.writeJSON(map[string]string{"key": "value"}, false); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if output.String() != `{"key":"value"}`+"\n" {
				t.Errorf("got %q", output.String())
			}
		})

		t.Run("handles marshal error with non-serializable data", func(t *testing.T) {
			runner, _, _ := newTestRunner(t, store.Seed())

			err := runner.writeJSON(make(chan int), false)
			if err == nil || !strings.Contains(err.Error(), "failed to marshal JSON") {
				t.Errorf("expected marshal error, got %v", err)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner, err := NewRunner(RunnerOpts{Store: &tu.MemoryStore{}, Output: &tu.FWriter{}})
			if err != nil {
				t.Fatal(err)
			}

			werr := runner.writeJSON(map[string]string{"key": "value"}, false)
			if werr == nil || !strings.Contains(werr.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", werr)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		runner, _, output := newTestRunner(t, store.Seed())

		if err := runner.writePlain("hello %s", "world"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.String() != "hello world" {
			t.Errorf("got %q", output.String())
		}
	})

	t.Run("register", func(t *testing.T) {
		runner, _, _ := newTestRunner(t, store.Seed())
		commands := runner.register()

		if len(commands) == 0 {
			t.Error("expected at least one command to be registered")
		}
		for i, cmd := range commands {
			if cmd == nil {
				t.Errorf("command at index %d is nil", i)
			}
		}
	})

	t.Run("saveState logs and continues on failure", func(t *testing.T) {
		memory := &tu.MemoryStore{State: store.Seed(), SaveErr: errors.New("disk full")}
		logs := &bytes.Buffer{}
		runner, err := NewRunner(RunnerOpts{
			Store:  memory,
			Logger: shared.NewLogger(logs),
			Output: &bytes.Buffer{},
			Today:  tu.Monday,
		})
		if err != nil {
			t.Fatal(err)
		}

		runner.saveState(store.Seed())

		if !strings.Contains(logs.String(), "failed to persist state") {
			t.Errorf("expected warning log, got %s", logs.String())
		}
	})
}

func TestScheduleCommands(t *testing.T) {
	t.Run("add commits and reports", func(t *testing.T) {
		runner, memory, output := newTestRunner(t, store.Seed())

		err := runCommand(t, runner, "schedule", "add",
			"--date", "2024-01-06",
			"--speaker", "Ana Souza",
			"--congregation", "Central",
			"--outline", "5")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(memory.State.Schedules) != 1 || len(memory.State.Speakers) != 1 {
			t.Errorf("state = %d schedules, %d speakers", len(memory.State.Schedules), len(memory.State.Speakers))
		}
		if memory.Saves != 1 {
			t.Errorf("saves = %d, want 1", memory.Saves)
		}
		out := output.String()
		if !strings.Contains(out, "✓ Orador cadastrado") || !strings.Contains(out, "✓ Agendamento realizado") {
			t.Errorf("output = %s", out)
		}
	})

	t.Run("add surfaces every validation failure", func(t *testing.T) {
		runner, memory, _ := newTestRunner(t, store.Seed())

		err := runCommand(t, runner, "schedule", "add",
			"--date", "2024-01-08", // Monday
			"--speaker", "Ana",
			"--congregation", "Central",
			"--outline", "5")

		var verr *scheduler.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected *ValidationError, got %v", err)
		}
		if memory.Saves != 0 {
			t.Error("rejected submission must not be persisted")
		}
	})

	t.Run("add warns on outline reuse", func(t *testing.T) {
		state := tu.NewState(
			[]models.Speaker{tu.Speaker("s1", "Ana", "Central")},
			[]models.Schedule{tu.Schedule("a1", tu.Saturday, "s1", 5)},
		)
		runner, memory, output := newTestRunner(t, state)

		err := runCommand(t, runner, "schedule", "add",
			"--date", "2024-06-01",
			"--speaker", "Ana",
			"--congregation", "Central",
			"--outline", "5")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(output.String(), "⚠ Conflito detectado") {
			t.Errorf("output = %s", output.String())
		}
		if len(memory.State.Schedules) != 2 {
			t.Error("conflicts warn but must not block the save")
		}
	})

	t.Run("list renders sorted schedules", func(t *testing.T) {
		state := tu.NewState(
			[]models.Speaker{tu.Speaker("s1", "Ana", "Central")},
			[]models.Schedule{
				tu.Schedule("a2", tu.Sunday, "s1", 2),
				tu.Schedule("a1", tu.Saturday, "s1", 1),
			},
		)
		runner, _, output := newTestRunner(t, state)

		if err := runCommand(t, runner, "schedule", "list"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := output.String()
		if strings.Index(out, "06/01/2024") > strings.Index(out, "07/01/2024") {
			t.Errorf("schedules not sorted by date:\n%s", out)
		}
	})

	t.Run("edit patches fields", func(t *testing.T) {
		state := tu.NewState(
			[]models.Speaker{tu.Speaker("s1", "Ana", "Central")},
			[]models.Schedule{tu.Schedule("a1", tu.Saturday, "s1", 5)},
		)
		runner, memory, _ := newTestRunner(t, state)

		err := runCommand(t, runner, "schedule", "edit", "--id", "a1", "--outline", "9", "--notes", "trocado")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := memory.State.Schedules[0]
		if got.OutlineNumber != 9 || got.Notes != "trocado" {
			t.Errorf("schedule = %+v", got)
		}
	})

	t.Run("rm deletes and bulk-rm is idempotent", func(t *testing.T) {
		state := tu.NewState(
			[]models.Speaker{tu.Speaker("s1", "Ana", "Central")},
			[]models.Schedule{
				tu.Schedule("a1", tu.Saturday, "s1", 1),
				tu.Schedule("a2", tu.Sunday, "s1", 2),
			},
		)
		runner, memory, output := newTestRunner(t, state)

		if err := runCommand(t, runner, "schedule", "rm", "--id", "a1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(memory.State.Schedules) != 1 {
			t.Errorf("schedules = %d, want 1", len(memory.State.Schedules))
		}

		err := runCommand(t, runner, "schedule", "bulk-rm", "--id", "a2", "--id", "a2", "--id", "missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(memory.State.Schedules) != 0 {
			t.Errorf("schedules = %d, want 0", len(memory.State.Schedules))
		}
		if !strings.Contains(output.String(), "1 agendamentos excluídos") {
			t.Errorf("output = %s", output.String())
		}
	})

	t.Run("rm unknown id fails", func(t *testing.T) {
		runner, _, _ := newTestRunner(t, store.Seed())

		err := runCommand(t, runner, "schedule", "rm", "--id", "missing")
		if !errors.Is(err, shared.ErrScheduleNotFound) {
			t.Errorf("err = %v, want ErrScheduleNotFound", err)
		}
	})
}

func TestSpeakerCommands(t *testing.T) {
	t.Run("add and list", func(t *testing.T) {
		runner, memory, output := newTestRunner(t, store.Seed())

		err := runCommand(t, runner, "speaker", "add", "--name", "Bruno Costa", "--congregation", "Oeste")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(memory.State.Speakers) != 1 {
			t.Fatalf("speakers = %d, want 1", len(memory.State.Speakers))
		}

		output.Reset()
		if err := runCommand(t, runner, "speaker", "list"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(output.String(), "Bruno Costa") {
			t.Errorf("output = %s", output.String())
		}
	})

	t.Run("rm soft-deletes and list hides", func(t *testing.T) {
		state := tu.NewState(
			[]models.Speaker{tu.Speaker("s1", "Ana", "Central")},
			[]models.Schedule{tu.Schedule("a1", tu.Saturday, "s1", 5)},
		)
		runner, memory, output := newTestRunner(t, state)

		if err := runCommand(t, runner, "speaker", "rm", "--id", "s1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		sp, _ := memory.State.SpeakerByID("s1")
		if !sp.IsDeleted {
			t.Error("speaker must be soft-deleted")
		}
		if len(memory.State.Schedules) != 1 {
			t.Error("schedules referencing the speaker must survive")
		}

		output.Reset()
		if err := runCommand(t, runner, "speaker", "list"); err != nil {
			t.Fatal(err)
		}
		if strings.Contains(output.String(), "Ana") {
			t.Error("deleted speaker listed without --all")
		}

		output.Reset()
		if err := runCommand(t, runner, "speaker", "list", "--all"); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(output.String(), "Ana") {
			t.Error("--all must include deleted speakers")
		}
	})
}

func TestDataCommands(t *testing.T) {
	t.Run("export and import round trip", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "backup.json")

		state := tu.NewState(
			[]models.Speaker{tu.Speaker("s1", "Ana", "Central")},
			[]models.Schedule{tu.Schedule("a1", tu.Saturday, "s1", 5)},
		)
		runner, memory, _ := newTestRunner(t, state)

		err := runCommand(t, runner, "data", "export", "--format", "json", "--output", path)
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}

		memory.State = store.Seed()
		if err := runCommand(t, runner, "data", "import", path); err != nil {
			t.Fatalf("import failed: %v", err)
		}
		if len(memory.State.Speakers) != 1 || len(memory.State.Schedules) != 1 {
			t.Errorf("state after import = %d speakers, %d schedules", len(memory.State.Speakers), len(memory.State.Schedules))
		}
	})

	t.Run("import rejects invalid payload", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		if err := os.WriteFile(path, []byte(`{"speakers":[]}`), 0644); err != nil {
			t.Fatal(err)
		}

		state := tu.NewState([]models.Speaker{tu.Speaker("s1", "Ana", "Central")}, nil)
		runner, memory, _ := newTestRunner(t, state)

		err := runCommand(t, runner, "data", "import", path)
		if !errors.Is(err, shared.ErrInvalidImport) {
			t.Fatalf("err = %v, want ErrInvalidImport", err)
		}
		if len(memory.State.Speakers) != 1 {
			t.Error("failed import must leave state untouched")
		}
	})

	t.Run("export csv", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "escala.csv")
		runner, _, output := newTestRunner(t, store.Seed())

		err := runCommand(t, runner, "data", "export", "--format", "csv", "--output", path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("export file missing: %v", err)
		}
		if !strings.Contains(output.String(), "✓ Escala exportada") {
			t.Errorf("output = %s", output.String())
		}
	})
}

func TestSettingsAndConflictsCommands(t *testing.T) {
	t.Run("settings set validates flags", func(t *testing.T) {
		runner, memory, _ := newTestRunner(t, store.Seed())

		err := runCommand(t, runner, "settings", "set", "--conflict-days", "0")
		if !errors.Is(err, shared.ErrInvalidFlag) {
			t.Errorf("err = %v, want ErrInvalidFlag", err)
		}

		err = runCommand(t, runner, "settings", "set", "--theme", "sepia")
		if !errors.Is(err, shared.ErrInvalidFlag) {
			t.Errorf("err = %v, want ErrInvalidFlag", err)
		}

		if err := runCommand(t, runner, "settings", "set", "--conflict-days", "90", "--theme", "light"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if memory.State.Settings.ConflictDays != 90 || memory.State.Settings.ThemeMode != "light" {
			t.Errorf("settings = %+v", memory.State.Settings)
		}
	})

	t.Run("conflicts check reports reuse", func(t *testing.T) {
		state := tu.NewState(
			[]models.Speaker{tu.Speaker("s1", "Ana", "Central")},
			[]models.Schedule{tu.Schedule("a1", tu.Saturday, "s1", 5)},
		)
		runner, _, output := newTestRunner(t, state)

		err := runCommand(t, runner, "conflicts", "--outline", "5", "--date", "2024-06-01")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(output.String(), "⚠ Conflito detectado") {
			t.Errorf("output = %s", output.String())
		}

		output.Reset()
		if err := runCommand(t, runner, "conflicts", "--outline", "9", "--date", "2024-06-01"); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(output.String(), "✓ Nenhum conflito") {
			t.Errorf("output = %s", output.String())
		}
	})

	t.Run("conflicts check rejects unknown outline", func(t *testing.T) {
		runner, _, _ := newTestRunner(t, store.Seed())

		err := runCommand(t, runner, "conflicts", "--outline", "999", "--date", "2024-06-01")
		if !errors.Is(err, shared.ErrOutlineNotFound) {
			t.Errorf("err = %v, want ErrOutlineNotFound", err)
		}
	})

	t.Run("history requires sqlite backend", func(t *testing.T) {
		runner, _, _ := newTestRunner(t, store.Seed())

		err := runCommand(t, runner, "history", "list")
		if !errors.Is(err, shared.ErrInvalidConfig) {
			t.Errorf("err = %v, want ErrInvalidConfig", err)
		}
	})

	t.Run("catalog outlines", func(t *testing.T) {
		runner, _, output := newTestRunner(t, store.Seed())

		if err := runCommand(t, runner, "catalog", "outlines"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(output.String(), "Esboços") {
			t.Errorf("output = %s", output.String())
		}
	})
}
