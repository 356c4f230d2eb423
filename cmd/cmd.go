// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// scheduleCommand handles schedule operations
func scheduleCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "schedule",
		Aliases: []string{"sch"},
		Usage:   "Manage weekend talk schedules",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Schedule a talk (creates the speaker when unknown)",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "date",
						Aliases:  []string{"d"},
						Usage:    "Talk date (YYYY-MM-DD, Saturday or Sunday)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "speaker",
						Aliases:  []string{"s"},
						Usage:    "Speaker name",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "congregation",
						Aliases: []string{"g"},
						Usage:   "Speaker's congregation",
					},
					&cli.StringFlag{
						Name:  "phone",
						Usage: "Speaker's phone (optional)",
					},
					&cli.IntFlag{
						Name:    "outline",
						Aliases: []string{"o"},
						Usage:   "Outline number",
					},
					&cli.StringFlag{
						Name:  "song",
						Usage: "Song (optional)",
					},
					&cli.StringFlag{
						Name:  "notes",
						Usage: "Additional notes (optional)",
					},
				},
				Action: r.ScheduleAdd,
			},
			{
				Name:  "list",
				Usage: "List schedules sorted by date",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.ScheduleList,
			},
			{
				Name:  "edit",
				Usage: "Edit fields of an existing schedule (no re-validation)",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Schedule ID to edit",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "date",
						Usage: "New date (YYYY-MM-DD)",
					},
					&cli.IntFlag{
						Name:  "outline",
						Usage: "New outline number",
					},
					&cli.StringFlag{
						Name:  "notes",
						Usage: "New notes",
					},
					&cli.StringFlag{
						Name:  "song",
						Usage: "New song",
					},
				},
				Action: r.ScheduleEdit,
			},
			{
				Name:  "rm",
				Usage: "Delete one schedule",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Schedule ID to delete",
						Required: true,
					},
				},
				Action: r.ScheduleDelete,
			},
			{
				Name:  "bulk-rm",
				Usage: "Delete several schedules in one pass",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:  "id",
						Usage: "Schedule ID to delete (repeatable)",
					},
				},
				Action: r.ScheduleBulkDelete,
			},
		},
	}
}

// speakerCommand handles speaker operations
func speakerCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "speaker",
		Aliases: []string{"spk"},
		Usage:   "Manage visiting speakers",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Register a speaker",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Aliases:  []string{"n"},
						Usage:    "Speaker name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "congregation",
						Aliases:  []string{"g"},
						Usage:    "Speaker's congregation",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "phone",
						Usage: "Speaker's phone (optional)",
					},
				},
				Action: r.SpeakerAdd,
			},
			{
				Name:  "list",
				Usage: "List active speakers",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "all",
						Usage: "Include soft-deleted speakers",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.SpeakerList,
			},
			{
				Name:  "edit",
				Usage: "Edit a speaker's data",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Speaker ID to edit",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "name",
						Usage: "New name",
					},
					&cli.StringFlag{
						Name:  "congregation",
						Usage: "New congregation",
					},
					&cli.StringFlag{
						Name:  "phone",
						Usage: "New phone",
					},
				},
				Action: r.SpeakerEdit,
			},
			{
				Name:  "rm",
				Usage: "Remove a speaker (history is kept)",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Speaker ID to remove",
						Required: true,
					},
				},
				Action: r.SpeakerDelete,
			},
		},
	}
}

// catalogCommand lists the immutable outline and song catalogs
func catalogCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "Browse the outline and song catalogs",
		Commands: []*cli.Command{
			{
				Name:    "outlines",
				Aliases: []string{"o"},
				Usage:   "List approved talk outlines",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.CatalogOutlines,
			},
			{
				Name:    "songs",
				Aliases: []string{"s"},
				Usage:   "List songs",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.CatalogSongs,
			},
		},
	}
}

// conflictsCommand checks outline reuse inside the configured window
func conflictsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "conflicts",
		Usage: "Check whether an outline was used close to a date",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "outline",
				Aliases:  []string{"o"},
				Usage:    "Outline number to check",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "date",
				Aliases: []string{"d"},
				Usage:   "Reference date (YYYY-MM-DD, defaults to today)",
			},
		},
		Action: r.ConflictsCheck,
	}
}

// settingsCommand shows and updates application settings
func settingsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "settings",
		Usage: "Show and update application settings",
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Print current settings",
				Action: r.SettingsShow,
			},
			{
				Name:  "set",
				Usage: "Update settings",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "conflict-days",
						Usage: "Conflict window in days",
					},
					&cli.StringFlag{
						Name:  "theme",
						Usage: "Theme mode (light or dark)",
					},
				},
				Action: r.SettingsSet,
			},
		},
	}
}

// dataCommand handles export and import of the full state
func dataCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "data",
		Usage: "Export and import all data",
		Commands: []*cli.Command{
			{
				Name:  "export",
				Usage: "Export the rota (json, csv, md or txt)",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format: json, csv, md, txt",
						Value:   "json",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
					},
				},
				Action: r.DataExport,
			},
			{
				Name:  "import",
				Usage: "Replace all data with a JSON backup",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Action: r.DataImport,
			},
		},
	}
}

// historyCommand exposes the sqlite backend's snapshot history
func historyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Inspect and restore saved snapshots (sqlite backend)",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List saved snapshots",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.HistoryList,
			},
			{
				Name:  "restore",
				Usage: "Restore a snapshot version as the current state",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "version",
						Usage:    "Snapshot version to restore",
						Required: true,
					},
				},
				Action: r.HistoryRestore,
			},
		},
	}
}

// setupCommand handles setup operations for configuration and database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Write an example config.toml",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "path",
						Aliases: []string{"p"},
						Usage:   "Path for the new config file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
			{
				Name:  "database",
				Usage: "Initialize the sqlite database and run migrations",
				Action: r.SetupDatabase,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for the interactive calendar.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive calendar dashboard",
		Action:  r.TUI,
	}
}
