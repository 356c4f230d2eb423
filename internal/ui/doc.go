// Package ui implements the interactive calendar dashboard using bubbletea's Elm architecture.
//
// The TUI provides a read-mostly view of the talk rota:
//  1. [CalendarView] : Month grid with weekends highlighted and scheduled days
//     marked, beside the schedule list sorted by date
//  2. [DetailView] : One schedule with speaker data and its conflict report
//
// The [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// All data lives in the injected state snapshot: the TUI performs no I/O, and
// deletions run through the scheduler engine so the caller can persist the
// final snapshot once the program exits.
//
// Keyboard navigation uses vim-style bindings (j/k, h/l for month paging,
// enter, esc, d, y/n, q) with contextual help via charmbracelet/bubbles/help.
package ui
