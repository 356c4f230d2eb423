package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/duartefn/escala/internal/models"
	"github.com/duartefn/escala/internal/scheduler"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	CalendarView ViewState = iota
	DetailView
)

// Model represents the TUI application state.
//
// The model owns a state snapshot for the duration of the session. Deletions
// run through the scheduler engine against that snapshot; the caller reads
// the final snapshot back via [Model.State] and persists it if [Model.Dirty].
type Model struct {
	state      models.AppState
	today      models.Date
	view       ViewState
	year       int
	month      time.Month
	schedules  list.Model
	help       help.Model
	keys       keyMap
	width      int
	height     int
	confirming bool
	dirty      bool
}

// NewModel creates the dashboard model over a state snapshot. The calendar
// opens on today's month.
func NewModel(state models.AppState, today models.Date) Model {
	delegate := list.NewDefaultDelegate()
	l := list.New(buildItems(state), delegate, 0, 0)
	l.Title = "Agendamentos"
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	return Model{
		state:     state,
		today:     today,
		view:      CalendarView,
		year:      today.Year(),
		month:     today.Month(),
		schedules: l,
		help:      help.New(),
		keys:      newKeyMap(),
	}
}

// State returns the possibly mutated snapshot after the session.
func (m Model) State() models.AppState { return m.state }

// Dirty reports whether the session deleted anything, so the caller knows to
// persist the snapshot.
func (m Model) Dirty() bool { return m.dirty }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.schedules.SetSize(msg.Width/2, msg.Height-6)
		return m, nil

	case tea.KeyMsg:
		if m.confirming {
			return m.updateConfirm(msg)
		}
		switch m.view {
		case DetailView:
			return m.updateDetail(msg)
		default:
			return m.updateCalendar(msg)
		}
	}

	return m, nil
}

func (m Model) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.prevMonth):
		m.year, m.month = prevMonth(m.year, m.month)
		return m, nil
	case key.Matches(msg, m.keys.nextMonth):
		m.year, m.month = nextMonth(m.year, m.month)
		return m, nil
	case key.Matches(msg, m.keys.enter):
		if _, ok := m.selectedItem(); ok {
			m.view = DetailView
		}
		return m, nil
	case key.Matches(msg, m.keys.delete):
		if _, ok := m.selectedItem(); ok {
			m.confirming = true
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.schedules, cmd = m.schedules.Update(msg)

	// follow the selection across months
	if item, ok := m.selectedItem(); ok {
		m.year = item.schedule.Date.Year()
		m.month = item.schedule.Date.Month()
	}
	return m, cmd
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = CalendarView
	case key.Matches(msg, m.keys.delete):
		m.confirming = true
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.yes):
		m.confirming = false
		if item, ok := m.selectedItem(); ok {
			if newState, err := scheduler.DeleteSchedule(m.state, item.schedule.ID); err == nil {
				m.state = newState
				m.dirty = true
				m.schedules.SetItems(buildItems(m.state))
			}
		}
		m.view = CalendarView
	case key.Matches(msg, m.keys.no), key.Matches(msg, m.keys.back):
		m.confirming = false
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) selectedItem() (scheduleItem, bool) {
	item, ok := m.schedules.SelectedItem().(scheduleItem)
	return item, ok
}

func (m Model) View() string {
	if m.confirming {
		item, _ := m.selectedItem()
		return lipgloss.JoinVertical(lipgloss.Left,
			styles.title.Render("Excluir agendamento"),
			fmt.Sprintf("Tem certeza que deseja excluir o discurso de %s em %s?",
				item.speaker.Name, item.schedule.Date.Display()),
			styles.help.Render("y: sim • n: não"),
		)
	}

	if m.view == DetailView {
		return m.viewDetail()
	}

	booked := make(map[string]bool, len(m.state.Schedules))
	for _, sch := range m.state.Schedules {
		booked[sch.Date.String()] = true
	}

	var selected models.Date
	if item, ok := m.selectedItem(); ok {
		selected = item.schedule.Date
	}

	calendar := renderCalendar(m.year, m.month, booked, selected, m.today)
	body := lipgloss.JoinHorizontal(lipgloss.Top, calendar, "   ", m.schedules.View())
	return lipgloss.JoinVertical(lipgloss.Left, body, m.help.View(m.keys))
}

func (m Model) viewDetail() string {
	item, ok := m.selectedItem()
	if !ok {
		return styles.err.Render("nenhum agendamento selecionado")
	}

	var b strings.Builder
	b.WriteString(styles.title.Render("Detalhes do agendamento"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Data:         %s\n", item.schedule.Date.Display()))
	b.WriteString(fmt.Sprintf("Orador:       %s\n", item.speaker.Name))
	b.WriteString(fmt.Sprintf("Congregação:  %s\n", item.speaker.Congregation))
	if item.speaker.Phone != "" {
		b.WriteString(fmt.Sprintf("Telefone:     %s\n", item.speaker.Phone))
	}
	b.WriteString(fmt.Sprintf("Tema:         %s\n", item.outline))
	if item.schedule.Song != "" {
		b.WriteString(fmt.Sprintf("Cântico:      %s\n", item.schedule.Song))
	}
	if item.schedule.Notes != "" {
		b.WriteString(fmt.Sprintf("Notas:        %s\n", item.schedule.Notes))
	}

	// conflict report relative to this schedule, ignoring the schedule itself
	others := make([]models.Schedule, 0, len(m.state.Schedules))
	for _, sch := range m.state.Schedules {
		if sch.ID != item.schedule.ID {
			others = append(others, sch)
		}
	}
	conflicts := scheduler.DetectConflicts(others, item.schedule.OutlineNumber,
		item.schedule.Date, m.today, m.state.Settings.ConflictDays)
	if !conflicts.Empty() {
		b.WriteString("\n")
		b.WriteString(styles.warn.Render("⚠ Conflito detectado"))
		b.WriteString("\n")
		for _, msg := range conflicts.Messages() {
			b.WriteString(styles.warn.Render("  " + msg))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.help.Render("esc: voltar • d: excluir • q: sair"))
	return b.String()
}

func prevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}
