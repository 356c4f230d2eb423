package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var styles = NewPalette("#BB9829", "#04B575", "#FF5555", "#FFA500", "#626262")

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title    lipgloss.Style
	ok       lipgloss.Style
	err      lipgloss.Style
	warn     lipgloss.Style
	help     lipgloss.Style
	weekend  lipgloss.Style
	weekday  lipgloss.Style
	booked   lipgloss.Style
	selected lipgloss.Style
	today    lipgloss.Style
}

func NewPalette(t, s, e, w, h string) *Palette {
	return &Palette{
		title:    NewBold(t).MarginBottom(1),
		ok:       NewBold(s),
		err:      NewBold(e),
		warn:     NewStyle(w),
		help:     NewEm(h),
		weekend:  NewStyle(t),
		weekday:  NewStyle(h).Faint(true),
		booked:   NewBold(s),
		selected: lipgloss.NewStyle().Background(lipgloss.Color(t)).Foreground(lipgloss.Color("#FFFFFF")).Bold(true),
		today:    NewStyle(t).Underline(true),
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}
