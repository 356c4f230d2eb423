package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/duartefn/escala/internal/models"
)

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// renderCalendar draws one month as a seven-column grid.
//
// Weekends carry the accent color since only they accept schedules; days with
// a schedule are marked with a dot, today is underlined, and the date of the
// currently selected schedule is highlighted.
func renderCalendar(year int, month time.Month, booked map[string]bool, selected, today models.Date) string {
	var b strings.Builder

	b.WriteString(styles.title.Render(fmt.Sprintf("%s %d", monthNames[month-1], year)))
	b.WriteString("\n")
	b.WriteString(styles.help.Render(" D   S   T   Q   Q   S   S"))
	b.WriteString("\n")

	first := models.NewDate(year, month, 1)
	daysInMonth := daysIn(year, month)

	// offset of the first day inside the Sunday-first week row
	offset := int(first.Weekday())
	col := 0
	for ; col < offset; col++ {
		b.WriteString("    ")
	}

	for day := 1; day <= daysInMonth; day++ {
		date := models.NewDate(year, month, day)
		cell := fmt.Sprintf("%2d", day)
		if booked[date.String()] {
			cell += "•"
		} else {
			cell += " "
		}

		switch {
		case date.Equal(selected):
			cell = styles.selected.Render(cell)
		case date.Equal(today):
			cell = styles.today.Render(cell)
		case booked[date.String()]:
			cell = styles.booked.Render(cell)
		case date.IsWeekend():
			cell = styles.weekend.Render(cell)
		default:
			cell = styles.weekday.Render(cell)
		}

		b.WriteString(cell)
		b.WriteString(" ")

		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	return b.String()
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
