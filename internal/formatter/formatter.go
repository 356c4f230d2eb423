// package formatter renders the talk rota to exportable formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"sort"

	"github.com/duartefn/escala/internal/models"
)

// Placeholder strings for broken references, matching the original export wording.
const (
	unknownSpeaker = "Desconhecido"
	unknownOutline = "Tema não encontrado"
)

// RotaRow is one schedule joined with its speaker and outline data, ready to
// be rendered.
type RotaRow struct {
	Date         models.Date
	Speaker      string
	Congregation string
	Phone        string
	Outline      string
	Song         string
	Notes        string
}

// BuildRota joins schedules with speakers and outlines, sorted by date.
// Soft-deleted speakers still resolve; dangling references render as
// placeholders rather than dropping the row.
func BuildRota(state models.AppState) []RotaRow {
	rows := make([]RotaRow, 0, len(state.Schedules))

	for _, sch := range state.Schedules {
		row := RotaRow{
			Date:    sch.Date,
			Speaker: unknownSpeaker,
			Outline: unknownOutline,
			Song:    sch.Song,
			Notes:   sch.Notes,
		}

		if sp, ok := state.SpeakerByID(sch.SpeakerID); ok {
			row.Speaker = sp.Name
			row.Congregation = sp.Congregation
			row.Phone = sp.Phone
		}
		if o, ok := state.OutlineByNumber(sch.OutlineNumber); ok {
			row.Outline = fmt.Sprintf("%d. %s", o.Number, o.Title)
		}

		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	return rows
}

// ExportToCSV converts the rota to CSV with columns: Data, Orador, Congregação, Tema, Contato, Cântico, Notas
func ExportToCSV(state models.AppState) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Data", "Orador", "Congregação", "Tema", "Contato", "Cântico", "Notas"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, row := range BuildRota(state) {
		record := []string{
			row.Date.Display(),
			row.Speaker,
			row.Congregation,
			row.Outline,
			row.Phone,
			row.Song,
			row.Notes,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts the rota to a Markdown table.
func ExportToMarkdown(state models.AppState) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Programação de Discursos Públicos\n\n")
	buf.WriteString(fmt.Sprintf("**Agendamentos**: %d\n\n", len(state.Schedules)))

	buf.WriteString("| Data | Orador | Congregação | Tema | Contato |\n")
	buf.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, row := range BuildRota(state) {
		buf.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
			row.Date.Display(), row.Speaker, row.Congregation, row.Outline, row.Phone))
	}

	return buf.Bytes(), nil
}

// ExportToText converts the rota to plain text, one schedule per line.
func ExportToText(state models.AppState) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("Programação de Discursos Públicos\n")
	buf.WriteString(fmt.Sprintf("Agendamentos: %d\n\n", len(state.Schedules)))

	for i, row := range BuildRota(state) {
		buf.WriteString(fmt.Sprintf("%d. %s - %s (%s) - %s\n",
			i+1, row.Date.Display(), row.Speaker, row.Congregation, row.Outline))
	}

	return buf.Bytes(), nil
}

// WriteExport renders the rota in the given format ("csv", "md" or "txt")
// and writes it to path. Returns the written path.
func WriteExport(state models.AppState, format, path string) (string, error) {
	var (
		data []byte
		err  error
	)

	switch format {
	case "csv":
		data, err = ExportToCSV(state)
	case "md", "markdown":
		data, err = ExportToMarkdown(state)
	case "txt", "text":
		data, err = ExportToText(state)
	default:
		return "", fmt.Errorf("unsupported export format: %s", format)
	}
	if err != nil {
		return "", err
	}

	if path == "" {
		path = "escala_discursos." + format
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}
