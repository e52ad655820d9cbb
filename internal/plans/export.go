package plans

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	icsDateLayout     = "20060102"
	icsDateTimeLayout = "20060102T150405Z"
	xlsxSheet         = "Week"
)

// ICS renders the week as an iCalendar feed with one all-day event per day
// that has a module assigned.
func ICS(week Week, now time.Time) []byte {
	var sb strings.Builder

	sb.WriteString("BEGIN:VCALENDAR\r\n")
	sb.WriteString("VERSION:2.0\r\n")
	sb.WriteString("PRODID:-//FitGenius//Workout Plan//EN\r\n")
	sb.WriteString("CALSCALE:GREGORIAN\r\n")
	sb.WriteString("METHOD:PUBLISH\r\n")
	sb.WriteString(fmt.Sprintf("X-WR-CALNAME:%s\r\n", escapeICS("Workouts "+week.ID)))

	for _, day := range week.Days {
		if day.AssignedModule == nil || day.Date.IsZero() {
			continue
		}
		start := day.Date
		end := time.Date(start.Year(), start.Month(), start.Day()+1, 0, 0, 0, 0, start.Location())

		sb.WriteString("BEGIN:VEVENT\r\n")
		sb.WriteString(fmt.Sprintf("UID:%s-%s@fitgenius\r\n", week.ID, start.Format(icsDateLayout)))
		sb.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", now.UTC().Format(icsDateTimeLayout)))
		sb.WriteString(fmt.Sprintf("DTSTART;VALUE=DATE:%s\r\n", start.Format(icsDateLayout)))
		sb.WriteString(fmt.Sprintf("DTEND;VALUE=DATE:%s\r\n", end.Format(icsDateLayout)))
		sb.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(day.AssignedModule.Title)))
		if description := moduleDescription(*day.AssignedModule); description != "" {
			sb.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(description)))
		}
		sb.WriteString("END:VEVENT\r\n")
	}

	sb.WriteString("END:VCALENDAR\r\n")
	return []byte(sb.String())
}

func moduleDescription(m Module) string {
	lines := make([]string, 0, len(m.Exercises)+1)
	for _, ex := range m.Exercises {
		lines = append(lines, fmt.Sprintf("%s: %d x %s", ex.Name, ex.Sets, ex.Reps))
	}
	if m.Notes != "" {
		lines = append(lines, m.Notes)
	}
	return strings.Join(lines, "\n")
}

func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, "\r\n", "\\n")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}

// XLSX renders the week as a workbook with a single sheet, one row per exercise.
// Days without a module get a single rest row.
func XLSX(week Week) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"2E75B6"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	header := []any{"Day", "Date", "Module", "Exercise", "Sets", "Reps", "Completed", "Reward Claimed"}
	if err := f.SetSheetRow(xlsxSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	if err := f.SetCellStyle(xlsxSheet, "A1", "H1", headerStyle); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	rowNum := 2
	writeRow := func(values []any) error {
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		rowNum++
		return f.SetSheetRow(xlsxSheet, cell, &values)
	}

	for _, day := range week.Days {
		date := ""
		if !day.Date.IsZero() {
			date = day.Date.Format(DateLayout)
		}

		if day.AssignedModule == nil || len(day.AssignedModule.Exercises) == 0 {
			title := "Rest Day"
			if day.AssignedModule != nil {
				title = day.AssignedModule.Title
			}
			if err := writeRow([]any{day.DayName, date, title, "", "", "", "", day.RewardClaimed}); err != nil {
				return nil, fmt.Errorf("write day %s: %w", day.DayName, err)
			}
			continue
		}

		for _, ex := range day.AssignedModule.Exercises {
			row := []any{day.DayName, date, day.AssignedModule.Title, ex.Name, ex.Sets, ex.Reps, ex.IsCompleted, day.RewardClaimed}
			if err := writeRow(row); err != nil {
				return nil, fmt.Errorf("write exercise %s: %w", ex.Name, err)
			}
		}
	}

	if err := f.SetColWidth(xlsxSheet, "A", "C", 16); err != nil {
		return nil, fmt.Errorf("column width: %w", err)
	}
	if err := f.SetColWidth(xlsxSheet, "D", "D", 28); err != nil {
		return nil, fmt.Errorf("column width: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
