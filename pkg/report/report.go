// Package report computes the admin dashboard view over contact
// messages: time-bucketed stats, combined search + time-window
// filtering, recency sort, and CSV/XLSX export of the filtered set.
// Everything here is a pure function of (messages, parameters, now).
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"Portfolio/models"

	"github.com/xuri/excelize/v2"
)

// Window selects the time range a message must fall into.
type Window string

const (
	WindowAll   Window = "all"
	WindowToday Window = "today"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
)

// ParseWindow maps a query-string value to a Window. Empty means all.
func ParseWindow(s string) (Window, bool) {
	switch Window(s) {
	case WindowToday, WindowWeek, WindowMonth:
		return Window(s), true
	case WindowAll, Window(""):
		return WindowAll, true
	}
	return WindowAll, false
}

// Stats are derived counts over the full, unfiltered message list.
// For any consistent snapshot Today <= Week <= Month <= Total.
type Stats struct {
	Total int `json:"total"`
	Today int `json:"today"`
	Week  int `json:"week"`
	Month int `json:"month"`
}

// windowStart returns the inclusive lower bound for a window. All
// buckets are anchored at local midnight so the boundaries only move
// once a day: today = midnight, week = midnight-7d, month = midnight-30d.
func windowStart(now time.Time, w Window) (time.Time, bool) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch w {
	case WindowToday:
		return midnight, true
	case WindowWeek:
		return midnight.AddDate(0, 0, -7), true
	case WindowMonth:
		return midnight.AddDate(0, 0, -30), true
	}
	return time.Time{}, false
}

func inWindow(t time.Time, now time.Time, w Window) bool {
	start, bounded := windowStart(now, w)
	if !bounded {
		return true
	}
	return !t.Before(start)
}

// ComputeStats counts the full list into the four buckets.
func ComputeStats(msgs []models.Message, now time.Time) Stats {
	s := Stats{Total: len(msgs)}
	for _, m := range msgs {
		if inWindow(m.CreatedAt, now, WindowToday) {
			s.Today++
		}
		if inWindow(m.CreatedAt, now, WindowWeek) {
			s.Week++
		}
		if inWindow(m.CreatedAt, now, WindowMonth) {
			s.Month++
		}
	}
	return s
}

// matchesSearch does a case-insensitive substring match against name,
// email and body; a message is kept if any field matches.
func matchesSearch(m models.Message, search string) bool {
	if search == "" {
		return true
	}
	q := strings.ToLower(search)
	return strings.Contains(strings.ToLower(m.Name), q) ||
		strings.Contains(strings.ToLower(m.Email), q) ||
		strings.Contains(strings.ToLower(m.Body), q)
}

// Filter returns the messages matching both the search term and the
// time window, newest first. The input slice is not modified.
func Filter(msgs []models.Message, search string, w Window, now time.Time) []models.Message {
	out := make([]models.Message, 0, len(msgs))
	for _, m := range msgs {
		if !matchesSearch(m, search) {
			continue
		}
		if !inWindow(m.CreatedAt, now, w) {
			continue
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Export column layout, kept identical between CSV and XLSX.
var exportHeader = []string{"Date", "Nom", "Email", "Message"}

const exportTimeLayout = "02/01/2006 15:04:05"

// WriteCSV writes the given (already filtered) messages as CSV:
// a header row then one row per message, RFC 4180 quoting.
func WriteCSV(w io.Writer, msgs []models.Message) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, m := range msgs {
		row := []string{
			m.CreatedAt.Format(exportTimeLayout),
			m.Name,
			m.Email,
			m.Body,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the same export as a single-sheet spreadsheet.
func WriteXLSX(w io.Writer, msgs []models.Message) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, h := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	for r, m := range msgs {
		values := []string{
			m.CreatedAt.Format(exportTimeLayout),
			m.Name,
			m.Email,
			m.Body,
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return f.Write(w)
}

// ExportFilename builds the download name, e.g. messages-2026-08-28.csv.
func ExportFilename(ext string, now time.Time) string {
	return fmt.Sprintf("messages-%s.%s", now.Format("2006-01-02"), ext)
}
