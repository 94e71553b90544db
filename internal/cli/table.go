// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Theme defines the color scheme for tables.
type Theme struct {
	Primary lipgloss.Color
	Dim     lipgloss.Color
}

// DefaultTheme is the default palette.
var DefaultTheme = Theme{
	Primary: lipgloss.Color("#7d56f4"),
	Dim:     lipgloss.Color("#6e7681"),
}

// Styles holds the styles derived from a theme.
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Cell   lipgloss.Style
	Border lipgloss.Style
	Footer lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Header: lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Padding(0, 1),
		Cell:   lipgloss.NewStyle().Padding(0, 1),
		Border: lipgloss.NewStyle().Foreground(t.Dim),
		Footer: lipgloss.NewStyle().Foreground(t.Dim),
	}
}

// DefaultStyles uses DefaultTheme.
var DefaultStyles = NewStyles(DefaultTheme)

// Table is a titled grid of cells with optional footer lines.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Footer  []string
}

// AddRow appends a row.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render draws the table with s.
func (t *Table) Render(s Styles) string {
	var b strings.Builder
	if t.Title != "" {
		b.WriteString(s.Title.Render(t.Title))
		b.WriteString("\n")
	}

	if len(t.Rows) == 0 {
		b.WriteString(s.Footer.Render("(no results)"))
	} else {
		grid := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(s.Border).
			Headers(t.Headers...).
			Rows(t.Rows...).
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == table.HeaderRow {
					return s.Header
				}
				return s.Cell
			})
		b.WriteString(grid.Render())
	}

	for _, line := range t.Footer {
		b.WriteString("\n")
		b.WriteString(s.Footer.Render(line))
	}
	return b.String()
}
