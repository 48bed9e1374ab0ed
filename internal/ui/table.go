package ui

import (
	"fmt"
	"strings"

	"kite/internal/search"
)

const (
	columnGap      = 2
	maxColumnWidth = 24
	minColumnWidth = 6
	fallbackWidth  = 120
)

// renderTable paints the result table from the current view description:
// the nine canonical headers, a rule, and one line per row in server order.
func (m Model) renderTable() string {
	styles := m.theme.Styles()
	table := m.desc.Table

	total := m.width
	if total <= 0 {
		total = fallbackWidth
	}
	widths := columnWidths(table, total)

	var b strings.Builder
	b.WriteString(styles.TableHeader.Render(renderRow(table.Headers, widths)))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", rowWidth(widths))))
	b.WriteString("\n")
	for _, row := range table.Rows {
		b.WriteString(styles.Cell.Render(renderRow(row, widths)))
		b.WriteString("\n")
	}
	return b.String()
}

// renderRow lays out one row's cells at the given widths.
func renderRow(cells []string, widths []int) string {
	parts := make([]string, 0, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts = append(parts, fmt.Sprintf("%-*s", w, truncate(cell, w)))
	}
	return strings.Join(parts, strings.Repeat(" ", columnGap))
}

// columnWidths sizes each column to its widest content, capped per column,
// then shrinks the widest columns until the row fits the terminal.
func columnWidths(table search.Table, total int) []int {
	widths := make([]int, len(table.Headers))
	for i, h := range table.Headers {
		widths[i] = len([]rune(h))
	}
	for _, row := range table.Rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if n := len([]rune(cell)); n > widths[i] {
				widths[i] = n
			}
		}
	}
	for i := range widths {
		if widths[i] > maxColumnWidth {
			widths[i] = maxColumnWidth
		}
	}

	// Shrink the widest column one cell at a time until the row fits.
	for rowWidth(widths) > total {
		widest := 0
		for i := range widths {
			if widths[i] > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= minColumnWidth {
			break
		}
		widths[widest]--
	}
	return widths
}

func rowWidth(widths []int) int {
	total := 0
	for _, w := range widths {
		total += w
	}
	if len(widths) > 1 {
		total += columnGap * (len(widths) - 1)
	}
	return total
}

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}
