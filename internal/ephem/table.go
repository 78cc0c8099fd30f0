// Package ephem fetches and parses JPL Horizons observer ephemerides.
package ephem

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// DateColumn is the distinguished header token that identifies the
	// column-name line in a Horizons CSV response.
	DateColumn = "Date__(UT)__HR:MN"

	// StartMarker and EndMarker bracket the data rows.
	StartMarker = "$$SOE"
	EndMarker   = "$$EOE"

	// NotAvailable is the missing-value marker used by Horizons.
	NotAvailable = "n.a."

	// MissingValue replaces NotAvailable cells in numeric columns. All
	// physical quantities in this domain are positive or moderate, so a
	// large negative flag cannot be mistaken for a measurement.
	MissingValue = -999.0
)

// Table holds a parsed ephemeris as named columns of raw string cells.
// All columns have equal length.
type Table struct {
	names []string
	cols  map[string][]string
	rows  int
}

// ParseTable converts a raw Horizons text response into a column table.
// It scans lines sequentially: blank lines are skipped, the line containing
// DateColumn is recorded as the comma-separated header, lines starting with
// a '*' decoration (the star divider, cut-off advisories) are skipped, and
// data rows are collected between the StartMarker and EndMarker lines.
func ParseTable(raw string) (*Table, error) {
	var names []string
	var rows [][]string
	inTable := false

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.Contains(line, DateColumn) {
			for _, name := range strings.Split(line, ",") {
				names = append(names, strings.TrimSpace(name))
			}
			continue
		}
		if strings.HasPrefix(trimmed, "*") {
			continue
		}
		if strings.Contains(line, StartMarker) {
			inTable = true
			continue
		}
		if strings.Contains(line, EndMarker) {
			inTable = false
			continue
		}
		if inTable {
			rows = append(rows, strings.Split(line, ","))
		}
	}

	if names == nil {
		return nil, fmt.Errorf("ephemeris header %q not found", DateColumn)
	}

	for j, row := range rows {
		if len(row) > len(names) {
			return nil, fmt.Errorf("row %d has %d cells for %d columns", j+1, len(row), len(names))
		}
	}

	t := &Table{
		names: names,
		cols:  make(map[string][]string, len(names)),
		rows:  len(rows),
	}
	for i, name := range names {
		col := make([]string, len(rows))
		for j, row := range rows {
			if i < len(row) {
				col[j] = row[i]
			}
		}
		t.cols[name] = col
	}
	return t, nil
}

// Len returns the number of data rows.
func (t *Table) Len() int { return t.rows }

// Has reports whether a column with the exact given name is present.
func (t *Table) Has(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Strings returns a column of whitespace-trimmed cells. The lookup is an
// exact match against the header names.
func (t *Table) Strings(name string) ([]string, error) {
	col, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("ephemeris column %q not found (have %s)", name, strings.Join(t.names, ", "))
	}
	out := make([]string, len(col))
	for i, cell := range col {
		out[i] = strings.TrimSpace(cell)
	}
	return out, nil
}

// Floats returns a numeric column with "n.a." cells replaced by
// MissingValue.
func (t *Table) Floats(name string) ([]float64, error) {
	cells, err := t.Strings(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(cells))
	for i, cell := range cells {
		if cell == NotAvailable {
			out[i] = MissingValue
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("column %q row %d: %w", name, i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

// Dates returns the date column with the three-letter month rewritten as a
// two-digit number: "2023-Aug-15 00:00" becomes "2023-08-15 00:00". Year,
// day, and the time-of-day suffix pass through unchanged.
func (t *Table) Dates(name string) ([]string, error) {
	cells, err := t.Strings(name)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(cells))
	for i, cell := range cells {
		out[i] = numericMonth(cell)
	}
	return out, nil
}

var monthNumbers = map[string]string{
	"Jan": "01", "Feb": "02", "Mar": "03", "Apr": "04",
	"May": "05", "Jun": "06", "Jul": "07", "Aug": "08",
	"Sep": "09", "Oct": "10", "Nov": "11", "Dec": "12",
}

// numericMonth rewrites the month field of a Horizons date string.
func numericMonth(date string) string {
	parts := strings.SplitN(date, "-", 3)
	if len(parts) != 3 {
		return date
	}
	num, ok := monthNumbers[parts[1]]
	if !ok {
		return date
	}
	return parts[0] + "-" + num + "-" + parts[2]
}
