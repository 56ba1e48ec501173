package silo

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// headerSynonyms are column names that identify a line as the data header
// when it also carries a date token. Both schema families are covered.
var headerSynonyms = []string{"Rainfall", "Rain", "T.Max", "Tmax", "T.Min", "Tmin"}

// permissiveDateLayouts are tried, in order, for date values that fail the
// strict YYYYMMDD parse.
var permissiveDateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
}

// boundaryStrategy locates the header line in a response, returning its
// index and whether it matched. Strategies are tried in order until one
// succeeds.
type boundaryStrategy func(lines []string) (int, bool)

var boundaryStrategies = []boundaryStrategy{
	findNamedHeader,
	findDataShapeHeader,
}

// findNamedHeader scans for a line that mentions a date together with at
// least one known temperature/rainfall column name.
func findNamedHeader(lines []string) (int, bool) {
	for i, line := range lines {
		if !strings.Contains(strings.ToLower(line), "date") {
			continue
		}
		for _, syn := range headerSynonyms {
			if strings.Contains(line, syn) {
				return i, true
			}
		}
	}
	return 0, false
}

// findDataShapeHeader scans for the first line that looks like a data row:
// comma-separated, more than five fields, first field an 8-digit YYYYMMDD
// token. The line before it is taken to be the header. SILO does not promise
// that line is actually a header; this reproduces the service's observed
// layout and is only reached when the named-header scan fails.
func findDataShapeHeader(lines []string) (int, bool) {
	for i, line := range lines {
		if !strings.Contains(line, ",") {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) <= 5 {
			continue
		}
		first := strings.TrimSpace(fields[0])
		if len(first) == 8 && isDigits(first) && i > 0 {
			return i - 1, true
		}
	}
	return 0, false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// ParseResponse parses a raw SILO response into a RawTable. The format tag
// travels with the request but the boundary heuristics do not depend on it;
// both schema families share the same framing quirks. Despite the nominal
// CSV framing, SILO data rows are whitespace-delimited, so everything from
// the header line onward is tokenized on whitespace.
func ParseResponse(text string, format Format) (*RawTable, error) {
	_ = format

	lines := strings.Split(strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n")), "\n")

	headerIdx := -1
	for _, strategy := range boundaryStrategies {
		if idx, ok := strategy(lines); ok {
			headerIdx = idx
			break
		}
	}
	if headerIdx < 0 {
		return nil, &MalformedResponseError{Reason: "could not find data start", Context: payloadContext(text)}
	}

	columns := tokenizeHeader(lines[headerIdx])
	if len(columns) == 0 {
		return nil, &MalformedResponseError{Reason: "header line has no columns", Context: payloadContext(text)}
	}

	dateIdx := -1
	for i, name := range columns {
		if strings.Contains(strings.ToLower(name), "date") {
			dateIdx = i
			break
		}
	}
	if dateIdx < 0 {
		return nil, &MalformedResponseError{Reason: "could not find date column", Context: payloadContext(text)}
	}

	type rawRow struct {
		date  time.Time
		cells []float64
	}

	var rows []rawRow
	for _, line := range lines[headerIdx+1:] {
		fields := strings.Fields(line)
		if len(fields) == 0 || len(fields) <= dateIdx {
			continue
		}

		date, ok := parseDate(fields[dateIdx])
		if !ok {
			continue
		}

		cells := make([]float64, 0, len(columns)-1)
		for i := range columns {
			if i == dateIdx {
				continue
			}
			cells = append(cells, coerceNumeric(fields, i))
		}
		rows = append(rows, rawRow{date: date, cells: cells})
	}

	// Sort ascending; the stable sort keeps response order within equal
	// dates so the keep-last duplicate policy below is deterministic.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].date.Before(rows[j].date) })

	table := &RawTable{Values: make(map[string][]float64)}
	for i, name := range columns {
		if i != dateIdx {
			table.Columns = append(table.Columns, name)
		}
	}

	for _, row := range rows {
		if n := len(table.Dates); n > 0 && table.Dates[n-1].Equal(row.date) {
			// Duplicate date: last occurrence wins.
			table.Dates = table.Dates[:n-1]
			for _, name := range table.Columns {
				table.Values[name] = table.Values[name][:n-1]
			}
		}
		table.Dates = append(table.Dates, row.date)
		for j, name := range table.Columns {
			table.Values[name] = append(table.Values[name], row.cells[j])
		}
	}

	return table, nil
}

// tokenizeHeader splits a header line on whitespace and strips quoting and
// stray punctuation from each column name.
func tokenizeHeader(line string) []string {
	fields := strings.Fields(line)
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		if name := strings.Trim(f, `"', `); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// coerceNumeric parses the i-th field as a float64, returning NaN for short
// rows and for tokens that are not numeric. Parse failures never abort the
// row; a bad cell becomes a missing value.
func coerceNumeric(fields []string, i int) float64 {
	if i >= len(fields) {
		return nan
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(fields[i]), 64)
	if err != nil {
		return nan
	}
	return v
}

// parseDate parses a date token, strict YYYYMMDD first, then the permissive
// layouts. The result is normalized to midnight UTC.
func parseDate(token string) (time.Time, bool) {
	token = strings.TrimSpace(token)
	if t, err := time.Parse("20060102", token); err == nil {
		return midnightUTC(t), true
	}
	for _, layout := range permissiveDateLayouts {
		if t, err := time.Parse(layout, token); err == nil {
			return midnightUTC(t), true
		}
	}
	return time.Time{}, false
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// payloadContext returns the start of the raw payload for error messages.
func payloadContext(text string) string {
	const max = 120
	text = strings.TrimSpace(text)
	if len(text) > max {
		return text[:max]
	}
	return text
}
