package silo

import (
	"fmt"
	"strings"
	"time"
)

// missingCodes are the sentinel values SILO uses for "no data". They parse
// as ordinary numbers, so they are replaced in a pass of their own after
// numeric coercion.
var missingCodes = []float64{-9999, -99.9, -999, -99}

// Normalize maps a raw SILO table onto the fixed seven-variable series.
// Column resolution walks the raw columns in response order and the mapping
// candidates in declaration order, first match wins, so the result is
// deterministic for a given response. The returned series is reindexed to a
// gap-free daily calendar spanning the raw table's date range.
func Normalize(table *RawTable, format Format) (*ClimateSeries, error) {
	mapping := mappingFor(format)

	resolved := make(map[string][]float64, len(CanonicalVariables))
	for _, canonical := range CanonicalVariables {
		// The canonical name itself is the lowest-priority candidate, so a
		// table that already uses canonical names passes through unchanged.
		candidates := append(candidatesFor(mapping, canonical), canonical)
		column, ok := resolveColumn(table.Columns, candidates)
		if !ok {
			return nil, &MissingVariableError{
				Variable:  canonical,
				Tried:     candidates,
				Available: append([]string(nil), table.Columns...),
			}
		}
		resolved[canonical] = replaceSentinels(table.Values[column])
	}

	codes := resolveCodes(table)

	return reindexDaily(table.Dates, resolved, codes), nil
}

// resolveColumn finds the first raw column matching any candidate source
// name: case-insensitive exact match, then substring match in either
// direction (SILO headers are whitespace-delimited and occasionally
// truncated or decorated).
func resolveColumn(columns []string, candidates []string) (string, bool) {
	for _, col := range columns {
		colLower := strings.ToLower(strings.TrimSpace(col))
		for _, cand := range candidates {
			candLower := strings.ToLower(strings.TrimSpace(cand))
			if colLower == candLower ||
				strings.Contains(colLower, candLower) ||
				strings.Contains(candLower, colLower) {
				return col, true
			}
		}
	}
	return "", false
}

// replaceSentinels returns a copy of values with SILO missing-data codes
// replaced by the null marker.
func replaceSentinels(values []float64) []float64 {
	out := append([]float64(nil), values...)
	for i, v := range out {
		for _, code := range missingCodes {
			if v == code {
				out[i] = nan
				break
			}
		}
	}
	return out
}

// resolveCodes extracts the per-record quality codes, zero-left-padded to 6
// characters. When the response has no code column every record gets
// DefaultCode.
func resolveCodes(table *RawTable) []string {
	var codeColumn string
	for _, col := range table.Columns {
		if strings.Contains(strings.ToLower(col), "code") {
			codeColumn = col
			break
		}
	}

	codes := make([]string, table.Len())
	if codeColumn == "" {
		for i := range codes {
			codes[i] = DefaultCode
		}
		return codes
	}

	values := table.Values[codeColumn]
	for i, v := range values {
		codes[i] = formatCode(v)
	}
	return codes
}

// formatCode renders a numeric quality code as a 6-character string.
func formatCode(v float64) string {
	if IsMissing(v) {
		return DefaultCode
	}
	return fmt.Sprintf("%06d", int64(v))
}

// reindexDaily lays the resolved columns onto a contiguous daily calendar
// spanning the raw date range. Days absent from the source become all-null
// rows with the default code.
func reindexDaily(dates []time.Time, resolved map[string][]float64, codes []string) *ClimateSeries {
	series := &ClimateSeries{Values: make(map[string][]float64, len(resolved))}
	if len(dates) == 0 {
		for _, canonical := range CanonicalVariables {
			series.Values[canonical] = nil
		}
		return series
	}

	rowFor := make(map[time.Time]int, len(dates))
	for i, d := range dates {
		rowFor[d] = i
	}

	first, last := dates[0], dates[len(dates)-1]
	days := int(last.Sub(first).Hours()/24) + 1

	series.Dates = make([]time.Time, 0, days)
	series.Codes = make([]string, 0, days)
	for _, canonical := range CanonicalVariables {
		series.Values[canonical] = make([]float64, 0, days)
	}

	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		series.Dates = append(series.Dates, d)
		if row, ok := rowFor[d]; ok {
			for _, canonical := range CanonicalVariables {
				series.Values[canonical] = append(series.Values[canonical], resolved[canonical][row])
			}
			series.Codes = append(series.Codes, codes[row])
		} else {
			for _, canonical := range CanonicalVariables {
				series.Values[canonical] = append(series.Values[canonical], nan)
			}
			series.Codes = append(series.Codes, DefaultCode)
		}
	}

	return series
}
