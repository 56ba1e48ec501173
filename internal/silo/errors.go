package silo

import (
	"fmt"
	"strings"
)

// InvalidCoordinatesError indicates a latitude or longitude outside the
// Australian bounds covered by the SILO gridded dataset.
type InvalidCoordinatesError struct {
	Axis  string // "latitude" or "longitude"
	Value float64
	Min   float64
	Max   float64
}

func (e *InvalidCoordinatesError) Error() string {
	return fmt.Sprintf("%s %v is outside Australian bounds (%v to %v)", e.Axis, e.Value, e.Min, e.Max)
}

// InvalidDateRangeError indicates a year range outside 1889..current year,
// or a start year after the end year.
type InvalidDateRangeError struct {
	StartYear int
	EndYear   int
	Reason    string
}

func (e *InvalidDateRangeError) Error() string {
	return fmt.Sprintf("invalid date range %d-%d: %s", e.StartYear, e.EndYear, e.Reason)
}

// MalformedResponseError indicates that the SILO response text could not be
// parsed: no header/data boundary was found, or no date column exists.
// Context holds the beginning of the offending payload for diagnostics.
type MalformedResponseError struct {
	Reason  string
	Context string
}

func (e *MalformedResponseError) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("malformed SILO response: %s", e.Reason)
	}
	return fmt.Sprintf("malformed SILO response: %s (payload starts with %q)", e.Reason, e.Context)
}

// MissingVariableError indicates that a required canonical variable could not
// be resolved against the response columns. It records which source names
// were tried and which columns were available so a schema change can be told
// apart from a transient service problem.
type MissingVariableError struct {
	Variable  string
	Tried     []string
	Available []string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("required variable %q not found in SILO response: tried %s, available columns %s",
		e.Variable, strings.Join(e.Tried, ", "), strings.Join(e.Available, ", "))
}

// MissingColumnsError indicates that an operation was asked to run on a
// series that lacks the columns it needs. This is a caller error, not a
// service fault.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("series is missing required columns: %s", strings.Join(e.Columns, ", "))
}
