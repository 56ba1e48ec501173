package silo

import (
	"math"
	"time"
)

// Canonical output variables, in the fixed order the emitters rely on.
const (
	VarDailyRain   = "daily_rain"
	VarMaxTemp     = "max_temp"
	VarMinTemp     = "min_temp"
	VarVP          = "vp"
	VarRadiation   = "radiation"
	VarETShortCrop = "et_short_crop"
	VarEvapPan     = "evap_pan"
)

// CanonicalVariables lists the seven output variables in emission order.
// The order is a positional contract with the file emitters.
var CanonicalVariables = []string{
	VarDailyRain,
	VarMaxTemp,
	VarMinTemp,
	VarVP,
	VarRadiation,
	VarETShortCrop,
	VarEvapPan,
}

// DefaultCode is the quality code assigned when the response carries no code
// column or a record has no source data ("2" in every position means
// interpolated from daily observations).
const DefaultCode = "222222"

// RawTable is a date-indexed table of columns as received from SILO, with
// un-normalized column names. Cells that failed numeric coercion are NaN.
// Dates are strictly increasing with no duplicates.
type RawTable struct {
	Dates   []time.Time
	Columns []string             // original response order, date column excluded
	Values  map[string][]float64 // keyed by column name, aligned with Dates
}

// Len returns the number of rows in the table.
func (t *RawTable) Len() int {
	return len(t.Dates)
}

// ClimateSeries is the normalized, gap-free daily series: the seven canonical
// variables plus a 6-character quality code per record. Missing values are
// NaN. The date index is a contiguous daily calendar.
type ClimateSeries struct {
	Dates  []time.Time
	Values map[string][]float64 // keyed by canonical variable name
	Codes  []string
}

// Len returns the number of days in the series.
func (s *ClimateSeries) Len() int {
	return len(s.Dates)
}

// Column returns the values for a canonical variable, or false if the series
// does not carry it.
func (s *ClimateSeries) Column(name string) ([]float64, bool) {
	v, ok := s.Values[name]
	return v, ok
}

// Clone returns a deep copy. Transformations never mutate their input.
func (s *ClimateSeries) Clone() *ClimateSeries {
	out := &ClimateSeries{
		Dates:  append([]time.Time(nil), s.Dates...),
		Values: make(map[string][]float64, len(s.Values)),
		Codes:  append([]string(nil), s.Codes...),
	}
	for name, vals := range s.Values {
		out.Values[name] = append([]float64(nil), vals...)
	}
	return out
}

// nan is the null marker for missing numeric values.
var nan = math.NaN()

// IsMissing reports whether a value is the null marker.
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}
