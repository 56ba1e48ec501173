package silo

import "time"

// Geographic domain of validity: the Australian continent as covered by the
// SILO gridded dataset.
const (
	LatMin = -44.0
	LatMax = -10.0
	LonMin = 112.0
	LonMax = 154.0
)

// EarliestYear is the first year of SILO records.
const EarliestYear = 1889

// ValidateCoordinates checks that a point lies inside the Australian bounds.
func ValidateCoordinates(lat, lon float64) error {
	if lat < LatMin || lat > LatMax {
		return &InvalidCoordinatesError{Axis: "latitude", Value: lat, Min: LatMin, Max: LatMax}
	}
	if lon < LonMin || lon > LonMax {
		return &InvalidCoordinatesError{Axis: "longitude", Value: lon, Min: LonMin, Max: LonMax}
	}
	return nil
}

// ValidateYearRange checks that the requested years fall inside
// [EarliestYear, current year] and are correctly ordered.
func ValidateYearRange(startYear, endYear int) error {
	currentYear := time.Now().Year()
	if startYear < EarliestYear {
		return &InvalidDateRangeError{StartYear: startYear, EndYear: endYear,
			Reason: "start year predates SILO records (1889)"}
	}
	if endYear > currentYear {
		return &InvalidDateRangeError{StartYear: startYear, EndYear: endYear,
			Reason: "end year is in the future"}
	}
	if startYear > endYear {
		return &InvalidDateRangeError{StartYear: startYear, EndYear: endYear,
			Reason: "start year is after end year"}
	}
	return nil
}

// ValidateRequest runs both coordinate and year-range validation. It is pure
// and must be called before any network or parse work.
func ValidateRequest(lat, lon float64, startYear, endYear int) error {
	if err := ValidateCoordinates(lat, lon); err != nil {
		return err
	}
	return ValidateYearRange(startYear, endYear)
}
