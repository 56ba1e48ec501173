package silo

import (
	"errors"
	"math"
	"testing"
	"time"
)

// testSeries builds a minimal ClimateSeries with the given dates and
// temperature columns; the remaining variables are all-missing.
func testSeries(dates []time.Time, maxTemp, minTemp []float64) *ClimateSeries {
	s := &ClimateSeries{
		Dates:  dates,
		Values: make(map[string][]float64),
		Codes:  make([]string, len(dates)),
	}
	for _, name := range CanonicalVariables {
		col := make([]float64, len(dates))
		for i := range col {
			col[i] = math.NaN()
		}
		s.Values[name] = col
	}
	s.Values[VarMaxTemp] = maxTemp
	s.Values[VarMinTemp] = minTemp
	for i := range s.Codes {
		s.Codes[i] = DefaultCode
	}
	return s
}

func TestTav(t *testing.T) {
	dates := []time.Time{day(2000, 1, 1), day(2000, 1, 2), day(2000, 1, 3)}
	s := testSeries(dates, []float64{30, 32, 31}, []float64{20, 18, 19})

	tav, err := Tav(s)
	if err != nil {
		t.Fatalf("Tav returned error: %v", err)
	}
	// Daily means are 25, 25, 25.
	if tav != 25.0 {
		t.Errorf("Tav = %v, want 25.0", tav)
	}
}

func TestTavSkipsMissingDays(t *testing.T) {
	dates := []time.Time{day(2000, 1, 1), day(2000, 1, 2), day(2000, 1, 3)}
	s := testSeries(dates, []float64{30, math.NaN(), 40}, []float64{20, 18, 30})

	tav, err := Tav(s)
	if err != nil {
		t.Fatalf("Tav returned error: %v", err)
	}
	// Day 2 has no max_temp, so the mean covers days 1 and 3: (25+35)/2.
	if tav != 30.0 {
		t.Errorf("Tav = %v, want 30.0", tav)
	}
}

func TestTavAllMissing(t *testing.T) {
	dates := []time.Time{day(2000, 1, 1)}
	s := testSeries(dates, []float64{math.NaN()}, []float64{math.NaN()})

	tav, err := Tav(s)
	if err != nil {
		t.Fatalf("Tav returned error: %v", err)
	}
	if !IsMissing(tav) {
		t.Errorf("expected missing tav for all-null series, got %v", tav)
	}
}

func TestAmp(t *testing.T) {
	// January runs at a daily mean of 25, February at 20: amplitude 5.
	var dates []time.Time
	var maxTemp, minTemp []float64
	for d := day(2000, 1, 1); d.Before(day(2000, 3, 1)); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
		if d.Month() == time.January {
			maxTemp = append(maxTemp, 30)
			minTemp = append(minTemp, 20)
		} else {
			maxTemp = append(maxTemp, 25)
			minTemp = append(minTemp, 15)
		}
	}
	s := testSeries(dates, maxTemp, minTemp)

	amp, err := Amp(s)
	if err != nil {
		t.Fatalf("Amp returned error: %v", err)
	}
	if math.Abs(amp-5.0) > 1e-9 {
		t.Errorf("Amp = %v, want 5.0", amp)
	}
}

func TestAmpSingleMonth(t *testing.T) {
	dates := []time.Time{day(2000, 1, 1), day(2000, 1, 2)}
	s := testSeries(dates, []float64{30, 32}, []float64{20, 18})

	amp, err := Amp(s)
	if err != nil {
		t.Fatalf("Amp returned error: %v", err)
	}
	if amp != 0 {
		t.Errorf("expected zero amplitude for a single month, got %v", amp)
	}
}

func TestAmpBucketsByYearAndMonth(t *testing.T) {
	// Same calendar month in different years must land in different buckets:
	// Jan 2000 mean 25, Jan 2001 mean 30 -> amplitude 5.
	dates := []time.Time{day(2000, 1, 15), day(2001, 1, 15)}
	s := testSeries(dates, []float64{30, 40}, []float64{20, 20})

	amp, err := Amp(s)
	if err != nil {
		t.Fatalf("Amp returned error: %v", err)
	}
	if math.Abs(amp-5.0) > 1e-9 {
		t.Errorf("Amp = %v, want 5.0", amp)
	}
}

func TestStatsMissingColumns(t *testing.T) {
	s := &ClimateSeries{
		Dates:  []time.Time{day(2000, 1, 1)},
		Values: map[string][]float64{VarDailyRain: {0.0}},
		Codes:  []string{DefaultCode},
	}

	for _, fn := range []func(*ClimateSeries) (float64, error){Tav, Amp} {
		_, err := fn(s)
		if err == nil {
			t.Fatal("expected MissingColumnsError, got nil")
		}
		var missing *MissingColumnsError
		if !errors.As(err, &missing) {
			t.Errorf("expected MissingColumnsError, got %T: %v", err, err)
		}
	}
}
