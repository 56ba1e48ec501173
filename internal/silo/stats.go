package silo

// Tav calculates the annual average ambient temperature: the mean of
// (max_temp + min_temp) / 2 over all days. Days where either temperature is
// missing are skipped.
func Tav(s *ClimateSeries) (float64, error) {
	maxT, minT, err := temperatureColumns(s)
	if err != nil {
		return 0, err
	}

	var sum float64
	var n int
	for i := range s.Dates {
		if IsMissing(maxT[i]) || IsMissing(minT[i]) {
			continue
		}
		sum += (maxT[i] + minT[i]) / 2
		n++
	}
	if n == 0 {
		return nan, nil
	}
	return sum / float64(n), nil
}

// Amp calculates the annual amplitude in mean monthly temperature: days are
// grouped into calendar-month buckets (year+month), the daily mean
// temperature is averaged within each bucket, and the amplitude is the range
// across all buckets present in the series.
func Amp(s *ClimateSeries) (float64, error) {
	maxT, minT, err := temperatureColumns(s)
	if err != nil {
		return 0, err
	}

	type bucket struct {
		sum float64
		n   int
	}
	buckets := make(map[int]*bucket)
	for i, d := range s.Dates {
		if IsMissing(maxT[i]) || IsMissing(minT[i]) {
			continue
		}
		key := d.Year()*12 + int(d.Month()) - 1
		b := buckets[key]
		if b == nil {
			b = &bucket{}
			buckets[key] = b
		}
		b.sum += (maxT[i] + minT[i]) / 2
		b.n++
	}
	if len(buckets) == 0 {
		return nan, nil
	}

	var lo, hi float64
	first := true
	for _, b := range buckets {
		mean := b.sum / float64(b.n)
		if first {
			lo, hi = mean, mean
			first = false
			continue
		}
		if mean < lo {
			lo = mean
		}
		if mean > hi {
			hi = mean
		}
	}
	return hi - lo, nil
}

// temperatureColumns fetches both temperature columns or reports which are
// missing.
func temperatureColumns(s *ClimateSeries) ([]float64, []float64, error) {
	maxT, okMax := s.Column(VarMaxTemp)
	minT, okMin := s.Column(VarMinTemp)
	if !okMax || !okMin {
		var missing []string
		if !okMax {
			missing = append(missing, VarMaxTemp)
		}
		if !okMin {
			missing = append(missing, VarMinTemp)
		}
		return nil, nil, &MissingColumnsError{Columns: missing}
	}
	return maxT, minT, nil
}
