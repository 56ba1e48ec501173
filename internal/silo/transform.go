package silo

// ShiftEvaporation attributes each pan evaporation reading to the day before
// it was taken: the instrument is read at 9am and reflects the previous
// day's evaporation, so the value recorded for day N belongs to day N-1.
// The final day, left null by the shift, is backfilled with the
// second-to-last day's post-shift value. The input series is not modified.
func ShiftEvaporation(s *ClimateSeries) (*ClimateSeries, error) {
	if _, ok := s.Column(VarEvapPan); !ok {
		return nil, &MissingColumnsError{Columns: []string{VarEvapPan}}
	}

	out := s.Clone()
	evap := out.Values[VarEvapPan]
	n := len(evap)
	if n == 0 {
		return out, nil
	}

	for i := 0; i < n-1; i++ {
		evap[i] = evap[i+1]
	}
	evap[n-1] = nan
	if n > 1 {
		evap[n-1] = evap[n-2]
	}
	return out, nil
}
