package metfile

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"silomet/internal/silo"
)

// Extension of the CSV export.
const CSVExtension = "csv"

// csvColumns is the CSV header, in emission order.
var csvColumns = []string{
	"year", "day", "radiation", "max_temp", "min_temp",
	"daily_rain", "evap_pan", "vp", "et_short_crop", "code",
}

// RenderCSV renders the series as CSV. The evaporation shift and day-of-year
// are applied the same way as for the .met export; missing values become
// empty fields.
func RenderCSV(series *silo.ClimateSeries) ([]byte, error) {
	shifted, err := silo.ShiftEvaporation(series)
	if err != nil {
		return nil, fmt.Errorf("failed to shift evaporation: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvColumns); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	radn, _ := shifted.Column(silo.VarRadiation)
	maxt, _ := shifted.Column(silo.VarMaxTemp)
	mint, _ := shifted.Column(silo.VarMinTemp)
	rain, _ := shifted.Column(silo.VarDailyRain)
	evap, _ := shifted.Column(silo.VarEvapPan)
	vp, _ := shifted.Column(silo.VarVP)
	et, _ := shifted.Column(silo.VarETShortCrop)

	for i, date := range shifted.Dates {
		record := []string{
			strconv.Itoa(date.Year()),
			strconv.Itoa(date.YearDay()),
			csvField(radn[i]),
			csvField(maxt[i]),
			csvField(mint[i]),
			csvField(rain[i]),
			csvField(evap[i]),
			csvField(vp[i]),
			csvField(et[i]),
			shifted.Codes[i],
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// csvField renders a value, empty when missing.
func csvField(v float64) string {
	if silo.IsMissing(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
