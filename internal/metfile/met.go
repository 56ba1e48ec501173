package metfile

import (
	"bytes"
	"fmt"
	"time"

	"silomet/internal/silo"
)

// Extension of the APSIM weather file format.
const MetExtension = "met"

// Metadata carries the request parameters the .met preamble needs.
type Metadata struct {
	Lat         float64
	Lon         float64
	StartYear   int
	EndYear     int
	ExtractedAt time.Time
}

// metHeader is the APSIM .met preamble. The text, including the stray
// quote after "Your Ref" and the unit caption row, is part of the format
// family consumed downstream and must not be reflowed.
const metHeader = `[weather.met.weather]
!Your Ref:  "
latitude = %.2f  (DECIMAL DEGREES)
longitude =  %.2f  (DECIMAL DEGREES)
tav = %.2f (oC) ! Annual average ambient temperature. Based on 1 Jan %d to current.
amp = %.2f (oC) ! Annual amplitude in mean monthly temperature. Based on 1 Jan %d to current.
!Data Extracted from SILO 'BoM Only' dataset on %s " for APSIM
!As evaporation is read at 9am, it has been shifted to day before
!ie The evaporation measured on 20 April is in row for 19 April
!The 6 digit code indicates the source of the 6 data columns
!0 actual observation, 1 actual observation composite station
!2 interpolated from daily observations
!3 interpolated from daily observations using anomaly interpolation method for CLIMARC data
!6 synthetic pan
!7 interpolated long term averages
!more detailed two digit codes are available in SILO's 'Standard' format files
!
!For further information see the documentation on the datadrill
!  http://www.longpaddock.qld.gov.au/silo
!
year  day radn  maxt   mint  rain  evap    vp   code
 ()   () (MJ/m^2) (oC)  (oC)  (mm)  (mm) (hPa)     ()
`

// RenderMet renders the series as an APSIM .met file. TAV and AMP are
// computed on the unshifted series; the evaporation shift is applied to the
// data rows only. Field order and widths are a byte-level contract with the
// consuming crop model.
func RenderMet(series *silo.ClimateSeries, meta Metadata) ([]byte, error) {
	tav, err := silo.Tav(series)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate tav: %w", err)
	}
	amp, err := silo.Amp(series)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate amp: %w", err)
	}

	shifted, err := silo.ShiftEvaporation(series)
	if err != nil {
		return nil, fmt.Errorf("failed to shift evaporation: %w", err)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, metHeader,
		meta.Lat, meta.Lon,
		tav, meta.StartYear,
		amp, meta.StartYear,
		meta.ExtractedAt.Format("02/01/2006"),
	)

	radn, _ := shifted.Column(silo.VarRadiation)
	maxt, _ := shifted.Column(silo.VarMaxTemp)
	mint, _ := shifted.Column(silo.VarMinTemp)
	rain, _ := shifted.Column(silo.VarDailyRain)
	evap, _ := shifted.Column(silo.VarEvapPan)
	vp, _ := shifted.Column(silo.VarVP)

	for i, date := range shifted.Dates {
		code := shifted.Codes[i]
		if code == "" {
			code = silo.DefaultCode
		}
		fmt.Fprintf(&buf, "%4d %4d %6s %6s %6s %6s %6s %6s %7s\n",
			date.Year(), date.YearDay(),
			metField(radn[i]), metField(maxt[i]), metField(mint[i]),
			metField(rain[i]), metField(evap[i]), metField(vp[i]),
			code,
		)
	}

	return buf.Bytes(), nil
}

// metField renders a value in the fixed 6-character column, the literal
// right-aligned token "NaN" when the value is missing.
func metField(v float64) string {
	if silo.IsMissing(v) {
		return "   NaN"
	}
	return fmt.Sprintf("%6.1f", v)
}
