package metfile

import "fmt"

// Filename builds the shared output filename:
// SILO_{startYear}-{endYear}_{lat}_{lon}.{ext}, with coordinates rounded to
// two decimals regardless of the precision they were requested at.
func Filename(lat, lon float64, startYear, endYear int, ext string) string {
	return fmt.Sprintf("SILO_%d-%d_%.2f_%.2f.%s", startYear, endYear, lat, lon, ext)
}
