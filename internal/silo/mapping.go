package silo

// Format selects the SILO response schema that was requested upstream.
type Format string

const (
	FormatFAO56 Format = "fao56"
	FormatDaily Format = "daily"
)

// columnMapping is one source-column to canonical-variable association.
// Mappings are ordered: when several source names map to the same canonical
// variable, earlier entries are tried first.
type columnMapping struct {
	Source    string
	Canonical string
}

// fao56Mapping covers the FAO56 response schema. SILO uses "Rain" (not
// "Rainfall"), "Radn" (not "Radiation") and "Evap" (not "Evaporation"); the
// longer names are kept as fallbacks for older service versions.
var fao56Mapping = []columnMapping{
	{"Rain", VarDailyRain},
	{"Rainfall", VarDailyRain},
	{"T.Max", VarMaxTemp},
	{"T.Min", VarMinTemp},
	{"VP", VarVP},
	{"Radn", VarRadiation},
	{"Radiation", VarRadiation},
	{"FAO56", VarETShortCrop},
	{"Evap", VarEvapPan},
	{"Evaporation", VarEvapPan},
}

// dailyMapping covers the daily response schema.
var dailyMapping = []columnMapping{
	{"Rain", VarDailyRain},
	{"Tmax", VarMaxTemp},
	{"Tmin", VarMinTemp},
	{"VP", VarVP},
	{"Radiation", VarRadiation},
	{"FAO56", VarETShortCrop},
	{"Evap", VarEvapPan},
}

// mappingFor selects the static mapping for a format. Anything other than
// FAO56 falls back to the daily mapping.
func mappingFor(format Format) []columnMapping {
	if format == FormatFAO56 {
		return fao56Mapping
	}
	return dailyMapping
}

// candidatesFor returns the source names that map to a canonical variable,
// in mapping-declaration order.
func candidatesFor(mapping []columnMapping, canonical string) []string {
	var names []string
	for _, m := range mapping {
		if m.Canonical == canonical {
			names = append(names, m.Source)
		}
	}
	return names
}
