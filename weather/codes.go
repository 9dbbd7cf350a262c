package weather

// Condition is one (icon, description) pair for a WMO weather code.
type Condition struct {
	Icon        string
	Description string
}

// WMO weather interpretation codes as reported by the forecast provider.
var conditions = map[int]Condition{
	0:  {"sun", "Sereno"},
	1:  {"cloud-sun", "Prevalentemente sereno"},
	2:  {"cloud-sun", "Parzialmente nuvoloso"},
	3:  {"cloud", "Nuvoloso"},
	45: {"fog", "Nebbia"},
	48: {"fog", "Nebbia con brina"},
	51: {"drizzle", "Pioviggine leggera"},
	53: {"drizzle", "Pioviggine"},
	55: {"drizzle", "Pioviggine intensa"},
	61: {"rain", "Pioggia leggera"},
	63: {"rain", "Pioggia"},
	65: {"rain", "Pioggia intensa"},
	71: {"snow", "Neve leggera"},
	73: {"snow", "Neve"},
	75: {"snow", "Neve intensa"},
	80: {"showers", "Rovesci leggeri"},
	81: {"showers", "Rovesci"},
	82: {"showers", "Rovesci violenti"},
	95: {"storm", "Temporale"},
	96: {"storm", "Temporale con grandine"},
	99: {"storm", "Temporale con grandine"},
}

// Lookup maps a provider weather code to its condition, falling back to clear
// for codes outside the table.
func Lookup(code int) Condition {
	if c, ok := conditions[code]; ok {
		return c
	}
	return conditions[0]
}
