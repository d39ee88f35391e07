package duration

// Unit identifies one row of the unit table.
type Unit int

const (
	Nanosecond Unit = iota
	Microsecond
	Millisecond
	Second
	Minute
	Hour
	Day
	Week
	// Month is 30 days. It is not a calendar month.
	Month
	// Year is 365 days. It is not a calendar year.
	Year
)

// Unit lengths in seconds for the whole-second units.
const (
	SecondsPerMinute = 60
	SecondsPerHour   = 3_600
	SecondsPerDay    = 86_400
	SecondsPerWeek   = 604_800
	SecondsPerMonth  = 2_592_000  // 30 days
	SecondsPerYear   = 31_536_000 // 365 days
)

// UnitInfo describes a unit: its length, the spellings Parse accepts and the
// abbreviation Format emits. Units below one second have Seconds == 0 and
// express their length in Nanos; the rest have Nanos == 0.
type UnitInfo struct {
	Unit      Unit
	Name      string
	Seconds   uint64
	Nanos     uint32
	Spellings []string
	// Singular and Plural are the Format spellings. They differ only for
	// day and longer.
	Singular string
	Plural   string
}

// unitTable is read-only after package initialization.
var unitTable = [...]UnitInfo{
	{Nanosecond, "nanosecond", 0, 1, []string{"nanos", "nsec", "ns"}, "ns", "ns"},
	{Microsecond, "microsecond", 0, 1_000, []string{"micros", "usec", "us", "µs", "μs"}, "us", "us"},
	{Millisecond, "millisecond", 0, 1_000_000, []string{"millis", "msec", "ms"}, "ms", "ms"},
	{Second, "second", 1, 0, []string{"seconds", "second", "secs", "sec", "s"}, "s", "s"},
	{Minute, "minute", SecondsPerMinute, 0, []string{"minutes", "minute", "mins", "min", "m"}, "m", "m"},
	{Hour, "hour", SecondsPerHour, 0, []string{"hours", "hour", "hrs", "hr", "h", "H"}, "h", "h"},
	{Day, "day", SecondsPerDay, 0, []string{"days", "day", "dys", "dy", "d", "D"}, "day", "days"},
	{Week, "week", SecondsPerWeek, 0, []string{"weeks", "week", "wks", "wk", "w", "W"}, "week", "weeks"},
	{Month, "month", SecondsPerMonth, 0, []string{"months", "month", "mths", "mth", "M"}, "month", "months"},
	{Year, "year", SecondsPerYear, 0, []string{"years", "year", "yrs", "yr", "y", "Y"}, "year", "years"},
}

// spellings maps every accepted spelling to its unit. Built once, never
// written afterwards, so concurrent lookups need no locking.
var spellings = func() map[string]Unit {
	m := make(map[string]Unit)
	for _, u := range unitTable {
		for _, s := range u.Spellings {
			m[s] = u.Unit
		}
	}
	return m
}()

func lookupUnit(token string) (UnitInfo, bool) {
	u, ok := spellings[token]
	if !ok {
		return UnitInfo{}, false
	}
	return unitTable[u], true
}

// Units returns a copy of the unit table, smallest unit first.
func Units() []UnitInfo {
	out := make([]UnitInfo, len(unitTable))
	for i, u := range unitTable {
		u.Spellings = append([]string(nil), u.Spellings...)
		out[i] = u
	}
	return out
}

// String returns the unit name, e.g. "minute".
func (u Unit) String() string {
	if u < Nanosecond || u > Year {
		return "unknown"
	}
	return unitTable[u].Name
}
