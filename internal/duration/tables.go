package duration

import "strings"

const (
	// InstantThreshold is the value in seconds below which a duration formats as Instantly.
	InstantThreshold = 0.5

	// Instantly is the sentinel text for durations below InstantThreshold.
	Instantly = "Instantly"
)

// Unit is a time unit and its length in seconds.
type Unit struct {
	Name    string  // singular name, e.g. "hour"
	Seconds float64 // length of one unit in seconds
}

// Prefix is a magnitude prefix and its multiplier.
type Prefix struct {
	Symbol     string  // "" for no prefix
	Multiplier float64 // factor applied to the number
}

// units is ordered by ascending length. Month is 30 days, year is a Julian year
// (365.25 days). Both are fixed approximations shared by Parse and Format.
var units = [...]Unit{
	{Name: "second", Seconds: 1},
	{Name: "minute", Seconds: 60},
	{Name: "hour", Seconds: 3_600},
	{Name: "day", Seconds: 86_400},
	{Name: "week", Seconds: 604_800},
	{Name: "month", Seconds: 2_592_000},
	{Name: "year", Seconds: 31_557_600},
}

// prefixes is ordered by ascending multiplier. qd and qn share 1e15; Format scans
// from the end of the table, so qn is the one it emits.
var prefixes = [...]Prefix{
	{Symbol: "", Multiplier: 1},
	{Symbol: "k", Multiplier: 1e3},
	{Symbol: "m", Multiplier: 1e6},
	{Symbol: "bn", Multiplier: 1e9},
	{Symbol: "tn", Multiplier: 1e12},
	{Symbol: "qd", Multiplier: 1e15},
	{Symbol: "qn", Multiplier: 1e15},
}

// Units returns a copy of the unit table in ascending order.
func Units() []Unit {
	out := make([]Unit, len(units))
	copy(out, units[:])
	return out
}

// Prefixes returns a copy of the prefix table in ascending order.
func Prefixes() []Prefix {
	out := make([]Prefix, len(prefixes))
	copy(out, prefixes[:])
	return out
}

// LookupUnit returns the length in seconds of the named unit. Both singular and
// plural names are accepted, case-insensitively.
func LookupUnit(name string) (float64, bool) {
	name = strings.TrimSuffix(strings.ToLower(name), "s")
	for _, u := range units {
		if u.Name == name {
			return u.Seconds, true
		}
	}
	return 0, false
}

// LookupPrefix returns the multiplier of a prefix symbol, case-insensitively.
// The empty symbol maps to 1.
func LookupPrefix(symbol string) (float64, bool) {
	symbol = strings.ToLower(symbol)
	for _, p := range prefixes {
		if p.Symbol == symbol {
			return p.Multiplier, true
		}
	}
	return 0, false
}
