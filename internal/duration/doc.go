// Package duration implements the compact duration notation used by brute-force
// estimate tables, converting between duration text and seconds.
//
// The notation is a number, an optional magnitude prefix and a unit, for example
// "5 seconds", "1.4 hours", "4.2k years" or "1.4bn years". Values below half a
// second are written as the sentinel "Instantly".
//
// GRAMMAR:
//
//	duration := "instantly" | NUMBER [space] PREFIX [space] UNIT
//	NUMBER   := digits with an optional fractional part (no sign, no exponent)
//	PREFIX   := "" | "k" | "m" | "bn" | "tn" | "qd" | "qn"
//	UNIT     := second(s) | minute(s) | hour(s) | day(s) | week(s) | month(s) | year(s)
//
// Matching is case-insensitive and anchored on the whole string.
//
// FORMATTING:
// Format picks the coarsest unit not larger than the value, then the prefix that
// brings the number into [1, 1000), and renders one fractional digit at most
// (round half up). Parse(Format(x)) reproduces x within that rounding error; the
// notation is lossy by construction.
//
// Both directions are pure functions over immutable lookup tables and are safe
// for concurrent use.
package duration
