// Package parsing extracts numeric values from free-form tag text.
package parsing

import (
	"regexp"
	"strconv"
)

var (
	// "5", "05", "5/12", " 5 / 12 ", "/12"
	pairPattern = regexp.MustCompile(`^\s*(\d*)\s*(?:/\s*(\d+))?\s*$`)

	// Leading four digit year of "2004", "2004-05-01", "2004-05-01T12:00"
	yearPattern = regexp.MustCompile(`^\s*(\d{4})`)
)

// NumberPair parses "n" or "n/total" as used by ID3v2 TRCK/TPOS and by some
// Vorbis TRACKNUMBER values. Unparseable or zero parts are reported as 0.
func NumberPair(s string) (number, total int) {
	m := pairPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0
	}
	return atoi(m[1]), atoi(m[2])
}

// FormatPair is the inverse of NumberPair. A missing number with a known
// total is written as "0/total"; both missing yields "".
func FormatPair(number, total int) string {
	switch {
	case number <= 0 && total <= 0:
		return ""
	case total <= 0:
		return strconv.Itoa(number)
	default:
		return strconv.Itoa(max(number, 0)) + "/" + strconv.Itoa(total)
	}
}

// Number parses a plain non-negative integer, returning 0 on failure.
func Number(s string) int {
	n, _ := NumberPair(s)
	return n
}

// Year extracts a leading four digit year, returning 0 when absent.
func Year(s string) int {
	m := yearPattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	return atoi(m[1])
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
