package gedgraph

import (
	"fmt"
	"strconv"
	"strings"
)

// Fidelity states how precisely a date was parsed from source text.
type Fidelity string

const (
	// FidelityExact means a full day date was recognized.
	FidelityExact Fidelity = "exact"
	// FidelityYear means only a year (possibly with a month) was given.
	FidelityYear Fidelity = "year-only"
	// FidelityApprox marks ABT/EST/CAL dates.
	FidelityApprox Fidelity = "approximate"
	// FidelityRange marks BET/AND, FROM/TO, BEF and AFT dates.
	FidelityRange Fidelity = "range"
	// FidelityUnparsed keeps anything else as opaque text.
	FidelityUnparsed Fidelity = "unparsed"
)

// Date is a genealogical date. Text always holds the source string;
// Normalized is an ISO-ish rendition (YYYY, YYYY-MM or YYYY-MM-DD)
// when the text was recognized, empty otherwise. Approximate and
// range dates normalize their first recognizable calendar date.
// Partial and approximate dates are common in genealogy and must
// survive the pipeline instead of being dropped.
type Date struct {
	Text       string
	Normalized string
	Year       int
	Fidelity   Fidelity
}

// IsZero reports whether no date was recorded at all.
func (d Date) IsZero() bool { return d.Text == "" }

// Display returns the normalized form when one exists, otherwise the
// source text.
func (d Date) Display() string {
	if d.Fidelity == FidelityApprox && d.Normalized != "" {
		return "abt. " + d.Normalized
	}
	if d.Fidelity == FidelityRange {
		return d.Text
	}
	if d.Normalized != "" {
		return d.Normalized
	}
	return d.Text
}

var months = map[string]int{
	"JAN": 1, "FEB": 2, "MAR": 3, "APR": 4, "MAY": 5, "JUN": 6,
	"JUL": 7, "AUG": 8, "SEP": 9, "OCT": 10, "NOV": 11, "DEC": 12,
}

// ParseDate normalizes a GEDCOM date value. Recognized forms:
//
//	12 JAN 1900        exact
//	JAN 1900, 1900     year-only
//	ABT|EST|CAL <date> approximate
//	BET a AND b        range
//	FROM a TO b        range
//	BEF|AFT <date>     range
//
// Anything else is retained as opaque text with unparsed fidelity.
func ParseDate(text string) Date {
	text = strings.TrimSpace(text)
	res := Date{Text: text, Fidelity: FidelityUnparsed}
	if text == "" {
		return res
	}

	fields := strings.Fields(strings.ToUpper(text))

	switch fields[0] {
	case "ABT", "EST", "CAL":
		inner := parseCalendar(fields[1:])
		if inner.Fidelity == FidelityUnparsed {
			return res
		}
		inner.Text = text
		inner.Fidelity = FidelityApprox
		return inner
	case "BET", "FROM", "BEF", "AFT":
		if norm, year, ok := parseRange(fields); ok {
			return Date{
				Text:       text,
				Normalized: norm,
				Year:       year,
				Fidelity:   FidelityRange,
			}
		}
		return res
	}

	cal := parseCalendar(fields)
	cal.Text = text
	return cal
}

// parseCalendar handles the plain calendar forms: "D MON YYYY",
// "MON YYYY" and "YYYY".
func parseCalendar(fields []string) Date {
	res := Date{Fidelity: FidelityUnparsed}

	switch len(fields) {
	case 1:
		year, ok := parseYear(fields[0])
		if !ok {
			return res
		}
		return Date{
			Normalized: strconv.Itoa(year),
			Year:       year,
			Fidelity:   FidelityYear,
		}
	case 2:
		month, ok := months[fields[0]]
		if !ok {
			return res
		}
		year, ok := parseYear(fields[1])
		if !ok {
			return res
		}
		return Date{
			Normalized: fmt.Sprintf("%d-%02d", year, month),
			Year:       year,
			Fidelity:   FidelityYear,
		}
	case 3:
		day, err := strconv.Atoi(fields[0])
		if err != nil || day < 1 || day > 31 {
			return res
		}
		month, ok := months[fields[1]]
		if !ok {
			return res
		}
		year, ok := parseYear(fields[2])
		if !ok {
			return res
		}
		return Date{
			Normalized: fmt.Sprintf("%d-%02d-%02d", year, month, day),
			Year:       year,
			Fidelity:   FidelityExact,
		}
	}
	return res
}

// parseRange normalizes range forms to their first calendar date. The
// full range stays available through Text.
func parseRange(fields []string) (string, int, bool) {
	var first []string
	switch fields[0] {
	case "BET":
		for _, f := range fields[1:] {
			if f == "AND" {
				break
			}
			first = append(first, f)
		}
	case "FROM":
		for _, f := range fields[1:] {
			if f == "TO" {
				break
			}
			first = append(first, f)
		}
	case "BEF", "AFT":
		first = fields[1:]
	}

	cal := parseCalendar(first)
	if cal.Fidelity == FidelityUnparsed {
		return "", 0, false
	}
	return cal.Normalized, cal.Year, true
}

func parseYear(s string) (int, bool) {
	year, err := strconv.Atoi(s)
	if err != nil || year < 1 || year > 9999 {
		return 0, false
	}
	return year, true
}
